/*
 * S370 - Binary32 miscellaneous math helpers.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package spf32

const (
	degToRadConst F32 = 0x3C8EFA35 // pi/180
	radToDegConst F32 = 0x42652EE1 // 180/pi
)

// DegToRad converts an angle in degrees to radians.
func DegToRad(d F32) F32 {
	return Mul(d, degToRadConst)
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(r F32) F32 {
	return Mul(r, radToDegConst)
}

// Scalbn returns f * 2**n, adjusting the exponent field directly rather
// than performing n individual multiplications. Results that would
// underflow flush to a signed zero; results that would overflow saturate
// to a signed infinity (see DESIGN.md's subnormal-handling note).
func Scalbn(f F32, n int) F32 {
	if IsNaN(f) || IsInf(f) || f.isZeroBits() {
		return f
	}
	newRaw := f.rawExp() + int32(n)
	switch {
	case newRaw <= 0:
		if f.sign() {
			return NegZero
		}
		return Zero
	case newRaw >= 255:
		if f.sign() {
			return NegInf
		}
		return PosInf
	default:
		return assemble(f.sign(), newRaw, f.mant())
	}
}

// Ldexp returns frac * 2**exp.
func Ldexp(frac F32, exp int) F32 {
	return Scalbn(frac, exp)
}

// Frexp decomposes f into a normalized fraction m in [0.5, 1) (or (-1,
// -0.5]) and an integer exponent exp such that f == m * 2**exp.
func Frexp(f F32) (frac F32, exp int) {
	if IsNaN(f) || IsInf(f) {
		return f, 0
	}
	if f.isZeroBits() {
		return f, 0
	}
	e := f.rawExp()
	if e == 0 {
		m := f.mant()
		var shift int32
		for m&hiddenBit == 0 {
			m <<= 1
			shift++
		}
		m &= mantMask
		unbiased := int32(1) - expBias - shift
		return assemble(f.sign(), expBias-1, m), int(unbiased) + 1
	}
	return assemble(f.sign(), expBias-1, f.mant()), int(e-expBias) + 1
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign(x, y F32) F32 {
	return (x &^ signMask) | (y & signMask)
}

// Modf returns the integer and fractional parts of x, both carrying x's
// sign.
func Modf(x F32) (intPart, frac F32) {
	if IsNaN(x) {
		return NaN, NaN
	}
	if IsInf(x) {
		return x, Copysign(Zero, x)
	}
	intPart = Trunc(x)
	frac = Copysign(Sub(x, intPart), x)
	return intPart, frac
}

// Hypot returns sqrt(a*a + b*b), computed by factoring out the larger
// magnitude first to avoid spurious overflow/underflow.
func Hypot(a, b F32) F32 {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	ua, va := Abs(a), Abs(b)
	u, v := ua, va
	if Less(u, v) {
		u, v = v, u
	}
	if u.isZeroBits() {
		return Zero
	}
	ratio := Div(v, u)
	return Mul(u, Sqrt(Add(One, Mul(ratio, ratio))))
}

// MinF returns the smaller of a and b.
func MinF(a, b F32) F32 {
	if Less(b, a) {
		return b
	}
	return a
}

// MaxF returns the larger of a and b.
func MaxF(a, b F32) F32 {
	if Greater(b, a) {
		return b
	}
	return a
}

// Clamp restricts x to the closed interval [lo, hi].
func Clamp(x, lo, hi F32) F32 {
	if Less(x, lo) {
		return lo
	}
	if Greater(x, hi) {
		return hi
	}
	return x
}
