/*
 * S370 - Binary32 add/subtract.
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

// Neg returns -f, toggling the sign bit. NaN passes through unchanged since
// it carries no meaningful sign.
func Neg(f F32) F32 {
	if IsNaN(f) {
		return f
	}
	return f ^ signMask
}

// Abs returns the absolute value of f, clearing the sign bit.
func Abs(f F32) F32 {
	return f &^ signMask
}

// guardShift is the number of extra low-order bits the addition kernel
// carries through alignment before rounding: one guard bit and one
// combined round/sticky bit, matching the guard-and-sticky technique used
// by the division kernel in divide.go.
const guardShift = 2

// Add returns a + b, aligning mantissas on the larger-magnitude operand,
// adding or subtracting according to whether the operand signs agree, then
// renormalizing and rounding to nearest-even.
func Add(a, b F32) F32 {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	if IsInf(a) || IsInf(b) {
		switch {
		case IsInf(a) && IsInf(b):
			if a.sign() != b.sign() {
				return NaN
			}
			return a
		case IsInf(a):
			return a
		default:
			return b
		}
	}
	if a.isZeroBits() && b.isZeroBits() {
		if a.sign() && b.sign() {
			return NegZero
		}
		return Zero
	}
	if a.isZeroBits() {
		return b
	}
	if b.isZeroBits() {
		return a
	}

	dom, rec := a, b
	if Cmp(Abs(a), Abs(b)) < 0 {
		dom, rec = b, a
	}

	domExp := dom.exp()
	recExp := rec.exp()
	domMant := int64(dom.mant24()) << guardShift
	recMant := int64(rec.mant24()) << guardShift

	delta := domExp - recExp
	if delta >= 26 {
		return dom
	}
	if delta > 0 {
		lost := recMant & ((int64(1) << uint(delta)) - 1)
		recMant = sral(recMant, delta)
		if lost != 0 {
			recMant |= 1
		}
	}

	sameSign := dom.sign() == rec.sign()
	var sum int64
	if sameSign {
		sum = domMant + recMant
	} else {
		sum = domMant - recMant
	}

	resultSign := dom.sign()
	if sum == 0 {
		return Zero
	}
	if sum < 0 {
		sum = -sum
		resultSign = !resultSign
	}

	hidden := int64(hiddenBit) << guardShift
	exp := domExp
	for sum >= hidden<<1 {
		sticky := sum & 1
		sum >>= 1
		sum |= sticky
		exp++
	}
	for sum < hidden {
		sum <<= 1
		exp--
	}

	sum, exp = roundNearestEven(sum, exp, guardShift)
	return packRounded(resultSign, exp, sum)
}

// Sub returns a - b.
func Sub(a, b F32) F32 {
	return Add(a, Neg(b))
}

// roundNearestEven consumes guardBits low-order guard/round/sticky bits of
// mant (a hidden-bit-included mantissa shifted left by guardBits) and
// returns the rounded mantissa (with the hidden bit restored to its
// original relative position) and possibly-incremented exponent, handling
// the case where rounding carries out of the mantissa field.
func roundNearestEven(mant int64, exp int32, guardBits uint) (int64, int32) {
	half := int64(1) << (guardBits - 1)
	guard := mant & ((int64(1) << guardBits) - 1)
	mant >>= guardBits
	switch {
	case guard > half:
		mant++
	case guard == half:
		if mant&1 != 0 {
			mant++
		}
	}
	if mant >= int64(maxMant24)+1 {
		mant >>= 1
		exp++
	}
	return mant, exp
}

// packRounded assembles a final F32 from a sign, unbiased exponent, and
// 24-bit hidden-bit-included mantissa, handling overflow to infinity and
// underflow flush-to-zero.
func packRounded(neg bool, exp int32, mant int64) F32 {
	if mant == 0 {
		if neg {
			return NegZero
		}
		return Zero
	}
	rawExp := exp + expBias
	if rawExp >= 255 {
		if neg {
			return NegInf
		}
		return PosInf
	}
	if rawExp <= 0 {
		if neg {
			return NegZero
		}
		return Zero
	}
	return assemble(neg, rawExp, uint32(mant))
}

// Mod returns the truncated remainder of a/b (C fmod semantics), computed
// as a - trunc(a/b)*b; the result has the sign of a.
func Mod(a, b F32) F32 {
	if IsNaN(a) || IsNaN(b) || IsInf(a) || b.isZeroBits() {
		return NaN
	}
	if a.isZeroBits() {
		return a
	}
	if IsInf(b) {
		return a
	}
	q := Trunc(Div(a, b))
	return Sub(a, Mul(q, b))
}
