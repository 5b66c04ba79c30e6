/*
 * S370 - Binary32 exp/log/pow.
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

// expFrac evaluates e**x for x in [0,1) from its 7-term Taylor polynomial
// in nested form:
//
//	e**x ~ 1 + x*(1 + x/2*(1 + x/3*(1 + x/4*(1 + x/5*(1 + x/6*(1 + x/7))))))
//
// evaluated bottom-up from the innermost term.
func expFrac(x F32) F32 {
	val := One
	for k := int32(7); k >= 1; k-- {
		val = Add(One, Mul(Div(x, FromInt32(k)), val))
	}
	return val
}

// Exp returns e**x, splitting x into an integer part k and fractional
// remainder f so that e**x = e**k * e**f, with e**k computed by repeated
// squaring (PowInt) and e**f by the nested polynomial above.
func Exp(x F32) F32 {
	if IsNaN(x) {
		return NaN
	}
	if x.isZeroBits() {
		return One
	}
	if IsInf(x) {
		if x.sign() {
			return Zero
		}
		return PosInf
	}

	neg := x.sign()
	ax := Abs(x)
	k, _ := ToInt32(Trunc(ax))
	f := Sub(ax, FromInt32(k))

	result := Mul(PowInt(E, k), expFrac(f))
	if neg {
		result = Div(One, result)
	}
	return result
}

// lnTerms are the odd denominators of the arctanh series used by lnSeries.
var lnTerms = [...]int32{3, 5, 7, 9, 11, 13}

// lnSeries returns ln(m) for m in [1,2) via the arctanh series
// ln(m) = 2*atanh(r/(2+r)), r = m-1, expanded to 7 odd terms:
//
//	ln(m) = 2*(z + z^3/3 + z^5/5 + ... + z^13/13), z = r/(2+r)
func lnSeries(m F32) F32 {
	r := Sub(m, One)
	z := Div(r, Add(Two, r))
	z2 := Mul(z, z)
	pow := z
	sum := z
	for _, t := range lnTerms {
		pow = Mul(pow, z2)
		sum = Add(sum, Div(pow, FromInt32(t)))
	}
	return Mul(Two, sum)
}

// Ln returns the natural logarithm of x. x <= 0 returns NaN, matching the
// reference library's domain restriction (it does not distinguish -0 from
// a genuine negative operand either).
func Ln(x F32) F32 {
	if IsNaN(x) {
		return NaN
	}
	if x.isZeroBits() || x.sign() {
		return NaN
	}
	if IsInf(x) {
		return PosInf
	}

	e := x.exp()
	mantissa := assemble(false, expBias, x.mant())
	var lnm F32
	if !Equal(mantissa, One) {
		lnm = lnSeries(mantissa)
	}
	return Add(Mul(FromInt32(e), Ln2), lnm)
}

// Log10 returns the base-10 logarithm of x.
func Log10(x F32) F32 {
	if IsNaN(x) || x.isZeroBits() || x.sign() {
		return Ln(x)
	}
	return Div(Ln(x), Ln10)
}

// Log2 returns the base-2 logarithm of x.
func Log2(x F32) F32 {
	if IsNaN(x) || x.isZeroBits() || x.sign() {
		return Ln(x)
	}
	return Div(Ln(x), Ln2)
}
