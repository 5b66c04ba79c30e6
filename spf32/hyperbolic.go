/*
 * S370 - Binary32 hyperbolic functions.
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
	hypSmall F32 = 0x39800000 // below this, use the Maclaurin series
	hypBig   F32 = 0x42B17218 // ln(FLT_MAX); above this, exp(x) alone would overflow
	sixth    F32 = 0x3E2AAAAB // 1/6, for the small-x sinh series term
)

// SinhCosh returns (sinh(x), cosh(x)) together, switching between three
// regimes the way the reference hyperbolic-pair routine does: a Maclaurin
// series for small |x| (where exp(x) would lose most of its precision to
// cancellation), the textbook exp(x)/exp(-x) combination in the normal
// range, and a half-angle form for large |x| that avoids overflowing exp.
func SinhCosh(x F32) (sinh, cosh F32) {
	if IsNaN(x) {
		return NaN, NaN
	}
	if x.isZeroBits() {
		return Zero, One
	}

	ax := Abs(x)
	var s0, c0 F32
	switch {
	case LessEqual(ax, hypSmall):
		x2 := Mul(x, x)
		c0 = Add(One, Div(x2, Two))
		s0 = Add(x, Mul(x, Mul(x2, sixth)))
		return s0, c0
	case GreaterEqual(ax, hypBig):
		half := Exp(Div(ax, Two))
		c0 = Mul(Half, Mul(half, half))
		s0 = c0
	default:
		e := Exp(ax)
		rinv := Div(One, e)
		c0 = Mul(Half, Add(e, rinv))
		s0 = Mul(Half, Sub(e, rinv))
	}
	if x.sign() {
		s0 = Neg(s0)
	}
	return s0, c0
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x F32) F32 {
	s, _ := SinhCosh(x)
	return s
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x F32) F32 {
	_, c := SinhCosh(x)
	return c
}

// Tanh returns the hyperbolic tangent of x, saturating to +-1 for large
// |x| rather than computing an inf/inf division.
func Tanh(x F32) F32 {
	if IsNaN(x) {
		return NaN
	}
	if GreaterEqual(Abs(x), hypBig) {
		if x.sign() {
			return NegOne
		}
		return One
	}
	s, c := SinhCosh(x)
	return Div(s, c)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x F32) F32 {
	if IsNaN(x) {
		return NaN
	}
	if x.isZeroBits() {
		return x
	}
	return Ln(Add(x, Sqrt(Add(Mul(x, x), One))))
}

// Acosh returns the inverse hyperbolic cosine of x. x < 1 returns NaN.
func Acosh(x F32) F32 {
	if IsNaN(x) || Less(x, One) {
		return NaN
	}
	return Ln(Add(x, Sqrt(Mul(Sub(x, One), Add(x, One)))))
}

// Atanh returns the inverse hyperbolic tangent of x. |x| >= 1 returns NaN.
func Atanh(x F32) F32 {
	if IsNaN(x) || GreaterEqual(Abs(x), One) {
		return NaN
	}
	return Mul(Half, Ln(Div(Add(One, x), Sub(One, x))))
}
