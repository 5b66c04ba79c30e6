/*
 * S370 - Binary32 trigonometric functions.
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
	tanPoleEps F32 = 0x34000000
	poleEps    F32 = 0x33800000
)

// sinCos returns (sin(a), cos(a)) via octant reduction followed by either
// an exact lookup for the three angles the CORDIC kernel locks onto, or
// the rotation kernel itself.
func sinCos(a F32) (sin, cos F32) {
	if IsNaN(a) || IsInf(a) {
		return NaN, NaN
	}
	reduced, octant := octantReduce(a)
	if s0, c0, ok := lockSpecial(reduced); ok {
		return octantMap(s0, c0, octant)
	}
	s0, c0 := rotateCore(reduced)
	return octantMap(s0, c0, octant)
}

// Sin returns the sine of a (in radians).
func Sin(a F32) F32 {
	sin, _ := sinCos(a)
	return sin
}

// Cos returns the cosine of a (in radians).
func Cos(a F32) F32 {
	_, cos := sinCos(a)
	return cos
}

// signedInf returns +Inf or -Inf according to the sign of the numerator
// approaching a pole.
func signedInf(numerator F32) F32 {
	if numerator.sign() {
		return NegInf
	}
	return PosInf
}

// Tan returns the tangent of a, returning a signed infinity near its poles
// rather than a division result dominated by rounding error.
func Tan(a F32) F32 {
	sin, cos := sinCos(a)
	if IsNaN(sin) {
		return NaN
	}
	if LessEqual(Abs(cos), tanPoleEps) {
		return signedInf(sin)
	}
	return Div(sin, cos)
}

// Cot returns the cotangent of a.
func Cot(a F32) F32 {
	sin, cos := sinCos(a)
	if IsNaN(sin) {
		return NaN
	}
	if LessEqual(Abs(sin), poleEps) {
		return signedInf(cos)
	}
	return Div(cos, sin)
}

// Sec returns the secant of a.
func Sec(a F32) F32 {
	_, cos := sinCos(a)
	if IsNaN(cos) {
		return NaN
	}
	if LessEqual(Abs(cos), poleEps) {
		return signedInf(cos)
	}
	return Div(One, cos)
}

// Csc returns the cosecant of a.
func Csc(a F32) F32 {
	sin, _ := sinCos(a)
	if IsNaN(sin) {
		return NaN
	}
	if LessEqual(Abs(sin), poleEps) {
		return signedInf(sin)
	}
	return Div(One, sin)
}
