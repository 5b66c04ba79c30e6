/*
 * S370 - Binary32 arctangent.
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

// Atan returns the arctangent of a, in radians, via the CORDIC vectoring
// kernel: drive y to zero by rotating (1, a) (or its reciprocal, for
// |a| >= 1) and accumulate the angle swept. Both coordinates start halved,
// as (1/2, a/2), so that x stays inside the Q2.62 range as it grows.
func Atan(a F32) F32 {
	if IsNaN(a) {
		return NaN
	}
	if a.isZeroBits() {
		return a
	}
	ensureCordicTables()

	neg := a.sign()
	absA := Abs(a)
	swap := GreaterEqual(absA, One)

	work := absA
	if swap {
		work = Div(One, absA)
	}

	x := fromF32ToQ2_62(Half)
	y := fromF32ToQ2_62(work).Shr(1)
	z := Q2_62{}

	for i := 0; i < atanTableSize; i++ {
		xShift := x.Shr(int32(i))
		yShift := y.Shr(int32(i))
		if !y.IsNegative() {
			x = x.Add(yShift)
			y = y.Sub(xShift)
			z = z.Add(atanTable[i])
		} else {
			x = x.Sub(yShift)
			y = y.Add(xShift)
			z = z.Sub(atanTable[i])
		}
	}

	result := z.toF32()
	if swap {
		result = Sub(HalfPi, result)
	}
	if neg {
		result = Neg(result)
	}
	return result
}

// Atan2 returns the angle of the vector (x, y) in radians, in (-pi, pi],
// composing Atan with the quadrant correction its single-argument form
// cannot express. Atan2(0, 0) returns +0 by convention.
func Atan2(y, x F32) F32 {
	if IsNaN(x) || IsNaN(y) {
		return NaN
	}
	if x.isZeroBits() {
		switch {
		case y.isZeroBits():
			return Zero
		case y.sign():
			return Neg(HalfPi)
		default:
			return HalfPi
		}
	}
	if !x.sign() {
		return Atan(Div(y, x))
	}
	if y.sign() {
		return Sub(Atan(Div(y, x)), Pi)
	}
	return Add(Atan(Div(y, x)), Pi)
}
