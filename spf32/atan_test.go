/*
 * S370 - Binary32 arctangent tests.
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

import "testing"

func TestAtan(t *testing.T) {
	assertExact(t, Atan(Zero), Zero)
	assertClose(t, Atan(One), 0.78539816, 1e-3)
	assertClose(t, Atan(f32(-1)), -0.78539816, 1e-3)
}

func TestAtanReciprocalIdentity(t *testing.T) {
	for _, v := range []float32{0.3, 0.7, 2, 5, 10} {
		a := Atan(f32(v))
		b := Atan(Div(One, f32(v)))
		assertClose(t, Add(a, b), 1.5707963, 1e-2)
	}
}

func TestAtan2Quadrants(t *testing.T) {
	assertClose(t, Atan2(Zero, One), 0, 1e-6)
	assertClose(t, Atan2(One, Zero), 1.5707963, 1e-3)
	assertClose(t, Atan2(Zero, NegOne), 3.14159265, 1e-3)
	assertClose(t, Atan2(NegOne, Zero), -1.5707963, 1e-3)
	assertExact(t, Atan2(Zero, Zero), Zero)
}
