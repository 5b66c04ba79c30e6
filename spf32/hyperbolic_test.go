/*
 * S370 - Binary32 hyperbolic function tests.
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

func TestSinhCosh(t *testing.T) {
	assertExact(t, Sinh(Zero), Zero)
	assertExact(t, Cosh(Zero), One)
	assertClose(t, Sinh(One), 1.1752012, 1e-2)
	assertClose(t, Cosh(One), 1.5430806, 1e-2)
	assertClose(t, Sinh(f32(-1)), -1.1752012, 1e-2)
}

func TestSinhCoshSmallAngle(t *testing.T) {
	// exercises the Maclaurin-series regime for small |x|
	assertClose(t, Sinh(f32(0.0001)), 0.0001, 1e-5)
	assertClose(t, Cosh(f32(0.0001)), 1.000000005, 1e-5)
}

func TestHyperbolicIdentity(t *testing.T) {
	for _, v := range []float32{0.001, 0.5, 1, 3, 2} {
		s, c := SinhCosh(f32(v))
		diff := Sub(Mul(c, c), Mul(s, s))
		assertClose(t, diff, 1, 1e-2)
	}
}

func TestTanh(t *testing.T) {
	assertExact(t, Tanh(Zero), Zero)
	assertClose(t, Tanh(One), 0.7615942, 1e-2)
	assertClose(t, Tanh(f32(20)), 1, 1e-5)
	assertClose(t, Tanh(f32(-20)), -1, 1e-5)
}

func TestInverseHyperbolic(t *testing.T) {
	assertClose(t, Asinh(Zero), 0, 1e-6)
	assertClose(t, Asinh(One), 0.8813736, 1e-2)
	assertClose(t, Acosh(One), 0, 1e-5)
	assertClose(t, Acosh(f32(2)), 1.316958, 1e-2)
	assertClose(t, Atanh(Zero), 0, 1e-6)
	assertClose(t, Atanh(f32(0.5)), 0.5493061, 1e-2)

	if got := Acosh(Zero); !IsNaN(got) {
		t.Errorf("Acosh(0) = %v, want NaN", got)
	}
	if got := Atanh(One); !IsNaN(got) {
		t.Errorf("Atanh(1) = %v, want NaN", got)
	}
}
