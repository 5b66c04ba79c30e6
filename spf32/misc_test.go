/*
 * S370 - Binary32 miscellaneous math helper tests.
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

func TestScalbnLdexp(t *testing.T) {
	assertExact(t, Scalbn(One, 3), f32(8))
	assertExact(t, Scalbn(One, -1), Half)
	assertExact(t, Ldexp(f32(1.5), 2), f32(6))
	assertExact(t, Scalbn(Zero, 5), Zero)
	assertExact(t, Scalbn(NaN, 5), NaN)
}

func TestScalbnSaturates(t *testing.T) {
	assertExact(t, Scalbn(One, 1000), PosInf)
	assertExact(t, Scalbn(NegOne, 1000), NegInf)
	assertExact(t, Scalbn(One, -1000), Zero)
	assertExact(t, Scalbn(NegOne, -1000), NegZero)
}

func TestFrexp(t *testing.T) {
	cases := []struct {
		in       float32
		wantFrac float64
		wantExp  int
	}{
		{8, 0.5, 4},
		{1, 0.5, 1},
		{0.5, 0.5, 0},
		{3, 0.75, 2},
	}
	for _, c := range cases {
		frac, exp := Frexp(f32(c.in))
		assertClose(t, frac, c.wantFrac, 1e-6)
		if exp != c.wantExp {
			t.Errorf("Frexp(%v) exp = %d, want %d", c.in, exp, c.wantExp)
		}
	}
}

func TestFrexpLdexpRoundTrip(t *testing.T) {
	for _, v := range []float32{1, 3, 100, 0.001, -42} {
		frac, exp := Frexp(f32(v))
		got := Ldexp(frac, exp)
		assertClose(t, got, float64(v), 1e-3)
	}
}

func TestCopysign(t *testing.T) {
	assertExact(t, Copysign(One, NegOne), NegOne)
	assertExact(t, Copysign(NegOne, One), One)
	assertExact(t, Copysign(f32(5), NegZero), f32(-5))
}

func TestModf(t *testing.T) {
	ip, frac := Modf(f32(3.75))
	assertExact(t, ip, f32(3))
	assertClose(t, frac, 0.75, 1e-6)

	ip, frac = Modf(f32(-3.75))
	assertExact(t, ip, f32(-3))
	assertClose(t, frac, -0.75, 1e-6)
}

func TestHypot(t *testing.T) {
	assertClose(t, Hypot(f32(3), f32(4)), 5, 1e-3)
	assertExact(t, Hypot(Zero, Zero), Zero)
}

func TestDegRad(t *testing.T) {
	assertClose(t, DegToRad(f32(180)), 3.14159265, 1e-3)
	assertClose(t, DegToRad(f32(90)), 1.5707963, 1e-3)
	assertClose(t, RadToDeg(Pi), 180, 1e-2)
}

func TestMinMaxClamp(t *testing.T) {
	assertExact(t, MinF(One, Two), One)
	assertExact(t, MaxF(One, Two), Two)
	assertExact(t, Clamp(f32(5), Zero, Two), Two)
	assertExact(t, Clamp(f32(-5), Zero, Two), Zero)
	assertExact(t, Clamp(One, Zero, Two), One)
}
