/*
 * S370 - Binary32 exp/log/pow tests.
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

func TestExp(t *testing.T) {
	assertExact(t, Exp(Zero), One)
	assertClose(t, Exp(One), 2.718281828, 5e-3)
	assertClose(t, Exp(Two), 7.389056099, 2e-2)
	assertClose(t, Exp(NegOne), 0.367879441, 5e-3)
	assertExact(t, Exp(PosInf), PosInf)
	assertExact(t, Exp(NegInf), Zero)
}

func TestLn(t *testing.T) {
	assertExact(t, Ln(One), Zero)
	assertClose(t, Ln(E), 1, 5e-3)
	assertClose(t, Ln(f32(10)), 2.302585093, 5e-3)
	assertClose(t, Ln(Half), -0.693147181, 5e-3)
	if got := Ln(Zero); !IsNaN(got) {
		t.Errorf("Ln(0) = %v, want NaN", got)
	}
	if got := Ln(NegOne); !IsNaN(got) {
		t.Errorf("Ln(-1) = %v, want NaN", got)
	}
}

func TestLog10(t *testing.T) {
	assertClose(t, Log10(f32(100)), 2, 1e-2)
	assertClose(t, Log10(f32(1000)), 3, 1e-2)
	assertClose(t, Log10(One), 0, 1e-6)
}

func TestLog2(t *testing.T) {
	assertClose(t, Log2(f32(8)), 3, 1e-2)
	assertClose(t, Log2(f32(1024)), 10, 1e-1)
}

func TestExpLnRoundTrip(t *testing.T) {
	for _, v := range []float32{0.5, 1, 2, 5, 10} {
		got := Ln(Exp(f32(v)))
		assertClose(t, got, float64(v), 1e-2)
	}
}
