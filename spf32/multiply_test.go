/*
 * S370 - Binary32 multiplication tests.
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

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want F32
	}{
		{Two, Two, f32(4)},
		{Half, Two, One},
		{One, One, One},
		{NegOne, One, NegOne},
		{NegOne, NegOne, One},
		{Zero, f32(100), Zero},
		{Ten, Tenth, One},
	}
	for _, c := range cases {
		assertExact(t, Mul(c.a, c.b), c.want)
	}
}

func TestMulInfNaN(t *testing.T) {
	if got := Mul(PosInf, Zero); !IsNaN(got) {
		t.Errorf("Mul(Inf, 0) = %v, want NaN", got)
	}
	assertExact(t, Mul(PosInf, One), PosInf)
	assertExact(t, Mul(PosInf, NegOne), NegInf)
}
