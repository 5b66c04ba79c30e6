/*
 * S370 - Binary32 rounding helper tests.
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

func TestTrunc(t *testing.T) {
	cases := []struct{ in, want F32 }{
		{f32(1.5), One},
		{f32(-1.5), NegOne},
		{f32(2.9), Two},
		{f32(-2.9), f32(-2)},
		{Zero, Zero},
	}
	for _, c := range cases {
		assertExact(t, Trunc(c.in), c.want)
	}
}

func TestFrac(t *testing.T) {
	assertClose(t, Frac(f32(1.5)), 0.5, 1e-6)
	assertClose(t, Frac(f32(-1.5)), -0.5, 1e-6)
}

func TestFloor(t *testing.T) {
	cases := []struct{ in, want F32 }{
		{f32(1.5), One},
		{f32(-1.5), f32(-2)},
		{Two, Two},
		{f32(-2), f32(-2)},
	}
	for _, c := range cases {
		assertExact(t, Floor(c.in), c.want)
	}
}

func TestCeil(t *testing.T) {
	cases := []struct{ in, want F32 }{
		{f32(1.5), Two},
		{f32(-1.5), NegOne}, // true ceiling, not round(x+0.5)
		{Two, Two},
		{f32(-2), f32(-2)},
	}
	for _, c := range cases {
		assertExact(t, Ceil(c.in), c.want)
	}
}

func TestRound(t *testing.T) {
	cases := []struct{ in, want F32 }{
		{f32(1.5), Two},   // ties to even: 2 is even
		{f32(2.5), Two},   // ties to even: 2 is even
		{f32(0.5), Zero},  // ties to even: 0 is even
		{f32(-0.5), NegZero},
		{f32(1.4), One},
		{f32(1.6), Two},
	}
	for _, c := range cases {
		assertExact(t, Round(c.in), c.want)
	}
}
