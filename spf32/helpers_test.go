/*
 * S370 - Shared test helpers.
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

import (
	"math"
	"testing"
)

// f32 builds an F32 bit pattern from a native float32 literal. Used only in
// tests, to make expected values easy to write and read; the library itself
// never performs this conversion.
func f32(v float32) F32 {
	return F32(math.Float32bits(v))
}

// toF64 reinterprets an F32 bit pattern as a float64, for test diagnostics
// and tolerance comparisons.
func toF64(f F32) float64 {
	return float64(math.Float32frombits(uint32(f)))
}

func assertExact(t *testing.T, got, want F32) {
	t.Helper()
	if got != want {
		t.Errorf("got 0x%08X (%v), want 0x%08X (%v)", uint32(got), toF64(got), uint32(want), toF64(want))
	}
}

func assertClose(t *testing.T, got F32, want float64, tol float64) {
	t.Helper()
	g := toF64(got)
	if math.Abs(g-want) > tol {
		t.Errorf("got %v (0x%08X), want ~%v (tol %v)", g, uint32(got), want, tol)
	}
}
