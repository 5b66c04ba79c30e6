/*
 * S370 - Binary32 square root.
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

// isqrt64 computes floor(sqrt(n)) using the classic bitwise (digit-by-digit,
// base-4) restoring square root algorithm: the same shift/compare/subtract
// structure as the reference library's bitwise Q4.28 square root, lifted to
// operate on a plain 64-bit integer so it can serve any fixed binade of
// precision Sqrt needs.
func isqrt64(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	var bit uint64 = 1 << 62
	for bit > n {
		bit >>= 2
	}
	var res uint64
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

// Sqrt returns the square root of f. Negative operands (other than -0)
// return NaN.
func Sqrt(f F32) F32 {
	if IsNaN(f) {
		return NaN
	}
	if f.isZeroBits() {
		return f
	}
	if f.sign() {
		return NaN
	}
	if IsInf(f) {
		return PosInf
	}

	mant := uint64(f.mant24())
	e := f.exp()

	var scaled uint64
	var resultExp int32
	if e%2 == 0 {
		scaled = mant << uint(mantBits+2*guardShift)
		resultExp = e / 2
	} else {
		scaled = mant << uint(mantBits+1+2*guardShift)
		resultExp = (e - 1) / 2
	}

	r := isqrt64(scaled)
	mantRounded, exp := roundNearestEven(int64(r), resultExp, guardShift)
	return packRounded(false, exp, mantRounded)
}
