/*
 * S370 - Binary32 integer power.
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

// IntPow returns base raised to the non-negative integer power exp, using
// iterative exponentiation by squaring (the reference spfipow is
// recursive; squaring is naturally expressed as a loop instead, per this
// library's preference for iteration over recursion in hot numeric paths).
func IntPow(base int32, exp int32) int32 {
	switch base {
	case 0:
		if exp == 0 {
			return 1
		}
		return 0
	case 1:
		return 1
	case -1:
		if exp&1 == 0 {
			return 1
		}
		return -1
	}
	var result int32 = 1
	b := base
	for n := exp; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= b
		}
		b *= b
	}
	return result
}

// PowInt returns base raised to the integer power n, using iterative
// exponentiation by squaring and reciprocating at the end for negative n.
func PowInt(base F32, n int32) F32 {
	if n == 0 {
		return One
	}
	neg := n < 0
	m := int64(n)
	if neg {
		m = -m
	}

	result := One
	b := base
	for m > 0 {
		if m&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		m >>= 1
	}
	if neg {
		result = Div(One, result)
	}
	return result
}

// Pow returns x**y, computed as Exp(y * Ln(x)) for x > 0, with the zero and
// sign edge cases x**y needs outside that domain handled directly.
func Pow(x, y F32) F32 {
	if IsNaN(x) || IsNaN(y) {
		return NaN
	}
	if y.isZeroBits() {
		return One
	}
	if x.isZeroBits() {
		if y.sign() {
			return PosInf
		}
		return Zero
	}
	if Equal(x, One) {
		return One
	}
	if x.sign() {
		return NaN
	}
	return Exp(Mul(y, Ln(x)))
}
