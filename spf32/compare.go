/*
 * S370 - Binary32 comparison predicates.
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

// IsNaN reports whether f is the not-a-number sentinel (or any other bit
// pattern with all-ones exponent and a nonzero mantissa).
func IsNaN(f F32) bool {
	return f&expMask == expMask && f.mant() != 0
}

// IsInf reports whether f is positive or negative infinity.
func IsInf(f F32) bool {
	return f&expMask == expMask && f.mant() == 0
}

// IsZero reports whether f is positive or negative zero.
func IsZero(f F32) bool {
	return f.isZeroBits()
}

// Sign returns -1, 0, or 1 according to the sign of f. Zero of either sign
// reports 0; NaN reports 0 as well since it carries no meaningful sign.
func Sign(f F32) int {
	if IsNaN(f) || f.isZeroBits() {
		return 0
	}
	if f.sign() {
		return -1
	}
	return 1
}

// Cmp returns -1, 0, or 1 according to whether a is less than, equal to, or
// greater than b, using sign-dominant total ordering: unlike-signed operands
// are ordered by sign alone, like-signed operands are ordered by raw bit
// pattern (ascending for positive, descending for negative, since binary32's
// exponent/mantissa layout increases monotonically with magnitude). Cmp does
// not special-case NaN; callers that need IEEE "unordered" semantics should
// check IsNaN first, which is what the ordering helpers below do.
func Cmp(a, b F32) int {
	switch {
	case a.isZeroBits() && b.isZeroBits():
		return 0
	case a.sign() && !b.sign():
		return -1
	case !a.sign() && b.sign():
		return 1
	case !a.sign():
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	default:
		switch {
		case a < b:
			return 1
		case a > b:
			return -1
		default:
			return 0
		}
	}
}

// Less, Greater, LessEqual, GreaterEqual and Equal give IEEE "ordered"
// comparisons: any comparison involving NaN reports false. NotEqual is the
// exception required by IEEE-754: NaN != x is true for every x, including
// NaN itself.
func Less(a, b F32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return Cmp(a, b) < 0
}

func Greater(a, b F32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return Cmp(a, b) > 0
}

func LessEqual(a, b F32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return Cmp(a, b) <= 0
}

func GreaterEqual(a, b F32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return Cmp(a, b) >= 0
}

func Equal(a, b F32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return Cmp(a, b) == 0
}

func NotEqual(a, b F32) bool {
	return !Equal(a, b)
}
