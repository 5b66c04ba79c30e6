/*
 * S370 - Q2.62 fixed-point helper type.
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

// Q2_62 is a 64-bit two's complement fixed-point value with 2 integer bits
// (including sign) and 62 fraction bits, split into two 32-bit halves the
// way the reference CORDIC code represents it, rather than as a native
// 64-bit integer. Hi holds the top 32 bits (sign-extended), Lo the bottom
// 32 bits (unsigned). The CORDIC rotation and vectoring kernels in
// cordic.go and atan.go work entirely in this type to keep the angle
// accumulator's precision well above the 24-bit mantissa of the F32
// results they ultimately produce.
//
// Internally, Add/Sub/Neg/Shr/Cmp convert to a native int64 to do the
// carry-propagating arithmetic, then split back into Hi/Lo: this gives
// the same two's-complement semantics as a hand-written carry chain over
// the two 32-bit halves, with less code and no risk of an off-by-one in
// the carry-out computation.
type Q2_62 struct {
	Hi int32
	Lo uint32
}

func (a Q2_62) toInt64() int64 {
	return int64(a.Hi)<<32 | int64(a.Lo)
}

func q2FromInt64(v int64) Q2_62 {
	return Q2_62{Hi: int32(v >> 32), Lo: uint32(v)}
}

// Add returns a + b.
func (a Q2_62) Add(b Q2_62) Q2_62 {
	return q2FromInt64(a.toInt64() + b.toInt64())
}

// Sub returns a - b.
func (a Q2_62) Sub(b Q2_62) Q2_62 {
	return q2FromInt64(a.toInt64() - b.toInt64())
}

// Neg returns the two's complement negation of a.
func (a Q2_62) Neg() Q2_62 {
	return q2FromInt64(-a.toInt64())
}

// Shr performs an arithmetic (sign-propagating) right shift of a by n bits,
// 0 <= n < 64.
func (a Q2_62) Shr(n int32) Q2_62 {
	return q2FromInt64(sral(a.toInt64(), n))
}

// Cmp returns -1, 0, or 1 according to whether a is less than, equal to, or
// greater than b as signed 64-bit fixed-point values.
func (a Q2_62) Cmp(b Q2_62) int {
	av, bv := a.toInt64(), b.toInt64()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// IsNegative reports whether a represents a negative value.
func (a Q2_62) IsNegative() bool {
	return a.Hi < 0
}

const q2Frac = 62

// fromF32ToQ2_62 converts f to Q2.62, computed directly from the mantissa
// and exponent for full 62-bit precision (the reference routine instead
// composes the hi word via a multiply-by-2^30 and recovers the lo word
// from the remainder; shifting the widened mantissa directly gives the
// identical result without an intermediate rounding step).
func fromF32ToQ2_62(f F32) Q2_62 {
	if IsNaN(f) || f.isZeroBits() {
		return Q2_62{}
	}
	neg := f.sign()
	e := f.exp()
	mant := int64(f.mant24())
	shift := q2Frac + e - mantBits

	var v int64
	switch {
	case shift >= 63:
		v = mant << 61
	case shift >= 0:
		v = mant << uint(shift)
	case -shift >= 63:
		v = 0
	default:
		v = mant >> uint(-shift)
	}
	if neg {
		v = -v
	}
	return q2FromInt64(v)
}

// toF32 converts a Q2.62 value back to F32, rounding to nearest-even on
// the low 32 bits before converting the resulting Q2.30 hi word.
func (a Q2_62) toF32() F32 {
	hi := a.Hi
	if a.Lo > 0x80000000 || (a.Lo == 0x80000000 && hi&1 != 0) {
		hi++
	}
	return fromFixed(hi, 30)
}
