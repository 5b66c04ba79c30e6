/*
 * S370 - Binary32 bit-field decomposition.
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

// sign returns true if the sign bit of f is set.
func (f F32) sign() bool {
	return f&signMask != 0
}

// rawExp returns the biased exponent field, unshifted interpretation removed.
func (f F32) rawExp() int32 {
	return int32((f & expMask) >> expShift)
}

// exp returns the unbiased exponent.
func (f F32) exp() int32 {
	return f.rawExp() - expBias
}

// mant returns the 23-bit stored mantissa, without the hidden bit.
func (f F32) mant() uint32 {
	return uint32(f) & mantMask
}

// mant24 returns the 24-bit mantissa with the hidden bit restored. For a
// zero or subnormal value (rawExp() == 0) the hidden bit is not set, callers
// must handle that case themselves.
func (f F32) mant24() uint32 {
	return uint32(f)&mantMask | hiddenBit
}

// assemble builds an F32 from a sign flag, biased exponent, and 23-bit
// mantissa field. The caller is responsible for ensuring rawExp and mant
// are already in range; assemble performs no rounding or normalization.
func assemble(neg bool, rawExp int32, mant uint32) F32 {
	var s uint32
	if neg {
		s = signMask
	}
	return F32(s | (uint32(rawExp)<<expShift)&expMask | mant&mantMask)
}

// isZeroBits reports whether f's sign-stripped bit pattern is exactly zero,
// i.e. f is +0 or -0.
func (f F32) isZeroBits() bool {
	return f&^signMask == 0
}

// isInfBits reports whether f is +Inf or -Inf.
func (f F32) isInfBits() bool {
	return f&^signMask == PosInf
}

// sra performs a 32-bit arithmetic (sign-propagating) right shift of x by n
// bits. Shift counts at or beyond the word width saturate to all sign bits,
// matching a true arithmetic shift rather than Go's native shift semantics
// (which are already arithmetic for signed types, but n may exceed 31 here
// since callers compute n from exponent deltas that are not pre-clamped).
func sra(x int32, n int32) int32 {
	if n <= 0 {
		return x
	}
	if n >= 32 {
		if x < 0 {
			return -1
		}
		return 0
	}
	return x >> uint(n)
}

// sral is the 64-bit analog of sra, used by the division and rounding code
// paths that widen mantissas before shifting.
func sral(x int64, n int32) int64 {
	if n <= 0 {
		return x
	}
	if n >= 64 {
		if x < 0 {
			return -1
		}
		return 0
	}
	return x >> uint(n)
}
