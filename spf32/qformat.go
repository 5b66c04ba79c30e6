/*
 * S370 - Binary32 fixed-point (Q-format) conversions.
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

// toFixed converts f to a signed 32-bit fixed-point value with fracBits
// fractional bits, rounding to nearest and saturating to the full int32
// range if the magnitude does not fit.
func toFixed(f F32, fracBits int32) int32 {
	if IsNaN(f) || f.isZeroBits() {
		return 0
	}
	e := f.exp()
	mant := int64(f.mant24())
	shift := fracBits + e - mantBits

	var mag int64
	switch {
	case shift >= 0:
		if shift >= 40 {
			mag = int64(1) << 40
		} else {
			mag = mant << uint(shift)
		}
	case -shift >= 63:
		mag = 0
	default:
		dropBits := uint(-shift)
		half := int64(1) << (dropBits - 1)
		rem := mant & ((int64(1) << dropBits) - 1)
		mag = mant >> dropBits
		if rem >= half {
			mag++
		}
	}

	if f.sign() {
		if mag > int64(1)<<31 {
			return minInt32
		}
		return int32(-mag)
	}
	if mag >= int64(1)<<31 {
		return maxInt32
	}
	return int32(mag)
}

// fromFixed converts a signed fixed-point value with fracBits fractional
// bits back to F32.
func fromFixed(v int32, fracBits int32) F32 {
	if v == 0 {
		return Zero
	}
	neg := v < 0
	var mag uint64
	if neg {
		mag = uint64(-int64(v))
	} else {
		mag = uint64(v)
	}

	bit := 31
	for bit >= 0 && mag&(uint64(1)<<uint(bit)) == 0 {
		bit--
	}

	e := int32(bit) - fracBits
	var mant uint32
	if bit >= mantBits {
		mant = uint32(mag>>uint(bit-mantBits)) & mantMask
	} else {
		mant = uint32(mag<<uint(mantBits-bit)) & mantMask
	}

	return assemble(neg, e+expBias, mant)
}

// ToQ2_30 converts f to Q2.30 fixed point (1 sign bit, 1 integer bit, 30
// fraction bits; domain roughly [-2, 2)), saturating outside that range.
func ToQ2_30(f F32) int32 { return toFixed(f, 30) }

// FromQ2_30 converts a Q2.30 fixed-point value back to F32.
func FromQ2_30(v int32) F32 { return fromFixed(v, 30) }

// ToQ4_28 converts f to Q4.28 fixed point (domain roughly [-8, 8)),
// saturating outside that range.
func ToQ4_28(f F32) int32 { return toFixed(f, 28) }

// FromQ4_28 converts a Q4.28 fixed-point value back to F32.
func FromQ4_28(v int32) F32 { return fromFixed(v, 28) }
