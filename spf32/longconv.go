/*
 * S370 - Binary32/int32 conversions.
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

const (
	maxInt32 = 0x7FFFFFFF
	minInt32 = -0x80000000
)

// FromInt32 converts a signed 32-bit integer to its nearest F32
// representation, locating the highest set bit of the magnitude and
// shifting it into the 23-bit mantissa field.
func FromInt32(n int32) F32 {
	if n == 0 {
		return Zero
	}
	neg := n < 0
	var mag uint64
	if neg {
		mag = uint64(-int64(n))
	} else {
		mag = uint64(n)
	}

	bit := 31
	for bit >= 0 && mag&(uint64(1)<<uint(bit)) == 0 {
		bit--
	}

	var mant uint32
	if bit >= mantBits {
		mant = uint32(mag>>uint(bit-mantBits)) & mantMask
	} else {
		mant = uint32(mag<<uint(mantBits-bit)) & mantMask
	}

	return assemble(neg, int32(bit)+expBias, mant)
}

// ToInt32 truncates f toward zero and converts it to a signed 32-bit
// integer. The second return value is false if f is NaN or its magnitude
// does not fit in an int32, in which case the first return value saturates
// to the extreme of the appropriate sign.
func ToInt32(f F32) (int32, bool) {
	if IsNaN(f) {
		return 0, false
	}
	if f.isZeroBits() {
		return 0, true
	}
	e := f.exp()
	if e < 0 {
		return 0, true
	}
	if e >= 31 {
		if f.sign() {
			if e == 31 && f.mant() == 0 {
				return minInt32, true
			}
			return minInt32, false
		}
		return maxInt32, false
	}

	mant := f.mant24()
	shift := e - mantBits
	var mag uint32
	if shift >= 0 {
		mag = mant << uint(shift)
	} else {
		mag = mant >> uint(-shift)
	}

	if f.sign() {
		if mag > uint32(1)<<31 {
			return minInt32, false
		}
		return -int32(mag), true
	}
	if mag >= uint32(1)<<31 {
		return maxInt32, false
	}
	return int32(mag), true
}
