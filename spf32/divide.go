/*
 * S370 - Binary32 division.
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

// divSteps is the number of restoring-division iterations used to extend
// the 24-bit mantissa quotient past its hidden bit with enough fractional
// precision for correct rounding. 27 steps, as in the reference division
// routine, leaves 4 extra bits below the hidden bit: one for normalization
// headroom, two for guard/round, one folded-in sticky bit.
const divSteps = 27

// Div returns a / b using restoring (shift-and-subtract) division on the
// 24-bit hidden-bit-included mantissas, followed by round-to-nearest-even.
func Div(a, b F32) F32 {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	sign := a.sign() != b.sign()

	if b.isZeroBits() {
		if a.isZeroBits() || IsInf(a) {
			return NaN
		}
		if sign {
			return NegInf
		}
		return PosInf
	}
	if IsInf(b) {
		if IsInf(a) {
			return NaN
		}
		if sign {
			return NegZero
		}
		return Zero
	}
	if a.isZeroBits() {
		if sign {
			return NegZero
		}
		return Zero
	}
	if IsInf(a) {
		if sign {
			return NegInf
		}
		return PosInf
	}

	mantA := uint64(a.mant24())
	mantB := uint64(b.mant24())

	var quotient, rem uint64
	rem = mantA
	if rem >= mantB {
		rem -= mantB
		quotient = 1
	}
	for range divSteps {
		rem <<= 1
		quotient <<= 1
		if rem >= mantB {
			rem -= mantB
			quotient |= 1
		}
	}

	expBase := a.exp() - b.exp()

	var mantWide int64
	var exp int32
	if quotient >= 1<<(divSteps) {
		mantWide = int64(quotient)
		exp = expBase
	} else {
		mantWide = int64(quotient << 1)
		exp = expBase - 1
	}
	// mantWide now has its hidden bit at bit divSteps (27), i.e. 28 bits
	// wide (hidden + 23 mantissa + 4 sub-mantissa fraction bits). Reduce to
	// hidden-bit-at-25 (26 bits: hidden + 23 + 2 guard bits) before
	// handing off to the shared rounding helper.
	dropped := mantWide & 0x3
	mant26 := mantWide >> 2
	if dropped != 0 || rem != 0 {
		mant26 |= 1
	}

	mant, exp := roundNearestEven(mant26, exp, guardShift)
	return packRounded(sign, exp, mant)
}
