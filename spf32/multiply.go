/*
 * S370 - Binary32 multiplication.
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

// Mul is not present in the reference C library (multiplication was left as
// an exercise there); it follows the same decompose/widen/normalize/round
// structure as Add and Div: widen the two 24-bit hidden-bit-included
// mantissas into a 48-bit product, locate the hidden bit, and round the
// trailing bits to nearest-even.
func Mul(a, b F32) F32 {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	sign := a.sign() != b.sign()

	aIsZero := a.isZeroBits()
	bIsZero := b.isZeroBits()
	aIsInf := IsInf(a)
	bIsInf := IsInf(b)

	if (aIsZero && bIsInf) || (bIsZero && aIsInf) {
		return NaN
	}
	if aIsInf || bIsInf {
		if sign {
			return NegInf
		}
		return PosInf
	}
	if aIsZero || bIsZero {
		if sign {
			return NegZero
		}
		return Zero
	}

	mantA := uint64(a.mant24())
	mantB := uint64(b.mant24())
	product := mantA * mantB // 48-bit product, two 24-bit hidden-bit-included mantissas

	exp := a.exp() + b.exp() + 1

	// product is in [2^46, 2^48). If the top bit is at 47, the product's
	// integer part is already in [1,2); if it's at 46, it is in [0.5,1)
	// and needs one more left shift (with a matching exponent decrement).
	const hiddenProductBit = 1 << 47
	if product < hiddenProductBit {
		product <<= 1
		exp--
	}

	// product now spans bits 47..0: hidden bit at 47, 23 mantissa bits at
	// 46..24, and 24 bits of fraction below that. Reduce to hidden-bit-at-25
	// (guardShift extra bits) before rounding, folding every dropped bit
	// into a single sticky bit.
	const dropWidth = 24 - guardShift
	dropped := product & ((uint64(1) << dropWidth) - 1)
	mant := int64(product >> dropWidth)
	if dropped != 0 {
		mant |= 1
	}

	mant, exp = roundNearestEven(mant, exp, guardShift)
	return packRounded(sign, exp, mant)
}
