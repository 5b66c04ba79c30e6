/*
 * S370 - Binary32 rounding helpers.
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

// Trunc returns the integer part of f, truncating toward zero, by masking
// out the mantissa bits below the binary point.
func Trunc(f F32) F32 {
	if IsNaN(f) || IsInf(f) || f.isZeroBits() {
		return f
	}
	e := f.exp()
	if e < 0 {
		if f.sign() {
			return NegZero
		}
		return Zero
	}
	if e >= mantBits {
		return f
	}
	clearBits := uint32(mantBits - e)
	mask := (uint32(1) << clearBits) - 1
	return f &^ F32(mask)
}

// Frac returns the signed fractional part of f: f - Trunc(f).
func Frac(f F32) F32 {
	if IsNaN(f) || IsInf(f) {
		return NaN
	}
	return Sub(f, Trunc(f))
}

// Floor returns the largest integer value not greater than f.
func Floor(f F32) F32 {
	if IsNaN(f) || IsInf(f) || f.isZeroBits() {
		return f
	}
	t := Trunc(f)
	if f.sign() && !Equal(t, f) {
		return Sub(t, One)
	}
	return t
}

// Ceil returns the smallest integer value not less than f. This is a true
// ceiling, computed as -Floor(-f), rather than the round(x+0.5)
// approximation used by the reference library (see DESIGN.md's Open
// Question resolution).
func Ceil(f F32) F32 {
	if IsNaN(f) || IsInf(f) || f.isZeroBits() {
		return f
	}
	return Neg(Floor(Neg(f)))
}

// Round returns f rounded to the nearest integer, ties rounding to even.
func Round(f F32) F32 {
	if IsNaN(f) || IsInf(f) || f.isZeroBits() {
		return f
	}
	fix := Trunc(f)
	frac := Abs(Sub(f, fix))
	switch Cmp(frac, Half) {
	case 1:
		if f.sign() {
			return Sub(fix, One)
		}
		return Add(fix, One)
	case 0:
		i, _ := ToInt32(fix)
		if i&1 == 0 {
			return fix
		}
		if f.sign() {
			return Sub(fix, One)
		}
		return Add(fix, One)
	default:
		return fix
	}
}
