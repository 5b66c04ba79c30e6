/*
 * S370 - Binary32 constant bit patterns.
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

// F32 is an IEEE-754 binary32 bit pattern: bit 31 is the sign, bits 30:23
// are the biased exponent, bits 22:0 are the mantissa. F32 is a plain
// integer type; every operation on it is a bit-level integer computation,
// never a conversion through the machine's native float32/float64.
type F32 uint32

// Named bit patterns used throughout the package, reproduced bit-for-bit
// from the reference library's constant table.
const (
	Zero         F32 = 0x00000000
	NegZero      F32 = 0x80000000
	One          F32 = 0x3F800000
	NegOne       F32 = 0xBF800000
	Two          F32 = 0x40000000
	Half         F32 = 0x3F000000
	Ten          F32 = 0x41200000
	Tenth        F32 = 0x3DCCCCCD
	E            F32 = 0x402DF854
	Ln10         F32 = 0x40135D8E
	Ln2          F32 = 0x3F317218
	Pi           F32 = 0x40490FDB
	TwoPi        F32 = 0x40C90FDB
	HalfPi       F32 = 0x3FC90FDB
	ThreeHalfPi  F32 = 0x4096CBE4
	QuarterPi    F32 = 0x3F490FDB
	NaN          F32 = 0x7FC00000
	PosInf       F32 = 0x7F800000
	NegInf       F32 = 0xFF800000
	sixthPi      F32 = 0x3F060A92 // pi/6
	sqrt3over2   F32 = 0x3F5DB3D7
	sqrt2over2   F32 = 0x3F3504F3
	maxIntThresh F32 = 0x4EFFFFFF // largest magnitude float that truncates to a valid int32
	minIntThresh F32 = 0xCF000000
)

const (
	signMask   = 0x80000000
	expMask    = 0x7F800000
	mantMask   = 0x007FFFFF
	hiddenBit  = 0x00800000
	expBias    = 127
	expShift   = 23
	mantBits   = 23
	maxMant24  = 0x00FFFFFF // 24-bit mantissa including hidden bit
)
