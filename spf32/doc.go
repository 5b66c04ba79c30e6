/*
 * S370 - Package overview.
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

// Package spf32 implements IEEE-754 binary32 arithmetic entirely in terms of
// 32-bit integer operations, for targets with no hardware floating point
// unit. Every exported function operates on F32, a plain uint32 carrying a
// binary32 bit pattern; there is no dependency on the machine's native
// float32 or float64 types anywhere in the package.
//
// The elementary functions (Exp, Ln, Pow) are built on a nested Taylor
// polynomial and an arctanh series. The circular trigonometric functions
// (Sin, Cos, Tan, Atan, Atan2) are built on CORDIC rotation and vectoring
// kernels running in fixed point. The hyperbolic functions fall back to Exp
// directly. Text conversion (ParseFloat, Ftoa) works digit-by-digit using
// only integer multiply/divide.
package spf32
