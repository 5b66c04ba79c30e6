/*
 * S370 - Hex/decimal text formatting helpers.
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

// Package hexfmt renders raw 32-bit patterns and small decimal counts into a
// strings.Builder one hex/decimal digit at a time, the way the REPL's
// predecessor formatted machine words — never via fmt's runtime reflection.
package hexfmt

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatWord writes each of words as 8 hex digits followed by a space.
func FormatWord(str *strings.Builder, words ...uint32) {
	for _, w := range words {
		shift := 28
		for range 8 {
			str.WriteByte(hexMap[(w>>shift)&0xf])
			shift -= 4
		}
		str.WriteByte(' ')
	}
}

// FormatF32 writes bits (an spf32.F32's raw uint32 pattern) as "0x" followed
// by 8 hex digits, with no trailing space.
func FormatF32(str *strings.Builder, bits uint32) {
	str.WriteByte('0')
	str.WriteByte('x')
	shift := 28
	for range 8 {
		str.WriteByte(hexMap[(bits>>shift)&0xf])
		shift -= 4
	}
}

// FormatByte writes b as two hex digits.
func FormatByte(str *strings.Builder, b byte) {
	str.WriteByte(hexMap[(b>>4)&0xf])
	str.WriteByte(hexMap[b&0xf])
}

// FormatDecimal writes num (0..999) as decimal digits without leading
// zeros.
func FormatDecimal(str *strings.Builder, num int) {
	if num >= 100 {
		str.WriteByte(hexMap[num/100])
		num %= 100
		str.WriteByte(hexMap[num/10])
		num %= 10
	} else if num >= 10 {
		str.WriteByte(hexMap[num/10])
		num %= 10
	}
	str.WriteByte(hexMap[num])
}
