/*
 * S370 - Binary32 text formatting.
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

import "strconv"

// ParseResult is the outcome of ParseFloat: unlike the reference atof
// routine, which silently returns a zero value and the caller's advanced
// pointer regardless of whether anything meaningful was parsed, ParseResult
// distinguishes "parsed Consumed characters successfully" from "no valid
// number starts at ErrPos".
type ParseResult struct {
	Value    F32
	Consumed int
	Ok       bool
	ErrPos   int
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ParseFloat parses a decimal literal of the form
// [ws]['+'|'-']digits['.'digits][('e'|'E')['+'|'-']digits], following the
// same digit-by-digit accumulation the reference atof routine uses (scale
// the fractional part by a power of ten, then add; scale the whole result
// by a power of ten for the exponent) rather than a general-purpose decimal
// parser.
func ParseFloat(s string) ParseResult {
	i, n := 0, len(s)
	for i < n && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	intStart := i
	var ip int64
	for i < n && isDigit(s[i]) {
		ip = ip*10 + int64(s[i]-'0')
		i++
	}
	hasInt := i > intStart

	hasFrac := false
	var fp int64
	var fracDigits int
	if i < n && s[i] == '.' {
		i++
		fracStart := i
		for i < n && isDigit(s[i]) {
			fp = fp*10 + int64(s[i]-'0')
			i++
		}
		fracDigits = i - fracStart
		hasFrac = fracDigits > 0
	}

	if !hasInt && !hasFrac {
		return ParseResult{ErrPos: intStart}
	}

	result := FromInt32(int32(ip))
	if hasFrac {
		scale := PowInt(Ten, int32(fracDigits))
		result = Add(result, Div(FromInt32(int32(fp)), scale))
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		esign := int32(1)
		if j < n && (s[j] == '+' || s[j] == '-') {
			if s[j] == '-' {
				esign = -1
			}
			j++
		}
		expStart := j
		var ev int64
		for j < n && isDigit(s[j]) {
			ev = ev*10 + int64(s[j]-'0')
			j++
		}
		if j > expStart {
			i = j
			scale := PowInt(Ten, int32(ev))
			if esign < 0 {
				result = Div(result, scale)
			} else {
				result = Mul(result, scale)
			}
		}
	}

	if neg {
		result |= signMask
	}
	return ParseResult{Value: result, Consumed: i, Ok: true}
}

// Atof is a convenience wrapper around ParseFloat that discards the
// position information and returns zero on failure.
func Atof(s string) F32 {
	r := ParseFloat(s)
	if !r.Ok {
		return Zero
	}
	return r.Value
}

// Format selects the textual layout Ftoa produces.
type Format byte

const (
	FormatFixed      Format = 'f'
	FormatScientific Format = 'e'
)

// Ftoa renders val with prec fractional digits (clamped to [0, 10]) in the
// given format, following the reference ftoa routine's approach: derive the
// base-10 exponent from ln(val)/ln(10), decide whether fixed-point notation
// would need a leading run of zeros or an overlong integer part (falling
// back to scientific the way the reference routine's classic -4/+7
// thresholds do), then peel off decimal digits one at a time by repeated
// multiply-truncate-subtract, finishing with a single round-half-up pass on
// the last generated digit.
func Ftoa(val F32, prec int, format Format) string {
	if prec > 10 {
		prec = 10
	}
	if prec < 0 {
		prec = 0
	}

	if val == Zero || val == NegZero {
		var sb []byte
		sb = append(sb, '0')
		if prec > 0 {
			sb = append(sb, '.')
			for j := 0; j < prec; j++ {
				sb = append(sb, '0')
			}
		}
		return string(sb)
	}

	absVal := Abs(val)
	exp2 := int32(absVal.rawExp()) - expBias
	a := assemble(false, expBias, absVal.mant())

	lnA := Ln(a)
	term2 := Mul(FromInt32(exp2), Ln2)
	ratio := Div(Add(lnA, term2), Ln10)
	y, _ := ToInt32(ratio)

	useSci := format == FormatScientific
	if format == FormatFixed && (y <= -4 || y >= 7) {
		useSci = true
	}

	scaled := absVal
	if useSci {
		power := Exp(Mul(FromInt32(y), Ln10))
		scaled = Div(absVal, power)
	}

	iPart, _ := ToInt32(scaled)
	fPart := Sub(scaled, FromInt32(iPart))

	digits := make([]byte, prec+1)
	for d := 0; d <= prec; d++ {
		fPart = Mul(fPart, Ten)
		digit, _ := ToInt32(fPart)
		digits[d] = byte(digit)
		fPart = Sub(fPart, FromInt32(digit))
	}

	if digits[prec] >= 5 {
		d := prec - 1
		for ; d >= 0; d-- {
			digits[d]++
			if digits[d] < 10 {
				break
			}
			digits[d] = 0
		}
		if d < 0 {
			iPart++
		}
	}

	if useSci && iPart >= 10 {
		iPart = 1
		y++
	}

	var sb []byte
	if val.sign() {
		sb = append(sb, '-')
	}
	sb = append(sb, strconv.FormatInt(int64(iPart), 10)...)

	if prec > 0 {
		sb = append(sb, '.')
		for d := 0; d < prec; d++ {
			sb = append(sb, '0'+digits[d])
		}
	}

	if useSci {
		sb = append(sb, 'e')
		if y >= 0 {
			sb = append(sb, '+')
		} else {
			sb = append(sb, '-')
		}
		yAbs := y
		if yAbs < 0 {
			yAbs = -yAbs
		}
		sb = append(sb, '0'+byte((yAbs/10)%10), '0'+byte(yAbs%10))
	}

	return string(sb)
}
