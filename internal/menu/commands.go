/*
 * S370 - REPL command handlers.
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

package menu

import (
	"fmt"

	"github.com/jlovrinic/spf32/spf32"
)

// degreeRange scans the three numbers <lo> <hi> <step> (degrees for the
// trig sweeps, plain x values for hyp) and returns the first parse error.
func (l *Line) degreeRange() (lo, hi, step spf32.F32, err error) {
	if lo, err = l.getFloat(); err != nil {
		return
	}
	if hi, err = l.getFloat(); err != nil {
		return
	}
	if step, err = l.getFloat(); err != nil {
		return
	}
	return
}

// cmdSinCos sweeps sin/cos over a degree range, the way btrigt.c's sctest
// walked the full circle printing each octant's hex and decimal values.
func cmdSinCos(line *Line) (bool, error) {
	lo, hi, step, err := line.degreeRange()
	if err != nil {
		return false, err
	}
	for deg := lo; spf32.LessEqual(deg, hi); deg = spf32.Add(deg, step) {
		rad := spf32.DegToRad(deg)
		s, c := spf32.Sin(rad), spf32.Cos(rad)
		fmt.Printf("deg=%.6g\n", f64(deg))
		printHexDec("  sin", s)
		printHexDec("  cos", c)
		ident := spf32.Add(spf32.Mul(s, s), spf32.Mul(c, c))
		if diff := f64(ident) - 1.0; diff > 1e-2 || diff < -1e-2 {
			fmt.Printf("  WARNING sin^2+cos^2 = %.9g (expected ~1)\n", f64(ident))
		}
	}
	return false, nil
}

// cmdTan sweeps tan over a degree range, skipping the poles near +-90 the
// way btrigt.c's tntest did.
func cmdTan(line *Line) (bool, error) {
	lo, hi, step, err := line.degreeRange()
	if err != nil {
		return false, err
	}
	for deg := lo; spf32.LessEqual(deg, hi); deg = spf32.Add(deg, step) {
		rad := spf32.DegToRad(deg)
		c := spf32.Cos(rad)
		if f := f64(c); f > -1e-4 && f < 1e-4 {
			fmt.Printf("deg=%.6g  (skipped, near pole)\n", f64(deg))
			continue
		}
		t := spf32.Tan(rad)
		fmt.Printf("deg=%.6g\n", f64(deg))
		printHexDec("  tan", t)
	}
	return false, nil
}

// cmdAtan computes atan(x) and its reciprocal-angle identity check, the
// core of atant.c's driver.
func cmdAtan(line *Line) (bool, error) {
	x, err := line.getFloat()
	if err != nil {
		return false, err
	}
	a := spf32.Atan(x)
	checkNaN("atan", a, x)
	printHexDec("atan", a)
	if !spf32.IsZero(x) {
		recip := spf32.Atan(spf32.Div(spf32.One, x))
		sum := spf32.Add(a, recip)
		if spf32.Sign(x) < 0 {
			sum = spf32.Neg(sum)
		}
		fmt.Printf("atan(x)+atan(1/x) = %.9g (expect +-pi/2)\n", f64(sum))
	}
	return false, nil
}

// cmdAtanSweep runs cmdAtan's identity check across a fixed set of
// representative values, as atant.c's batch mode did.
func cmdAtanSweep(_ *Line) (bool, error) {
	values := []spf32.F32{spf32.Half, spf32.One, spf32.Two, spf32.Ten, spf32.NegOne, f32Int(100)}
	for _, v := range values {
		a := spf32.Atan(v)
		recip := spf32.Atan(spf32.Div(spf32.One, v))
		sum := spf32.Add(a, recip)
		if spf32.Sign(v) < 0 {
			sum = spf32.Neg(sum)
		}
		fmt.Printf("x=%.6g  atan(x)+atan(1/x)=%.9g\n", f64(v), f64(sum))
	}
	return false, nil
}

func f32Int(n int32) spf32.F32 {
	return spf32.FromInt32(n)
}

// cmdAtan2 computes atan2(y, x) for one pair.
func cmdAtan2(line *Line) (bool, error) {
	y, err := line.getFloat()
	if err != nil {
		return false, err
	}
	x, err := line.getFloat()
	if err != nil {
		return false, err
	}
	r := spf32.Atan2(y, x)
	checkNaN("atan2", r, y, x)
	printHexDec("atan2", r)
	return false, nil
}

// cmdAtan2Sweep walks the four quadrants and the axis cases, the way
// atan2t.c enumerated sign combinations of y and x.
func cmdAtan2Sweep(_ *Line) (bool, error) {
	cases := []struct{ y, x spf32.F32 }{
		{spf32.One, spf32.One},
		{spf32.One, spf32.NegOne},
		{spf32.NegOne, spf32.NegOne},
		{spf32.NegOne, spf32.One},
		{spf32.Zero, spf32.One},
		{spf32.One, spf32.Zero},
		{spf32.Zero, spf32.NegOne},
		{spf32.NegOne, spf32.Zero},
		{spf32.Zero, spf32.Zero},
	}
	for _, c := range cases {
		r := spf32.Atan2(c.y, c.x)
		fmt.Printf("atan2(%.3g,%.3g) = %.9g\n", f64(c.y), f64(c.x), f64(r))
	}
	return false, nil
}

// cmdTrigIdent sweeps sin^2+cos^2 parity/identity checks over a range, per
// htrigt.c.
func cmdTrigIdent(line *Line) (bool, error) {
	lo, hi, step, err := line.degreeRange()
	if err != nil {
		return false, err
	}
	worst := 0.0
	for deg := lo; spf32.LessEqual(deg, hi); deg = spf32.Add(deg, step) {
		rad := spf32.DegToRad(deg)
		s, c := spf32.Sin(rad), spf32.Cos(rad)
		ident := spf32.Add(spf32.Mul(s, s), spf32.Mul(c, c))
		diff := f64(ident) - 1.0
		if diff < 0 {
			diff = -diff
		}
		if diff > worst {
			worst = diff
		}
		negS := spf32.Sin(spf32.Neg(rad))
		if !spf32.Equal(negS, spf32.Neg(s)) {
			fmt.Printf("deg=%.6g  parity check failed: sin(-x) != -sin(x)\n", f64(deg))
		}
	}
	fmt.Printf("worst |sin^2+cos^2-1| = %.9g over %d points\n", worst, sweepCount(lo, hi, step))
	return false, nil
}

func sweepCount(lo, hi, step spf32.F32) int {
	n := 0
	for deg := lo; spf32.LessEqual(deg, hi); deg = spf32.Add(deg, step) {
		n++
		if n > 100000 {
			break
		}
	}
	return n
}

// cmdHyp sweeps cosh^2-sinh^2 identity and evenness/oddness checks, per
// hypertt.c.
func cmdHyp(line *Line) (bool, error) {
	lo, hi, step, err := line.degreeRange()
	if err != nil {
		return false, err
	}
	worst := 0.0
	for x := lo; spf32.LessEqual(x, hi); x = spf32.Add(x, step) {
		s, c := spf32.SinhCosh(x)
		ident := spf32.Sub(spf32.Mul(c, c), spf32.Mul(s, s))
		diff := f64(ident) - 1.0
		if diff < 0 {
			diff = -diff
		}
		if diff > worst {
			worst = diff
		}
		negS, negC := spf32.SinhCosh(spf32.Neg(x))
		if !spf32.Equal(negS, spf32.Neg(s)) || !spf32.Equal(negC, c) {
			fmt.Printf("x=%.6g  parity check failed: sinh(-x) != -sinh(x) or cosh(-x) != cosh(x)\n", f64(x))
		}
	}
	fmt.Printf("worst |cosh^2-sinh^2-1| = %.9g\n", worst)
	return false, nil
}

// cmdInvHyp checks asinh/acosh/atanh round-trips against sinh/cosh/tanh,
// per ihypet.c.
func cmdInvHyp(_ *Line) (bool, error) {
	values := []spf32.F32{spf32.Zero, spf32.Half, spf32.One, spf32.Two}
	for _, v := range values {
		got := spf32.Asinh(spf32.Sinh(v))
		fmt.Printf("asinh(sinh(%.6g)) = %.9g\n", f64(v), f64(got))
	}
	for _, v := range []spf32.F32{spf32.One, spf32.Two, spf32.Ten} {
		got := spf32.Acosh(spf32.Cosh(v))
		fmt.Printf("acosh(cosh(%.6g)) = %.9g\n", f64(v), f64(got))
	}
	for _, v := range []spf32.F32{spf32.Zero, spf32.Half, f32Int(0)} {
		got := spf32.Atanh(spf32.Tanh(v))
		fmt.Printf("atanh(tanh(%.6g)) = %.9g\n", f64(v), f64(got))
	}
	return false, nil
}

// cmdMixed runs modf/frexp/copysign/scalbn/hypot spot checks, per mixtt.c.
func cmdMixed(_ *Line) (bool, error) {
	x := f32Parse(3.75)
	ip, fp := spf32.Modf(x)
	fmt.Printf("modf(3.75) = %.6g + %.6g\n", f64(ip), f64(fp))

	frac, exp := spf32.Frexp(x)
	fmt.Printf("frexp(3.75) = %.6g * 2^%d\n", f64(frac), exp)

	cs := spf32.Copysign(spf32.One, spf32.NegOne)
	fmt.Printf("copysign(1,-1) = %.6g\n", f64(cs))

	sc := spf32.Scalbn(spf32.One, 4)
	fmt.Printf("scalbn(1,4) = %.6g\n", f64(sc))

	hy := spf32.Hypot(f32Parse(3), f32Parse(4))
	fmt.Printf("hypot(3,4) = %.6g\n", f64(hy))
	return false, nil
}

func f32Parse(v float64) spf32.F32 {
	return spf32.ParseFloat(fmt.Sprintf("%g", v)).Value
}

// cmdEuler runs exp/ln/log10/log2/pow spot checks, per eulert.c.
func cmdEuler(_ *Line) (bool, error) {
	fmt.Printf("exp(1) = %.9g\n", f64(spf32.Exp(spf32.One)))
	fmt.Printf("ln(e)  = %.9g\n", f64(spf32.Ln(spf32.E)))
	fmt.Printf("log10(100) = %.9g\n", f64(spf32.Log10(f32Int(100))))
	fmt.Printf("log2(1024) = %.9g\n", f64(spf32.Log2(f32Int(1024))))
	fmt.Printf("pow(2,10) = %.9g\n", f64(spf32.Pow(spf32.Two, f32Int(10))))
	return false, nil
}

// cmdAtof parses one decimal string through the library's text reader.
func cmdAtof(line *Line) (bool, error) {
	word := line.getWord()
	if word == "" {
		return false, fmt.Errorf("expected a string argument")
	}
	v := spf32.Atof(word)
	checkNaN("atof", v)
	printHexDec("atof", v)
	return false, nil
}

// cmdFtoa formats a hex bit pattern back to text at the given precision and
// style.
func cmdFtoa(line *Line) (bool, error) {
	bits, err := line.getHex()
	if err != nil {
		return false, err
	}
	prec, err := line.getInt()
	if err != nil {
		return false, err
	}
	style := line.getWord()
	if style != "f" && style != "e" {
		return false, fmt.Errorf("format must be f or e, got %q", style)
	}
	out := spf32.Ftoa(bits, prec, spf32.Format(style[0]))
	fmt.Println(out)
	return false, nil
}
