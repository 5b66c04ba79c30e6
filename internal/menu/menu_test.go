/*
 * S370 - REPL command dispatch table tests.
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

import "testing"

func TestMatchListUniquePrefix(t *testing.T) {
	matches := matchList("sin")
	if len(matches) != 1 || matches[0].Name != "sincos" {
		t.Errorf("matchList(sin) = %v, want [sincos]", matches)
	}
}

func TestMatchListDisjointMinima(t *testing.T) {
	matches := matchList("atan2")
	if len(matches) != 1 || matches[0].Name != "atan2" {
		t.Errorf("matchList(atan2) = %v, want [atan2] (distinct from atan2sweep's longer minimum)", matches)
	}
}

func TestMatchListBelowMin(t *testing.T) {
	matches := matchList("s")
	if len(matches) != 0 {
		t.Errorf("matchList(s) = %v, want none (below sincos's minimum abbreviation)", matches)
	}
}

func TestMatchListNoMatch(t *testing.T) {
	matches := matchList("bogus")
	if len(matches) != 0 {
		t.Errorf("matchList(bogus) = %v, want none", matches)
	}
}

func TestProcessCommandQuit(t *testing.T) {
	quit, err := ProcessCommand("quit")
	if err != nil || !quit {
		t.Errorf("ProcessCommand(quit) = (%v,%v), want (true,nil)", quit, err)
	}
}

func TestProcessCommandUnknown(t *testing.T) {
	_, err := ProcessCommand("nonsense")
	if err == nil {
		t.Error("ProcessCommand(nonsense) error = nil, want error")
	}
}

func TestProcessCommandBlank(t *testing.T) {
	quit, err := ProcessCommand("   ")
	if err != nil || quit {
		t.Errorf("ProcessCommand(blank) = (%v,%v), want (false,nil)", quit, err)
	}
}

func TestLineGetFloat(t *testing.T) {
	l := &Line{line: "45 90"}
	v, err := l.getFloat()
	if err != nil {
		t.Fatalf("getFloat() error = %v", err)
	}
	if got := f64(v); got != 45 {
		t.Errorf("getFloat() = %v, want 45", got)
	}
}

func TestLineGetHex(t *testing.T) {
	l := &Line{line: "0x3F800000"}
	v, err := l.getHex()
	if err != nil {
		t.Fatalf("getHex() error = %v", err)
	}
	if uint32(v) != 0x3F800000 {
		t.Errorf("getHex() = %#x, want 0x3f800000", uint32(v))
	}
}

func TestCompleteCmdPrefix(t *testing.T) {
	got := CompleteCmd("he")
	if len(got) != 1 || got[0] != "help" {
		t.Errorf("CompleteCmd(he) = %v, want [help]", got)
	}
}
