/*
 * S370 - REPL command dispatch table.
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

// Package menu is the REPL's command dispatch table: a prefix-matched list
// of {name, minimum abbreviation, handler, completer} entries, scanned off
// one input line at a time and repurposed here for floating-point test
// commands instead of device control.
package menu

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/jlovrinic/spf32/internal/hexfmt"
	"github.com/jlovrinic/spf32/internal/logger"
	"github.com/jlovrinic/spf32/spf32"
)

// Line scans whitespace-separated tokens out of one REPL input line.
type Line struct {
	line string
	pos  int
}

func (l *Line) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *Line) isEOL() bool {
	return l.pos >= len(l.line) || l.line[l.pos] == '#'
}

// getWord returns the next run of non-space characters, or "" at EOL.
func (l *Line) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return l.line[start:l.pos]
}

// getFloat scans the next token as decimal text, parsed through the
// library's own text-conversion path rather than the host's float parser.
func (l *Line) getFloat() (spf32.F32, error) {
	word := l.getWord()
	if word == "" {
		return spf32.Zero, errors.New("expected a number")
	}
	result := spf32.ParseFloat(word)
	if !result.Ok {
		return spf32.Zero, fmt.Errorf("invalid number: %q", word)
	}
	return result.Value, nil
}

// getHex scans the next token as an 8-digit hex bit pattern ("0x"-prefix
// optional).
func (l *Line) getHex() (spf32.F32, error) {
	word := l.getWord()
	if word == "" {
		return spf32.Zero, errors.New("expected a hex bit pattern")
	}
	word = strings.TrimPrefix(strings.ToLower(word), "0x")
	bits, err := strconv.ParseUint(word, 16, 32)
	if err != nil {
		return spf32.Zero, fmt.Errorf("invalid hex pattern: %q", word)
	}
	return spf32.F32(bits), nil
}

// getInt scans the next token as a decimal integer.
func (l *Line) getInt() (int, error) {
	word := l.getWord()
	if word == "" {
		return 0, errors.New("expected an integer")
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %q", word)
	}
	return n, nil
}

// Command is one dispatch-table entry. Name is matched by unique prefix of
// at least Min characters. Process runs the command and reports whether the
// REPL should quit.
type Command struct {
	Name     string
	Min      int
	Process  func(line *Line) (bool, error)
	Complete func(line *Line) []string
}

var commands []Command

func register(c Command) {
	commands = append(commands, c)
}

func init() {
	register(Command{Name: "sincos", Min: 3, Process: cmdSinCos})
	register(Command{Name: "tan", Min: 3, Process: cmdTan})
	register(Command{Name: "atansweep", Min: 8, Process: cmdAtanSweep})
	register(Command{Name: "atan", Min: 4, Process: cmdAtan})
	register(Command{Name: "atan2sweep", Min: 9, Process: cmdAtan2Sweep})
	register(Command{Name: "atan2", Min: 5, Process: cmdAtan2})
	register(Command{Name: "trigident", Min: 4, Process: cmdTrigIdent})
	register(Command{Name: "hyp", Min: 3, Process: cmdHyp})
	register(Command{Name: "invhyp", Min: 4, Process: cmdInvHyp})
	register(Command{Name: "mixed", Min: 3, Process: cmdMixed})
	register(Command{Name: "euler", Min: 3, Process: cmdEuler})
	register(Command{Name: "atof", Min: 4, Process: cmdAtof})
	register(Command{Name: "ftoa", Min: 4, Process: cmdFtoa})
	register(Command{Name: "help", Min: 1, Process: cmdHelp})
	register(Command{Name: "quit", Min: 1, Process: cmdQuit})
}

// matchCommand reports whether command is a valid abbreviation of match,
// at least match.Min characters long.
func matchCommand(match Command, command string) bool {
	if len(command) > len(match.Name) || len(command) < match.Min {
		return false
	}
	return match.Name[:len(command)] == command
}

func matchList(command string) []Command {
	if command == "" {
		return nil
	}
	var matches []Command
	for _, c := range commands {
		if matchCommand(c, command) {
			matches = append(matches, c)
		}
	}
	return matches
}

// ProcessCommand dispatches one full input line, returning true when the
// REPL should exit.
func ProcessCommand(input string) (bool, error) {
	line := &Line{line: input}
	name := strings.ToLower(line.getWord())
	if name == "" {
		return false, nil
	}

	matches := matchList(name)
	switch len(matches) {
	case 0:
		return false, errors.New("command not found: " + name)
	case 1:
		return matches[0].Process(line)
	default:
		return false, errors.New("ambiguous command: " + name)
	}
}

// CompleteCmd returns the completions liner should offer for a partial
// input line, used as the REPL's tab-completion callback.
func CompleteCmd(input string) []string {
	line := &Line{line: input}
	name := strings.ToLower(line.getWord())

	if !line.isEOL() && line.line[line.pos] == ' ' {
		line.skipSpace()
		matches := matchList(name)
		if len(matches) != 1 || matches[0].Complete == nil {
			return nil
		}
		return matches[0].Complete(line)
	}

	matches := matchList(name)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}

func printHexDec(label string, f spf32.F32) {
	var b strings.Builder
	hexfmt.FormatF32(&b, uint32(f))
	fmt.Printf("%-8s %s  %.9g\n", label, b.String(), f64(f))
}

// f64 renders an F32 as a host float64 for display only — the kernel
// itself never performs this conversion, only the REPL's report lines do.
func f64(f spf32.F32) float64 {
	return float64(math.Float32frombits(uint32(f)))
}

func cmdQuit(_ *Line) (bool, error) {
	return true, nil
}

func cmdHelp(_ *Line) (bool, error) {
	fmt.Println("Commands:")
	for _, c := range commands {
		fmt.Printf("  %s\n", c.Name)
	}
	return false, nil
}

// checkNaN logs via internal/logger when result is a quiet NaN, naming the
// operands that produced it.
func checkNaN(op string, result spf32.F32, operands ...spf32.F32) {
	if !spf32.IsNaN(result) {
		return
	}
	strs := make([]string, len(operands))
	for i, a := range operands {
		var b strings.Builder
		hexfmt.FormatF32(&b, uint32(a))
		strs[i] = b.String()
	}
	logger.LogQNaN(slog.Default(), op, strs...)
}
