/*
 * S370 - REPL configuration file loader.
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

// Package replconfig reads the REPL's small "key = value" startup file:
// default output format, fixed-point precision, and log file path. It is a
// flat reduction of a device-configuration grammar — no model list, no
// per-line option lists, just one key and one value per line.
package replconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Settings holds the values a config file (or command-line flag) may set.
type Settings struct {
	Format    byte   // 'f' or 'e'
	Precision int    // 0..10
	LogFile   string
}

// Default returns the REPL's built-in defaults, used before any config file
// or flag is applied.
func Default() Settings {
	return Settings{Format: 'f', Precision: 6, LogFile: ""}
}

var lineNumber int

// Load reads name and applies every recognized key to a copy of base,
// returning the updated Settings. Unknown keys and malformed lines are
// reported as errors; a missing file is not an error and returns base
// unchanged.
func Load(name string, base Settings) (Settings, error) {
	file, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, err
	}
	defer file.Close()

	settings := base
	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		text, err := reader.ReadString('\n')
		lineNumber++
		if len(text) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return settings, err
		}
		if applyErr := applyLine(&settings, text); applyErr != nil {
			return settings, applyErr
		}
		if err != nil && errors.Is(err, io.EOF) {
			break
		}
	}
	return settings, nil
}

type configLine struct {
	line string
	pos  int
}

func (l *configLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *configLine) isEOL() bool {
	return l.pos >= len(l.line) || l.line[l.pos] == '#'
}

func (l *configLine) getName() string {
	start := l.pos
	for !l.isEOL() {
		by := l.line[l.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			l.pos++
			continue
		}
		break
	}
	return l.line[start:l.pos]
}

// applyLine parses one "key = value" line, mutating settings. Blank lines
// and comment-only lines (leading '#') are ignored.
func applyLine(settings *Settings, text string) error {
	l := &configLine{line: text}
	l.skipSpace()
	if l.isEOL() {
		return nil
	}

	key := strings.ToLower(l.getName())
	if key == "" {
		return fmt.Errorf("replconfig: invalid line %d", lineNumber)
	}

	l.skipSpace()
	if l.isEOL() || l.line[l.pos] != '=' {
		return fmt.Errorf("replconfig: key %q missing '=' at line %d", key, lineNumber)
	}
	l.pos++
	l.skipSpace()

	valStart := l.pos
	for !l.isEOL() {
		l.pos++
	}
	value := strings.TrimSpace(l.line[valStart:l.pos])
	if value == "" {
		return fmt.Errorf("replconfig: key %q missing value at line %d", key, lineNumber)
	}

	switch key {
	case "format":
		v := strings.ToLower(value)
		if v != "f" && v != "e" {
			return fmt.Errorf("replconfig: format must be f or e, line %d", lineNumber)
		}
		settings.Format = v[0]
	case "precision":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 10 {
			return fmt.Errorf("replconfig: precision must be 0..10, line %d", lineNumber)
		}
		settings.Precision = n
	case "logfile":
		settings.LogFile = value
	default:
		return fmt.Errorf("replconfig: unknown key %q, line %d", key, lineNumber)
	}
	return nil
}
