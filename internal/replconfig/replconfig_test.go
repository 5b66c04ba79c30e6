/*
 * S370 - REPL configuration file loader tests.
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

package replconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "spftest.conf")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.Format != 'f' || d.Precision != 6 || d.LogFile != "" {
		t.Errorf("Default() = %+v, want {f 6 \"\"}", d)
	}
}

func TestLoadMissingFileReturnsBase(t *testing.T) {
	base := Default()
	got, err := Load(filepath.Join(t.TempDir(), "nope.conf"), base)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if got != base {
		t.Errorf("Load() = %+v, want base %+v unchanged", got, base)
	}
}

func TestLoadBasic(t *testing.T) {
	path := writeConfig(t, "format = e\nprecision = 4\nlogfile = /tmp/spftest.log\n")
	got, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Settings{Format: 'e', Precision: 4, LogFile: "/tmp/spftest.log"}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadCommentsAndBlankLines(t *testing.T) {
	path := writeConfig(t, "# a comment\n\nformat = f   # trailing comment\n\nprecision = 2\n")
	got, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Format != 'f' || got.Precision != 2 {
		t.Errorf("Load() = %+v, want format f precision 2", got)
	}
}

func TestLoadBadFormat(t *testing.T) {
	path := writeConfig(t, "format = g\n")
	if _, err := Load(path, Default()); err == nil {
		t.Error("Load() error = nil, want error for invalid format")
	}
}

func TestLoadPrecisionOutOfRange(t *testing.T) {
	for _, body := range []string{"precision = -1\n", "precision = 11\n", "precision = abc\n"} {
		path := writeConfig(t, body)
		if _, err := Load(path, Default()); err == nil {
			t.Errorf("Load(%q) error = nil, want error", body)
		}
	}
}

func TestLoadMissingEquals(t *testing.T) {
	path := writeConfig(t, "format\n")
	if _, err := Load(path, Default()); err == nil {
		t.Error("Load() error = nil, want error for missing '='")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "bogus = 1\n")
	if _, err := Load(path, Default()); err == nil {
		t.Error("Load() error = nil, want error for unknown key")
	}
}

func TestLoadMissingValue(t *testing.T) {
	path := writeConfig(t, "format =\n")
	if _, err := Load(path, Default()); err == nil {
		t.Error("Load() error = nil, want error for missing value")
	}
}
