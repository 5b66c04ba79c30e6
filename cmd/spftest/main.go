/*
 * S370 - spftest command-line driver.
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

// Command spftest is an interactive REPL exercising the spf32 library:
// trig/hyperbolic sweeps, exp/log/pow spot checks, and text round trips,
// each as its own dispatch-table command.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"

	"github.com/jlovrinic/spf32/internal/logger"
	"github.com/jlovrinic/spf32/internal/menu"
	"github.com/jlovrinic/spf32/internal/replconfig"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "spftest.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file (overrides config)")
	optPrecision := getopt.IntLong("precision", 'p', -1, "Fixed/scientific precision 0..10 (overrides config)")
	optFormat := getopt.StringLong("format", 'f', "", "Output format f or e (overrides config)")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	settings, err := replconfig.Load(*optConfig, replconfig.Default())
	if err != nil {
		fmt.Println("Error reading config: " + err.Error())
		os.Exit(1)
	}
	if *optLogFile != "" {
		settings.LogFile = *optLogFile
	}
	if *optPrecision >= 0 {
		settings.Precision = *optPrecision
	}
	if *optFormat != "" {
		settings.Format = (*optFormat)[0]
	}

	var file *os.File
	if settings.LogFile != "" {
		file, err = os.Create(settings.LogFile)
		if err != nil {
			fmt.Println("Error creating log file: " + err.Error())
			os.Exit(1)
		}
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	log := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, false))
	slog.SetDefault(log)

	log.Info("spftest started", "format", string(settings.Format), "precision", settings.Precision)

	runRepl()

	log.Info("spftest exiting")
}

func runRepl() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		return menu.CompleteCmd(input)
	})

	for {
		input, err := line.Prompt("spftest> ")
		if err == nil {
			line.AppendHistory(input)
			quit, procErr := menu.ProcessCommand(input)
			if procErr != nil {
				fmt.Println("Error: " + procErr.Error())
			}
			if quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("error reading line: " + err.Error())
		return
	}
}
