// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command tifa reports flow and type issues in Python programs.
//
// Usage:
//
//	tifa [flags] file.py|archive.txtar|- ...
//	tifa -i [flags]
//
// Every Python file and every ".py" member of a txtar archive is analyzed
// on its own. The exit status is 1 when any issue was reported and 2 when a
// file could not be read, parsed or analyzed.
//
// Analyzer defaults are read from the settings file named by TIFA_CONFIG,
// or ".tifa.yaml" in the working directory; command line flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/xyproto/env/v2"

	tifa "github.com/shutter-cp/blockpy/analyzer"
	"github.com/shutter-cp/blockpy/settings"
)

const defaultConfig = ".tifa.yaml"

// Exit codes.
const (
	exitOK     = 0
	exitIssues = 1
	exitFailed = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the command line settings not handled by the analyzer.
type options struct {
	json        bool
	interactive bool
	verbose     bool
	jobs        int
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := loadSettings()
	if err != nil {
		fmt.Fprintln(stderr, err)

		return exitFailed
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	a := tifa.New(append(opts, tifa.WithLogger(logger))...)

	fs := flag.NewFlagSet("tifa", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.json, "json", false, "print reports as JSON")
	fs.BoolVar(&o.interactive, "i", false, "analyze snippets read interactively")
	fs.BoolVar(&o.verbose, "v", env.Bool("TIFA_DEBUG"), "log analysis details to stderr")
	fs.IntVar(&o.jobs, "j", env.Int("TIFA_JOBS", runtime.GOMAXPROCS(0)), "number of files analyzed in parallel")
	a.RegisterFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tifa [flags] file.py|archive.txtar|- ...\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitFailed
	}

	if o.verbose {
		logLevel.Set(slog.LevelDebug)
	}

	if o.interactive {
		return repl(ctx, a, stdout, stderr)
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return exitFailed
	}

	return analyzeAll(ctx, a, o, fs.Args(), stdin, stdout, stderr)
}

// loadSettings reads the settings file, if there is one.
func loadSettings() ([]tifa.Option, error) {
	path := env.Str("TIFA_CONFIG")
	if path == "" {
		if _, err := os.Stat(defaultConfig); err != nil {
			return nil, nil
		}

		path = defaultConfig
	}

	s, err := settings.Load(path)
	if err != nil {
		return nil, err
	}

	return s.Options(), nil
}
