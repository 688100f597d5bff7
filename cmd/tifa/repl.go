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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	tifa "github.com/shutter-cp/blockpy/analyzer"
)

const (
	banner      = "tifa interactive mode. End a block with an empty line, :quit to exit."
	historyFile = ".tifa_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

// repl analyzes snippets read from the terminal, each one on its own.
func repl(ctx context.Context, a *tifa.Analyzer, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, historyFile)

		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	p := newPrinter(stdout, false)

	for n := 1; ; n++ {
		code, ok := readSnippet(ln)
		if !ok {
			fmt.Fprintln(stdout)

			return exitOK
		}

		switch strings.TrimSpace(code) {
		case "":
			continue

		case ":quit", ":q":
			return exitOK
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		name := fmt.Sprintf("<snippet %d>", n)

		r := a.ProcessCode(ctx, name, code)
		if !r.Success {
			p.failure(stderr, name, r.Err)

			continue
		}

		if err := p.print(name, r); err != nil {
			return exitFailed
		}

		if r.Total() == 0 {
			fmt.Fprintln(stdout, "No issues")
		}
	}
}

// readSnippet reads a single line, or a block started by a line ending in a
// colon and ended by an empty line. It returns false at end of input.
func readSnippet(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			return "", true

		case err != nil:
			return "", false
		}

		if b.Len() > 0 && strings.TrimSpace(line) == "" {
			return b.String(), true
		}

		b.WriteString(line)
		b.WriteByte('\n')

		if b.Len() == len(line)+1 && !strings.HasSuffix(strings.TrimSpace(line), ":") {
			return b.String(), true
		}
	}
}
