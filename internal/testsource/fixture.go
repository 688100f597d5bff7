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

package testsource

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/shutter-cp/blockpy/internal/report"
)

// Case is one fixture program with its expectations.
type Case struct {
	// Name is the archive member name of the program.
	Name string

	// Source is the program text.
	Source string

	// Fired lists the issue kinds the program must raise.
	Fired []report.Kind

	// Clean lists the issue kinds the program must not raise.
	Clean []report.Kind

	// Fail is set when the analysis must fail.
	Fail bool
}

// Processor analyzes a source file.
type Processor func(ctx context.Context, filename, code string) *report.Report

// Load reads the cases of a txtar archive. Every "name.py" member is a
// program; a "name.want" member holds its expectations, one per line:
// "+Kind" for a kind that must fire, "-Kind" for one that must not and
// "fail" for an analysis that must fail.
func Load(tb testing.TB, path string) []Case {
	tb.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Failed to read archive %s: %v", path, err)
	}

	wants := make(map[string][]byte)
	for _, f := range ar.Files {
		if base, ok := strings.CutSuffix(f.Name, ".want"); ok {
			wants[base] = f.Data
		}
	}

	var cases []Case

	for _, f := range ar.Files {
		base, ok := strings.CutSuffix(f.Name, ".py")
		if !ok {
			continue
		}

		c := Case{Name: f.Name, Source: string(f.Data)}
		parseWant(tb, path, &c, wants[base])

		cases = append(cases, c)
	}

	if len(cases) == 0 {
		tb.Fatalf("Archive %s holds no programs", path)
	}

	return cases
}

func parseWant(tb testing.TB, path string, c *Case, want []byte) {
	tb.Helper()

	sc := bufio.NewScanner(strings.NewReader(string(want)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "", strings.HasPrefix(line, "#"):

		case line == "fail":
			c.Fail = true

		case line[0] == '+' || line[0] == '-':
			k, err := report.ParseKind(strings.TrimSpace(line[1:]))
			if err != nil {
				tb.Fatalf("%s: %s: %v", path, c.Name, err)
			}

			if line[0] == '+' {
				c.Fired = append(c.Fired, k)
			} else {
				c.Clean = append(c.Clean, k)
			}

		default:
			tb.Fatalf("%s: %s: invalid expectation %q", path, c.Name, line)
		}
	}
}

// Check verifies a report against the expectations of a case.
func Check(tb testing.TB, c Case, r *report.Report) {
	tb.Helper()

	if c.Fail {
		if r.Success {
			tb.Errorf("%s: analysis succeeded, want failure", c.Name)
		}

		return
	}

	if !r.Success {
		tb.Fatalf("%s: analysis failed: %v", c.Name, r.Err)
	}

	for _, k := range c.Fired {
		if !r.Fired(k) {
			tb.Errorf("%s: %q not reported", c.Name, k)
		}
	}

	for _, k := range c.Clean {
		if r.Fired(k) {
			tb.Errorf("%s: unexpected %q: %s", c.Name, k, describe(r.Issues[k]))
		}
	}
}

func describe(recs []report.Record) string {
	parts := make([]string, len(recs))
	for i, rec := range recs {
		parts[i] = rec.Pos.String() + " " + rec.Detail()
	}

	return strings.Join(parts, "; ")
}

// Run analyzes every case of every archive in dir with process, one subtest
// per archive and program.
func Run(t *testing.T, dir string, process Processor) {
	t.Helper()

	archives, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("Failed to list archives: %v", err)
	}

	if len(archives) == 0 {
		t.Fatalf("No archives in %s", dir)
	}

	slices.Sort(archives)

	for _, path := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			t.Parallel()

			for _, c := range Load(t, path) {
				t.Run(c.Name, func(t *testing.T) {
					t.Parallel()

					Check(t, c, process(t.Context(), c.Name, c.Source))
				})
			}
		})
	}
}

// TestData returns the absolute path of the testdata directory.
func TestData(tb testing.TB) string {
	tb.Helper()

	dir, err := filepath.Abs("testdata")
	if err != nil {
		tb.Fatalf("Failed to locate testdata: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		tb.Fatalf("Failed to locate testdata: %v", err)
	}

	return dir
}
