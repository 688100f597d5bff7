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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(tb testing.TB, dir, name, content string) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("Can't write %s: %v", name, err)
	}

	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.py", "a = 0\nprint(a)\n")
	unread := writeFile(t, dir, "unread.py", "a = 0\n")
	broken := writeFile(t, dir, "broken.py", "a = (\n")
	archive := writeFile(t, dir, "pack.txtar", "comment\n-- one.py --\nprint(b)\n-- one.want --\n+Undefined variables\n")

	tests := []struct {
		name   string
		args   []string
		stdin  string
		status int
		out    string
	}{
		{"clean", []string{clean}, "", exitOK, ""},
		{"issue", []string{unread}, "", exitIssues, "unread.py:1:0: Unread variables: a"},
		{"syntax", []string{broken}, "", exitFailed, ""},
		{"missing", []string{filepath.Join(dir, "missing.py")}, "", exitFailed, ""},
		{"archive", []string{archive}, "", exitIssues, "Undefined variables: b"},
		{"stdin", []string{"-"}, "x = 1\n", exitIssues, "<stdin>:1:0: Unread variables: x"},
		{"disabled", []string{"-disable", "Unread variables", unread}, "", exitOK, ""},
		{"no args", nil, "", exitFailed, ""},
		{"help", []string{"-h"}, "", exitOK, ""},
		{"bad flag", []string{"-lists", "sometimes", clean}, "", exitFailed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			status := run(t.Context(), tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)
			if status != tt.status {
				t.Errorf("Got exit status %d, expected %d (stderr: %s)", status, tt.status, stderr.String())
			}

			if !strings.Contains(stdout.String(), tt.out) {
				t.Errorf("Got output %q, expected %q", stdout.String(), tt.out)
			}
		})
	}
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	status := run(t.Context(), []string{"-json", "-"}, strings.NewReader("a = 0\na = 1\n"), &stdout, &stderr)
	if status != exitIssues {
		t.Fatalf("Got exit status %d, expected %d (stderr: %s)", status, exitIssues, stderr.String())
	}

	var got struct {
		File   string `json:"file"`
		Report struct {
			Success bool                       `json:"success"`
			Issues  map[string]json.RawMessage `json:"issues"`
		} `json:"report"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("Can't decode output %q: %v", stdout.String(), err)
	}

	if got.File != "<stdin>" || !got.Report.Success {
		t.Errorf("Got %+v, expected a successful report for <stdin>", got)
	}

	if _, ok := got.Report.Issues["Overwritten variables"]; !ok {
		t.Errorf("Got issues %v, expected Overwritten variables", got.Report.Issues)
	}
}

func TestReadSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := writeFile(t, dir, "pack.txtar", "-- a.py --\na = 1\n-- a.want --\n+Unread variables\n-- b.py --\nb = 2\n")

	srcs := readSources([]string{archive, "-"}, strings.NewReader("c = 3\n"))

	names := make([]string, 0, len(srcs))
	for _, s := range srcs {
		if s.err != nil {
			t.Fatalf("Unexpected error for %s: %v", s.name, s.err)
		}

		names = append(names, s.name)
	}

	want := []string{archive + "/a.py", archive + "/b.py", "<stdin>"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Got sources %v, expected %v", names, want)
	}
}
