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
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-isatty"
	"github.com/xyproto/env/v2"

	tifa "github.com/shutter-cp/blockpy/analyzer"
)

const (
	colorKind  = "\x1b[33m"
	colorError = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// printer writes reports as text lines or JSON objects.
type printer struct {
	w     io.Writer
	enc   *json.Encoder
	color bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	p := &printer{w: w, color: colored(w)}

	if asJSON {
		p.enc = json.NewEncoder(w)
		p.enc.SetIndent("", "  ")
	}

	return p
}

// colored reports whether w is a terminal that accepts escape sequences.
func colored(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || env.Str("NO_COLOR") != "" || env.Str("TERM") == "dumb" {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type entry struct {
	kind tifa.Kind
	rec  tifa.Record
}

type fileReport struct {
	File   string       `json:"file"`
	Report *tifa.Report `json:"report"`
}

// print writes all issues of a report, ordered by position.
func (p *printer) print(name string, r *tifa.Report) error {
	if p.enc != nil {
		return p.enc.Encode(fileReport{File: name, Report: r})
	}

	var entries []entry
	for k, rec := range r.All() {
		entries = append(entries, entry{kind: k, rec: rec})
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.rec.Pos.Line, b.rec.Pos.Line); c != 0 {
			return c
		}

		return cmp.Compare(a.rec.Pos.Column, b.rec.Pos.Column)
	})

	for _, e := range entries {
		kind := e.kind.String()
		if p.color {
			kind = colorKind + kind + colorReset
		}

		if _, err := fmt.Fprintf(p.w, "%s:%s: %s: %s\n", name, e.rec.Pos, kind, e.rec.Detail()); err != nil {
			return err
		}
	}

	return nil
}

func (p *printer) failure(w io.Writer, name string, err error) {
	msg := err.Error()
	if p.color {
		msg = colorError + msg + colorReset
	}

	fmt.Fprintf(w, "%s: %s\n", name, msg)
}

func (p *printer) summary(w io.Writer, issues, files, total int) {
	if issues == 0 {
		fmt.Fprintf(w, "No issues in %s\n", english.Plural(total, "file", ""))

		return
	}

	fmt.Fprintf(w, "%s in %s of %d\n", english.Plural(issues, "issue", ""), english.Plural(files, "file", ""), total)
}
