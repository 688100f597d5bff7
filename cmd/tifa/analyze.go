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
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/txtar"

	tifa "github.com/shutter-cp/blockpy/analyzer"
)

// source is one program to analyze.
type source struct {
	name string
	code string
	err  error
}

// readSources expands the command line arguments into programs. Files that
// can't be read are returned with their error.
func readSources(args []string, stdin io.Reader) []source {
	var srcs []source

	for _, arg := range args {
		switch {
		case arg == "-":
			data, err := io.ReadAll(stdin)
			srcs = append(srcs, source{name: "<stdin>", code: string(data), err: err})

		case filepath.Ext(arg) == ".txtar":
			ar, err := txtar.ParseFile(arg)
			if err != nil {
				srcs = append(srcs, source{name: arg, err: err})

				continue
			}

			for _, f := range ar.Files {
				if filepath.Ext(f.Name) == ".py" {
					srcs = append(srcs, source{name: arg + "/" + f.Name, code: string(f.Data)})
				}
			}

		default:
			data, err := os.ReadFile(arg)
			srcs = append(srcs, source{name: arg, code: string(data), err: err})
		}
	}

	return srcs
}

// analyzeAll analyzes every program on its own, in parallel, and prints the
// reports in argument order.
func analyzeAll(ctx context.Context, a *tifa.Analyzer, o options, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	srcs := readSources(args, stdin)
	reports := make([]*tifa.Report, len(srcs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.jobs, 1))

	for i, src := range srcs {
		if src.err != nil {
			continue
		}

		g.Go(func() error {
			reports[i] = a.ProcessCode(ctx, src.name, src.code)

			return nil
		})
	}

	_ = g.Wait() // analyses never return errors

	p := newPrinter(stdout, o.json)
	status, total, files := exitOK, 0, 0

	for i, src := range srcs {
		r := reports[i]

		switch {
		case src.err != nil:
			p.failure(stderr, src.name, src.err)

			status = exitFailed

			continue

		case !r.Success:
			p.failure(stderr, src.name, r.Err)

			status = exitFailed

		case r.Total() > 0:
			status = max(status, exitIssues)
			total += r.Total()
			files++
		}

		if err := p.print(src.name, r); err != nil {
			p.failure(stderr, src.name, err)

			return exitFailed
		}
	}

	if !o.json {
		p.summary(stderr, total, files, len(srcs))
	}

	return status
}
