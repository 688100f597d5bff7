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

package analyzer

import (
	"context"
	"flag"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/run"
)

// Public API constants for the tifa analyzer.
const (
	name = "tifa"
	doc  = `tifa detects flow and type issues in beginner Python programs`
	url  = "https://pkg.go.dev/github.com/shutter-cp/blockpy"
)

// Analyzer is a configured flow and type analyzer. It holds no state between
// analyses, so concurrent calls are safe.
type Analyzer struct {
	// Name, Doc and URL describe the analyzer.
	Name, Doc, URL string

	r *runOptions
}

// New creates a new instance of the tifa analyzer.
// It allows for programmatic configuration using [Option].
func New(opts ...Option) *Analyzer {
	return &Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		r:    makeRunOptions(opts),
	}
}

// Default is a pre-configured [Analyzer] with default options.
var Default = New()

// ProcessCode parses and analyzes a Python source file. A syntax error yields
// a failed [Report] carrying the parser error.
func (a *Analyzer) ProcessCode(ctx context.Context, filename, code string) *Report {
	return run.Code(ctx, filename, code, a.r.options())
}

// ProcessAST analyzes an already parsed module.
func (a *Analyzer) ProcessAST(ctx context.Context, filename string, module *ast.Module) *Report {
	return run.Module(ctx, filename, module, a.r.options())
}

// RegisterFlags binds the analyzer options to command line flag values.
// A nil flag set value defaults to the program's command line.
// Flags must be parsed before the analyzer is used.
func (a *Analyzer) RegisterFlags(flags *flag.FlagSet) {
	registerFlags(a.r, flags)
}
