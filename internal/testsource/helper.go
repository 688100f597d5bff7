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

// Package testsource provides utilities for parsing and analyzing Python source code in tests.
//
// It is designed to simplify testing of the tifa analyzer by handling common
// boilerplate code for parsing sources and checking fixture expectations.
package testsource

import (
	"strings"
	"testing"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/parser"
)

// Parse parses a Python source fragment into an AST.
// Leading newlines are dropped and a trailing newline is added, so raw string
// literals can be used for multi-line sources.
func Parse(tb testing.TB, src string) *ast.Module {
	tb.Helper()

	m, err := parser.Parse(normalize(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return m
}

func normalize(src string) string {
	src = strings.TrimLeft(src, "\n")
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	return src
}
