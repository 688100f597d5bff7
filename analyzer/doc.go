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

// Package analyzer implements the tifa flow and type analysis of Python programs.
//
// # Overview
//
// Tifa walks a program the way it would execute: once from top to bottom,
// entering function bodies when they are called. For every variable it
// tracks whether it is set, read and overwritten, and it infers an abstract
// type for every value. Branches of conditionals and loops are analyzed
// separately and merged afterwards, so a variable assigned in only one
// branch is possibly undefined after it.
//
// The result is a [Report] listing issues of a fixed set of kinds, aimed at
// beginning programmers: reading a variable before it is set, assigning a
// variable that is never read, iterating over a number, adding a string to a
// number, and more.
//
// # Example
//
//	a := analyzer.New(analyzer.WithLists(level.ListsStrict))
//	r := a.ProcessCode(ctx, "main.py", "if ok:\n    a = 0\nprint(a)\n")
//	if r.Fired(analyzer.PossiblyUndefinedVariables) {
//	    // a is set on only one path
//	}
//
// # Suppression
//
// Issues on a line ending in a "# nolint:tifa" comment are dropped.
package analyzer
