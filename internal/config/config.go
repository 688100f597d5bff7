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

// Package config holds the bit mask configuration of an analysis run.
package config

// Checks represents optional families of issue checks.
type Checks uint8

const (
	// PassChecks reports pass statements forming or padding a body.
	PassChecks Checks = 1 << iota

	// IterationChecks reports unused iteration variables and iteration lists used inside their loop.
	IterationChecks

	// ScopeChecks reports mutable variables read from, and any variables written to, an enclosing scope.
	ScopeChecks

	// AllChecks enables every check family.
	AllChecks = PassChecks | IterationChecks | ScopeChecks
)

// Config represents behavioral options of the analysis.
type Config uint8

const (
	// NoLint honors "# nolint:tifa" comments, dropping issues on their line.
	NoLint Config = 1 << iota

	// Builtins models calls of built-in functions such as print or range. Without
	// it, every built-in is an unknown function.
	Builtins
)

// DefaultChecks returns the check families enabled by default.
func DefaultChecks() BitMask[Checks] {
	return NewBitMask(AllChecks)
}

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() BitMask[Config] {
	return NewBitMask(NoLint, Builtins)
}
