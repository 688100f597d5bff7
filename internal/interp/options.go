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

package interp

import (
	"log/slog"

	"github.com/shutter-cp/blockpy/analyzer/level"
	"github.com/shutter-cp/blockpy/internal/config"
	"github.com/shutter-cp/blockpy/internal/report"
)

// DefaultMaxCallDepth bounds the nesting of modeled function calls.
const DefaultMaxCallDepth = 32

// DefaultPlaceholder is the name of an unfilled block in a block-based editor.
const DefaultPlaceholder = "___"

// Options represent the configuration of an analysis run.
type Options struct {
	// Checks are the optional check families to run.
	Checks config.BitMask[config.Checks]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Disabled are the issue kinds never reported.
	Disabled config.BitMask[report.Mask]

	// Lists selects the element type inference for container literals.
	Lists level.Lists

	// Operands selects which operand types are checked for compatibility.
	Operands level.Operands

	// MaxCallDepth is the maximum nesting of modeled function calls.
	// Deeper calls yield an unknown result.
	MaxCallDepth int

	// Placeholder is the name reported as an unconnected block.
	Placeholder string

	// Logger receives debug output of the analysis.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Checks:       config.DefaultChecks(),
		Behavior:     config.DefaultBehavior(),
		MaxCallDepth: DefaultMaxCallDepth,
		Placeholder:  DefaultPlaceholder,
		Logger:       slog.New(slog.DiscardHandler),
	}
}
