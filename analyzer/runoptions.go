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
	"log/slog"

	"github.com/shutter-cp/blockpy/analyzer/level"
	"github.com/shutter-cp/blockpy/internal/config"
	"github.com/shutter-cp/blockpy/internal/interp"
	"github.com/shutter-cp/blockpy/internal/report"
)

// runOptions represent configuration runOptions for the tifa analyzer.
type runOptions struct {
	// checks represents the optional check families to be enabled.
	checks config.BitMask[config.Checks]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Config]

	// disabled holds the issue kinds never reported.
	disabled config.BitMask[report.Mask]

	lists    level.Lists
	operands level.Operands

	// maxCallDepth bounds the nesting of modeled function calls.
	maxCallDepth int

	// placeholder is the identifier of an unconnected block.
	placeholder string

	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	d := interp.DefaultOptions()

	return &runOptions{
		checks:       d.Checks,
		behavior:     d.Behavior,
		disabled:     d.Disabled,
		lists:        d.Lists,
		operands:     d.Operands,
		maxCallDepth: d.MaxCallDepth,
		placeholder:  d.Placeholder,
		logger:       d.Logger,
	}
}

// options returns the options of one analysis run.
func (r *runOptions) options() *interp.Options {
	return &interp.Options{
		Checks:       r.checks,
		Behavior:     r.behavior,
		Disabled:     r.disabled,
		Lists:        r.lists,
		Operands:     r.operands,
		MaxCallDepth: r.maxCallDepth,
		Placeholder:  r.placeholder,
		Logger:       r.logger,
	}
}
