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

package settings

import (
	tifa "github.com/shutter-cp/blockpy/analyzer"
	"github.com/shutter-cp/blockpy/analyzer/level"
)

// Settings represents the configuration options for a tifa analyzer.
type Settings struct {
	// Version is the semantic version of the settings format.
	Version *string `json:"version,omitzero"`
	// Pass enables empty body and unnecessary pass checks.
	Pass *bool `json:"pass,omitzero"`
	// Iteration enables loop variable and iteration list checks.
	Iteration *bool `json:"iteration,omitzero"`
	// Scope enables checks of accesses to enclosing scopes.
	Scope *bool `json:"scope,omitzero"`
	// NoLint enables suppression by "# nolint:tifa" comments.
	NoLint *bool `json:"nolint,omitzero"`
	// Builtins enables modeling of built-in functions.
	Builtins *bool `json:"builtins,omitzero"`
	// Lists selects the element type inference of container literals.
	Lists *level.Lists `json:"lists,omitzero"`
	// Operands selects which operand types are checked for compatibility.
	Operands *level.Operands `json:"operands,omitzero"`
	// MaxCallDepth sets the maximum nesting of modeled function calls.
	MaxCallDepth *int `json:"max-call-depth,omitzero"`
	// Placeholder sets the identifier of an unconnected block.
	Placeholder *string `json:"placeholder,omitzero"`
	// Disable lists issue kinds never reported.
	Disable []string `json:"disable,omitempty"`
}

// Options converts [Settings] into a list of [tifa.Option] for the tifa analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
// Unknown issue kinds in Disable are skipped; [Decode] rejects them.
func (s Settings) Options() []tifa.Option {
	var opts []tifa.Option

	opts = appendOption(opts, s.Pass, tifa.WithPassChecks)
	opts = appendOption(opts, s.Iteration, tifa.WithIterationChecks)
	opts = appendOption(opts, s.Scope, tifa.WithScopeChecks)
	opts = appendOption(opts, s.NoLint, tifa.WithNoLint)
	opts = appendOption(opts, s.Builtins, tifa.WithBuiltins)
	opts = appendOption(opts, s.Lists, tifa.WithLists)
	opts = appendOption(opts, s.Operands, tifa.WithOperands)
	opts = appendOption(opts, s.MaxCallDepth, tifa.WithMaxCallDepth)
	opts = appendOption(opts, s.Placeholder, tifa.WithPlaceholder)

	if len(s.Disable) > 0 {
		kinds := make([]tifa.Kind, 0, len(s.Disable))

		for _, name := range s.Disable {
			if k, err := tifa.ParseKind(name); err == nil {
				kinds = append(kinds, k)
			}
		}

		opts = append(opts, tifa.WithDisabled(kinds...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [tifa.Option] list.
func appendOption[T any](opts []tifa.Option, value *T, constructor func(T) tifa.Option) []tifa.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
