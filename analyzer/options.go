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
	"strings"

	"github.com/shutter-cp/blockpy/analyzer/level"
	"github.com/shutter-cp/blockpy/internal/config"
)

// Option configures specific behavior of a [New] tifa analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithLogger is an [Option] to receive debug output of the analysis.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithMaxCallDepth is an [Option] to configure the maximum nesting of modeled function calls.
func WithMaxCallDepth(depth int) Option { return maxCallDepthOption{depth: depth} }

type maxCallDepthOption struct{ depth int }

func (o maxCallDepthOption) apply(r *runOptions) {
	r.maxCallDepth = o.depth
}

func (o maxCallDepthOption) LogAttr() slog.Attr {
	return slog.Int("maxCallDepth", o.depth)
}

// WithLists is an [Option] to configure the element type inference of container literals.
func WithLists(lists level.Lists) Option { return listsOption{lists: lists} }

type listsOption struct{ lists level.Lists }

func (o listsOption) apply(r *runOptions) {
	r.lists = o.lists
}

func (o listsOption) LogAttr() slog.Attr {
	return slog.Any("lists", o.lists)
}

// WithOperands is an [Option] to configure which operand types are checked for compatibility.
func WithOperands(operands level.Operands) Option { return operandsOption{operands: operands} }

type operandsOption struct{ operands level.Operands }

func (o operandsOption) apply(r *runOptions) {
	r.operands = o.operands
}

func (o operandsOption) LogAttr() slog.Attr {
	return slog.Any("operands", o.operands)
}

// WithPassChecks is an [Option] to configure whether empty bodies and unnecessary pass statements are reported.
func WithPassChecks(pass bool) Option { return passOption{pass: pass} }

type passOption struct{ pass bool }

func (o passOption) apply(r *runOptions) {
	r.checks.Set(config.PassChecks, o.pass)
}

func (o passOption) LogAttr() slog.Attr {
	return slog.Bool("pass", o.pass)
}

// WithIterationChecks is an [Option] to configure whether loop variable and iteration list usage is checked.
func WithIterationChecks(iteration bool) Option { return iterationOption{iteration: iteration} }

type iterationOption struct{ iteration bool }

func (o iterationOption) apply(r *runOptions) {
	r.checks.Set(config.IterationChecks, o.iteration)
}

func (o iterationOption) LogAttr() slog.Attr {
	return slog.Bool("iteration", o.iteration)
}

// WithScopeChecks is an [Option] to configure whether accesses to variables of enclosing scopes are reported.
func WithScopeChecks(scope bool) Option { return scopeOption{scope: scope} }

type scopeOption struct{ scope bool }

func (o scopeOption) apply(r *runOptions) {
	r.checks.Set(config.ScopeChecks, o.scope)
}

func (o scopeOption) LogAttr() slog.Attr {
	return slog.Bool("scope", o.scope)
}

// WithNoLint is an [Option] to configure whether "# nolint:tifa" comments suppress issues.
func WithNoLint(nolint bool) Option { return nolintOption{nolint: nolint} }

type nolintOption struct{ nolint bool }

func (o nolintOption) apply(r *runOptions) {
	r.behavior.Set(config.NoLint, o.nolint)
}

func (o nolintOption) LogAttr() slog.Attr {
	return slog.Bool("nolint", o.nolint)
}

// WithBuiltins is an [Option] to configure whether built-in functions are modeled.
func WithBuiltins(builtins bool) Option { return builtinsOption{builtins: builtins} }

type builtinsOption struct{ builtins bool }

func (o builtinsOption) apply(r *runOptions) {
	r.behavior.Set(config.Builtins, o.builtins)
}

func (o builtinsOption) LogAttr() slog.Attr {
	return slog.Bool("builtins", o.builtins)
}

// WithPlaceholder is an [Option] to configure the identifier of an unconnected block.
// An empty placeholder disables the check.
func WithPlaceholder(placeholder string) Option { return placeholderOption{placeholder: placeholder} }

type placeholderOption struct{ placeholder string }

func (o placeholderOption) apply(r *runOptions) {
	r.placeholder = o.placeholder
}

func (o placeholderOption) LogAttr() slog.Attr {
	return slog.String("placeholder", o.placeholder)
}

// WithDisabled is an [Option] to suppress all issues of the given kinds.
func WithDisabled(kinds ...Kind) Option { return disabledOption{kinds: kinds} }

type disabledOption struct{ kinds []Kind }

func (o disabledOption) apply(r *runOptions) {
	for _, k := range o.kinds {
		r.disabled.Enable(k.Mask())
	}
}

func (o disabledOption) LogAttr() slog.Attr {
	names := make([]string, len(o.kinds))
	for i, k := range o.kinds {
		names[i] = k.String()
	}

	return slog.String("disabled", strings.Join(names, ","))
}
