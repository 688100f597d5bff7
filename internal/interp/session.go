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
	"context"
	"errors"
	"log/slog"
	"runtime/trace"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/astutil"
	"github.com/shutter-cp/blockpy/internal/config"
	"github.com/shutter-cp/blockpy/internal/report"
	"github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/types"
)

// ErrInternal is wrapped by every error of a failed analysis that is not a parse error.
var ErrInternal = astutil.ErrInternal

// ErrUnsupportedNode is wrapped by the internal error raised for a syntax node
// the interpreter has no handler for.
var ErrUnsupportedNode = errors.New("unsupported node")

// session is the state of one analysis.
type session struct {
	ctx    context.Context //nolint:containedctx
	opts   *Options
	logger *slog.Logger

	resolver *scope.Resolver
	sink     *report.Sink

	frames []*frame // modeled calls, innermost last
	loops  []*loop  // active for-loops, innermost last

	calls int
	depth int // syntax tree nesting of the visited node
}

// frame is a modeled function call.
type frame struct {
	def *types.Definition
	ret *types.Type
}

// Run interprets module and returns the collected issues and variable states.
// A panic raised during the walk produces a failed report.
func Run(ctx context.Context, file astutil.CurrentFile, module *ast.Module, opts *Options) (rep *report.Report) {
	ctx, task := trace.NewTask(ctx, "Tifa")
	defer task.End()

	if opts == nil {
		opts = DefaultOptions()
	}

	s := newSession(ctx, file, opts)

	defer func() {
		if r := recover(); r != nil {
			err := astutil.Recovered(r)
			s.logger.LogAttrs(ctx, slog.LevelError, "Analysis aborted", slog.Any("error", err))

			rep = report.Failed(err)
		}
	}()

	s.structure(module)

	func() {
		defer trace.StartRegion(ctx, "Interpret").End()

		s.body(module.Body)
		s.finishScope()
	}()

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Analysis finished", slog.Int("calls", s.calls))

	return &report.Report{
		Success:   true,
		Issues:    s.sink.Issues(),
		Variables: s.resolver.Variables(),
	}
}

func newSession(ctx context.Context, file astutil.CurrentFile, opts *Options) *session {
	var suppress func(report.Record) bool
	if opts.Behavior.Enabled(config.NoLint) && file.Valid() {
		suppress = func(rec report.Record) bool { return file.NoLintComment(rec.Pos) }
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	maxDepth := opts.MaxCallDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxCallDepth
	}

	o := *opts
	o.MaxCallDepth = maxDepth

	return &session{
		ctx:      ctx,
		opts:     &o,
		logger:   logger,
		resolver: scope.NewResolver(),
		sink:     report.NewSink(opts.Disabled, suppress),
	}
}

// report records an issue occurrence.
func (s *session) report(kind report.Kind, rec report.Record) {
	if s.logger.Enabled(s.ctx, slog.LevelDebug) {
		s.logger.LogAttrs(s.ctx, slog.LevelDebug, "Issue",
			slog.String("kind", kind.String()),
			slog.String("position", rec.Pos.String()),
			slog.Int("depth", s.depth),
			slog.String("detail", rec.Detail()))
	}

	s.sink.Report(kind, rec)
}

// check reports whether a check family is enabled.
func (s *session) check(c config.Checks) bool {
	return s.opts.Checks.Enabled(c)
}

// builtin returns the type of a built-in name, if built-ins are modeled.
func (s *session) builtin(name string) (*types.Type, bool) {
	if !s.opts.Behavior.Enabled(config.Builtins) {
		return nil, false
	}

	return types.LookupBuiltin(name)
}

// placeholder reports whether name is the unfilled block marker.
func (s *session) placeholder(name string) bool {
	return s.opts.Placeholder != "" && name == s.opts.Placeholder
}
