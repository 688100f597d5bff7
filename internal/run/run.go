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

// Package run implements the analysis pipeline: parsing a source file and
// interpreting the resulting module, each analysis in its own session.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"time"

	"github.com/google/uuid"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/astutil"
	"github.com/shutter-cp/blockpy/internal/interp"
	"github.com/shutter-cp/blockpy/internal/parser"
	"github.com/shutter-cp/blockpy/internal/report"
)

// ErrModuleMissing is returned when an analysis is requested without a syntax tree.
var ErrModuleMissing = errors.New("module missing")

// Code parses code and analyzes the resulting module. A parse error yields a
// failed report carrying the error unmodified.
func Code(ctx context.Context, filename, code string, opts *interp.Options) *report.Report {
	if opts == nil {
		opts = interp.DefaultOptions()
	}

	logger := sessionLogger(opts.Logger, filename)

	region := trace.StartRegion(ctx, "Parse")
	module, err := parser.Parse(code)
	region.End()

	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "Parse failed", slog.Any("error", err))

		return report.Failed(err)
	}

	return analyze(ctx, logger, filename, module, opts)
}

// Module analyzes an already parsed module.
func Module(ctx context.Context, filename string, module *ast.Module, opts *interp.Options) *report.Report {
	if opts == nil {
		opts = interp.DefaultOptions()
	}

	logger := sessionLogger(opts.Logger, filename)

	if module == nil {
		return report.Failed(fmt.Errorf("tifa: %s %w", filename, ErrModuleMissing))
	}

	return analyze(ctx, logger, filename, module, opts)
}

func analyze(ctx context.Context, logger *slog.Logger, filename string, module *ast.Module, opts *interp.Options) *report.Report {
	trace.Log(ctx, "file", filename)

	o := *opts
	o.Logger = logger

	start := time.Now()

	logger.LogAttrs(ctx, slog.LevelDebug, "Analysis started", slog.Int("statements", len(module.Body)))

	rep := interp.Run(ctx, astutil.NewCurrentFile(filename, module), module, &o)

	logger.LogAttrs(ctx, slog.LevelDebug, "Analysis done",
		slog.Bool("success", rep.Success),
		slog.Int("issues", rep.Total()),
		slog.Duration("elapsed", time.Since(start)))

	return rep
}

// sessionLogger tags all output of one analysis with a fresh session id.
func sessionLogger(logger *slog.Logger, filename string) *slog.Logger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return logger.With(slog.String("session", uuid.NewString()), slog.String("file", filename))
}
