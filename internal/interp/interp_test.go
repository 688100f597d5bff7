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

package interp_test

import (
	"errors"
	"testing"

	"github.com/shutter-cp/blockpy/analyzer/level"
	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/astutil"
	"github.com/shutter-cp/blockpy/internal/config"
	. "github.com/shutter-cp/blockpy/internal/interp"
	"github.com/shutter-cp/blockpy/internal/report"
	"github.com/shutter-cp/blockpy/internal/testsource"
)

func TestRunOptions(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		src    string
		modify func(o *Options)
		kind   report.Kind
		fired  bool
	}{
		{
			name:   "lists last",
			src:    "a = [1, 'x']\nb = a[0] + 1\nprint(b)",
			modify: func(*Options) {},
			kind:   report.IncompatibleTypes,
			fired:  true,
		},
		{
			name:   "lists first",
			src:    "a = [1, 'x']\nb = a[0] + 1\nprint(b)",
			modify: func(o *Options) { o.Lists = level.ListsFirst },
			kind:   report.IncompatibleTypes,
			fired:  false,
		},
		{
			name:   "lists strict",
			src:    "a = [1, 'x']\nprint(a)",
			modify: func(o *Options) { o.Lists = level.ListsStrict },
			kind:   report.IncompatibleTypes,
			fired:  true,
		},
		{
			name:   "operands known",
			src:    "a = type(1) + 1\nprint(a)",
			modify: func(*Options) {},
			kind:   report.IncompatibleTypes,
			fired:  false,
		},
		{
			name:   "operands strict",
			src:    "a = type(1) + 1\nprint(a)",
			modify: func(o *Options) { o.Operands = level.OperandsStrict },
			kind:   report.IncompatibleTypes,
			fired:  true,
		},
		{
			name:   "nolint",
			src:    "a = 0  # nolint:tifa",
			modify: func(*Options) {},
			kind:   report.UnreadVariables,
			fired:  false,
		},
		{
			name:   "nolint ignored",
			src:    "a = 0  # nolint:tifa",
			modify: func(o *Options) { o.Behavior.Disable(config.NoLint) },
			kind:   report.UnreadVariables,
			fired:  true,
		},
		{
			name:   "disabled kind",
			src:    "a = 0",
			modify: func(o *Options) { o.Disabled.Enable(report.UnreadVariables.Mask()) },
			kind:   report.UnreadVariables,
			fired:  false,
		},
		{
			name:   "builtins",
			src:    "print(1)",
			modify: func(*Options) {},
			kind:   report.UnknownFunctions,
			fired:  false,
		},
		{
			name:   "no builtins",
			src:    "print(1)",
			modify: func(o *Options) { o.Behavior.Disable(config.Builtins) },
			kind:   report.UnknownFunctions,
			fired:  true,
		},
		{
			name:   "placeholder",
			src:    "a = blank\nprint(a)",
			modify: func(o *Options) { o.Placeholder = "blank" },
			kind:   report.UnconnectedBlocks,
			fired:  true,
		},
		{
			name:   "pass checks off",
			src:    "if True:\n    pass\n    print(1)",
			modify: func(o *Options) { o.Checks.Disable(config.PassChecks) },
			kind:   report.UnnecessaryPass,
			fired:  false,
		},
		{
			name:   "scope checks off",
			src:    "a = [1]\ndef f():\n    print(a)\nf()",
			modify: func(o *Options) { o.Checks.Disable(config.ScopeChecks) },
			kind:   report.ReadOutOfScope,
			fired:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			module := testsource.Parse(t, tt.src)

			opts := DefaultOptions()
			tt.modify(opts)

			rep := Run(t.Context(), astutil.NewCurrentFile("test.py", module), module, opts)
			if !rep.Success {
				t.Fatalf("Analysis failed: %v", rep.Err)
			}

			if got := rep.Fired(tt.kind); got != tt.fired {
				t.Errorf("Got %s fired %t, expected %t", tt.kind, got, tt.fired)
			}
		})
	}
}

func TestRunRecursion(t *testing.T) {
	t.Parallel()

	module := testsource.Parse(t, `
def f(n):
    return f(n)

x = f(1)
print(x)
`)

	opts := DefaultOptions()
	opts.MaxCallDepth = 4

	rep := Run(t.Context(), astutil.NewCurrentFile("test.py", module), module, opts)
	if !rep.Success {
		t.Fatalf("Analysis failed: %v", rep.Err)
	}

	if rep.Fired(report.UnknownFunctions) || rep.Fired(report.UndefinedVariables) {
		t.Errorf("Got unexpected issues: %v", rep.Issues)
	}
}

func TestRunVariables(t *testing.T) {
	t.Parallel()

	module := testsource.Parse(t, "a = 1\nprint(a)")

	rep := Run(t.Context(), astutil.CurrentFile{}, module, nil)
	if !rep.Success {
		t.Fatalf("Analysis failed: %v", rep.Err)
	}

	a, ok := rep.Variables[0]["0/a"]
	if !ok {
		t.Fatalf("Got variables %v, expected 0/a", rep.Variables)
	}

	if a.Type.String() != "Num" || len(a.Trace) == 0 {
		t.Errorf("Got %+v, expected a read number", a)
	}
}

// unsupported is a statement no handler knows.
type unsupported struct{ ast.Pass }

func TestRunRecovers(t *testing.T) {
	t.Parallel()

	module := &ast.Module{Body: []ast.Stmt{&unsupported{}}}

	rep := Run(t.Context(), astutil.CurrentFile{}, module, nil)
	if rep.Success {
		t.Fatal("Expected the analysis to fail")
	}

	if !errors.Is(rep.Err, ErrInternal) {
		t.Errorf("Got %v, expected an internal error", rep.Err)
	}
}
