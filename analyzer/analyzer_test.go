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

package analyzer_test

import (
	"flag"
	"log/slog"
	"strings"
	"testing"

	. "github.com/shutter-cp/blockpy/analyzer"
	"github.com/shutter-cp/blockpy/analyzer/level"
	"github.com/shutter-cp/blockpy/internal/testsource"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testsource.Run(t, testsource.TestData(t), Default.ProcessCode)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		src     string
		fired   []Kind
		clean   []Kind
	}{
		{
			name:  "Default",
			src:   "a = [1, \"two\"]\nprint(a)\n",
			clean: []Kind{IncompatibleTypes},
		},
		{
			name:    "StrictLists",
			options: WithLists(level.ListsStrict),
			src:     "a = [1, \"two\"]\nprint(a)\n",
			fired:   []Kind{IncompatibleTypes},
		},
		{
			name:    "FirstElement",
			options: WithLists(level.ListsFirst),
			src:     "a = [1, \"two\"]\nprint(a[0] + 1)\n",
			clean:   []Kind{IncompatibleTypes},
		},
		{
			name:    "StrictOperands",
			options: WithOperands(level.OperandsStrict),
			src:     "def add_first(a_list):\n    for element in a_list:\n        return element + 5\nprint(add_first(1))\n",
			fired:   []Kind{IncompatibleTypes, NonListIterations},
		},
		{
			name:    "NoPassChecks",
			options: WithPassChecks(false),
			src:     "if True:\n    pass\n",
			clean:   []Kind{EmptyBody, UnnecessaryPass},
		},
		{
			name:    "NoIterationChecks",
			options: WithIterationChecks(false),
			src:     "items = [1]\nfor x in items:\n    items.append(1)\n",
			clean:   []Kind{UsedIterationList, UnusedIterationVariable},
		},
		{
			name:    "NoScopeChecks",
			options: WithScopeChecks(false),
			src:     "data = [1]\ndef f():\n    data.append(2)\n    return data\nf()\n",
			clean:   []Kind{ReadOutOfScope, WriteOutOfScope},
		},
		{
			name:    "NoLintDisabled",
			options: WithNoLint(false),
			src:     "a = 0  # nolint:tifa\n",
			fired:   []Kind{UnreadVariables},
		},
		{
			name:    "NoBuiltins",
			options: WithBuiltins(false),
			src:     "print(1)\nlist = [1]\nprint(list)\n",
			fired:   []Kind{UnknownFunctions},
			clean:   []Kind{AliasedBuiltin},
		},
		{
			name:    "Placeholder",
			options: WithPlaceholder("__gap__"),
			src:     "a = __gap__\nb = ___\nprint(a, b)\n",
			fired:   []Kind{UnconnectedBlocks, UndefinedVariables},
		},
		{
			name:    "Disabled",
			options: WithDisabled(UnreadVariables, OverwrittenVariables),
			src:     "a = 0\na = 1\n",
			clean:   []Kind{UnreadVariables, OverwrittenVariables},
		},
		{
			name:    "ShallowCalls",
			options: Options{WithMaxCallDepth(1), WithLogger(nil)},
			src:     "def inner():\n    return \"a\"\ndef outer():\n    return inner() + 1\nprint(outer())\n",
			clean:   []Kind{IncompatibleTypes},
		},
		{
			name:    "DeepCalls",
			options: WithMaxCallDepth(2),
			src:     "def inner():\n    return \"a\"\ndef outer():\n    return inner() + 1\nprint(outer())\n",
			fired:   []Kind{IncompatibleTypes},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(tt.options).ProcessCode(t.Context(), "test.py", tt.src)
			if !r.Success {
				t.Fatalf("ProcessCode() failed: %v", r.Err)
			}

			for _, k := range tt.fired {
				if !r.Fired(k) {
					t.Errorf("ProcessCode() did not report %q", k)
				}
			}

			for _, k := range tt.clean {
				if r.Fired(k) {
					t.Errorf("ProcessCode() reported %q: %v", k, r.Issues[k])
				}
			}
		})
	}
}

func TestProcessAST(t *testing.T) {
	t.Parallel()

	m := testsource.Parse(t, `
a = 0
print(a)
`)

	r := Default.ProcessAST(t.Context(), "test.py", m)
	if !r.Success {
		t.Fatalf("ProcessAST() failed: %v", r.Err)
	}

	if got := r.Total(); got != 0 {
		t.Errorf("ProcessAST() reported %d issues, want 0", got)
	}

	if r := Default.ProcessAST(t.Context(), "test.py", nil); r.Success {
		t.Error("ProcessAST(nil) succeeded, want failure")
	}
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	a := New()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	a.RegisterFlags(fs)

	if err := fs.Parse([]string{"-lists=strict", "-disable=Unread variables", "-pass=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	r := a.ProcessCode(t.Context(), "test.py", "x = [1, \"a\"]\nif x:\n    pass\n")

	if !r.Fired(IncompatibleTypes) {
		t.Error("-lists=strict not applied")
	}

	if r.Fired(UnreadVariables) {
		t.Error("-disable not applied")
	}

	if r.Fired(EmptyBody) {
		t.Error("-pass=false not applied")
	}

	if got, want := fs.Lookup("disable").Value.String(), "Unread variables"; got != want {
		t.Errorf("disable = %q, want %q", got, want)
	}
}

func TestRegisterFlagsInvalidKind(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	New().RegisterFlags(fs)

	if err := fs.Parse([]string{"-disable=Spelling"}); err == nil {
		t.Error("Parse succeeded, want error")
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithScopeChecks(false), nil, Options{WithLists(level.ListsFirst)}, WithDisabled(EmptyBody)}

	var out strings.Builder
	logger := slog.New(slog.NewTextHandler(&out, nil))
	logger.Info("config", opts.LogAttr())

	got := out.String()
	for _, want := range []string{"options.scope=false", "options.nil=<nil>", "options.lists=first", `options.disabled="Empty Body"`} {
		if !strings.Contains(got, want) {
			t.Errorf("LogAttr() = %q, want to contain %q", got, want)
		}
	}
}
