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

package run_test

import (
	"errors"
	"testing"

	"github.com/shutter-cp/blockpy/internal/parser"
	"github.com/shutter-cp/blockpy/internal/report"
	. "github.com/shutter-cp/blockpy/internal/run"
	"github.com/shutter-cp/blockpy/internal/testsource"
)

func TestCode(t *testing.T) {
	t.Parallel()

	rep := Code(t.Context(), "a.py", "a = 1\n", nil)
	if !rep.Success || !rep.Fired(report.UnreadVariables) {
		t.Errorf("Got %+v, expected an unread variable", rep)
	}
}

func TestCodeSyntaxError(t *testing.T) {
	t.Parallel()

	rep := Code(t.Context(), "a.py", "a = (\n", nil)
	if rep.Success || !parser.IsSyntaxError(rep.Err) {
		t.Errorf("Got %v, expected a syntax error", rep.Err)
	}
}

func TestModule(t *testing.T) {
	t.Parallel()

	module := testsource.Parse(t, "print(b)")

	if rep := Module(t.Context(), "b.py", module, nil); !rep.Fired(report.UndefinedVariables) {
		t.Errorf("Got %+v, expected an undefined variable", rep)
	}

	if rep := Module(t.Context(), "c.py", nil, nil); !errors.Is(rep.Err, ErrModuleMissing) {
		t.Errorf("Got %v, expected a missing module", rep.Err)
	}
}
