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

package astutil_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/shutter-cp/blockpy/ast"
	. "github.com/shutter-cp/blockpy/internal/astutil"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text string
		want bool
	}{
		{"nolint:tifa", true},
		{"nolint:TIFA", true},
		{"nolint:all", true},
		{"nolint:other,tifa", true},
		{"nolint:other", false},
		{"nolint", false},
		{"see nolint:tifa", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	module := &ast.Module{Comments: []*ast.Comment{
		{Position: ast.Position{Line: 2, Column: 8}, Text: "nolint:tifa"},
		{Position: ast.Position{Line: 3}, Text: "a comment"},
	}}

	f := NewCurrentFile("a.py", module)

	if !f.Valid() || f.Name() != "a.py" {
		t.Fatalf("Got %+v, expected a valid file a.py", f)
	}

	if !f.NoLintComment(ast.Position{Line: 2}) || f.NoLintComment(ast.Position{Line: 3}) {
		t.Error("Expected only line 2 to be suppressed")
	}

	if NewCurrentFile("b.py", nil).Valid() {
		t.Error("Expected a file without module to be invalid")
	}
}

func TestAllAssignedNames(t *testing.T) {
	t.Parallel()

	target := &ast.Tuple{Elts: []ast.Expr{
		&ast.Name{ID: "a"},
		&ast.List{Elts: []ast.Expr{&ast.Name{ID: "b"}, &ast.Subscript{Value: &ast.Name{ID: "x"}}}},
		&ast.Starred{Value: &ast.Name{ID: "c"}},
	}}

	var names []string
	for n := range AllAssignedNames(target) {
		names = append(names, n.ID)
	}

	if !slices.Equal(names, []string{"a", "b", "c"}) {
		t.Errorf("Got %v, expected [a b c]", names)
	}

	for n := range AllAssignedNames(target) {
		if n.ID != "a" {
			t.Errorf("Got %s after break", n.ID)
		}

		break
	}

	if NameOf(&ast.Name{ID: "x"}) != "x" || NameOf(&ast.Num{Value: "1"}) != "" {
		t.Error("Unexpected NameOf result")
	}
}

func TestContainsYield(t *testing.T) {
	t.Parallel()

	yield := &ast.ExprStmt{Value: &ast.Yield{Value: &ast.Num{Value: "1"}}}

	tests := [...]struct {
		name string
		body []ast.Stmt
		want bool
	}{
		{"plain", []ast.Stmt{&ast.Pass{}}, false},
		{"yield", []ast.Stmt{yield}, true},
		{"nested in if", []ast.Stmt{&ast.If{Test: &ast.Name{ID: "a"}, Body: []ast.Stmt{yield}}}, true},
		{"nested function", []ast.Stmt{&ast.FunctionDef{Name: "g", Body: []ast.Stmt{yield}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ContainsYield(tt.body); got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestRecovered(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")

	tests := [...]struct {
		name  string
		value any
		cause error
	}{
		{"internal", &InternalError{Err: cause, Msg: "bad node"}, cause},
		{"error", cause, cause},
		{"string", "boom", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Recovered(tt.value)
			if !errors.Is(err, ErrInternal) {
				t.Errorf("Got %v, expected an internal error", err)
			}

			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("Got %v, expected it to wrap %v", err, tt.cause)
			}
		})
	}
}

func TestInternalPanic(t *testing.T) {
	t.Parallel()

	defer func() {
		err := Recovered(recover())

		var ie *InternalError
		if !errors.As(err, &ie) || ie.Pos.Line != 4 {
			t.Errorf("Got %v, expected an internal error on line 4", err)
		}
	}()

	InternalPanic(ast.Position{Line: 4}, nil, "unexpected %s", "node")
}
