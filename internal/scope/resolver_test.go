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

package scope_test

import (
	"testing"

	"github.com/shutter-cp/blockpy/ast"
	. "github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/types"
	"github.com/shutter-cp/blockpy/internal/usage"
)

func define(r *Resolver, name string, t *types.Type, line int) *usage.State {
	s := usage.NewDefined(name, t, ast.Position{Line: line})
	r.Install(r.Local(name), s)

	return s
}

func TestFindScopes(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	define(r, "a", types.NewNum(), 1)

	fn := r.EnterScope(0)
	if !r.InFunction() || r.Scope() != fn {
		t.Fatalf("Expected to be in scope %d", fn)
	}

	f, ok := r.Find("a")
	if !ok || f.Local || f.Key.Scope != 0 {
		t.Errorf("Got %+v, %t, expected a non-local module variable", f, ok)
	}

	define(r, "a", types.NewStr(), 2)

	if f, _ := r.Find("a"); !f.Local || f.State.Type.Kind != types.Str {
		t.Errorf("Got %+v, expected the local variable to shadow", f)
	}

	if q := r.Qualified(r.Local("a")); q != "0/1/a" {
		t.Errorf("Got qualified name %q, expected 0/1/a", q)
	}

	r.ExitScope()

	if r.InFunction() {
		t.Error("Expected to be back in the module scope")
	}

	if f, _ := r.Find("a"); f.State.Type.Kind != types.Num {
		t.Errorf("Got %s, expected the module variable", f.State.Type)
	}

	if _, ok := r.Find("b"); ok {
		t.Error("Expected b to be undefined")
	}
}

func TestLexicalChain(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	outer := r.EnterScope(0)
	define(r, "x", types.NewNum(), 1)

	// A call from inside the outer function to a module-level function
	// doesn't see the caller's locals.
	r.EnterScope(0)

	if _, ok := r.Find("x"); ok {
		t.Error("Expected the caller's locals to be invisible")
	}

	r.ExitScope()

	r.EnterScope(outer)

	if f, ok := r.Find("x"); !ok || f.Local {
		t.Errorf("Got %+v, %t, expected x from the enclosing function", f, ok)
	}
}

func TestOwn(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	orig := define(r, "a", types.NewNum(), 1)

	r.EnterPath()

	f, _ := r.Find("a")

	owned := r.Own(f)
	if owned == orig {
		t.Fatal("Expected a copy on the nested path")
	}

	owned.Load(ast.Position{Line: 2})

	if orig.Read != usage.No {
		t.Error("Expected the enclosing path to keep its state")
	}

	if f, _ := r.Find("a"); r.Own(f) != owned {
		t.Error("Expected the owned state to be reused on the same path")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	define(r, "a", types.NewNum(), 1)

	r.EnterPath()
	define(r, "a", types.NewStr(), 2)
	define(r, "b", types.NewNum(), 2)
	left := r.ExitPath()

	r.EnterPath()
	f, _ := r.Find("a")
	r.Own(f).Load(ast.Position{Line: 3})
	right := r.ExitPath()

	conflicts := r.Merge(left, right)
	if len(conflicts) != 1 || conflicts[0].Key.Name != "a" {
		t.Errorf("Got conflicts %v, expected one for a", conflicts)
	}

	a, _ := r.Find("a")
	if a.Path != 0 || a.State.Read != usage.Maybe {
		t.Errorf("Got %+v, expected a maybe read a on the root path", a.State)
	}

	b, _ := r.Find("b")
	if b.State.Set != usage.Maybe {
		t.Errorf("Got %+v, expected b to be maybe set", b.State)
	}

	if vars := r.Variables(); len(vars) != 1 {
		t.Errorf("Got %d paths, expected the arms to be discarded", len(vars))
	}
}

func TestAbsorb(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	r.EnterPath()
	define(r, "keep", types.NewNum(), 1)
	define(r, "drop", types.NewNum(), 1)
	path := r.ExitPath()

	r.Absorb(path, func(k Key) bool { return k.Name == "drop" })

	var names []string
	for key := range r.States(0) {
		names = append(names, key.Name)
	}

	if len(names) != 1 || names[0] != "keep" {
		t.Errorf("Got %v, expected only keep", names)
	}
}

func TestExitRoot(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	if r.ExitPath() != 0 || r.Path() != 0 {
		t.Error("Expected the root path to stay active")
	}

	r.ExitScope()

	if r.Scope() != 0 {
		t.Error("Expected the module scope to stay active")
	}
}
