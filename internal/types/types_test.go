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

package types_test

import (
	"testing"

	"github.com/shutter-cp/blockpy/ast"
	. "github.com/shutter-cp/blockpy/internal/types"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		a, b *Type
		want bool
	}{
		{"same scalar", NewNum(), NewNum(), true},
		{"different scalar", NewNum(), NewStr(), false},
		{"unknown", NewUnknown(), NewUnknown(), false},
		{"empty list", NewList(nil), NewList(NewNum()), true},
		{"list elements", NewList(NewNum()), NewList(NewStr()), false},
		{"tuple arity", NewTuple(NewNum()), NewTuple(NewNum(), NewNum()), false},
		{"tuple elements", NewTuple(NewNum(), NewStr()), NewTuple(NewNum(), NewStr()), true},
		{"dict", NewDict(NewStr(), NewNum()), NewDict(NewStr(), NewStr()), false},
		{"empty dict", NewDict(nil, nil), NewDict(NewStr(), NewStr()), true},
		{"list and set", NewList(nil), NewSet(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %t, expected %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestConflict(t *testing.T) {
	t.Parallel()

	if !Conflict(NewNum(), NewStr()) {
		t.Error("Expected Num and Str to conflict")
	}

	if Conflict(NewNum(), NewUnknown()) {
		t.Error("Expected no conflict with an unknown type")
	}

	if Conflict(NewList(NewUnknown()), NewList(NewNum())) {
		t.Error("Expected no conflict with a partially unknown type")
	}
}

func TestSelfReferentialList(t *testing.T) {
	t.Parallel()

	l := NewList(nil)
	AddElement(l, l)

	if !Equal(l, l) {
		t.Error("Expected a self-referential list to equal itself")
	}

	if s := l.String(); s == "" {
		t.Error("Expected a printable self-referential list")
	}
}

func TestCopy(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		typ    *Type
		shared bool
	}{
		{"list", NewList(NewNum()), true},
		{"set", NewSet(NewStr()), true},
		{"dict", NewDict(NewStr(), NewNum()), true},
		{"function", NewFunction(&Definition{Name: "fill"}), true},
		{"file", NewFile(), true},
		{"number", NewNum(), false},
		{"string", NewStr(), false},
		{"tuple", NewTuple(NewNum()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Copy(tt.typ) == tt.typ; got != tt.shared {
				t.Errorf("Got shared %t, expected %t", got, tt.shared)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	full := NewList(NewNum())

	if got := Merge(NewList(nil), full); got != full {
		t.Errorf("Got %s, expected the non-empty list", got)
	}

	if got := Merge(NewUnknown(), NewStr()); got.Kind != Str {
		t.Errorf("Got %s, expected Str", got)
	}

	if got := Merge(NewNum(), NewStr()); got.Kind != Num {
		t.Errorf("Got %s, expected the left side", got)
	}
}

func TestSubscript(t *testing.T) {
	t.Parallel()

	tuple := NewTuple(NewNum(), NewStr())

	tests := [...]struct {
		name     string
		t        *Type
		index    int
		constant bool
		want     string
	}{
		{"list", NewList(NewStr()), 0, false, "Str"},
		{"empty list", NewList(nil), 0, true, "Unknown"},
		{"tuple constant", tuple, 1, true, "Str"},
		{"tuple negative", tuple, -2, true, "Num"},
		{"tuple out of range", tuple, 5, true, "Unknown"},
		{"tuple variable", tuple, 0, false, "Unknown"},
		{"homogeneous tuple variable", NewTuple(NewNum(), NewNum()), 0, false, "Num"},
		{"dict", NewDict(NewStr(), NewNum()), 0, false, "Num"},
		{"string", NewStr(), 0, true, "Str"},
		{"number", NewNum(), 0, true, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Subscript(tt.t, tt.index, tt.constant).String(); got != tt.want {
				t.Errorf("Got %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestBinOp(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name        string
		op          ast.Operator
		left, right *Type
		want        string
		ok          bool
	}{
		{"add numbers", ast.Add, NewNum(), NewNum(), "Num", true},
		{"add strings", ast.Add, NewStr(), NewStr(), "Str", true},
		{"add mixed", ast.Add, NewNum(), NewStr(), "Unknown", false},
		{"concat lists", ast.Add, NewList(nil), NewList(NewNum()), "List[Num]", true},
		{"concat tuples", ast.Add, NewTuple(NewNum()), NewTuple(NewStr()), "Tuple[Num, Str]", true},
		{"repeat string", ast.Mult, NewNum(), NewStr(), "Str", true},
		{"repeat list", ast.Mult, NewList(NewStr()), NewNum(), "List[Str]", true},
		{"format", ast.Mod, NewStr(), NewTuple(NewNum()), "Str", true},
		{"subtract strings", ast.Sub, NewStr(), NewStr(), "Unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := BinOp(tt.op, tt.left, tt.right)
			if ok != tt.ok || got.String() != tt.want {
				t.Errorf("Got %s, %t, expected %s, %t", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestUnaryOp(t *testing.T) {
	t.Parallel()

	if got := UnaryOp(ast.Not, NewStr()); got.Kind != Bool {
		t.Errorf("Got %s, expected Bool", got)
	}

	if got := UnaryOp(ast.USub, NewNum()); got.Kind != Num {
		t.Errorf("Got %s, expected Num", got)
	}

	if got := UnaryOp(ast.USub, NewStr()); got.IsKnown() {
		t.Errorf("Got %s, expected Unknown", got)
	}
}

func TestMethods(t *testing.T) {
	t.Parallel()

	l := NewList(nil)

	appendFn, ok := LookupMethod(l, "append")
	if !ok {
		t.Fatal("Expected lists to have append")
	}

	if got := appendFn(l, []*Type{NewStr()}); got.Kind != None {
		t.Errorf("Got %s, expected None", got)
	}

	if l.String() != "List[Str]" {
		t.Errorf("Got %s, expected the appended element type", l)
	}

	if !IsMutator("append") || IsMutator("pop") {
		t.Error("Expected append to be the only mutator")
	}

	if _, ok := LookupMethod(NewNum(), "append"); ok {
		t.Error("Expected numbers to have no append")
	}
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		args []*Type
		want string
	}{
		{"len", []*Type{NewList(nil)}, "Num"},
		{"range", []*Type{NewNum()}, "List[Num]"},
		{"sorted", []*Type{NewList(NewStr())}, "List[Str]"},
		{"enumerate", []*Type{NewList(NewStr())}, "List[Tuple[Num, Str]]"},
		{"zip", []*Type{NewList(NewNum()), NewList(NewStr())}, "List[Tuple[Num, Str]]"},
		{"max", []*Type{NewList(NewNum())}, "Num"},
		{"open", []*Type{NewStr()}, "File"},
		{"print", nil, "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn, ok := LookupBuiltin(tt.name)
			if !ok || !fn.Def.IsBuiltin() {
				t.Fatalf("Expected %s to be a built-in", tt.name)
			}

			if got := fn.Def.Builtin(tt.args).String(); got != tt.want {
				t.Errorf("Got %s, expected %s", got, tt.want)
			}
		})
	}

	if IsBuiltin("frobnicate") {
		t.Error("Expected frobnicate to be unknown")
	}
}
