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

// Package types implements the abstract type lattice of the analyzer:
// type equality, copy semantics, merging and the result of operators,
// methods and built-in functions on abstract types.
package types

import (
	"strings"

	"github.com/shutter-cp/blockpy/ast"
)

// Kind is the kind of an abstract type.
type Kind uint8

//go:generate go tool stringer -type Kind
const (
	Unknown Kind = iota
	Num
	Bool
	Str
	None
	List
	Tuple
	Set
	Dict
	Function
	File
	Module
)

// maxDepth bounds recursion into self-referential containers.
const maxDepth = 8

// Type is an abstract type. Containers describe their elements; an empty
// container has no element information yet.
type Type struct {
	Kind Kind

	// Empty is set for containers without known elements.
	Empty bool

	// Subtype is the element type of a List or Set.
	Subtype *Type

	// Subtypes are the element types of a Tuple.
	Subtypes []*Type

	// Keys and Values describe a Dict.
	Keys, Values *Type

	// Def is the definition of a Function.
	Def *Definition

	// Name is the imported name of a Module.
	Name string
}

// Definition captures a function: the syntax of a user definition, or the
// result function of a built-in.
type Definition struct {
	Name string
	Pos  ast.Position

	// Params and Body of a user definition.
	Params []*ast.Param
	Body   []ast.Stmt

	// Defaults are the types of parameter defaults, evaluated at definition.
	Defaults []*Type

	// Generator is set when the body yields; calls return Unknown.
	Generator bool

	// Scope is the innermost scope id where the function was defined.
	Scope int32

	// Builtin computes the result type of a call without a body to walk:
	// built-in functions and lambdas.
	Builtin func(args []*Type) *Type
}

// IsBuiltin reports whether calls are modeled by Builtin instead of a body.
func (d *Definition) IsBuiltin() bool { return d.Builtin != nil }

// NewUnknown returns a type no inference could be made for.
func NewUnknown() *Type { return &Type{Kind: Unknown} }

// NewNum returns a numeric type.
func NewNum() *Type { return &Type{Kind: Num} }

// NewBool returns a boolean type.
func NewBool() *Type { return &Type{Kind: Bool} }

// NewStr returns a string type.
func NewStr() *Type { return &Type{Kind: Str} }

// NewNone returns the type of None.
func NewNone() *Type { return &Type{Kind: None} }

// NewFile returns the type of an open file.
func NewFile() *Type { return &Type{Kind: File} }

// NewModule returns the type of an imported module.
func NewModule(name string) *Type { return &Type{Kind: Module, Name: name} }

// NewFunction returns the type of a function with the given definition.
func NewFunction(def *Definition) *Type { return &Type{Kind: Function, Def: def} }

// NewList returns a list type. A nil element type yields an empty list.
func NewList(elem *Type) *Type {
	return &Type{Kind: List, Empty: elem == nil, Subtype: elem}
}

// NewSet returns a set type. A nil element type yields an empty set.
func NewSet(elem *Type) *Type {
	return &Type{Kind: Set, Empty: elem == nil, Subtype: elem}
}

// NewTuple returns a tuple type with the given element types.
func NewTuple(elems ...*Type) *Type {
	return &Type{Kind: Tuple, Empty: len(elems) == 0, Subtypes: elems}
}

// NewDict returns a dict type. Nil key and value types yield an empty dict.
func NewDict(keys, values *Type) *Type {
	return &Type{Kind: Dict, Empty: keys == nil && values == nil, Keys: keys, Values: values}
}

// IsKnown reports whether the type carries inference information at the top level.
func (t *Type) IsKnown() bool { return t != nil && t.Kind != Unknown }

// IsMutable reports whether values of this type are shared by reference.
func (t *Type) IsMutable() bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case List, Set, Dict, File:
		return true

	default:
		return false
	}
}

// IsContainer reports whether the type has elements.
func (t *Type) IsContainer() bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case List, Tuple, Set, Dict:
		return true

	default:
		return false
	}
}

// String returns a human-readable form, like List[Num] or Dict[Str: Num].
func (t *Type) String() string {
	var b strings.Builder
	t.format(&b, 0)

	return b.String()
}

func (t *Type) format(b *strings.Builder, depth int) {
	if t == nil {
		b.WriteString(Unknown.String())

		return
	}

	b.WriteString(t.Kind.String())

	if depth >= maxDepth {
		if t.IsContainer() {
			b.WriteString("[...]")
		}

		return
	}

	switch t.Kind {
	case List, Set:
		b.WriteByte('[')
		if !t.Empty {
			t.Subtype.format(b, depth+1)
		}
		b.WriteByte(']')

	case Tuple:
		b.WriteByte('[')
		for i, s := range t.Subtypes {
			if i > 0 {
				b.WriteString(", ")
			}
			s.format(b, depth+1)
		}
		b.WriteByte(']')

	case Dict:
		b.WriteByte('[')
		if !t.Empty {
			t.Keys.format(b, depth+1)
			b.WriteString(": ")
			t.Values.format(b, depth+1)
		}
		b.WriteByte(']')

	case Function:
		if t.Def != nil {
			b.WriteByte('(')
			b.WriteString(t.Def.Name)
			b.WriteByte(')')
		}

	case Module:
		if t.Name != "" {
			b.WriteByte('(')
			b.WriteString(t.Name)
			b.WriteByte(')')
		}
	}
}
