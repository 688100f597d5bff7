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

package types

import "github.com/shutter-cp/blockpy/ast"

type opKey struct {
	op          ast.Operator
	left, right Kind
}

type resultFunc func(left, right *Type) *Type

var binops = map[opKey]resultFunc{
	{ast.Add, Num, Num}:     num,
	{ast.Add, Str, Str}:     str,
	{ast.Add, List, List}:   concat,
	{ast.Add, Tuple, Tuple}: concat,

	{ast.Sub, Num, Num}: num,
	{ast.Sub, Set, Set}: keepLeft,

	{ast.Mult, Num, Num}:   num,
	{ast.Mult, Num, Str}:   str,
	{ast.Mult, Str, Num}:   str,
	{ast.Mult, Num, List}:  keepRight,
	{ast.Mult, List, Num}:  keepLeft,
	{ast.Mult, Num, Tuple}: keepRight,
	{ast.Mult, Tuple, Num}: keepLeft,

	{ast.Div, Num, Num}:      num,
	{ast.FloorDiv, Num, Num}: num,
	{ast.Pow, Num, Num}:      num,

	{ast.Mod, Num, Num}:   num,
	{ast.Mod, Str, Num}:   str,
	{ast.Mod, Str, Str}:   str,
	{ast.Mod, Str, Tuple}: str,

	{ast.LShift, Num, Num}: num,
	{ast.RShift, Num, Num}: num,
	{ast.BitAnd, Num, Num}: num,
	{ast.BitOr, Num, Num}:  num,
	{ast.BitXor, Num, Num}: num,
	{ast.BitAnd, Set, Set}: keepLeft,
	{ast.BitOr, Set, Set}:  concat,
	{ast.BitXor, Set, Set}: concat,
}

// BinOp returns the result type of a binary operation. It reports false when
// the operand kinds are not compatible with the operator.
func BinOp(op ast.Operator, left, right *Type) (*Type, bool) {
	if left == nil || right == nil {
		return NewUnknown(), false
	}

	result, ok := binops[opKey{op, left.Kind, right.Kind}]
	if !ok {
		return NewUnknown(), false
	}

	return result(left, right), true
}

func num(_, _ *Type) *Type { return NewNum() }

func str(_, _ *Type) *Type { return NewStr() }

// concat joins two sequences of the same kind into a new value.
func concat(left, right *Type) *Type {
	switch left.Kind {
	case Tuple:
		subtypes := make([]*Type, 0, len(left.Subtypes)+len(right.Subtypes))
		subtypes = append(subtypes, left.Subtypes...)
		subtypes = append(subtypes, right.Subtypes...)

		return NewTuple(subtypes...)

	default:
		merged := Merge(left, right)

		return &Type{Kind: merged.Kind, Empty: merged.Empty, Subtype: merged.Subtype}
	}
}

// keepLeft returns a new value shaped like the left operand.
func keepLeft(left, _ *Type) *Type { return repeat(left) }

// keepRight returns a new value shaped like the right operand.
func keepRight(_, right *Type) *Type { return repeat(right) }

func repeat(t *Type) *Type {
	c := *t
	c.Subtypes = append([]*Type(nil), t.Subtypes...)

	return &c
}

// UnaryOp returns the result type of a unary operation.
func UnaryOp(op ast.UnaryOperator, operand *Type) *Type {
	switch {
	case op == ast.Not:
		return NewBool()

	case operand.IsKnown() && (operand.Kind == Num || operand.Kind == Bool):
		return NewNum()

	default:
		return NewUnknown()
	}
}
