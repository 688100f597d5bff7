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

package ast

type (
	// BoolOp is a chain of and/or operations.
	BoolOp struct {
		Position
		Op     BoolOperator
		Values []Expr
	}

	// BinOp is a binary arithmetic operation.
	BinOp struct {
		Position
		Left  Expr
		Op    Operator
		Right Expr
	}

	// UnaryOp is a unary operation.
	UnaryOp struct {
		Position
		Op      UnaryOperator
		Operand Expr
	}

	// Compare is a comparison chain (a < b <= c).
	Compare struct {
		Position
		Left        Expr
		Ops         []CmpOperator
		Comparators []Expr
	}

	// IfExp is a conditional expression (body if test else orelse).
	IfExp struct {
		Position
		Test   Expr
		Body   Expr
		OrElse Expr
	}

	// Call is a function or method call.
	Call struct {
		Position
		Func     Expr
		Args     []Expr
		Keywords []*Keyword
	}

	// Keyword is a keyword argument.
	Keyword struct {
		Arg   string
		Value Expr
	}

	// Attribute is an attribute access (value.attr).
	Attribute struct {
		Position
		Value Expr
		Attr  string
		Ctx   Context
	}

	// Subscript is an index or slice access (value[index]).
	Subscript struct {
		Position
		Value Expr
		Index Expr
		Ctx   Context
	}

	// Slice is a slice inside a subscript. Any bound may be nil.
	Slice struct {
		Position
		Lower, Upper, Step Expr
	}

	// Name is an identifier.
	Name struct {
		Position
		ID  string
		Ctx Context
	}

	// Num is a numeric literal.
	Num struct {
		Position
		Value string
	}

	// Str is a string literal.
	Str struct {
		Position
		Value string
	}

	// List is a list display or a list target.
	List struct {
		Position
		Elts []Expr
		Ctx  Context
	}

	// Tuple is a tuple display or a tuple target.
	Tuple struct {
		Position
		Elts []Expr
		Ctx  Context
	}

	// Set is a set display.
	Set struct {
		Position
		Elts []Expr
	}

	// Dict is a dict display.
	Dict struct {
		Position
		Keys   []Expr
		Values []Expr
	}

	// ListComp is a list comprehension.
	ListComp struct {
		Position
		Elt        Expr
		Generators []*Comprehension
	}

	// SetComp is a set comprehension.
	SetComp struct {
		Position
		Elt        Expr
		Generators []*Comprehension
	}

	// DictComp is a dict comprehension.
	DictComp struct {
		Position
		Key, Value Expr
		Generators []*Comprehension
	}

	// GeneratorExp is a generator expression.
	GeneratorExp struct {
		Position
		Elt        Expr
		Generators []*Comprehension
	}

	// Lambda is an anonymous function.
	Lambda struct {
		Position
		Params []*Param
		Body   Expr
	}

	// Yield is a yield or yield from expression. Value may be nil.
	Yield struct {
		Position
		Value Expr
		From  bool
	}

	// Starred is an unpacking (*value) in a call or an assignment target.
	Starred struct {
		Position
		Value Expr
		Ctx   Context
	}

	// Ellipsis is the ... literal.
	Ellipsis struct{ Position }

	// Comprehension is one for-clause of a comprehension.
	Comprehension struct {
		Target Expr
		Iter   Expr
		Ifs    []Expr
	}
)

func (*BoolOp) exprNode()    {}
func (*BinOp) exprNode()     {}
func (*UnaryOp) exprNode()   {}
func (*Compare) exprNode()   {}
func (*IfExp) exprNode()     {}
func (*Call) exprNode()      {}
func (*Attribute) exprNode() {}
func (*Subscript) exprNode() {}
func (*Slice) exprNode()     {}
func (*Name) exprNode()      {}
func (*Num) exprNode()       {}
func (*Str) exprNode()       {}
func (*List) exprNode()      {}
func (*Tuple) exprNode()     {}
func (*Set) exprNode()       {}
func (*Dict) exprNode()      {}
func (*ListComp) exprNode()  {}

func (*SetComp) exprNode()      {}
func (*DictComp) exprNode()     {}
func (*GeneratorExp) exprNode() {}
func (*Lambda) exprNode()       {}
func (*Yield) exprNode()        {}
func (*Starred) exprNode()      {}
func (*Ellipsis) exprNode()     {}
