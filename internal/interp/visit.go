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

package interp

import (
	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/astutil"
	"github.com/shutter-cp/blockpy/internal/types"
)

// visit walks a node and returns the type of the value it computes.
// Statements and nodes without an inferable value yield Unknown.
func (s *session) visit(node ast.Node) *types.Type {
	s.depth++
	defer func() { s.depth-- }()

	var t *types.Type

	switch n := node.(type) {
	case *ast.FunctionDef:
		t = s.functionDef(n)

	case *ast.ClassDef:
		s.classDef(n)

	case *ast.Return:
		s.returnStmt(n)

	case *ast.Assign:
		s.assignStmt(n)

	case *ast.AugAssign:
		s.augAssign(n)

	case *ast.For:
		s.forStmt(n)

	case *ast.While:
		s.visit(n.Test)
		s.branches(n.Pos(), n.Body, n.OrElse)

	case *ast.If:
		s.visit(n.Test)
		s.branches(n.Pos(), n.Body, n.OrElse)

	case *ast.With:
		s.withStmt(n)

	case *ast.ExprStmt:
		s.visit(n.Value)

	case *ast.Import:
		s.importStmt(n)

	case *ast.Try:
		s.tryStmt(n)

	case *ast.Raise:
		s.visitOptional(n.Exc, n.Cause)

	case *ast.Assert:
		s.visitOptional(n.Test, n.Msg)

	case *ast.Delete:
		s.deleteStmt(n.Targets)

	case *ast.Pass, *ast.Break, *ast.Continue, *ast.Global, *ast.Ellipsis:

	case *ast.BoolOp:
		t = s.boolOp(n)

	case *ast.BinOp:
		t = s.binOp(n.Op, s.visit(n.Left), s.visit(n.Right), n.Pos())

	case *ast.UnaryOp:
		t = types.UnaryOp(n.Op, s.visit(n.Operand))

	case *ast.Compare:
		s.visit(n.Left)

		for _, c := range n.Comparators {
			s.visit(c)
		}

		t = types.NewBool()

	case *ast.IfExp:
		t = s.ifExp(n)

	case *ast.Call:
		t = s.call(n)

	case *ast.Attribute:
		s.visit(n.Value)

	case *ast.Subscript:
		t = s.subscript(n)

	case *ast.Slice:
		s.slice(n)

	case *ast.Name:
		t = s.name(n)

	case *ast.Num:
		t = types.NewNum()

	case *ast.Str:
		t = types.NewStr()

	case *ast.List:
		t = types.NewList(s.elements(n.Elts))

	case *ast.Set:
		t = types.NewSet(s.elements(n.Elts))

	case *ast.Tuple:
		t = s.tuple(n)

	case *ast.Dict:
		t = s.dict(n)

	case *ast.ListComp:
		t = s.listComp(n)

	case *ast.SetComp:
		t = s.setComp(n)

	case *ast.DictComp:
		t = s.dictComp(n)

	case *ast.GeneratorExp:
		s.comprehension(n.Generators, n.Elt)

	case *ast.Lambda:
		t = s.lambda(n)

	case *ast.Yield:
		s.visitOptional(n.Value)

	case *ast.Starred:
		s.visit(n.Value)

	default:
		astutil.InternalPanic(node.Pos(), ErrUnsupportedNode, "unsupported node %T", node)
	}

	if t == nil {
		return types.NewUnknown()
	}

	return t
}

// body walks a statement list on the current path.
func (s *session) body(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		s.visit(stmt)
	}
}

// visitOptional walks the expressions that are present.
func (s *session) visitOptional(exprs ...ast.Expr) {
	for _, e := range exprs {
		if e != nil {
			s.visit(e)
		}
	}
}

// visitAll walks expressions and returns their types.
func (s *session) visitAll(exprs []ast.Expr) []*types.Type {
	ts := make([]*types.Type, len(exprs))
	for i, e := range exprs {
		ts[i] = s.visit(e)
	}

	return ts
}
