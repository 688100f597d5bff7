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

import "fmt"

// Inspect traverses the tree rooted at node in depth-first order.
// It calls f(node); if f returns true, Inspect visits the children of node.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		inspectStmts(n.Body, f)

	case *FunctionDef:
		for _, p := range n.Params {
			Inspect(p, f)
		}

		inspectStmts(n.Body, f)

	case *Param:
		inspectExpr(n.Default, f)

	case *ClassDef:
		inspectExprs(n.Bases, f)

		for _, kw := range n.Keywords {
			inspectExpr(kw.Value, f)
		}

		inspectStmts(n.Body, f)

	case *Try:
		inspectStmts(n.Body, f)

		for _, h := range n.Handlers {
			Inspect(h, f)
		}

		inspectStmts(n.OrElse, f)
		inspectStmts(n.Finally, f)

	case *ExceptHandler:
		inspectExpr(n.Type, f)
		inspectStmts(n.Body, f)

	case *Raise:
		inspectExpr(n.Exc, f)
		inspectExpr(n.Cause, f)

	case *Assert:
		inspectExpr(n.Test, f)
		inspectExpr(n.Msg, f)

	case *Delete:
		inspectExprs(n.Targets, f)

	case *Return:
		inspectExpr(n.Value, f)

	case *Assign:
		inspectExprs(n.Targets, f)
		inspectExpr(n.Value, f)

	case *AugAssign:
		inspectExpr(n.Target, f)
		inspectExpr(n.Value, f)

	case *For:
		inspectExpr(n.Target, f)
		inspectExpr(n.Iter, f)
		inspectStmts(n.Body, f)
		inspectStmts(n.OrElse, f)

	case *While:
		inspectExpr(n.Test, f)
		inspectStmts(n.Body, f)
		inspectStmts(n.OrElse, f)

	case *If:
		inspectExpr(n.Test, f)
		inspectStmts(n.Body, f)
		inspectStmts(n.OrElse, f)

	case *With:
		for _, item := range n.Items {
			inspectExpr(item.Context, f)
			inspectExpr(item.Var, f)
		}

		inspectStmts(n.Body, f)

	case *ExprStmt:
		inspectExpr(n.Value, f)

	case *Pass, *Break, *Continue, *Import, *Global, *Name, *Num, *Str, *Ellipsis:
		// leaves

	case *BoolOp:
		inspectExprs(n.Values, f)

	case *BinOp:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)

	case *UnaryOp:
		inspectExpr(n.Operand, f)

	case *Compare:
		inspectExpr(n.Left, f)
		inspectExprs(n.Comparators, f)

	case *IfExp:
		inspectExpr(n.Test, f)
		inspectExpr(n.Body, f)
		inspectExpr(n.OrElse, f)

	case *Call:
		inspectExpr(n.Func, f)
		inspectExprs(n.Args, f)

		for _, kw := range n.Keywords {
			inspectExpr(kw.Value, f)
		}

	case *Attribute:
		inspectExpr(n.Value, f)

	case *Subscript:
		inspectExpr(n.Value, f)
		inspectExpr(n.Index, f)

	case *Slice:
		inspectExpr(n.Lower, f)
		inspectExpr(n.Upper, f)
		inspectExpr(n.Step, f)

	case *List:
		inspectExprs(n.Elts, f)

	case *Tuple:
		inspectExprs(n.Elts, f)

	case *Set:
		inspectExprs(n.Elts, f)

	case *Dict:
		inspectExprs(n.Keys, f)
		inspectExprs(n.Values, f)

	case *ListComp:
		inspectGenerators(n.Generators, f)
		inspectExpr(n.Elt, f)

	case *SetComp:
		inspectGenerators(n.Generators, f)
		inspectExpr(n.Elt, f)

	case *GeneratorExp:
		inspectGenerators(n.Generators, f)
		inspectExpr(n.Elt, f)

	case *DictComp:
		inspectGenerators(n.Generators, f)
		inspectExpr(n.Key, f)
		inspectExpr(n.Value, f)

	case *Lambda:
		for _, p := range n.Params {
			Inspect(p, f)
		}

		inspectExpr(n.Body, f)

	case *Yield:
		inspectExpr(n.Value, f)

	case *Starred:
		inspectExpr(n.Value, f)

	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}
}

func inspectGenerators(gens []*Comprehension, f func(Node) bool) {
	for _, g := range gens {
		inspectExpr(g.Target, f)
		inspectExpr(g.Iter, f)
		inspectExprs(g.Ifs, f)
	}
}

func inspectStmts(list []Stmt, f func(Node) bool) {
	for _, s := range list {
		Inspect(s, f)
	}
}

func inspectExprs(list []Expr, f func(Node) bool) {
	for _, e := range list {
		inspectExpr(e, f)
	}
}

// inspectExpr skips nil expressions, which would otherwise arrive as non-nil interfaces.
func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

// Bodies returns the statement lists directly owned by a compound statement.
func Bodies(stmt Stmt) [][]Stmt {
	switch s := stmt.(type) {
	case *FunctionDef:
		return [][]Stmt{s.Body}

	case *For:
		return [][]Stmt{s.Body, s.OrElse}

	case *While:
		return [][]Stmt{s.Body, s.OrElse}

	case *If:
		return [][]Stmt{s.Body, s.OrElse}

	case *With:
		return [][]Stmt{s.Body}

	case *ClassDef:
		return [][]Stmt{s.Body}

	case *Try:
		bodies := make([][]Stmt, 0, len(s.Handlers)+3)
		bodies = append(bodies, s.Body)

		for _, h := range s.Handlers {
			bodies = append(bodies, h.Body)
		}

		return append(bodies, s.OrElse, s.Finally)

	default:
		return nil
	}
}
