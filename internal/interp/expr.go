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
	"strconv"

	"github.com/shutter-cp/blockpy/analyzer/level"
	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/report"
	"github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/types"
)

// name returns the type of a name expression. A name in store context is
// only inspected; stores go through [session.assign].
func (s *session) name(n *ast.Name) *types.Type {
	if s.placeholder(n.ID) {
		return types.NewUnknown()
	}

	switch n.ID {
	case "True", "False":
		return types.NewBool()

	case "None":
		return types.NewNone()
	}

	if n.Ctx == ast.Store {
		if f, ok := s.resolver.Find(n.ID); ok {
			return f.State.Type
		}

		return types.NewUnknown()
	}

	return s.load(n.ID, n.Pos())
}

// binOp returns the result type of a binary operation, reporting operands
// the operator is not defined for.
func (s *session) binOp(op ast.Operator, left, right *types.Type, pos ast.Position) *types.Type {
	if !left.IsKnown() || !right.IsKnown() {
		if s.opts.Operands == level.OperandsStrict {
			s.incompatible(op, left, right, pos)
		}

		return types.NewUnknown()
	}

	result, ok := types.BinOp(op, left, right)
	if !ok {
		s.incompatible(op, left, right, pos)

		return types.NewUnknown()
	}

	return result
}

func (s *session) incompatible(op ast.Operator, left, right *types.Type, pos ast.Position) {
	s.report(report.IncompatibleTypes, report.Record{
		Pos:       pos,
		Left:      left,
		Right:     right,
		Operation: op.String(),
	})
}

// boolOp yields the common type of its operands, or Unknown if they differ.
func (s *session) boolOp(n *ast.BoolOp) *types.Type {
	ts := s.visitAll(n.Values)
	if len(ts) == 0 {
		return types.NewUnknown()
	}

	for _, t := range ts[1:] {
		if !types.Equal(ts[0], t) {
			return types.NewUnknown()
		}
	}

	return types.Copy(ts[0])
}

func (s *session) ifExp(n *ast.IfExp) *types.Type {
	s.visit(n.Test)

	body, orElse := s.visit(n.Body), s.visit(n.OrElse)
	if types.Conflict(body, orElse) {
		return types.NewUnknown()
	}

	return types.Merge(body, orElse)
}

func (s *session) subscript(n *ast.Subscript) *types.Type {
	container := s.visit(n.Value)

	if sl, ok := n.Index.(*ast.Slice); ok {
		s.slice(sl)

		return types.Slice(container)
	}

	s.visit(n.Index)
	index, constant := constantIndex(n.Index)

	return types.Subscript(container, index, constant)
}

func (s *session) slice(n *ast.Slice) {
	for _, bound := range [...]ast.Expr{n.Lower, n.Upper, n.Step} {
		if bound != nil {
			s.visit(bound)
		}
	}
}

// constantIndex returns the value of an integer literal index, possibly negated.
func constantIndex(e ast.Expr) (int, bool) {
	sign := 1
	if u, ok := e.(*ast.UnaryOp); ok && u.Op == ast.USub {
		sign, e = -1, u.Operand
	}

	num, ok := e.(*ast.Num)
	if !ok {
		return 0, false
	}

	i, err := strconv.Atoi(num.Value)
	if err != nil {
		return 0, false
	}

	return sign * i, true
}

// elements returns the element type of a list or set literal, or nil if it
// has no elements.
func (s *session) elements(elts []ast.Expr) *types.Type {
	ts := s.visitAll(elts)
	if len(ts) == 0 {
		return nil
	}

	switch s.opts.Lists {
	case level.ListsFirst:
		return ts[0]

	case level.ListsStrict:
		for i, t := range ts[1:] {
			if types.Conflict(ts[0], t) {
				s.report(report.IncompatibleTypes, report.Record{
					Pos:       elts[i+1].Pos(),
					Left:      ts[0],
					Right:     t,
					Operation: "List",
				})
			}
		}

		return ts[0]

	default:
		return ts[len(ts)-1]
	}
}

func (s *session) tuple(n *ast.Tuple) *types.Type {
	return types.NewTuple(s.visitAll(n.Elts)...)
}

func (s *session) dict(n *ast.Dict) *types.Type {
	keys := s.elements(n.Keys)

	var values *types.Type
	for _, v := range n.Values {
		values = s.visit(v)
	}

	if keys == nil {
		return types.NewDict(nil, nil)
	}

	return types.NewDict(keys, values)
}

// comprehension walks the generators and element expressions of a
// comprehension on its own path and returns the element types. The
// comprehension variables are local to it; all other effects stay visible
// afterwards. It reports whether an iterated sequence is empty.
func (s *session) comprehension(gens []*ast.Comprehension, elts ...ast.Expr) ([]*types.Type, bool) {
	locals := make(map[scope.Key]bool)
	empty := false

	s.resolver.EnterPath()

	for _, gen := range gens {
		iter := s.iterable(gen.Iter)
		empty = empty || types.IsEmpty(iter)

		for key := range s.bindLocal(gen.Target, types.IndexSequence(iter, 0)) {
			locals[key] = true
		}

		for _, cond := range gen.Ifs {
			s.visit(cond)
		}
	}

	ts := make([]*types.Type, len(elts))
	for i, e := range elts {
		ts[i] = types.Copy(s.visit(e))
	}

	path := s.resolver.ExitPath()
	s.resolver.Absorb(path, func(key scope.Key) bool { return locals[key] })

	return ts, empty
}

func (s *session) listComp(n *ast.ListComp) *types.Type {
	ts, empty := s.comprehension(n.Generators, n.Elt)
	if empty {
		return types.NewList(nil)
	}

	return types.NewList(ts[0])
}

func (s *session) setComp(n *ast.SetComp) *types.Type {
	ts, empty := s.comprehension(n.Generators, n.Elt)
	if empty {
		return types.NewSet(nil)
	}

	return types.NewSet(ts[0])
}

func (s *session) dictComp(n *ast.DictComp) *types.Type {
	ts, empty := s.comprehension(n.Generators, n.Key, n.Value)
	if empty {
		return types.NewDict(nil, nil)
	}

	return types.NewDict(ts[0], ts[1])
}

// lambda walks the body of an anonymous function once, in a scope of its own
// with the parameters bound to Unknown. Calling it yields Unknown.
func (s *session) lambda(n *ast.Lambda) *types.Type {
	for _, p := range n.Params {
		if p.Default != nil {
			s.visit(p.Default)
		}
	}

	s.resolver.EnterScope(s.resolver.Scope())

	for _, p := range n.Params {
		s.bindParameter(p, types.NewUnknown())
	}

	s.visit(n.Body)
	s.resolver.ExitScope()

	return types.NewFunction(&types.Definition{Name: "<lambda>", Pos: n.Pos(), Builtin: lambdaResult})
}

func lambdaResult([]*types.Type) *types.Type { return types.NewUnknown() }
