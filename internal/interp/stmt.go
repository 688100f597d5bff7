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
	"log/slog"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/astutil"
	"github.com/shutter-cp/blockpy/internal/report"
	"github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/types"
)

// functionDef records a definition. The body is walked when the function is called.
func (s *session) functionDef(n *ast.FunctionDef) *types.Type {
	def := &types.Definition{
		Name:      n.Name,
		Pos:       n.Pos(),
		Params:    n.Params,
		Body:      n.Body,
		Defaults:  make([]*types.Type, len(n.Params)),
		Generator: astutil.ContainsYield(n.Body),
		Scope:     int32(s.resolver.Scope()),
	}

	for i, p := range n.Params {
		if p.Default != nil {
			def.Defaults[i] = s.visit(p.Default)
		}
	}

	fn := types.NewFunction(def)
	s.store(n.Name, fn, n.Pos())

	return fn
}

func (s *session) returnStmt(n *ast.Return) {
	t := types.NewNone()
	if n.Value != nil {
		t = s.visit(n.Value)
	}

	if len(s.frames) == 0 {
		s.report(report.ReturnOutsideFunction, report.Record{Pos: n.Pos()})

		return
	}

	// The first known return type is the result of the call.
	if f := s.frames[len(s.frames)-1]; !f.ret.IsKnown() {
		f.ret = t
	}
}

func (s *session) assignStmt(n *ast.Assign) {
	t := s.visit(n.Value)

	for _, target := range n.Targets {
		s.assign(target, t)
	}
}

// assign binds a value of type t to an assignment target.
func (s *session) assign(target ast.Expr, t *types.Type) {
	switch tg := target.(type) {
	case *ast.Name:
		if s.placeholder(tg.ID) {
			return
		}

		s.store(tg.ID, types.Copy(t), tg.Pos())

	case *ast.Tuple:
		s.unpack(tg.Elts, t)

	case *ast.List:
		s.unpack(tg.Elts, t)

	case *ast.Attribute:
		s.visit(tg.Value)

	case *ast.Starred:
		// t is the type of one unpacked element.
		s.assign(tg.Value, types.NewList(types.Copy(t)))

	case *ast.Subscript:
		container := s.mutate(tg.Value)
		index := s.visit(tg.Index)

		if container.Kind == types.Dict && container.Empty {
			container.Empty = false
			container.Keys, container.Values = index, t
		}

	default:
		astutil.InternalPanic(target.Pos(), ErrUnsupportedNode, "unsupported assignment target %T", target)
	}
}

// unpack binds the elements of a sequence of type t to target elements.
func (s *session) unpack(elts []ast.Expr, t *types.Type) {
	for i, e := range elts {
		s.assign(e, types.IndexSequence(t, i))
	}
}

func (s *session) augAssign(n *ast.AugAssign) {
	switch tg := n.Target.(type) {
	case *ast.Name:
		left := s.load(tg.ID, tg.Pos())
		right := s.visit(n.Value)

		result := s.binOp(n.Op, left, right, n.Pos())
		if !s.placeholder(tg.ID) {
			s.store(tg.ID, result, tg.Pos())
		}

	case *ast.Subscript:
		container := s.visit(tg.Value)
		s.visit(tg.Index)
		right := s.visit(n.Value)

		s.binOp(n.Op, types.Subscript(container, 0, false), right, n.Pos())

	case *ast.Attribute:
		s.visit(tg.Value)
		s.visit(n.Value)

	default:
		astutil.InternalPanic(n.Pos(), ErrUnsupportedNode, "unsupported augmented assignment target %T", n.Target)
	}
}

// branches walks two alternative arms on their own paths and merges them.
func (s *session) branches(pos ast.Position, body, orElse []ast.Stmt) {
	s.alternatives(pos, func() { s.body(body) }, func() { s.body(orElse) })
}

// alternatives walks arms of which exactly one executes. Each arm runs on its
// own path; more than two arms nest like an elif chain.
func (s *session) alternatives(pos ast.Position, arms ...func()) {
	if len(arms) == 1 {
		arms[0]()

		return
	}

	s.resolver.EnterPath()
	arms[0]()
	left := s.resolver.ExitPath()

	s.resolver.EnterPath()
	s.alternatives(pos, arms[1:]...)
	right := s.resolver.ExitPath()

	s.merge(left, right, pos)
}

// merge combines two exited arms into the current path, reporting variables
// whose type differs between them.
func (s *session) merge(left, right scope.PathID, pos ast.Position) {
	for _, c := range s.resolver.Merge(left, right) {
		s.report(report.TypeChanges, report.Record{
			Name:  c.Key.Name,
			Pos:   pos,
			Scope: s.resolver.Qualified(c.Key),
			Old:   c.Left,
			New:   c.Right,
		})
	}
}

func (s *session) withStmt(n *ast.With) {
	for _, item := range n.Items {
		t := s.visit(item.Context)
		if item.Var != nil {
			s.assign(item.Var, t)
		}
	}

	s.body(n.Body)
}

func (s *session) importStmt(n *ast.Import) {
	for _, alias := range n.Names {
		switch {
		case n.Module == "":
			s.store(alias.Bound(), types.NewModule(alias.Name), n.Pos())

		case alias.Name == "*":
			s.logger.LogAttrs(s.ctx, slog.LevelDebug, "Wildcard import not modeled", slog.String("module", n.Module))

		default:
			s.store(alias.Bound(), types.NewUnknown(), n.Pos())
		}
	}
}

// classDef binds the class name and walks the body in a scope of its own.
// Class attributes are reached through instances, so the scope is not
// checked for unread variables.
func (s *session) classDef(n *ast.ClassDef) {
	s.visitAll(n.Bases)

	for _, kw := range n.Keywords {
		s.visit(kw.Value)
	}

	s.resolver.EnterScope(s.resolver.Scope())
	s.body(n.Body)
	s.resolver.ExitScope()

	s.store(n.Name, types.NewUnknown(), n.Pos())
}

// tryStmt walks the try body followed by its else clause and each handler as
// alternatives, then the finally clause.
func (s *session) tryStmt(n *ast.Try) {
	arms := make([]func(), 0, len(n.Handlers)+1)
	arms = append(arms, func() {
		s.body(n.Body)
		s.body(n.OrElse)
	})

	for _, h := range n.Handlers {
		arms = append(arms, func() { s.handler(h) })
	}

	s.alternatives(n.Pos(), arms...)
	s.body(n.Finally)
}

func (s *session) handler(h *ast.ExceptHandler) {
	if h.Type != nil {
		s.visit(h.Type)
	}

	if h.Name != "" && !s.placeholder(h.Name) {
		s.store(h.Name, types.NewUnknown(), h.Pos())
	}

	s.body(h.Body)
}

// deleteStmt walks del targets. Deleting a name reads it, deleting an item
// modifies its container.
func (s *session) deleteStmt(targets []ast.Expr) {
	for _, target := range targets {
		switch tg := target.(type) {
		case *ast.Name:
			if !s.placeholder(tg.ID) {
				s.load(tg.ID, tg.Pos())
			}

		case *ast.Subscript:
			s.mutate(tg.Value)
			s.visit(tg.Index)

		case *ast.Tuple:
			s.deleteStmt(tg.Elts)

		case *ast.List:
			s.deleteStmt(tg.Elts)

		default:
			s.visit(target)
		}
	}
}
