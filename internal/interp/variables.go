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
	"iter"
	"log/slog"
	"runtime/trace"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/astutil"
	"github.com/shutter-cp/blockpy/internal/config"
	"github.com/shutter-cp/blockpy/internal/report"
	"github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/types"
	"github.com/shutter-cp/blockpy/internal/usage"
)

// load records a read of a variable and returns its type.
func (s *session) load(name string, pos ast.Position) *types.Type {
	found, ok := s.resolver.Find(name)
	if !ok {
		if t, ok := s.builtin(name); ok {
			return t
		}

		state := usage.NewUndefined(name, pos)
		s.resolver.Install(s.resolver.Local(name), state)
		s.report(report.UndefinedVariables, report.Record{Name: name, Pos: pos})

		return state.Type
	}

	state := s.resolver.Own(found)
	s.used(found.Key, pos)

	if !found.Local && state.Type.IsMutable() && s.check(config.ScopeChecks) {
		s.report(report.ReadOutOfScope, report.Record{
			Name:  name,
			Pos:   pos,
			Scope: s.resolver.Qualified(found.Key),
			Type:  state.Type,
		})
	}

	s.defined(name, state.Load(pos), pos)

	return state.Type
}

// mutate records an in-place modification of the value a variable refers to,
// which requires the variable to be set but does not read it. Other
// expressions are walked normally.
func (s *session) mutate(e ast.Expr) *types.Type {
	n, ok := e.(*ast.Name)
	if !ok || s.placeholder(n.ID) {
		return s.visit(e)
	}

	pos := n.Pos()

	found, ok := s.resolver.Find(n.ID)
	if !ok {
		if t, ok := s.builtin(n.ID); ok {
			return t
		}

		state := usage.NewUndefined(n.ID, pos)
		s.resolver.Install(s.resolver.Local(n.ID), state)
		s.report(report.UndefinedVariables, report.Record{Name: n.ID, Pos: pos})

		return state.Type
	}

	state := s.resolver.Own(found)
	s.used(found.Key, pos)

	if !found.Local && s.check(config.ScopeChecks) {
		s.report(report.WriteOutOfScope, report.Record{
			Name:  n.ID,
			Pos:   pos,
			Scope: s.resolver.Qualified(found.Key),
		})
	}

	s.defined(n.ID, state.Mutate(pos), pos)

	return state.Type
}

// defined reports an access to a variable that is not definitely set.
func (s *session) defined(name string, set usage.Tri, pos ast.Position) {
	switch set {
	case usage.No:
		s.report(report.UndefinedVariables, report.Record{Name: name, Pos: pos})

	case usage.Maybe:
		s.report(report.PossiblyUndefinedVariables, report.Record{Name: name, Pos: pos})
	}
}

// store records an assignment of a value of type t to a variable and returns
// the state written.
func (s *session) store(name string, t *types.Type, pos ast.Position) (scope.Key, *usage.State) {
	found, ok := s.resolver.Find(name)
	if !ok {
		if _, ok := s.builtin(name); ok {
			s.report(report.AliasedBuiltin, report.Record{Name: name, Pos: pos})
		}

		key := s.resolver.Local(name)
		state := usage.NewDefined(name, t, pos)
		s.resolver.Install(key, state)

		return key, state
	}

	state := s.resolver.Own(found)

	if !found.Local && s.check(config.ScopeChecks) {
		s.report(report.WriteOutOfScope, report.Record{
			Name:  name,
			Pos:   pos,
			Scope: s.resolver.Qualified(found.Key),
		})
	}

	if types.Conflict(state.Type, t) {
		s.report(report.TypeChanges, report.Record{
			Name:  name,
			Pos:   pos,
			Scope: s.resolver.Qualified(found.Key),
			Old:   state.Type,
			New:   t,
		})
	}

	if state.Write(t, pos) {
		s.logger.LogAttrs(s.ctx, slog.LevelDebug, "Variable overwritten",
			slog.String("name", s.resolver.Qualified(found.Key)),
			slog.String("position", pos.String()))
	}

	return found.Key, state
}

// storeIteration binds a loop variable. Loop variables count as read, their
// use is checked per loop instead.
func (s *session) storeIteration(target ast.Expr, t *types.Type) iter.Seq2[scope.Key, *ast.Name] {
	return func(yield func(scope.Key, *ast.Name) bool) {
		s.bindTarget(target, t, func(n *ast.Name, t *types.Type) bool {
			key, state := s.store(n.ID, types.Copy(t), n.Pos())
			state.Read = usage.Yes

			return yield(key, n)
		})
	}
}

// bindLocal binds a comprehension variable in the innermost scope, shadowing
// any variable of the same name.
func (s *session) bindLocal(target ast.Expr, t *types.Type) iter.Seq[scope.Key] {
	return func(yield func(scope.Key) bool) {
		s.bindTarget(target, t, func(n *ast.Name, t *types.Type) bool {
			key := s.resolver.Local(n.ID)
			state := usage.NewDefined(n.ID, types.Copy(t), n.Pos())
			state.Read = usage.Yes
			s.resolver.Install(key, state)

			return yield(key)
		})
	}
}

// bindTarget distributes a value of type t over the names of a target.
// Attribute and subscript targets are assigned normally.
func (s *session) bindTarget(target ast.Expr, t *types.Type, bind func(*ast.Name, *types.Type) bool) bool {
	switch tg := target.(type) {
	case *ast.Name:
		if s.placeholder(tg.ID) {
			return true
		}

		return bind(tg, t)

	case *ast.Tuple:
		return s.bindElements(tg.Elts, t, bind)

	case *ast.List:
		return s.bindElements(tg.Elts, t, bind)

	default:
		s.assign(target, t)

		return true
	}
}

func (s *session) bindElements(elts []ast.Expr, t *types.Type, bind func(*ast.Name, *types.Type) bool) bool {
	for i, e := range elts {
		if !s.bindTarget(e, types.IndexSequence(t, i), bind) {
			return false
		}
	}

	return true
}

// bindParameter binds a parameter in the scope of the current call.
func (s *session) bindParameter(p *ast.Param, t *types.Type) {
	state := usage.NewDefined(p.Name, t, p.Pos())
	state.Param = true

	s.resolver.Install(s.resolver.Local(p.Name), state)
}

// iterable walks the iterated expression of a loop or comprehension and
// checks that its values can be iterated.
func (s *session) iterable(e ast.Expr) *types.Type {
	t := s.visit(e)

	switch {
	case !t.IsKnown():

	case !types.IsSequence(t):
		s.report(report.NonListIterations, report.Record{Name: astutil.NameOf(e), Pos: e.Pos(), Type: t})

	case types.IsEmpty(t):
		s.report(report.EmptyIterations, report.Record{Name: astutil.NameOf(e), Pos: e.Pos()})
	}

	return t
}

// finishScope reports the unread and overwritten variables of the innermost scope.
func (s *session) finishScope() {
	defer trace.StartRegion(s.ctx, "FinishScope").End()

	id := s.resolver.Scope()

	for key, state := range s.resolver.States(id) {
		if state.Over == usage.Yes {
			s.report(report.OverwrittenVariables, report.Record{
				Name:  key.Name,
				Pos:   state.Pos,
				Scope: s.resolver.Qualified(key),
			})
		}

		if state.Read == usage.No {
			s.report(report.UnreadVariables, report.Record{
				Name:  key.Name,
				Pos:   state.Pos,
				Scope: s.resolver.Qualified(key),
				Type:  state.Type,
			})
		}
	}
}
