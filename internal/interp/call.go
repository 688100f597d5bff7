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
	"maps"
	"slices"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/report"
	"github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/types"
)

// call returns the result type of a call expression.
func (s *session) call(n *ast.Call) *types.Type {
	var callee *types.Type

	switch fn := n.Func.(type) {
	case *ast.Attribute:
		return s.methodCall(n, fn)

	case *ast.Name:
		if s.placeholder(fn.ID) {
			s.arguments(n)

			return types.NewUnknown()
		}

		if !s.callable(fn.ID) {
			s.arguments(n)
			s.report(report.UnknownFunctions, report.Record{Name: fn.ID, Pos: fn.Pos()})

			return types.NewUnknown()
		}

		callee = s.visit(fn)

	default:
		callee = s.visit(n.Func)
	}

	args := s.arguments(n)

	switch {
	case !callee.IsKnown():
		return types.NewUnknown()

	case callee.Kind != types.Function:
		name := ""
		if fn, ok := n.Func.(*ast.Name); ok {
			name = fn.ID
		}

		s.report(report.NotAFunction, report.Record{Name: name, Pos: n.Pos(), Type: callee})

		return types.NewUnknown()

	case callee.Def.IsBuiltin():
		return callee.Def.Builtin(args.positional)

	default:
		return s.invoke(callee.Def, args, n.Pos())
	}
}

// callable reports whether a called name is a variable or a modeled built-in.
func (s *session) callable(name string) bool {
	if _, ok := s.resolver.Find(name); ok {
		return true
	}

	_, ok := s.builtin(name)

	return ok
}

// callArgs are the argument types of a call.
type callArgs struct {
	positional []*types.Type
	keywords   map[string]*types.Type

	// unpacked is set when *args or **kwargs hide the argument count.
	unpacked bool
}

// arguments walks the arguments of a call.
func (s *session) arguments(n *ast.Call) callArgs {
	var args callArgs

	for _, a := range n.Args {
		t := s.visit(a)

		if _, ok := a.(*ast.Starred); ok {
			args.unpacked = true

			continue
		}

		args.positional = append(args.positional, t)
	}

	for _, kw := range n.Keywords {
		t := s.visit(kw.Value)

		if kw.Arg == "" {
			args.unpacked = true

			continue
		}

		if args.keywords == nil {
			args.keywords = make(map[string]*types.Type, len(n.Keywords))
		}

		args.keywords[kw.Arg] = t
	}

	return args
}

// invoke walks the body of a user function in a new scope with the argument
// types bound to its parameters and returns the type of the first return.
func (s *session) invoke(def *types.Definition, args callArgs, pos ast.Position) *types.Type {
	for _, f := range s.frames {
		if f.def == def {
			// Recursive call: the result is whatever the outer call has seen so far.
			if f.ret.IsKnown() {
				return f.ret
			}

			return types.NewUnknown()
		}
	}

	if len(s.frames) >= s.opts.MaxCallDepth {
		s.logger.LogAttrs(s.ctx, slog.LevelDebug, "Call depth exceeded",
			slog.String("function", def.Name), slog.String("position", pos.String()))

		return types.NewUnknown()
	}

	s.calls++

	s.resolver.EnterScope(scope.ID(def.Scope))

	f := &frame{def: def}
	s.frames = append(s.frames, f)

	for i, t := range bindArguments(def, args) {
		s.bindParameter(def.Params[i], t)
	}

	s.body(def.Body)
	s.finishScope()

	s.frames = s.frames[:len(s.frames)-1]
	s.resolver.ExitScope()

	switch {
	case def.Generator:
		return types.NewUnknown()

	case f.ret == nil:
		return types.NewNone()

	default:
		return f.ret
	}
}

// bindArguments returns the type bound to each parameter of def: the matching
// argument, the default value or Unknown.
func bindArguments(def *types.Definition, args callArgs) []*types.Type {
	bound := make([]*types.Type, len(def.Params))
	next := 0

	named := make(map[string]bool, len(def.Params))
	for _, p := range def.Params {
		named[p.Name] = true
	}

	for i, p := range def.Params {
		switch p.Kind {
		case ast.VarArgs:
			rest := make([]*types.Type, 0, len(args.positional))
			for _, t := range args.positional[min(next, len(args.positional)):] {
				rest = append(rest, types.Copy(t))
			}

			next = len(args.positional)
			bound[i] = types.NewTuple(rest...)

		case ast.VarKeywords:
			var values *types.Type

			for _, name := range slices.Sorted(maps.Keys(args.keywords)) {
				if !named[name] {
					values = args.keywords[name]

					break
				}
			}

			if values == nil {
				bound[i] = types.NewDict(nil, nil)
			} else {
				bound[i] = types.NewDict(types.NewStr(), types.Copy(values))
			}

		default:
			var t *types.Type

			if p.Kind == ast.Positional && next < len(args.positional) {
				t = args.positional[next]
				next++
			} else if kw, ok := args.keywords[p.Name]; ok {
				t = kw
			}

			switch {
			case t != nil:
				bound[i] = types.Copy(t)

			case args.unpacked:
				bound[i] = types.NewUnknown()

			case i < len(def.Defaults) && def.Defaults[i] != nil:
				bound[i] = types.Copy(def.Defaults[i])

			default:
				bound[i] = types.NewUnknown()
			}
		}
	}

	return bound
}

// methodCall returns the result type of a method call. Methods that modify
// their receiver do not read it.
func (s *session) methodCall(n *ast.Call, fn *ast.Attribute) *types.Type {
	var recv *types.Type
	if types.IsMutator(fn.Attr) {
		recv = s.mutate(fn.Value)
	} else {
		recv = s.visit(fn.Value)
	}

	args := s.arguments(n).positional

	if !recv.IsKnown() || recv.Kind == types.Module {
		return types.NewUnknown()
	}

	m, ok := types.LookupMethod(recv, fn.Attr)
	if !ok {
		if fn.Attr == "append" {
			name := ""
			if v, ok := fn.Value.(*ast.Name); ok {
				name = v.ID
			}

			s.report(report.AppendToNonList, report.Record{Name: name, Pos: n.Pos(), Type: recv})
		} else {
			s.report(report.MethodNotInType, report.Record{Name: fn.Attr, Pos: n.Pos(), Type: recv})
		}

		return types.NewUnknown()
	}

	return m(recv, args)
}
