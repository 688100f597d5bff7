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
	"strings"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/astutil"
	"github.com/shutter-cp/blockpy/internal/config"
	"github.com/shutter-cp/blockpy/internal/report"
	"github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/types"
)

// loop tracks the iteration list and variables of an active for-loop.
type loop struct {
	list     scope.Key
	hasList  bool
	listUsed bool

	targets []*loopTarget
}

type loopTarget struct {
	key  scope.Key
	name *ast.Name
	used bool
}

// forStmt walks a loop body as an arm that may not execute at all, then the
// else clause, which runs whenever the loop was not left by break.
func (s *session) forStmt(n *ast.For) {
	l := &loop{}

	if name, ok := n.Iter.(*ast.Name); ok && !s.placeholder(name.ID) {
		if found, ok := s.resolver.Find(name.ID); ok {
			l.list, l.hasList = found.Key, true
		}

		for target := range astutil.AllAssignedNames(n.Target) {
			if target.ID == name.ID {
				s.report(report.IterationVariableIsIterationList, report.Record{Name: name.ID, Pos: target.Pos()})
			}
		}
	}

	iter := s.iterable(n.Iter)

	s.resolver.EnterPath()

	for key, name := range s.storeIteration(n.Target, types.IndexSequence(iter, 0)) {
		l.targets = append(l.targets, &loopTarget{key: key, name: name})
	}

	s.loops = append(s.loops, l)
	s.body(n.Body)
	s.loops = s.loops[:len(s.loops)-1]

	body := s.resolver.ExitPath()

	s.resolver.EnterPath()
	skipped := s.resolver.ExitPath()

	s.merge(body, skipped, n.Pos())

	s.body(n.OrElse)

	if !s.check(config.IterationChecks) {
		return
	}

	for _, t := range l.targets {
		if !t.used && !strings.HasPrefix(t.name.ID, "_") {
			s.report(report.UnusedIterationVariable, report.Record{Name: t.name.ID, Pos: t.name.Pos()})
		}
	}
}

// used marks an access to a variable inside the active loops. A loop
// variable becomes used; its iteration list is reported once per loop.
func (s *session) used(key scope.Key, pos ast.Position) {
	for _, l := range s.loops {
		for _, t := range l.targets {
			if t.key == key {
				t.used = true
			}
		}

		if l.hasList && l.list == key && !l.listUsed {
			l.listUsed = true

			if s.check(config.IterationChecks) {
				s.report(report.UsedIterationList, report.Record{Name: key.Name, Pos: pos})
			}
		}
	}
}
