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
	"runtime/trace"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/config"
	"github.com/shutter-cp/blockpy/internal/report"
)

// structure reports issues visible in the syntax alone, including code in
// functions that are never called.
func (s *session) structure(module *ast.Module) {
	defer trace.StartRegion(s.ctx, "Structure").End()

	passes := s.check(config.PassChecks)

	if passes {
		s.passes(module.Body, false)
	}

	ast.Inspect(module, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.Name:
			if n.Ctx == ast.Load && s.placeholder(n.ID) {
				s.report(report.UnconnectedBlocks, report.Record{Name: n.ID, Pos: n.Pos()})
			}

		case ast.Stmt:
			if !passes {
				break
			}

			for _, body := range ast.Bodies(n) {
				s.passes(body, true)
			}
		}

		return true
	})
}

// passes reports a body consisting only of pass, and pass statements next to other statements.
func (s *session) passes(body []ast.Stmt, block bool) {
	if len(body) == 1 {
		if p, ok := body[0].(*ast.Pass); ok && block {
			s.report(report.EmptyBody, report.Record{Pos: p.Pos()})
		}

		return
	}

	for _, stmt := range body {
		if p, ok := stmt.(*ast.Pass); ok {
			s.report(report.UnnecessaryPass, report.Record{Pos: p.Pos()})
		}
	}
}
