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

package astutil

import (
	"iter"

	"github.com/shutter-cp/blockpy/ast"
)

// AllAssignedNames yields all names bound by an assignment target,
// descending into tuple, list and starred targets.
func AllAssignedNames(target ast.Expr) iter.Seq[*ast.Name] {
	return func(yield func(*ast.Name) bool) {
		assignedNames(target, yield)
	}
}

func assignedNames(target ast.Expr, yield func(*ast.Name) bool) bool {
	switch t := target.(type) {
	case *ast.Name:
		return yield(t)

	case *ast.Tuple:
		for _, elt := range t.Elts {
			if !assignedNames(elt, yield) {
				return false
			}
		}

	case *ast.List:
		for _, elt := range t.Elts {
			if !assignedNames(elt, yield) {
				return false
			}
		}

	case *ast.Starred:
		return assignedNames(t.Value, yield)
	}

	return true
}

// NameOf returns the identifier of a name expression, or "" for other expressions.
func NameOf(e ast.Expr) string {
	if n, ok := e.(*ast.Name); ok {
		return n.ID
	}

	return ""
}

// ContainsYield reports whether a function body yields, which makes the
// function a generator. Nested definitions are not searched.
func ContainsYield(body []ast.Stmt) bool {
	found := false

	for _, stmt := range body {
		ast.Inspect(stmt, func(n ast.Node) bool {
			switch n.(type) {
			case *ast.Yield:
				found = true

			case *ast.FunctionDef, *ast.ClassDef, *ast.Lambda:
				return false
			}

			return !found
		})
	}

	return found
}
