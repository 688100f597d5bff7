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

import "strings"

type (
	// FunctionDef is a function definition.
	FunctionDef struct {
		Position
		Name   string
		Params []*Param
		Body   []Stmt
	}

	// Param is a single function parameter, optionally with a default value.
	Param struct {
		Position
		Name    string
		Default Expr
		Kind    ParamKind
	}

	// ClassDef is a class definition.
	ClassDef struct {
		Position
		Name     string
		Bases    []Expr
		Keywords []*Keyword
		Body     []Stmt
	}

	// Return is a return statement. Value may be nil.
	Return struct {
		Position
		Value Expr
	}

	// Assign is an assignment, possibly chained (a = b = value).
	Assign struct {
		Position
		Targets []Expr
		Value   Expr
	}

	// AugAssign is an augmented assignment (a += value).
	AugAssign struct {
		Position
		Target Expr
		Op     Operator
		Value  Expr
	}

	// For is a for-in loop.
	For struct {
		Position
		Target Expr
		Iter   Expr
		Body   []Stmt
		OrElse []Stmt
	}

	// While is a while loop.
	While struct {
		Position
		Test   Expr
		Body   []Stmt
		OrElse []Stmt
	}

	// If is a conditional. An elif chain is a nested If in OrElse.
	If struct {
		Position
		Test   Expr
		Body   []Stmt
		OrElse []Stmt
	}

	// With is a with statement.
	With struct {
		Position
		Items []*WithItem
		Body  []Stmt
	}

	// WithItem is a single context manager with its optional target.
	WithItem struct {
		Context Expr
		Var     Expr
	}

	// Try is a try statement with its handlers and clauses.
	Try struct {
		Position
		Body     []Stmt
		Handlers []*ExceptHandler
		OrElse   []Stmt
		Finally  []Stmt
	}

	// ExceptHandler is an except clause. Type and Name may be empty.
	ExceptHandler struct {
		Position
		Type Expr
		Name string
		Body []Stmt
	}

	// Raise is a raise statement. Exc and Cause may be nil.
	Raise struct {
		Position
		Exc   Expr
		Cause Expr
	}

	// Assert is an assert statement. Msg may be nil.
	Assert struct {
		Position
		Test Expr
		Msg  Expr
	}

	// Delete is a del statement.
	Delete struct {
		Position
		Targets []Expr
	}

	// Global is a global or nonlocal declaration.
	Global struct {
		Position
		Names    []string
		Nonlocal bool
	}

	// ExprStmt is an expression evaluated for its effect.
	ExprStmt struct {
		Position
		Value Expr
	}

	// Pass is a pass statement.
	Pass struct{ Position }

	// Break is a break statement.
	Break struct{ Position }

	// Continue is a continue statement.
	Continue struct{ Position }

	// Import is an import or from-import statement.
	Import struct {
		Position
		Module string // from-import source, empty for plain imports
		Names  []*Alias
	}

	// Alias is an imported name with its optional binding.
	Alias struct {
		Name   string
		AsName string
	}
)

// ParamKind distinguishes the ways a parameter receives arguments.
type ParamKind uint8

const (
	// Positional parameters take positional or keyword arguments.
	Positional ParamKind = iota
	// VarArgs collects the remaining positional arguments (*args).
	VarArgs
	// KeywordOnly parameters follow *args and take keyword arguments only.
	KeywordOnly
	// VarKeywords collects the remaining keyword arguments (**kwargs).
	VarKeywords
)

// Bound returns the name an import binds.
func (a *Alias) Bound() string {
	if a.AsName != "" {
		return a.AsName
	}

	name, _, _ := strings.Cut(a.Name, ".")

	return name
}

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*Assign) stmtNode()      {}
func (*AugAssign) stmtNode()   {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*If) stmtNode()          {}
func (*With) stmtNode()        {}
func (*ExprStmt) stmtNode()    {}
func (*Pass) stmtNode()        {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}
func (*Import) stmtNode()      {}
func (*Try) stmtNode()         {}
func (*Raise) stmtNode()       {}
func (*Assert) stmtNode()      {}
func (*Delete) stmtNode()      {}
func (*Global) stmtNode()      {}
