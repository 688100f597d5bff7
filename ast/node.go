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

// Position is a source location. Line is 1-based, Column is 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Pos returns the position itself, so embedding a Position satisfies [Node].
func (p Position) Pos() Position { return p }

// IsValid reports whether the position refers to a source line.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is implemented by all syntax tree nodes.
type Node interface {
	Pos() Position
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Context tells whether a name or container is read or written.
type Context uint8

const (
	// Load marks a read.
	Load Context = iota
	// Store marks an assignment target.
	Store
)

func (c Context) String() string {
	if c == Store {
		return "Store"
	}

	return "Load"
}

// Comment is a source comment, without the leading '#'.
type Comment struct {
	Position
	Text string
}

// Module is the root of a parsed program.
type Module struct {
	Body     []Stmt
	Comments []*Comment
}

// Pos returns the position of the module start.
func (*Module) Pos() Position { return Position{Line: 1} }
