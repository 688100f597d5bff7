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

package usage

import (
	"slices"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/types"
)

// State is the record of a variable on one path.
type State struct {
	Name string      `json:"name"`
	Type *types.Type `json:"type"`

	Set  Tri `json:"set"`
	Read Tri `json:"read"`
	Over Tri `json:"over"`

	// Param marks a function parameter.
	Param bool `json:"param,omitempty"`

	// Pos is the position of the last write.
	Pos ast.Position `json:"position,omitzero"`

	// Trace holds a snapshot of the state before every access.
	Trace []TraceEntry `json:"trace,omitempty"`
}

// TraceEntry is a snapshot of a [State] taken at an access.
type TraceEntry struct {
	Method Method       `json:"method"`
	Type   *types.Type  `json:"type"`
	Set    Tri          `json:"set"`
	Read   Tri          `json:"read"`
	Over   Tri          `json:"over"`
	Pos    ast.Position `json:"position,omitzero"`
}

// NewDefined returns the state of a freshly assigned variable.
func NewDefined(name string, t *types.Type, pos ast.Position) *State {
	return &State{Name: name, Type: t, Set: Yes, Read: No, Over: No, Pos: pos}
}

// NewUndefined returns the state recorded for a read of a variable that was
// never assigned.
func NewUndefined(name string, pos ast.Position) *State {
	return &State{Name: name, Type: types.NewUnknown(), Set: No, Read: Yes, Over: No, Pos: pos}
}

// Clone returns a copy of the state with its own trace.
func (s *State) Clone() *State {
	c := *s
	c.Trace = slices.Clone(s.Trace)

	return &c
}

func (s *State) record(method Method, pos ast.Position) {
	s.Trace = append(s.Trace, TraceEntry{
		Method: method,
		Type:   s.Type,
		Set:    s.Set,
		Read:   s.Read,
		Over:   s.Over,
		Pos:    pos,
	})
}

// Write records an assignment of a value of type t. It reports whether the
// previous value was definitely set and never read.
func (s *State) Write(t *types.Type, pos ast.Position) (overwritten bool) {
	s.record(Store, pos)

	if s.Set == Yes && s.Read == No {
		s.Over = Yes
		overwritten = true
	} else {
		s.Set, s.Read = Yes, No
	}

	s.Type, s.Pos = t, pos

	return overwritten
}

// Load records a read and returns whether the variable was set before.
func (s *State) Load(pos ast.Position) Tri {
	s.record(Load, pos)

	set := s.Set
	s.Read = Yes

	return set
}

// Mutate records an in-place modification of a container value, which
// neither reads nor reassigns the variable, and returns whether it was set.
// A mutated parameter counts as read, the caller sees the change.
func (s *State) Mutate(pos ast.Position) Tri {
	s.record(Store, pos)

	if s.Param {
		s.Read = Yes
	}

	return s.Set
}

// Merge combines the states of one variable from two alternative paths.
func Merge(left, right *State) *State {
	c := &State{
		Name:  left.Name,
		Type:  types.Merge(left.Type, right.Type),
		Set:   Combine(left.Set, right.Set),
		Read:  Combine(left.Read, right.Read),
		Over:  Combine(left.Over, right.Over),
		Param: left.Param || right.Param,
		Pos:   later(left.Pos, right.Pos),
	}

	common := 0
	for common < len(left.Trace) && common < len(right.Trace) && left.Trace[common] == right.Trace[common] {
		common++
	}

	c.Trace = make([]TraceEntry, 0, len(left.Trace)+len(right.Trace)-common)
	c.Trace = append(c.Trace, left.Trace...)
	c.Trace = append(c.Trace, right.Trace[common:]...)

	return c
}

// MergeAbsent combines the state of a variable from a path with an
// alternative path where the variable does not exist.
func MergeAbsent(s *State) *State {
	c := s.Clone()
	c.Set, c.Read, c.Over = s.Set.Absent(), s.Read.Absent(), s.Over.Absent()

	return c
}

func later(a, b ast.Position) ast.Position {
	if b.Line > a.Line || b.Line == a.Line && b.Column > a.Column {
		return b
	}

	return a
}
