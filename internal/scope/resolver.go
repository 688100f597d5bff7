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

// Package scope resolves variable names over the chain of active scopes and
// the chain of active control-flow paths, and merges alternative paths.
//
// A scope is opened for the module and for every modeled function call. A
// path is opened for every branch arm and loop body. Variable states live in
// a name map keyed by path, then by [Key].
package scope

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/shutter-cp/blockpy/internal/types"
	"github.com/shutter-cp/blockpy/internal/usage"
)

// ID identifies a scope. The module scope is 0.
type ID int32

// PathID identifies a control-flow path. The root path is 0.
type PathID int32

// noParent marks the module scope in the parent table.
const noParent ID = -1

// Key is a variable name qualified by the innermost scope it belongs to.
// The scope's parent chain is implied by the scope id.
type Key struct {
	Scope ID
	Name  string
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Scope, b.Scope); c != 0 {
		return c
	}

	return strings.Compare(a.Name, b.Name)
}

// NameMap holds the variable states of each path.
type NameMap map[PathID]map[Key]*usage.State

// Found is the result of a successful lookup.
type Found struct {
	Key   Key
	Path  PathID
	State *usage.State

	// Local is set when the variable belongs to the innermost scope.
	Local bool
}

// Resolver owns the name map and the scope and path chains of one analysis.
type Resolver struct {
	names   NameMap
	parents map[ID]ID

	scopes []ID     // innermost last
	paths  []PathID // innermost last
	saved  [][]ID   // scope chains of suspended callers

	nextScope ID
	nextPath  PathID
}

// NewResolver returns a resolver positioned in the module scope on the root path.
func NewResolver() *Resolver {
	return &Resolver{
		names:     NameMap{0: {}},
		parents:   map[ID]ID{0: noParent},
		scopes:    []ID{0},
		paths:     []PathID{0},
		nextScope: 1,
		nextPath:  1,
	}
}

// Scope returns the innermost scope id.
func (r *Resolver) Scope() ID { return r.scopes[len(r.scopes)-1] }

// Path returns the innermost path id.
func (r *Resolver) Path() PathID { return r.paths[len(r.paths)-1] }

// InFunction reports whether the innermost scope belongs to a function call.
func (r *Resolver) InFunction() bool { return len(r.scopes) > 1 }

// Local returns the key name would have in the innermost scope.
func (r *Resolver) Local(name string) Key { return Key{Scope: r.Scope(), Name: name} }

// Find looks name up in every scope of the chain, innermost first, and within
// each scope in every path of the chain, innermost first.
func (r *Resolver) Find(name string) (Found, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		key := Key{Scope: r.scopes[i], Name: name}

		if path, state, ok := r.lookup(key); ok {
			return Found{Key: key, Path: path, State: state, Local: i == len(r.scopes)-1}, true
		}
	}

	return Found{}, false
}

// lookup finds the state of key on the path chain, innermost first.
func (r *Resolver) lookup(key Key) (PathID, *usage.State, bool) {
	for i := len(r.paths) - 1; i >= 0; i-- {
		path := r.paths[i]
		if state, ok := r.names[path][key]; ok {
			return path, state, true
		}
	}

	return 0, nil, false
}

// Install stores a state under key on the current path.
func (r *Resolver) Install(key Key, state *usage.State) {
	r.names[r.Path()][key] = state
}

// Own returns the found state ready for modification on the current path. A
// state found on an enclosing path is copied, so the enclosing path keeps its
// version for the alternative arms.
func (r *Resolver) Own(f Found) *usage.State {
	if f.Path == r.Path() {
		return f.State
	}

	state := f.State.Clone()
	r.Install(f.Key, state)

	return state
}

// EnterScope opens a new scope whose chain is the chain of parent followed by
// the new scope, suspending the current chain until [Resolver.ExitScope].
func (r *Resolver) EnterScope(parent ID) ID {
	id := r.nextScope
	r.nextScope++
	r.parents[id] = parent

	r.saved = append(r.saved, r.scopes)
	r.scopes = append(r.Chain(parent), id)

	return id
}

// ExitScope restores the scope chain active before the last [Resolver.EnterScope].
func (r *Resolver) ExitScope() {
	n := len(r.saved)
	if n == 0 {
		return
	}

	r.scopes, r.saved = r.saved[n-1], r.saved[:n-1]
}

// Chain returns the scope chain ending in id, outermost first.
func (r *Resolver) Chain(id ID) []ID {
	var chain []ID
	for ; id != noParent; id = r.parents[id] {
		chain = append(chain, id)
	}

	slices.Reverse(chain)

	return chain
}

// Qualified returns the display name of key: its scope chain and name joined by "/".
func (r *Resolver) Qualified(key Key) string {
	var b strings.Builder
	for _, id := range r.Chain(key.Scope) {
		b.WriteString(strconv.Itoa(int(id)))
		b.WriteByte('/')
	}

	b.WriteString(key.Name)

	return b.String()
}

// EnterPath opens a new path nested in the current one.
func (r *Resolver) EnterPath() PathID {
	id := r.nextPath
	r.nextPath++

	r.paths = append(r.paths, id)
	r.names[id] = map[Key]*usage.State{}

	return id
}

// ExitPath leaves the innermost path and returns its id. Its states remain
// available to [Resolver.Merge] and [Resolver.Absorb].
func (r *Resolver) ExitPath() PathID {
	n := len(r.paths)
	if n == 1 {
		return r.paths[0]
	}

	id := r.paths[n-1]
	r.paths = r.paths[:n-1]

	return id
}

// Conflict is a variable whose type differs between two merged arms.
type Conflict struct {
	Key         Key
	Left, Right *types.Type
}

// Merge combines two exited alternative arms into the current path and
// discards them.
//
// A variable present in both arms gets the combined flags of both. A variable
// present in only one arm is combined with its state before the branch, when
// there is one on the current path chain, or with an absent counterpart
// otherwise.
func (r *Resolver) Merge(left, right PathID) []Conflict {
	lm, rm := r.names[left], r.names[right]

	keys := slices.Collect(maps.Keys(lm))
	for key := range rm {
		if _, ok := lm[key]; !ok {
			keys = append(keys, key)
		}
	}

	slices.SortFunc(keys, compareKeys)

	var conflicts []Conflict

	for _, key := range keys {
		ls, lok := lm[key]
		rs, rok := rm[key]

		var merged *usage.State

		switch {
		case lok && rok:
			if types.Conflict(ls.Type, rs.Type) {
				conflicts = append(conflicts, Conflict{Key: key, Left: ls.Type, Right: rs.Type})
			}

			merged = usage.Merge(ls, rs)

		case lok:
			merged = r.mergeOne(key, ls)

		default:
			merged = r.mergeOne(key, rs)
		}

		r.Install(key, merged)
	}

	delete(r.names, left)
	delete(r.names, right)

	return conflicts
}

func (r *Resolver) mergeOne(key Key, state *usage.State) *usage.State {
	if _, before, ok := r.lookup(key); ok {
		return usage.Merge(state, before)
	}

	return usage.MergeAbsent(state)
}

// Absorb moves the states of an exited path that always executes into the
// current path and discards it. Keys for which drop returns true are not kept.
func (r *Resolver) Absorb(path PathID, drop func(Key) bool) {
	for _, key := range slices.SortedFunc(maps.Keys(r.names[path]), compareKeys) {
		if drop != nil && drop(key) {
			continue
		}

		r.Install(key, r.names[path][key])
	}

	delete(r.names, path)
}

// States yields the states of scope id on the current path, ordered by name.
func (r *Resolver) States(id ID) iter.Seq2[Key, *usage.State] {
	return func(yield func(Key, *usage.State) bool) {
		current := r.names[r.Path()]

		for _, key := range slices.SortedFunc(maps.Keys(current), compareKeys) {
			if key.Scope != id {
				continue
			}

			if !yield(key, current[key]) {
				return
			}
		}
	}
}

// Variables returns the name map with qualified display names.
func (r *Resolver) Variables() map[PathID]map[string]*usage.State {
	vars := make(map[PathID]map[string]*usage.State, len(r.names))

	for path, states := range r.names {
		m := make(map[string]*usage.State, len(states))
		for key, state := range states {
			m[r.Qualified(key)] = state
		}

		vars[path] = m
	}

	return vars
}
