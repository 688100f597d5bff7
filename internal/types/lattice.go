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

package types

import "slices"

// Equal reports whether two types are structurally equal.
//
// An Unknown type is never equal to anything, including itself. An empty
// List, Set or Dict is equal to any container of the same kind.
func Equal(a, b *Type) bool { return equal(a, b, 0) }

func equal(a, b *Type, depth int) bool {
	if !a.IsKnown() || !b.IsKnown() || a.Kind != b.Kind {
		return false
	}

	if a == b || depth >= maxDepth {
		return true
	}

	switch a.Kind {
	case List, Set:
		if a.Empty || b.Empty {
			return true
		}

		return equal(a.Subtype, b.Subtype, depth+1)

	case Dict:
		if a.Empty || b.Empty {
			return true
		}

		return equal(a.Keys, b.Keys, depth+1) && equal(a.Values, b.Values, depth+1)

	case Tuple:
		if len(a.Subtypes) != len(b.Subtypes) {
			return false
		}

		for i, s := range a.Subtypes {
			if !equal(s, b.Subtypes[i], depth+1) {
				return false
			}
		}

		return true

	default:
		return true
	}
}

// Conflict reports whether two fully inferred types differ.
// Types with Unknown parts never conflict, so they raise no type issues.
func Conflict(a, b *Type) bool {
	return !Equal(a, b) && fullyKnown(a, 0) && fullyKnown(b, 0)
}

func fullyKnown(t *Type, depth int) bool {
	if !t.IsKnown() {
		return false
	}

	if depth >= maxDepth {
		return true
	}

	switch t.Kind {
	case List, Set:
		return t.Empty || fullyKnown(t.Subtype, depth+1)

	case Dict:
		return t.Empty || fullyKnown(t.Keys, depth+1) && fullyKnown(t.Values, depth+1)

	case Tuple:
		for _, s := range t.Subtypes {
			if !fullyKnown(s, depth+1) {
				return false
			}
		}

		return true

	default:
		return true
	}
}

// Copy returns the type a new binding of a value receives: a fresh value for
// immutable types and the same reference for mutable ones.
func Copy(t *Type) *Type {
	if t == nil {
		return NewUnknown()
	}

	switch t.Kind {
	case List, Set, Dict, Function, File, Module:
		return t

	default:
		c := *t
		c.Subtypes = slices.Clone(t.Subtypes)

		return &c
	}
}

// Merge combines two types describing the same value on different paths.
// For containers the side with element information wins.
func Merge(a, b *Type) *Type {
	switch {
	case !a.IsKnown():
		if b == nil {
			return NewUnknown()
		}

		return b

	case !b.IsKnown(), a.Kind != b.Kind:
		return a
	}

	switch a.Kind {
	case List, Set, Dict:
		if a.Empty && !b.Empty {
			return b
		}
	}

	return a
}

// AddElement records a new element in a List or Set in place. The first
// element fixes the subtype of an empty container.
func AddElement(container, elem *Type) {
	if container == nil || elem == nil {
		return
	}

	if container.Empty || !container.Subtype.IsKnown() {
		container.Empty = false
		container.Subtype = elem
	}
}

// IsSequence reports whether values of the type can be iterated.
func IsSequence(t *Type) bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case List, Tuple, Set, Dict, Str, File:
		return true

	default:
		return false
	}
}

// IsEmpty reports whether the type is a container known to be empty.
func IsEmpty(t *Type) bool {
	return t.IsContainer() && t.Empty
}

// IndexSequence returns the type of the element at index of a sequence.
// All elements of a List or Set share the subtype; strings yield strings.
func IndexSequence(t *Type, index int) *Type {
	if t == nil {
		return NewUnknown()
	}

	switch t.Kind {
	case Tuple:
		if index < 0 || index >= len(t.Subtypes) {
			return NewUnknown()
		}

		return t.Subtypes[index]

	case List, Set:
		return element(t.Subtype, t.Empty)

	case Dict:
		return element(t.Keys, t.Empty)

	case Str, File:
		return NewStr()

	default:
		return NewUnknown()
	}
}

// Subscript returns the type of container[index]. constant tells whether
// index is a literal integer, needed to select a Tuple element.
func Subscript(t *Type, index int, constant bool) *Type {
	if t == nil {
		return NewUnknown()
	}

	switch t.Kind {
	case List:
		return element(t.Subtype, t.Empty)

	case Dict:
		return element(t.Values, t.Empty)

	case Str:
		return NewStr()

	case Tuple:
		n := len(t.Subtypes)
		if constant {
			if index < 0 {
				index += n
			}

			return IndexSequence(t, index)
		}

		if n > 0 && homogeneous(t.Subtypes) {
			return t.Subtypes[0]
		}

		return NewUnknown()

	default:
		return NewUnknown()
	}
}

// Slice returns the type of container[lower:upper].
func Slice(t *Type) *Type {
	if t == nil {
		return NewUnknown()
	}

	switch t.Kind {
	case List:
		return &Type{Kind: List, Empty: t.Empty, Subtype: t.Subtype}

	case Str:
		return NewStr()

	case Tuple:
		if homogeneous(t.Subtypes) {
			return Copy(t)
		}

		return NewUnknown()

	default:
		return NewUnknown()
	}
}

func homogeneous(ts []*Type) bool {
	for _, s := range ts[min(1, len(ts)):] {
		if !Equal(ts[0], s) {
			return false
		}
	}

	return true
}

func element(t *Type, empty bool) *Type {
	if empty || t == nil {
		return NewUnknown()
	}

	return t
}
