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

// Package usage tracks what is known about a variable on a path: its type
// and whether it has been set, read or overwritten.
package usage

import "fmt"

// Tri is a three-valued flag. The zero value is [No].
type Tri uint8

//go:generate go tool stringer -type Tri,Method -linecomment
const (
	No    Tri = iota // no
	Yes              // yes
	Maybe            // maybe
)

var combinations = [3][3]Tri{
	No:    {No: No, Yes: Maybe, Maybe: Maybe},
	Yes:   {No: Maybe, Yes: Yes, Maybe: Maybe},
	Maybe: {No: Maybe, Yes: Maybe, Maybe: Maybe},
}

// Combine merges a flag from two alternative paths: agreeing values are
// kept, anything else becomes [Maybe].
func Combine(a, b Tri) Tri {
	if a > Maybe || b > Maybe {
		return Maybe
	}

	return combinations[a][b]
}

// Absent merges a flag against a path where the variable does not exist.
func (t Tri) Absent() Tri {
	if t == No {
		return No
	}

	return Maybe
}

// MarshalText implements [encoding.TextMarshaler].
func (t Tri) MarshalText() ([]byte, error) {
	if t > Maybe {
		return nil, fmt.Errorf("unknown flag value %d", t)
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Tri) UnmarshalText(text []byte) error {
	switch string(text) {
	case "no":
		*t = No
	case "yes":
		*t = Yes
	case "maybe":
		*t = Maybe
	default:
		return fmt.Errorf("unknown flag value %q", string(text))
	}

	return nil
}

// Method is the kind of variable access recorded in a trace.
type Method uint8

const (
	Store Method = iota // store
	Load                // load
)

// MarshalText implements [encoding.TextMarshaler].
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
