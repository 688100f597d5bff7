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

// Package report collects the issues found by an analysis into a report.
package report

import (
	"fmt"
	"iter"
	"strings"
)

// Kind is the kind of an issue. The set of kinds is closed.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	ParserFailure                    Kind = iota // Parser Failure
	UnconnectedBlocks                            // Unconnected blocks
	EmptyBody                                    // Empty Body
	UnnecessaryPass                              // Unnecessary Pass
	UnreadVariables                              // Unread variables
	UndefinedVariables                           // Undefined variables
	PossiblyUndefinedVariables                   // Possibly undefined variables
	OverwrittenVariables                         // Overwritten variables
	AppendToNonList                              // Append to non-list
	UsedIterationList                            // Used iteration list
	UnusedIterationVariable                      // Unused iteration variable
	NonListIterations                            // Non-list iterations
	EmptyIterations                              // Empty iterations
	TypeChanges                                  // Type changes
	IterationVariableIsIterationList             // Iteration variable is iteration list
	UnknownFunctions                             // Unknown functions
	NotAFunction                                 // Not a function
	IncompatibleTypes                            // Incompatible types
	ReturnOutsideFunction                        // Return outside function
	ReadOutOfScope                               // Read out of scope
	WriteOutOfScope                              // Write out of scope
	AliasedBuiltin                               // Aliased built-in
	MethodNotInType                              // Method not in Type
)

// numKinds is the number of issue kinds.
const numKinds = int(MethodNotInType) + 1

// Kinds yields every issue kind in taxonomy order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range numKinds {
			if !yield(Kind(k)) {
				return
			}
		}
	}
}

// ParseKind returns the kind with the given name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for k := range Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown issue kind %q", name)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= numKinds {
		return nil, fmt.Errorf("unknown issue kind %d", k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// Mask is a set of issue kinds.
type Mask uint32

// Mask returns the set containing only k.
func (k Kind) Mask() Mask { return 1 << k }
