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

package level

import (
	"fmt"
	"strings"
)

// Operands specifies when binary operators are checked for incompatible operand types.
type Operands uint8

const (
	// OperandsKnown checks only operators where both operand types are known.
	OperandsKnown Operands = iota

	// OperandsStrict also reports operators with an operand of unknown type.
	OperandsStrict
)

// MarshalText implements [encoding.TextMarshaler].
func (o Operands) MarshalText() ([]byte, error) {
	switch o {
	case OperandsKnown:
		return []byte("known"), nil

	case OperandsStrict:
		return []byte("strict"), nil

	default:
		return nil, fmt.Errorf("unknown operands level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Operands) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "known", "off", "false":
		*o = OperandsKnown

	case "strict", "on", "true":
		*o = OperandsStrict

	default:
		return fmt.Errorf("unknown operands level %q", string(text))
	}

	return nil
}
