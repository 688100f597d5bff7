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

// Lists specifies how the element type of a list, set or dict literal is inferred.
type Lists uint8

const (
	// ListsLast takes the type of the last element.
	ListsLast Lists = iota

	// ListsFirst takes the type of the first element.
	ListsFirst

	// ListsStrict takes the type of the first element and reports elements of a different type.
	ListsStrict
)

// MarshalText implements [encoding.TextMarshaler].
func (o Lists) MarshalText() ([]byte, error) {
	switch o {
	case ListsLast:
		return []byte("last"), nil

	case ListsFirst:
		return []byte("first"), nil

	case ListsStrict:
		return []byte("strict"), nil

	default:
		return nil, fmt.Errorf("unknown lists level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Lists) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "last":
		*o = ListsLast

	case "first":
		*o = ListsFirst

	case "strict", "on", "true":
		*o = ListsStrict

	default:
		return fmt.Errorf("unknown lists level %q", string(text))
	}

	return nil
}
