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

import "encoding/json"

type jsonType struct {
	Name     string      `json:"name"`
	Empty    bool        `json:"empty,omitempty"`
	Subtype  *jsonType   `json:"subtype,omitempty"`
	Subtypes []*jsonType `json:"subtypes,omitempty"`
	Keys     *jsonType   `json:"keys,omitempty"`
	Values   *jsonType   `json:"values,omitempty"`
	Function string      `json:"function,omitempty"`
	Module   string      `json:"module,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (t *Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toJSON(0))
}

func (t *Type) toJSON(depth int) *jsonType {
	if t == nil {
		return nil
	}

	j := &jsonType{Name: t.Kind.String(), Empty: t.Empty, Module: t.Name}

	if t.Def != nil {
		j.Function = t.Def.Name
	}

	if depth >= maxDepth {
		return j
	}

	j.Subtype = t.Subtype.toJSON(depth + 1)
	j.Keys = t.Keys.toJSON(depth + 1)
	j.Values = t.Values.toJSON(depth + 1)

	for _, s := range t.Subtypes {
		j.Subtypes = append(j.Subtypes, s.toJSON(depth+1))
	}

	return j
}
