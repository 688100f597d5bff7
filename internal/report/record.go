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

package report

import (
	"strings"

	"github.com/shutter-cp/blockpy/ast"
	"github.com/shutter-cp/blockpy/internal/types"
)

// Record describes one issue occurrence. Fields irrelevant to the issue kind
// are left empty.
type Record struct {
	Name      string       `json:"name,omitempty"`
	Pos       ast.Position `json:"position,omitzero"`
	Scope     string       `json:"scope,omitempty"`
	Type      *types.Type  `json:"type,omitempty"`
	Left      *types.Type  `json:"left,omitempty"`
	Right     *types.Type  `json:"right,omitempty"`
	Operation string       `json:"operation,omitempty"`
	Old       *types.Type  `json:"old,omitempty"`
	New       *types.Type  `json:"new,omitempty"`
}

// Detail returns a short human-readable summary of the record fields.
func (r Record) Detail() string {
	var parts []string

	if r.Name != "" {
		parts = append(parts, r.Name)
	}

	switch {
	case r.Operation != "" && r.Left != nil && r.Right != nil:
		parts = append(parts, r.Operation+"("+r.Left.String()+", "+r.Right.String()+")")

	case r.Operation != "":
		parts = append(parts, r.Operation)
	}

	if r.Old != nil && r.New != nil {
		parts = append(parts, r.Old.String()+" -> "+r.New.String())
	} else if r.Type != nil {
		parts = append(parts, r.Type.String())
	}

	if r.Scope != "" {
		parts = append(parts, "in "+r.Scope)
	}

	return strings.Join(parts, " ")
}
