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
	"encoding/json"
	"iter"

	"github.com/shutter-cp/blockpy/internal/scope"
	"github.com/shutter-cp/blockpy/internal/usage"
)

// Report is the result of analyzing one program.
type Report struct {
	// Success is false when the program could not be parsed or the analysis
	// failed internally. Err holds the cause.
	Success bool
	Err     error

	// Issues has an entry for every issue kind.
	Issues Issues

	// Variables is the final name map, keyed by path, then by the qualified
	// variable name.
	Variables map[scope.PathID]map[string]*usage.State
}

// Failed returns the report of an analysis that could not complete.
func Failed(err error) *Report {
	return &Report{
		Success:   false,
		Err:       err,
		Issues:    Issues{},
		Variables: map[scope.PathID]map[string]*usage.State{},
	}
}

// Fired reports whether at least one issue of kind was found.
func (r *Report) Fired(kind Kind) bool {
	return len(r.Issues[kind]) > 0
}

// Count returns the number of issues of kind.
func (r *Report) Count(kind Kind) int {
	return len(r.Issues[kind])
}

// Total returns the number of issues of all kinds.
func (r *Report) Total() int {
	n := 0
	for _, recs := range r.Issues {
		n += len(recs)
	}

	return n
}

// All yields all issues in taxonomy order.
func (r *Report) All() iter.Seq2[Kind, Record] {
	return func(yield func(Kind, Record) bool) {
		for k := range Kinds() {
			for _, rec := range r.Issues[k] {
				if !yield(k, rec) {
					return
				}
			}
		}
	}
}

type jsonReport struct {
	Success   bool                                     `json:"success"`
	Error     string                                   `json:"error,omitempty"`
	Issues    Issues                                   `json:"issues"`
	Variables map[scope.PathID]map[string]*usage.State `json:"variables"`
}

// MarshalJSON implements [json.Marshaler].
func (r *Report) MarshalJSON() ([]byte, error) {
	j := jsonReport{Success: r.Success, Issues: r.Issues, Variables: r.Variables}
	if r.Err != nil {
		j.Error = r.Err.Error()
	}

	return json.Marshal(j)
}
