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

import "github.com/shutter-cp/blockpy/internal/config"

// Issues maps every issue kind to its occurrences in report order.
type Issues map[Kind][]Record

// Sink collects issues during one analysis.
type Sink struct {
	issues   Issues
	disabled config.BitMask[Mask]
	suppress func(Record) bool
}

// NewSink returns a sink with an empty occurrence list for every issue kind.
// Issues of disabled kinds, or for which suppress returns true, are dropped.
func NewSink(disabled config.BitMask[Mask], suppress func(Record) bool) *Sink {
	issues := make(Issues, numKinds)
	for k := range Kinds() {
		issues[k] = []Record{}
	}

	return &Sink{issues: issues, disabled: disabled, suppress: suppress}
}

// Report appends an issue occurrence.
func (s *Sink) Report(kind Kind, rec Record) {
	if s.disabled.Enabled(kind.Mask()) {
		return
	}

	if s.suppress != nil && s.suppress(rec) {
		return
	}

	s.issues[kind] = append(s.issues[kind], rec)
}

// Issues returns the collected issues.
func (s *Sink) Issues() Issues { return s.issues }
