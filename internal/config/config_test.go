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

package config_test

import (
	"testing"

	. "github.com/shutter-cp/blockpy/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(PassChecks, ScopeChecks)

	if !b.Enabled(PassChecks) || b.Enabled(IterationChecks) {
		t.Errorf("Got %08b, expected pass and scope checks", b.Value())
	}

	b.Set(IterationChecks, true)
	b.Set(PassChecks, false)

	if b.Enabled(PassChecks) || !b.Enabled(IterationChecks) {
		t.Errorf("Got %08b, expected iteration and scope checks", b.Value())
	}

	if b.Enabled(0) {
		t.Error("Expected the empty flag to be disabled")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if DefaultChecks().Value() != AllChecks {
		t.Error("Expected all check families by default")
	}

	if d := DefaultBehavior(); !d.Enabled(NoLint) || !d.Enabled(Builtins) {
		t.Error("Expected nolint comments and built-ins by default")
	}
}
