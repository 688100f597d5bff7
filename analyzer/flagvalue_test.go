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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "github.com/shutter-cp/blockpy/analyzer"
	"github.com/shutter-cp/blockpy/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Checks
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.PassChecks,
			args:    []string{"-scope"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.ScopeChecks,
			args:    []string{"-scope=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.AllChecks,
			args:    []string{"-scope=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.ScopeChecks
			fv := NewChecksValue(&flags, value)
			fs.Var(fv, "scope", "report accesses to variables of enclosing scopes")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("ScopeChecks enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.BitMask[config.Checks]

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewChecksValue(&flags, config.PassChecks), "pass", "report pass statements")

	if err := fs.Parse([]string{"-pass=maybe"}); err == nil {
		t.Error("Parse succeeded, want error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.ScopeChecks)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewChecksValue(&flags, config.ScopeChecks)
	fs.Var(fv, "scope", "report accesses to variables of enclosing scopes")

	const expectedUsage = `
  -scope
    	report accesses to variables of enclosing scopes (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
