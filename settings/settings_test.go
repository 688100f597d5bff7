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

package settings_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tifa "github.com/shutter-cp/blockpy/analyzer"
	. "github.com/shutter-cp/blockpy/settings"
)

const allSettings = `{
	"version": "v1.0.0",
	"pass": true,
	"iteration": true,
	"scope": false,
	"nolint": true,
	"builtins": true,
	"lists": "strict",
	"operands": "known",
	"max-call-depth": 16,
	"placeholder": "___",
	"disable": ["Unnecessary Pass"]
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField() - 1}, // version is no option
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), tifa.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name    string
		data    string
		wantErr error
	}{
		{"yaml", "version: v1.2.0\nlists: first\ndisable:\n  - unread variables\n", nil},
		{"json", `{"version": "v1.0.0", "lists": "strict", "max-call-depth": 16}`, nil},
		{"empty", "", nil},
		{"bad version", "version: \"1.0\"\n", ErrInvalidVersion},
		{"future version", "version: v2.0.0\n", ErrUnsupportedVersion},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		data string
	}{
		{"unknown kind", "disable:\n  - Spelling\n"},
		{"bad level", "lists: sometimes\n"},
		{"bad yaml", "lists: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("Parse() succeeded, want error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".tifa.yaml")
	if err := os.WriteFile(path, []byte("scope: false\ndisable: [Unread variables]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	a := tifa.New(s.Options()...)

	r := a.ProcessCode(t.Context(), "test.py", "data = [1]\ndef f():\n    return data\nf()\nx = 1\n")
	if r.Fired(tifa.ReadOutOfScope) {
		t.Error("scope: false not applied")
	}

	if r.Fired(tifa.UnreadVariables) {
		t.Error("disable not applied")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want %v", err, os.ErrNotExist)
	}
}
