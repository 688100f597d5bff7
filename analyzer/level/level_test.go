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

package level_test

import (
	"testing"

	. "github.com/shutter-cp/blockpy/analyzer/level"
)

func TestLists(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text    string
		want    Lists
		wantErr bool
	}{
		{"", ListsLast, false},
		{"last", ListsLast, false},
		{"First", ListsFirst, false},
		{"strict", ListsStrict, false},
		{"on", ListsStrict, false},
		{"sometimes", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var got Lists

			err := got.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Got error %v, expected error %t", err, tt.wantErr)
			}

			if !tt.wantErr && got != tt.want {
				t.Errorf("Got %d, expected %d", got, tt.want)
			}
		})
	}

	if _, err := Lists(9).MarshalText(); err == nil {
		t.Error("Expected an error for an unknown level")
	}

	if text, err := ListsFirst.MarshalText(); err != nil || string(text) != "first" {
		t.Errorf("Got %q, %v, expected first", text, err)
	}
}

func TestOperands(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text    string
		want    Operands
		wantErr bool
	}{
		{"", OperandsKnown, false},
		{"known", OperandsKnown, false},
		{"off", OperandsKnown, false},
		{"STRICT", OperandsStrict, false},
		{"true", OperandsStrict, false},
		{"all", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var got Operands

			err := got.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Got error %v, expected error %t", err, tt.wantErr)
			}

			if !tt.wantErr && got != tt.want {
				t.Errorf("Got %d, expected %d", got, tt.want)
			}
		})
	}

	if text, err := OperandsStrict.MarshalText(); err != nil || string(text) != "strict" {
		t.Errorf("Got %q, %v, expected strict", text, err)
	}
}
