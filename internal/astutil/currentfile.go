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

package astutil

import (
	"regexp"
	"strings"

	"github.com/shutter-cp/blockpy/ast"
)

// tifa is the name of the linter.
const tifa = "tifa"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	name   string
	nolint map[int]bool
}

// NewCurrentFile creates a new [CurrentFile] from a parsed module.
func NewCurrentFile(name string, module *ast.Module) CurrentFile {
	if module == nil {
		return CurrentFile{}
	}

	nolint := make(map[int]bool)

	for _, c := range module.Comments {
		if CommentHasNoLint(c) {
			nolint[c.Line] = true
		}
	}

	return CurrentFile{name: name, nolint: nolint}
}

// Valid returns true if the [CurrentFile] was created from a module.
func (c CurrentFile) Valid() bool {
	return c.nolint != nil
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.name
}

// NoLintComment checks if a line carries a # nolint:tifa comment.
func (c CurrentFile) NoLintComment(pos ast.Position) bool {
	return c.nolint[pos.Line]
}

var nolintPattern = regexp.MustCompile(`^nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `# nolint:tifa` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == tifa || l == "all" {
			return true
		}
	}

	return false
}
