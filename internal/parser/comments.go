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

package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/shutter-cp/blockpy/ast"
)

// scanComments collects the # comments of a source text, skipping string
// literals. The gpython tokenizer drops comments, so they are found here.
func scanComments(src string) []*ast.Comment {
	var (
		comments []*ast.Comment
		quote    string // delimiter of the open string literal
	)

	line, start := 1, 0

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch {
		case c == '\n':
			line, start = line+1, i+1

			if len(quote) == 1 {
				quote = "" // unterminated single-quoted string
			}

		case quote != "":
			switch {
			case c == '\\':
				if i+1 < len(src) && src[i+1] == '\n' {
					line, start = line+1, i+2
				}

				i++

			case strings.HasPrefix(src[i:], quote):
				i += len(quote) - 1
				quote = ""
			}

		case c == '"' || c == '\'':
			quote = src[i : i+1]

			if triple := strings.Repeat(quote, 3); strings.HasPrefix(src[i:], triple) {
				quote = triple
				i += 2
			}

		case c == '#':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}

			comments = append(comments, &ast.Comment{
				Position: ast.Position{Line: line, Column: utf8.RuneCountInString(src[start:i])},
				Text:     strings.TrimSpace(src[i+1 : i+end]),
			})

			i += end - 1
		}
	}

	return comments
}
