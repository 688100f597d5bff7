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
	"errors"
	"fmt"

	"github.com/shutter-cp/blockpy/ast"
)

// ErrInternal marks errors that indicate bugs in the analyzer logic rather
// than issues in the analyzed program.
var ErrInternal = errors.New("internal error")

// InternalError is raised by analysis handlers for conditions that cannot
// happen for a well-formed syntax tree.
type InternalError struct {
	Pos ast.Position
	Err error
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("Internal Error: %s: %s", e.Pos, e.Msg)
}

// Unwrap returns [ErrInternal] and the specific cause.
func (e *InternalError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInternal}
	}

	return []error{ErrInternal, e.Err}
}

// InternalPanic aborts the analysis with an [InternalError].
// The analysis entry point recovers it into a failed result.
func InternalPanic(pos ast.Position, err error, format string, args ...any) {
	panic(&InternalError{Pos: pos, Err: err, Msg: fmt.Sprintf(format, args...)})
}

// Recovered converts a recovered panic value into an error wrapping [ErrInternal].
func Recovered(r any) error {
	switch r := r.(type) {
	case *InternalError:
		return r

	case error:
		return fmt.Errorf("%w: %w", ErrInternal, r)

	default:
		return fmt.Errorf("%w: %v", ErrInternal, r)
	}
}
