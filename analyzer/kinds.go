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

package analyzer

import "github.com/shutter-cp/blockpy/internal/report"

type (
	// Report is the result of one analysis.
	Report = report.Report

	// Kind is an issue kind of the closed taxonomy.
	Kind = report.Kind

	// Record describes one issue occurrence.
	Record = report.Record

	// Issues maps every issue kind to its occurrences.
	Issues = report.Issues
)

// Issue kinds, in taxonomy order.
const (
	ParserFailure                    = report.ParserFailure
	UnconnectedBlocks                = report.UnconnectedBlocks
	EmptyBody                        = report.EmptyBody
	UnnecessaryPass                  = report.UnnecessaryPass
	UnreadVariables                  = report.UnreadVariables
	UndefinedVariables               = report.UndefinedVariables
	PossiblyUndefinedVariables       = report.PossiblyUndefinedVariables
	OverwrittenVariables             = report.OverwrittenVariables
	AppendToNonList                  = report.AppendToNonList
	UsedIterationList                = report.UsedIterationList
	UnusedIterationVariable          = report.UnusedIterationVariable
	NonListIterations                = report.NonListIterations
	EmptyIterations                  = report.EmptyIterations
	TypeChanges                      = report.TypeChanges
	IterationVariableIsIterationList = report.IterationVariableIsIterationList
	UnknownFunctions                 = report.UnknownFunctions
	NotAFunction                     = report.NotAFunction
	IncompatibleTypes                = report.IncompatibleTypes
	ReturnOutsideFunction            = report.ReturnOutsideFunction
	ReadOutOfScope                   = report.ReadOutOfScope
	WriteOutOfScope                  = report.WriteOutOfScope
	AliasedBuiltin                   = report.AliasedBuiltin
	MethodNotInType                  = report.MethodNotInType
)

// ParseKind returns the issue kind with the given name, ignoring case.
func ParseKind(s string) (Kind, error) { return report.ParseKind(s) }

// Kinds yields every issue kind in taxonomy order.
var Kinds = report.Kinds
