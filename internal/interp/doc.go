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

// Package interp implements the abstract interpretation of a parsed module.
//
// The interpreter walks the syntax tree once, tracking for every variable
// whether it is set, read or overwritten on the current control-flow path,
// and an abstract type for every value. Function bodies are walked when they
// are called, with the abstract types of the arguments. Alternative paths of
// conditionals and loops are merged, so variables set on only one path end up
// possibly set.
package interp
