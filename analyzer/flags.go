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

import (
	"flag"

	"github.com/shutter-cp/blockpy/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(r *runOptions, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(checksValue(&r.checks, config.PassChecks), "pass", "report empty bodies and unnecessary pass statements")
	flags.Var(checksValue(&r.checks, config.IterationChecks), "iteration", "report unused loop variables and iteration lists used in their loop")
	flags.Var(checksValue(&r.checks, config.ScopeChecks), "scope", "report accesses to variables of enclosing scopes")
	flags.Var(behaviorValue(&r.behavior, config.NoLint), "nolint", "honor # nolint:tifa comments")
	flags.Var(behaviorValue(&r.behavior, config.Builtins), "builtins", "model built-in functions")
	flags.TextVar(&r.lists, "lists", r.lists, "element type of container literals: last, first or strict")
	flags.TextVar(&r.operands, "operands", r.operands, "operand types checked for compatibility: known or strict")
	flags.IntVar(&r.maxCallDepth, "max-call-depth", r.maxCallDepth, "maximum nesting of modeled function calls")
	flags.StringVar(&r.placeholder, "placeholder", r.placeholder, "identifier of an unconnected block")
	flags.Var(&kindsValue{mask: &r.disabled}, "disable", "comma separated issue kinds to suppress")
}

func checksValue(flags *config.BitMask[config.Checks], value config.Checks) boolValue[config.Checks, *config.BitMask[config.Checks]] {
	return boolValue[config.Checks, *config.BitMask[config.Checks]]{flags: flags, value: value}
}

func behaviorValue(flags *config.BitMask[config.Config], value config.Config) boolValue[config.Config, *config.BitMask[config.Config]] {
	return boolValue[config.Config, *config.BitMask[config.Config]]{flags: flags, value: value}
}
