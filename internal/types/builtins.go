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

package types

// builtins maps the names of modeled built-in functions to their result types.
var builtins = map[string]func(args []*Type) *Type{
	"print":      none,
	"help":       none,
	"exit":       none,
	"quit":       none,
	"input":      func([]*Type) *Type { return NewStr() },
	"str":        func([]*Type) *Type { return NewStr() },
	"repr":       func([]*Type) *Type { return NewStr() },
	"chr":        func([]*Type) *Type { return NewStr() },
	"format":     func([]*Type) *Type { return NewStr() },
	"int":        number,
	"float":      number,
	"abs":        number,
	"round":      number,
	"len":        number,
	"sum":        number,
	"ord":        number,
	"pow":        number,
	"hash":       number,
	"id":         number,
	"bool":       boolean,
	"isinstance": boolean,
	"callable":   boolean,
	"any":        boolean,
	"all":        boolean,
	"range":      func([]*Type) *Type { return NewList(NewNum()) },
	"open":       func([]*Type) *Type { return NewFile() },
	"type":       unknown,
	"map":        unknown,
	"filter":     unknown,
	"tuple":      unknown,
	"min":        extreme,
	"max":        extreme,
	"list":       func(args []*Type) *Type { return NewList(firstElement(args)) },
	"sorted":     func(args []*Type) *Type { return NewList(firstElement(args)) },
	"reversed":   func(args []*Type) *Type { return NewList(firstElement(args)) },
	"set":        func(args []*Type) *Type { return NewSet(firstElement(args)) },
	"dict":       func([]*Type) *Type { return NewDict(nil, nil) },
	"divmod":     func([]*Type) *Type { return NewTuple(NewNum(), NewNum()) },
	"enumerate":  enumerate,
	"zip":        zip,
	"iter":       unknown,
	"next":       unknown,
	"object":     unknown,
	"super":      unknown,

	"Exception":           unknown,
	"ArithmeticError":     unknown,
	"AssertionError":      unknown,
	"AttributeError":      unknown,
	"EOFError":            unknown,
	"FileNotFoundError":   unknown,
	"ImportError":         unknown,
	"IndexError":          unknown,
	"IOError":             unknown,
	"KeyError":            unknown,
	"KeyboardInterrupt":   unknown,
	"LookupError":         unknown,
	"NameError":           unknown,
	"NotImplementedError": unknown,
	"OSError":             unknown,
	"RuntimeError":        unknown,
	"StopIteration":       unknown,
	"TypeError":           unknown,
	"ValueError":          unknown,
	"ZeroDivisionError":   unknown,
}

// builtinDefs holds one shared definition per built-in.
var builtinDefs = func() map[string]*Definition {
	defs := make(map[string]*Definition, len(builtins))
	for name, fn := range builtins {
		defs[name] = &Definition{Name: name, Builtin: fn}
	}

	return defs
}()

// IsBuiltin reports whether name is a modeled built-in function.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]

	return ok
}

// LookupBuiltin returns the function type of a built-in.
func LookupBuiltin(name string) (*Type, bool) {
	def, ok := builtinDefs[name]
	if !ok {
		return nil, false
	}

	return NewFunction(def), true
}

func none([]*Type) *Type { return NewNone() }

func number([]*Type) *Type { return NewNum() }

func boolean([]*Type) *Type { return NewBool() }

func unknown([]*Type) *Type { return NewUnknown() }

// firstElement returns the element type of the first argument, or nil
// for an empty result.
func firstElement(args []*Type) *Type {
	if len(args) == 0 || !IsSequence(args[0]) || IsEmpty(args[0]) {
		if len(args) > 0 && !args[0].IsKnown() {
			return NewUnknown()
		}

		return nil
	}

	return IndexSequence(args[0], 0)
}

// extreme models min and max: the element of a single sequence argument,
// otherwise the first argument.
func extreme(args []*Type) *Type {
	switch {
	case len(args) == 0:
		return NewUnknown()

	case len(args) == 1 && IsSequence(args[0]):
		return IndexSequence(args[0], 0)

	default:
		return Copy(args[0])
	}
}

func enumerate(args []*Type) *Type {
	elem := firstElement(args)
	if elem == nil {
		return NewList(nil)
	}

	return NewList(NewTuple(NewNum(), elem))
}

func zip(args []*Type) *Type {
	elems := make([]*Type, 0, len(args))

	for _, arg := range args {
		if !IsSequence(arg) {
			return NewUnknown()
		}

		if IsEmpty(arg) {
			return NewList(nil)
		}

		elems = append(elems, IndexSequence(arg, 0))
	}

	if len(elems) == 0 {
		return NewList(nil)
	}

	return NewList(NewTuple(elems...))
}
