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

// Method computes the result type of a method call on a receiver.
// Methods that modify their receiver update it in place.
type Method func(recv *Type, args []*Type) *Type

// mutators modify their receiver without reading its contents.
var mutators = map[string]bool{
	"append": true,
	"extend": true,
	"insert": true,
	"add":    true,
	"update": true,
}

// IsMutator reports whether a method named name modifies its receiver
// without reading it.
func IsMutator(name string) bool { return mutators[name] }

// LookupMethod returns the named method of a receiver type.
func LookupMethod(recv *Type, name string) (Method, bool) {
	if recv == nil {
		return nil, false
	}

	m, ok := methods[recv.Kind][name]

	return m, ok
}

var methods = map[Kind]map[string]Method{
	List: {
		"append":  appendArg(0),
		"insert":  appendArg(1),
		"extend":  extend,
		"pop":     elementOf,
		"index":   returns(NewNum),
		"count":   returns(NewNum),
		"sort":    returns(NewNone),
		"reverse": returns(NewNone),
		"remove":  returns(NewNone),
		"clear":   returns(NewNone),
		"copy":    shallowCopy,
	},
	Set: {
		"add":                  appendArg(0),
		"update":               extend,
		"pop":                  elementOf,
		"remove":               returns(NewNone),
		"discard":              returns(NewNone),
		"clear":                returns(NewNone),
		"union":                shallowCopy,
		"intersection":         shallowCopy,
		"difference":           shallowCopy,
		"symmetric_difference": shallowCopy,
		"issubset":             returns(NewBool),
		"issuperset":           returns(NewBool),
		"copy":                 shallowCopy,
	},
	Dict: {
		"items":      items,
		"keys":       func(recv *Type, _ []*Type) *Type { return listOf(recv.Keys, recv.Empty) },
		"values":     func(recv *Type, _ []*Type) *Type { return listOf(recv.Values, recv.Empty) },
		"get":        dictValue,
		"pop":        dictValue,
		"setdefault": dictValue,
		"update":     dictUpdate,
		"clear":      returns(NewNone),
		"copy":       shallowCopy,
	},
	Str: {
		"upper":      returns(NewStr),
		"lower":      returns(NewStr),
		"strip":      returns(NewStr),
		"lstrip":     returns(NewStr),
		"rstrip":     returns(NewStr),
		"title":      returns(NewStr),
		"capitalize": returns(NewStr),
		"swapcase":   returns(NewStr),
		"replace":    returns(NewStr),
		"format":     returns(NewStr),
		"join":       returns(NewStr),
		"center":     returns(NewStr),
		"zfill":      returns(NewStr),
		"split":      returns(strList),
		"splitlines": returns(strList),
		"find":       returns(NewNum),
		"rfind":      returns(NewNum),
		"index":      returns(NewNum),
		"count":      returns(NewNum),
		"startswith": returns(NewBool),
		"endswith":   returns(NewBool),
		"isdigit":    returns(NewBool),
		"isnumeric":  returns(NewBool),
		"isalpha":    returns(NewBool),
		"isalnum":    returns(NewBool),
		"isspace":    returns(NewBool),
		"isupper":    returns(NewBool),
		"islower":    returns(NewBool),
	},
	Num: {
		"is_integer": returns(NewBool),
		"conjugate":  returns(NewNum),
		"bit_length": returns(NewNum),
	},
	File: {
		"read":      returns(NewStr),
		"readline":  returns(NewStr),
		"readlines": returns(strList),
		"write":     returns(NewNum),
		"close":     returns(NewNone),
	},
}

func returns(ctor func() *Type) Method {
	return func(*Type, []*Type) *Type { return ctor() }
}

func strList() *Type { return NewList(NewStr()) }

// appendArg adds the argument at index i as a new element.
func appendArg(i int) Method {
	return func(recv *Type, args []*Type) *Type {
		if i < len(args) {
			AddElement(recv, Copy(args[i]))
		}

		return NewNone()
	}
}

func extend(recv *Type, args []*Type) *Type {
	if len(args) > 0 && IsSequence(args[0]) && !IsEmpty(args[0]) {
		AddElement(recv, IndexSequence(args[0], 0))
	}

	return NewNone()
}

func elementOf(recv *Type, _ []*Type) *Type { return IndexSequence(recv, 0) }

func shallowCopy(recv *Type, _ []*Type) *Type {
	c := *recv

	return &c
}

func items(recv *Type, _ []*Type) *Type {
	if recv.Empty {
		return NewList(nil)
	}

	return NewList(NewTuple(orUnknown(recv.Keys), orUnknown(recv.Values)))
}

func listOf(elem *Type, empty bool) *Type {
	if empty {
		return NewList(nil)
	}

	return NewList(orUnknown(elem))
}

func dictValue(recv *Type, _ []*Type) *Type { return element(recv.Values, recv.Empty) }

func dictUpdate(recv *Type, args []*Type) *Type {
	if len(args) > 0 && recv.Empty {
		if other := args[0]; other != nil && other.Kind == Dict && !other.Empty {
			recv.Empty = false
			recv.Keys, recv.Values = other.Keys, other.Values
		}
	}

	return NewNone()
}

func orUnknown(t *Type) *Type {
	if t == nil {
		return NewUnknown()
	}

	return t
}
