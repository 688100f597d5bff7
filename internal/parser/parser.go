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

// Package parser parses Python source text with the gpython parser and
// converts the result into an [ast.Module].
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	gast "github.com/go-python/gpython/ast"
	pyparser "github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"

	"github.com/shutter-cp/blockpy/ast"
)

// filename is reported by gpython in its own error messages.
const filename = "<tifa>"

// Error is a syntax error. Pos is invalid when the position is unknown.
type Error struct {
	Pos ast.Position
	Msg string
	Err error
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}

	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// IsSyntaxError reports whether err is a syntax error produced by [Parse].
func IsSyntaxError(err error) bool {
	var e *Error

	return errors.As(err, &e)
}

// bailout unwinds the conversion on the first unsupported node.
type bailout struct{ err *Error }

// Parse parses a complete program. The returned error is an *[Error].
func Parse(src string) (module *ast.Module, err error) {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				err = &Error{Msg: fmt.Sprintf("parser failure: %v", r)}

				return
			}

			module, err = nil, b.err
		}
	}()

	mod, err := pyparser.Parse(strings.NewReader(src), filename, "exec")
	if err != nil {
		return nil, &Error{Msg: err.Error(), Err: err}
	}

	m, ok := mod.(*gast.Module)
	if !ok {
		return nil, &Error{Msg: fmt.Sprintf("unexpected parse result %T", mod)}
	}

	return &ast.Module{Body: stmts(m.Body), Comments: scanComments(src)}, nil
}

type positioned interface {
	GetLineno() int
	GetColOffset() int
}

func position(n positioned) ast.Position {
	return ast.Position{Line: n.GetLineno(), Column: n.GetColOffset()}
}

func fail(pos ast.Position, format string, args ...any) {
	panic(bailout{err: &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}})
}

// --- statements

func stmts(list []gast.Stmt) []ast.Stmt {
	if len(list) == 0 {
		return nil
	}

	out := make([]ast.Stmt, len(list))
	for i, s := range list {
		out[i] = stmt(s)
	}

	return out
}

func stmt(s gast.Stmt) ast.Stmt {
	pos := position(s)

	switch n := s.(type) {
	case *gast.FunctionDef:
		return &ast.FunctionDef{Position: pos, Name: string(n.Name), Params: params(n.Args), Body: stmts(n.Body)}

	case *gast.ClassDef:
		class := &ast.ClassDef{Position: pos, Name: string(n.Name), Bases: exprs(n.Bases, ast.Load), Body: stmts(n.Body)}
		for _, kw := range n.Keywords {
			class.Keywords = append(class.Keywords, keyword(kw.Arg, kw.Value))
		}

		return class

	case *gast.Return:
		return &ast.Return{Position: pos, Value: expr(n.Value, ast.Load)}

	case *gast.Delete:
		return &ast.Delete{Position: pos, Targets: exprs(n.Targets, ast.Load)}

	case *gast.Assign:
		return &ast.Assign{Position: pos, Targets: exprs(n.Targets, ast.Store), Value: expr(n.Value, ast.Load)}

	case *gast.AugAssign:
		return &ast.AugAssign{Position: pos, Target: expr(n.Target, ast.Store), Op: operator(pos, n.Op), Value: expr(n.Value, ast.Load)}

	case *gast.For:
		return &ast.For{
			Position: pos,
			Target:   expr(n.Target, ast.Store),
			Iter:     expr(n.Iter, ast.Load),
			Body:     stmts(n.Body),
			OrElse:   stmts(n.Orelse),
		}

	case *gast.While:
		return &ast.While{Position: pos, Test: expr(n.Test, ast.Load), Body: stmts(n.Body), OrElse: stmts(n.Orelse)}

	case *gast.If:
		return &ast.If{Position: pos, Test: expr(n.Test, ast.Load), Body: stmts(n.Body), OrElse: stmts(n.Orelse)}

	case *gast.With:
		items := make([]*ast.WithItem, 0, len(n.Items))
		for _, item := range n.Items {
			items = append(items, &ast.WithItem{Context: expr(item.ContextExpr, ast.Load), Var: expr(item.OptionalVars, ast.Store)})
		}

		return &ast.With{Position: pos, Items: items, Body: stmts(n.Body)}

	case *gast.Raise:
		return &ast.Raise{Position: pos, Exc: expr(n.Exc, ast.Load), Cause: expr(n.Cause, ast.Load)}

	case *gast.Try:
		handlers := make([]*ast.ExceptHandler, 0, len(n.Handlers))
		for _, h := range n.Handlers {
			handlers = append(handlers, &ast.ExceptHandler{
				Position: position(h),
				Type:     expr(h.ExprType, ast.Load),
				Name:     string(h.Name),
				Body:     stmts(h.Body),
			})
		}

		return &ast.Try{
			Position: pos,
			Body:     stmts(n.Body),
			Handlers: handlers,
			OrElse:   stmts(n.Orelse),
			Finally:  stmts(n.Finalbody),
		}

	case *gast.Assert:
		return &ast.Assert{Position: pos, Test: expr(n.Test, ast.Load), Msg: expr(n.Msg, ast.Load)}

	case *gast.Import:
		imp := &ast.Import{Position: pos}
		for _, a := range n.Names {
			imp.Names = append(imp.Names, alias(a.Name, a.AsName))
		}

		return imp

	case *gast.ImportFrom:
		imp := &ast.Import{Position: pos, Module: strings.Repeat(".", n.Level) + string(n.Module)}
		for _, a := range n.Names {
			imp.Names = append(imp.Names, alias(a.Name, a.AsName))
		}

		return imp

	case *gast.Global:
		return &ast.Global{Position: pos, Names: identifiers(n.Names)}

	case *gast.Nonlocal:
		return &ast.Global{Position: pos, Names: identifiers(n.Names), Nonlocal: true}

	case *gast.ExprStmt:
		return &ast.ExprStmt{Position: pos, Value: expr(n.Value, ast.Load)}

	case *gast.Pass:
		return &ast.Pass{Position: pos}

	case *gast.Break:
		return &ast.Break{Position: pos}

	case *gast.Continue:
		return &ast.Continue{Position: pos}

	default:
		fail(pos, "unsupported statement %T", s)

		return nil
	}
}

func params(args *gast.Arguments) []*ast.Param {
	if args == nil {
		return nil
	}

	var out []*ast.Param

	// Defaults belong to the last positional parameters.
	offset := len(args.Args) - len(args.Defaults)

	for i, a := range args.Args {
		p := param(a, ast.Positional)
		if i >= offset {
			p.Default = expr(args.Defaults[i-offset], ast.Load)
		}

		out = append(out, p)
	}

	if args.Vararg != nil {
		out = append(out, param(args.Vararg, ast.VarArgs))
	}

	for i, a := range args.Kwonlyargs {
		p := param(a, ast.KeywordOnly)
		if i < len(args.KwDefaults) {
			p.Default = expr(args.KwDefaults[i], ast.Load)
		}

		out = append(out, p)
	}

	if args.Kwarg != nil {
		out = append(out, param(args.Kwarg, ast.VarKeywords))
	}

	return out
}

func param(a *gast.Arg, kind ast.ParamKind) *ast.Param {
	return &ast.Param{Position: position(a), Name: string(a.Arg), Kind: kind}
}

func alias(name, asName gast.Identifier) *ast.Alias {
	return &ast.Alias{Name: string(name), AsName: string(asName)}
}

func identifiers(names []gast.Identifier) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}

	return out
}

func keyword(arg gast.Identifier, value gast.Expr) *ast.Keyword {
	return &ast.Keyword{Arg: string(arg), Value: expr(value, ast.Load)}
}

// --- expressions

func exprs(list []gast.Expr, ctx ast.Context) []ast.Expr {
	if len(list) == 0 {
		return nil
	}

	out := make([]ast.Expr, len(list))
	for i, e := range list {
		out[i] = expr(e, ctx)
	}

	return out
}

// expr converts an expression. Targets are converted with the [ast.Store]
// context, which carries over to the elements of tuple and list targets.
func expr(e gast.Expr, ctx ast.Context) ast.Expr {
	if e == nil {
		return nil
	}

	pos := position(e)

	switch n := e.(type) {
	case *gast.BoolOp:
		op := ast.And
		if n.Op == gast.Or {
			op = ast.Or
		}

		return &ast.BoolOp{Position: pos, Op: op, Values: exprs(n.Values, ast.Load)}

	case *gast.BinOp:
		return &ast.BinOp{Position: pos, Left: expr(n.Left, ast.Load), Op: operator(pos, n.Op), Right: expr(n.Right, ast.Load)}

	case *gast.UnaryOp:
		op, ok := unaryOperators[n.Op]
		if !ok {
			fail(pos, "unsupported unary operator %v", n.Op)
		}

		return &ast.UnaryOp{Position: pos, Op: op, Operand: expr(n.Operand, ast.Load)}

	case *gast.Lambda:
		return &ast.Lambda{Position: pos, Params: params(n.Args), Body: expr(n.Body, ast.Load)}

	case *gast.IfExp:
		return &ast.IfExp{Position: pos, Test: expr(n.Test, ast.Load), Body: expr(n.Body, ast.Load), OrElse: expr(n.Orelse, ast.Load)}

	case *gast.Dict:
		return &ast.Dict{Position: pos, Keys: exprs(n.Keys, ast.Load), Values: exprs(n.Values, ast.Load)}

	case *gast.Set:
		return &ast.Set{Position: pos, Elts: exprs(n.Elts, ast.Load)}

	case *gast.ListComp:
		comp := &ast.ListComp{Position: pos, Elt: expr(n.Elt, ast.Load)}
		for _, g := range n.Generators {
			comp.Generators = append(comp.Generators, comprehension(g.Target, g.Iter, g.Ifs))
		}

		return comp

	case *gast.SetComp:
		comp := &ast.SetComp{Position: pos, Elt: expr(n.Elt, ast.Load)}
		for _, g := range n.Generators {
			comp.Generators = append(comp.Generators, comprehension(g.Target, g.Iter, g.Ifs))
		}

		return comp

	case *gast.DictComp:
		comp := &ast.DictComp{Position: pos, Key: expr(n.Key, ast.Load), Value: expr(n.Value, ast.Load)}
		for _, g := range n.Generators {
			comp.Generators = append(comp.Generators, comprehension(g.Target, g.Iter, g.Ifs))
		}

		return comp

	case *gast.GeneratorExp:
		comp := &ast.GeneratorExp{Position: pos, Elt: expr(n.Elt, ast.Load)}
		for _, g := range n.Generators {
			comp.Generators = append(comp.Generators, comprehension(g.Target, g.Iter, g.Ifs))
		}

		return comp

	case *gast.Yield:
		return &ast.Yield{Position: pos, Value: expr(n.Value, ast.Load)}

	case *gast.YieldFrom:
		return &ast.Yield{Position: pos, Value: expr(n.Value, ast.Load), From: true}

	case *gast.Compare:
		ops := make([]ast.CmpOperator, len(n.Ops))
		for i, op := range n.Ops {
			c, ok := cmpOperators[op]
			if !ok {
				fail(pos, "unsupported comparison %v", op)
			}

			ops[i] = c
		}

		return &ast.Compare{Position: pos, Left: expr(n.Left, ast.Load), Ops: ops, Comparators: exprs(n.Comparators, ast.Load)}

	case *gast.Call:
		call := &ast.Call{Position: pos, Func: expr(n.Func, ast.Load), Args: exprs(n.Args, ast.Load)}
		for _, kw := range n.Keywords {
			call.Keywords = append(call.Keywords, keyword(kw.Arg, kw.Value))
		}

		if n.Starargs != nil {
			star := expr(n.Starargs, ast.Load)
			call.Args = append(call.Args, &ast.Starred{Position: star.Pos(), Value: star})
		}

		if n.Kwargs != nil {
			call.Keywords = append(call.Keywords, &ast.Keyword{Value: expr(n.Kwargs, ast.Load)})
		}

		return call

	case *gast.Num:
		return &ast.Num{Position: pos, Value: number(n.N)}

	case *gast.Str:
		return &ast.Str{Position: pos, Value: string(n.S)}

	case *gast.Bytes:
		return &ast.Str{Position: pos, Value: string(n.S)}

	case *gast.NameConstant:
		return &ast.Name{Position: pos, ID: constant(n.Value)}

	case *gast.Ellipsis:
		return &ast.Ellipsis{Position: pos}

	case *gast.Attribute:
		return &ast.Attribute{Position: pos, Value: expr(n.Value, ast.Load), Attr: string(n.Attr), Ctx: ctx}

	case *gast.Subscript:
		return &ast.Subscript{Position: pos, Value: expr(n.Value, ast.Load), Index: index(n.Slice, pos), Ctx: ctx}

	case *gast.Starred:
		return &ast.Starred{Position: pos, Value: expr(n.Value, ctx), Ctx: ctx}

	case *gast.Name:
		return &ast.Name{Position: pos, ID: string(n.Id), Ctx: ctx}

	case *gast.List:
		return &ast.List{Position: pos, Elts: exprs(n.Elts, ctx), Ctx: ctx}

	case *gast.Tuple:
		return &ast.Tuple{Position: pos, Elts: exprs(n.Elts, ctx), Ctx: ctx}

	default:
		fail(pos, "unsupported expression %T", e)

		return nil
	}
}

// index converts the subscript part of value[index]. Slices carry the
// position of their subscript.
func index(s gast.Slicer, pos ast.Position) ast.Expr {
	switch n := s.(type) {
	case *gast.Index:
		return expr(n.Value, ast.Load)

	case *gast.Slice:
		return &ast.Slice{Position: pos, Lower: expr(n.Lower, ast.Load), Upper: expr(n.Upper, ast.Load), Step: expr(n.Step, ast.Load)}

	case *gast.ExtSlice:
		elts := make([]ast.Expr, 0, len(n.Dims))
		for _, dim := range n.Dims {
			elts = append(elts, index(dim, pos))
		}

		return &ast.Tuple{Position: pos, Elts: elts}

	default:
		fail(pos, "unsupported subscript %T", s)

		return nil
	}
}

func comprehension(target, iter gast.Expr, ifs []gast.Expr) *ast.Comprehension {
	return &ast.Comprehension{Target: expr(target, ast.Store), Iter: expr(iter, ast.Load), Ifs: exprs(ifs, ast.Load)}
}

func number(n py.Object) string {
	switch v := n.(type) {
	case py.Int:
		return strconv.FormatInt(int64(v), 10)

	case py.Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)

	default:
		return fmt.Sprint(v)
	}
}

func constant(v py.Object) string {
	switch v {
	case py.True:
		return "True"

	case py.False:
		return "False"

	default:
		return "None"
	}
}

var binaryOperators = map[gast.OperatorNumber]ast.Operator{
	gast.Add:      ast.Add,
	gast.Sub:      ast.Sub,
	gast.Mult:     ast.Mult,
	gast.Div:      ast.Div,
	gast.FloorDiv: ast.FloorDiv,
	gast.Modulo:   ast.Mod,
	gast.Pow:      ast.Pow,
	gast.LShift:   ast.LShift,
	gast.RShift:   ast.RShift,
	gast.BitOr:    ast.BitOr,
	gast.BitXor:   ast.BitXor,
	gast.BitAnd:   ast.BitAnd,
}

func operator(pos ast.Position, op gast.OperatorNumber) ast.Operator {
	o, ok := binaryOperators[op]
	if !ok {
		fail(pos, "unsupported operator %v", op)
	}

	return o
}

var unaryOperators = map[gast.UnaryOpNumber]ast.UnaryOperator{
	gast.Not:    ast.Not,
	gast.USub:   ast.USub,
	gast.UAdd:   ast.UAdd,
	gast.Invert: ast.Invert,
}

var cmpOperators = map[gast.CmpOp]ast.CmpOperator{
	gast.Eq:    ast.Eq,
	gast.NotEq: ast.NotEq,
	gast.Lt:    ast.Lt,
	gast.LtE:   ast.LtE,
	gast.Gt:    ast.Gt,
	gast.GtE:   ast.GtE,
	gast.Is:    ast.Is,
	gast.IsNot: ast.IsNot,
	gast.In:    ast.In,
	gast.NotIn: ast.NotIn,
}
