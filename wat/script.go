// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"fmt"

	"github.com/go-interpreter/wasmtext/ast"
)

// WriteScript emits every command of s in order, separated by newlines,
// per §4.6's "Command then appends newline()". The newline armed after
// the last command stays pending and is not written. One of the module's
// four public entry points (§6).
func WriteScript(sink Sink, ctx *Context, s *ast.Script) error {
	for _, cmd := range s.Commands {
		writeCommand(sink, ctx, cmd)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wat: write script: %w", err)
	}
	return nil
}

// WriteCommand emits a single script command. One of the module's four
// public entry points (§6).
func WriteCommand(sink Sink, ctx *Context, cmd ast.Command) error {
	writeCommand(sink, ctx, cmd)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wat: write command: %w", err)
	}
	return nil
}

func writeCommand(sink Sink, ctx *Context, cmd ast.Command) {
	switch c := cmd.(type) {
	case *ast.ScriptModule:
		writeScriptModule(sink, ctx, c)
	case ast.Register:
		writeRegister(sink, ctx, c)
	case ast.InvokeAction:
		writeAction(sink, ctx, c)
	case ast.GetAction:
		writeAction(sink, ctx, c)
	case ast.Assertion:
		writeAssertion(sink, ctx, c)
	default:
		panic(UnsupportedNodeError{cmd})
	}
	ctx.Newline()
}

func writeRegister(sink Sink, ctx *Context, r ast.Register) {
	lparKeyword(sink, ctx, "register")
	writeText(sink, ctx, r.Name)
	if r.Module != nil {
		writeVar(sink, ctx, *r.Module)
	}
	rpar(sink, ctx)
}

func writeAction(sink Sink, ctx *Context, action ast.Action) {
	switch a := action.(type) {
	case ast.InvokeAction:
		lparKeyword(sink, ctx, "invoke")
		if a.Module != nil {
			token(sink, ctx, "$"+*a.Module)
		}
		writeText(sink, ctx, a.Name)
		for _, c := range a.Consts {
			writeConst(sink, ctx, c)
		}
		rpar(sink, ctx)
	case ast.GetAction:
		lparKeyword(sink, ctx, "get")
		if a.Module != nil {
			token(sink, ctx, "$"+*a.Module)
		}
		writeText(sink, ctx, a.Name)
		rpar(sink, ctx)
	default:
		panic(UnsupportedNodeError{action})
	}
}

// writeConst emits a Const action argument as a parenthesized
// constant-instruction form, e.g. "(i32.const 1)".
func writeConst(sink Sink, ctx *Context, c ast.Const) {
	switch v := c.(type) {
	case ast.U32Const:
		lparKeyword(sink, ctx, "i32.const")
		writeNat(sink, ctx, uint64(v.Value))
		rpar(sink, ctx)
	case ast.U64Const:
		lparKeyword(sink, ctx, "i64.const")
		writeNat(sink, ctx, v.Value)
		rpar(sink, ctx)
	case ast.F32Const:
		lparKeyword(sink, ctx, "f32.const")
		writeFloat32(sink, ctx, v.Value)
		rpar(sink, ctx)
	case ast.F64Const:
		lparKeyword(sink, ctx, "f64.const")
		writeFloat64(sink, ctx, v.Value)
		rpar(sink, ctx)
	case ast.V128Const:
		lparKeyword(sink, ctx, "v128.const")
		writeV128(sink, ctx, v.Lanes)
		rpar(sink, ctx)
	case ast.RefNullConst:
		lparKeyword(sink, ctx, "ref.null")
		rpar(sink, ctx)
	case ast.RefExternConst:
		lparKeyword(sink, ctx, "ref.extern")
		writeVar(sink, ctx, v.Var)
		rpar(sink, ctx)
	default:
		panic(UnsupportedNodeError{c})
	}
}

func writeNanKind(sink Sink, ctx *Context, n ast.NanKind) {
	switch n {
	case ast.Canonical:
		token(sink, ctx, "nan:canonical")
	case ast.Arithmetic:
		token(sink, ctx, "nan:arithmetic")
	default:
		panic(UnsupportedNodeError{n})
	}
}

func writeFloatResult32(sink Sink, ctx *Context, r ast.FloatResult[float32]) {
	if r.IsNan {
		writeNanKind(sink, ctx, r.Nan)
		return
	}
	writeFloat32(sink, ctx, r.Value)
}

func writeFloatResult64(sink Sink, ctx *Context, r ast.FloatResult[float64]) {
	if r.IsNan {
		writeNanKind(sink, ctx, r.Nan)
		return
	}
	writeFloat64(sink, ctx, r.Value)
}

// writeReturnResult emits an assert_return expected-result pattern.
func writeReturnResult(sink Sink, ctx *Context, r ast.ReturnResult) {
	switch v := r.(type) {
	case ast.U32Result:
		lparKeyword(sink, ctx, "i32.const")
		writeNat(sink, ctx, uint64(v.Value))
		rpar(sink, ctx)
	case ast.U64Result:
		lparKeyword(sink, ctx, "i64.const")
		writeNat(sink, ctx, v.Value)
		rpar(sink, ctx)
	case ast.V128Result:
		lparKeyword(sink, ctx, "v128.const")
		writeV128(sink, ctx, v.Lanes)
		rpar(sink, ctx)
	case ast.F32Result:
		lparKeyword(sink, ctx, "f32.const")
		writeFloatResult32(sink, ctx, v.Result)
		rpar(sink, ctx)
	case ast.F64Result:
		lparKeyword(sink, ctx, "f64.const")
		writeFloatResult64(sink, ctx, v.Result)
		rpar(sink, ctx)
	case ast.F32x4Result:
		lparKeyword(sink, ctx, "v128.const")
		token(sink, ctx, "f32x4")
		for _, lane := range v.Lanes {
			writeFloatResult32(sink, ctx, lane)
		}
		rpar(sink, ctx)
	case ast.F64x2Result:
		lparKeyword(sink, ctx, "v128.const")
		token(sink, ctx, "f64x2")
		for _, lane := range v.Lanes {
			writeFloatResult64(sink, ctx, lane)
		}
		rpar(sink, ctx)
	case ast.RefNullResult:
		lparKeyword(sink, ctx, "ref.null")
		rpar(sink, ctx)
	case ast.RefExternConstResult:
		// §4.6 supplement: bypasses the general Var writer, matching
		// wasp's case 8 (WriteNat directly on the dereferenced Var) —
		// see the Open Question resolution in DESIGN.md and property 6
		// in SPEC_FULL.md §11.
		lparKeyword(sink, ctx, "ref.extern")
		writeNat(sink, ctx, uint64(v.Var.Index))
		rpar(sink, ctx)
	case ast.RefExternResult:
		lparKeyword(sink, ctx, "ref.extern")
		rpar(sink, ctx)
	case ast.RefFuncResult:
		lparKeyword(sink, ctx, "ref.func")
		rpar(sink, ctx)
	default:
		panic(UnsupportedNodeError{r})
	}
}

// assertionKeywords maps each AssertionKind to its script keyword, per
// §4.6's table.
var assertionKeywords = map[ast.AssertionKind]string{
	ast.Malformed:  "assert_malformed",
	ast.Invalid:    "assert_invalid",
	ast.Unlinkable: "assert_unlinkable",
	ast.ActionTrap: "assert_trap",
	ast.Return:     "assert_return",
	ast.ModuleTrap: "assert_trap",
	ast.Exhaustion: "assert_exhaustion",
}

// moduleBodyAssertion reports whether kind's payload is a script module
// (indented onto its own line) rather than an action (kept inline).
func moduleBodyAssertion(kind ast.AssertionKind) bool {
	switch kind {
	case ast.Malformed, ast.Invalid, ast.Unlinkable, ast.ModuleTrap:
		return true
	}
	return false
}

func writeAssertion(sink Sink, ctx *Context, a ast.Assertion) {
	kw, ok := assertionKeywords[a.Kind]
	if !ok {
		panic(UnsupportedNodeError{a.Kind})
	}
	lparKeyword(sink, ctx, kw)

	if moduleBodyAssertion(a.Kind) {
		if a.Module == nil {
			panic(UnsupportedNodeError{a})
		}
		ctx.Indent()
		ctx.Newline()
		writeScriptModule(sink, ctx, &a.Module.Module)
		ctx.Newline()
		writeText(sink, ctx, a.Module.Message)
		ctx.Dedent()
		rpar(sink, ctx)
		return
	}

	switch a.Kind {
	case ast.ActionTrap, ast.Exhaustion:
		if a.ActionDesc == nil {
			panic(UnsupportedNodeError{a})
		}
		writeAction(sink, ctx, a.ActionDesc.Action)
		writeText(sink, ctx, a.ActionDesc.Message)

	case ast.Return:
		if a.ReturnDesc == nil {
			panic(UnsupportedNodeError{a})
		}
		writeAction(sink, ctx, a.ReturnDesc.Action)
		for _, r := range a.ReturnDesc.Results {
			writeReturnResult(sink, ctx, r)
		}

	default:
		panic(UnsupportedNodeError{a.Kind})
	}

	rpar(sink, ctx)
}
