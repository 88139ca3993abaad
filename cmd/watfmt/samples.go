// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/go-interpreter/wasmtext/ast"
	"github.com/go-interpreter/wasmtext/opcode"
)

func i32() ast.ValueType { return ast.ValNumeric(ast.NumI32) }

func strp(s string) *string { return &s }

// sampleAddModule builds a module exporting a two-parameter i32 adder,
// exercising the common case: named export, bound function type, plain
// arithmetic instructions.
func sampleAddModule() *ast.Module {
	fn := &ast.Function{
		Desc: ast.FunctionDesc{
			Name: strp("add"),
			Type: ast.BoundFunctionType{
				Params:  []ast.Bound[ast.ValueType]{{Name: strp("a"), Value: i32()}, {Name: strp("b"), Value: i32()}},
				Results: []ast.ValueType{i32()},
			},
		},
		Exports: []ast.InlineExport{{Name: "add"}},
		Instructions: []ast.Instruction{
			{Opcode: opcode.LocalGet, Immediate: ast.VarImmediate{Var: ast.VarName("a")}},
			{Opcode: opcode.LocalGet, Immediate: ast.VarImmediate{Var: ast.VarName("b")}},
			{Opcode: opcode.I32Add, Immediate: ast.NoImmediate{}},
			{Opcode: opcode.End, Immediate: ast.NoImmediate{}},
		},
	}
	return &ast.Module{Items: []ast.ModuleItem{fn}}
}

// sampleEmptyFuncModule builds the degenerate empty-function module used
// as SPEC_FULL.md's S1 scenario.
func sampleEmptyFuncModule() *ast.Module {
	fn := &ast.Function{
		Instructions: []ast.Instruction{
			{Opcode: opcode.End, Immediate: ast.NoImmediate{}},
		},
	}
	return &ast.Module{Items: []ast.ModuleItem{fn}}
}

// sampleSpecScript builds a small spec-test-harness script exercising
// the module/register/invoke/assert_return command shapes.
func sampleSpecScript() *ast.Script {
	sm := &ast.ScriptModule{
		Kind:   ast.ScriptModuleText,
		Module: sampleAddModule(),
	}
	invoke := ast.InvokeAction{
		Name: ast.Text{Raw: []byte("add")},
		Consts: []ast.Const{
			ast.U32Const{Value: 1},
			ast.U32Const{Value: 2},
		},
	}
	assertion := ast.Assertion{
		Kind: ast.Return,
		ReturnDesc: &ast.ReturnAssertion{
			Action:  invoke,
			Results: []ast.ReturnResult{ast.U32Result{Value: 3}},
		},
	}
	return &ast.Script{
		Commands: []ast.Command{
			sm,
			ast.Register{Name: ast.Text{Raw: []byte("arith")}},
			assertion,
		},
	}
}
