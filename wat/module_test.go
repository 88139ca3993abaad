// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"testing"

	"github.com/go-interpreter/wasmtext/ast"
	"github.com/go-interpreter/wasmtext/numeric"
	"github.com/go-interpreter/wasmtext/opcode"
	"github.com/stretchr/testify/assert"
)

func writeItem(t *testing.T, item ast.ModuleItem) string {
	t.Helper()
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)
	writeModuleItem(sink, ctx, item)
	return sink.String()
}

// TestWriteElementSegmentOmitsFuncKeyword is the S4 scenario: a bare
// active MVP element segment with no explicit table and no name omits
// the leading "func" keyword.
func TestWriteElementSegmentOmitsFuncKeyword(t *testing.T) {
	seg := &ast.ElementSegment{
		Type:   ast.Active,
		Offset: &ast.ConstantExpression{Instructions: []ast.Instruction{{Opcode: opcode.I32Const, Immediate: ast.S32Immediate{Value: 0}}}},
		Elements: ast.ElementListWithVars{
			Kind: ast.ExternalFunction,
			List: []ast.Var{ast.VarIndex(1), ast.VarIndex(2)},
		},
	}
	got := writeItem(t, seg)
	assert.Equal(t, "(elem (offset i32.const 0) 1 2)", got)
	assert.NotContains(t, got, "func")
}

// TestWriteElementSegmentKeepsFuncKeywordWithExplicitTable is the S5
// scenario: naming an explicit table forces the "func" keyword back in.
func TestWriteElementSegmentKeepsFuncKeywordWithExplicitTable(t *testing.T) {
	table := ast.VarIndex(0)
	seg := &ast.ElementSegment{
		Type:   ast.Active,
		Table:  &table,
		Offset: &ast.ConstantExpression{Instructions: []ast.Instruction{{Opcode: opcode.I32Const, Immediate: ast.S32Immediate{Value: 0}}}},
		Elements: ast.ElementListWithVars{
			Kind: ast.ExternalFunction,
			List: []ast.Var{ast.VarIndex(1)},
		},
	}
	got := writeItem(t, seg)
	assert.Equal(t, "(elem (table 0) (offset i32.const 0) func 1)", got)
}

// TestWriteBoundFunctionTypeGroupsSharedNames is the S7 scenario: runs of
// anonymous params share one group, while any named param gets its own
// singleton group.
func TestWriteBoundFunctionTypeGroupsSharedNames(t *testing.T) {
	i32 := ast.ValNumeric(ast.NumI32)
	name := "x"
	f := &ast.Function{
		Desc: ast.FunctionDesc{
			Type: ast.BoundFunctionType{
				Params: []ast.Bound[ast.ValueType]{
					{Value: i32},
					{Value: i32},
					{Name: &name, Value: i32},
					{Value: i32},
				},
			},
		},
		Instructions: []ast.Instruction{{Opcode: opcode.End, Immediate: ast.NoImmediate{}}},
	}
	got := writeItem(t, f)
	assert.Contains(t, got, "(param i32 i32) (param $x i32) (param i32)")
}

func TestWriteTableWithElementsSugarOmitsLimits(t *testing.T) {
	elems := ast.ElementList(ast.ElementListWithVars{
		Kind: ast.ExternalFunction,
		List: []ast.Var{ast.VarIndex(0), ast.VarIndex(1)},
	})
	table := &ast.Table{
		Desc:     ast.TableDesc{Type: ast.TableType{ElemType: ast.Funcref()}},
		Elements: &elems,
	}
	got := writeItem(t, table)
	assert.Equal(t, "(table funcref (elem 0 1))", got)
}

// TestWriteTableWithExpressionElementsSugarOmitsElemType covers the bug
// the vars case hid by accident: the sugar form must not repeat the
// reference type (or an external-kind keyword) inside (elem ...), since
// it was already written before the parens opened.
func TestWriteTableWithExpressionElementsSugarOmitsElemType(t *testing.T) {
	elems := ast.ElementList(ast.ElementListWithExpressions{
		ElemType: ast.Externref(),
		List: []ast.ElementExpression{
			{Instructions: []ast.Instruction{
				{Opcode: opcode.RefNull, Immediate: ast.ReferenceTypeImmediate{Type: ast.Externref()}},
			}},
		},
	})
	table := &ast.Table{
		Desc:     ast.TableDesc{Type: ast.TableType{ElemType: ast.Externref()}},
		Elements: &elems,
	}
	got := writeItem(t, table)
	assert.Equal(t, "(table externref (elem (ref.null externref)))", got)
	assert.NotContains(t, got, "(elem externref")
}

func TestWriteTableWithVarsElementsSugarOmitsExternalKind(t *testing.T) {
	elems := ast.ElementList(ast.ElementListWithVars{
		Kind: ast.ExternalTable,
		List: []ast.Var{ast.VarIndex(0)},
	})
	table := &ast.Table{
		Desc:     ast.TableDesc{Type: ast.TableType{ElemType: ast.Funcref()}},
		Elements: &elems,
	}
	got := writeItem(t, table)
	assert.Equal(t, "(table funcref (elem 0))", got)
	assert.NotContains(t, got, "table 0")
}

func TestWriteMemoryWithDataSugarOmitsLimits(t *testing.T) {
	mem := &ast.Memory{
		Desc: ast.MemoryDesc{},
		Data: []ast.Text{{Raw: []byte("hi")}},
	}
	got := writeItem(t, mem)
	assert.Equal(t, `(memory (data "hi"))`, got)
}

func TestWriteImportInlineSugarOnFunction(t *testing.T) {
	fn := &ast.Function{
		Desc:   ast.FunctionDesc{Name: strPtr("f")},
		Import: &ast.InlineImport{Module: "env", Name: "f"},
	}
	got := writeItem(t, fn)
	assert.Equal(t, `(func $f (import "env" "f"))`, got)
}

func TestWriteExportItem(t *testing.T) {
	e := &ast.Export{Name: "main", Kind: ast.ExternalFunction, Var: ast.VarIndex(0)}
	got := writeItem(t, e)
	assert.Equal(t, `(export "main" (func 0))`, got)
}

func TestWriteGlobalUsesInlineConstantExpression(t *testing.T) {
	g := &ast.Global{
		Desc: ast.GlobalDesc{Type: ast.GlobalType{ValType: ast.ValNumeric(ast.NumI32), Mut: ast.MutVar}},
		Init: ast.ConstantExpression{Instructions: []ast.Instruction{
			{Opcode: opcode.I32Const, Immediate: ast.S32Immediate{Value: 5}},
		}},
	}
	got := writeItem(t, g)
	assert.Equal(t, "(global (mut i32) i32.const 5)", got)
}

func strPtr(s string) *string { return &s }
