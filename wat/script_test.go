// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"strings"
	"testing"

	"github.com/go-interpreter/wasmtext/ast"
	"github.com/go-interpreter/wasmtext/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A pending trailing newline set by writeCommand's final ctx.Newline()
// is never flushed to the sink on its own — only the next token's
// separator flush would emit it — so a single WriteCommand call's output
// ends at the closing paren, not a "\n".

func TestWriteCommandInvoke(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	cmd := ast.InvokeAction{Name: ast.Text{Raw: []byte("add")}, Consts: []ast.Const{ast.U32Const{Value: 1}}}
	require.NoError(t, WriteCommand(sink, ctx, cmd))

	assert.Equal(t, `(invoke "add" (i32.const 1))`, sink.String())
}

func TestWriteCommandRegister(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	require.NoError(t, WriteCommand(sink, ctx, ast.Register{Name: ast.Text{Raw: []byte("mod")}}))

	assert.Equal(t, `(register "mod")`, sink.String())
}

// TestWriteReturnResultV128CanonicalNan is the S6 scenario: a v128
// f32x4 result mixing an exact lane with a canonical NaN pattern lane.
func TestWriteReturnResultV128CanonicalNan(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	r := ast.F32x4Result{Lanes: [4]ast.FloatResult[float32]{
		{Value: 1},
		{IsNan: true, Nan: ast.Canonical},
		{Value: 2},
		{Value: 3},
	}}
	writeReturnResult(sink, ctx, r)

	assert.Equal(t, "(v128.const f32x4 1 nan:canonical 2 3)", sink.String())
}

// TestWriteReturnResultRefExternConstIsNumericOnly exercises property 6:
// RefExternConstResult bypasses the general Var writer and always emits
// a bare numeric index, never a bound name.
func TestWriteReturnResultRefExternConstIsNumericOnly(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	writeReturnResult(sink, ctx, ast.RefExternConstResult{Var: ast.VarName("ignored")})

	assert.Equal(t, "(ref.extern 0)", sink.String())
}

func TestWriteAssertionReturn(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	a := ast.Assertion{
		Kind: ast.Return,
		ReturnDesc: &ast.ReturnAssertion{
			Action:  ast.InvokeAction{Name: ast.Text{Raw: []byte("f")}},
			Results: []ast.ReturnResult{ast.U32Result{Value: 1}},
		},
	}
	require.NoError(t, WriteCommand(sink, ctx, a))

	assert.Equal(t, `(assert_return (invoke "f") (i32.const 1))`, sink.String())
}

func TestWriteAssertionMalformedIndentsModuleBody(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	a := ast.Assertion{
		Kind: ast.Malformed,
		Module: &ast.ModuleAssertion{
			Module:  ast.ScriptModule{Kind: ast.ScriptModuleText, Module: &ast.Module{}},
			Message: ast.Text{Raw: []byte("unexpected token")},
		},
	}
	require.NoError(t, WriteCommand(sink, ctx, a))

	got := sink.String()
	assert.Equal(t, "(assert_malformed\n  (module)\n  \"unexpected token\")", got)
	assert.Equal(t, strings.Count(got, "("), strings.Count(got, ")"))
}

func TestWriteScriptSeparatesCommandsWithNewline(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	s := &ast.Script{Commands: []ast.Command{
		ast.Register{Name: ast.Text{Raw: []byte("a")}},
		ast.Register{Name: ast.Text{Raw: []byte("b")}},
	}}
	require.NoError(t, WriteScript(sink, ctx, s))

	assert.Equal(t, "(register \"a\")\n(register \"b\")", sink.String())
}
