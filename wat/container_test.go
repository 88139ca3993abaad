// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"strings"
	"testing"

	"github.com/go-interpreter/wasmtext/ast"
	"github.com/go-interpreter/wasmtext/numeric"
	"github.com/go-interpreter/wasmtext/opcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteModuleEmpty(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	require.NoError(t, WriteModule(sink, ctx, &ast.Module{}))

	assert.Equal(t, "(module)", sink.String())
}

// TestWriteModuleEmptyFunctionDedentClamped is the S1 scenario: a
// function with only an "end" instruction must not underflow the
// indentation accounting, and the module must still close at column
// zero.
func TestWriteModuleEmptyFunctionDedentClamped(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	m := &ast.Module{Items: []ast.ModuleItem{
		&ast.Function{Instructions: []ast.Instruction{
			{Opcode: opcode.End, Immediate: ast.NoImmediate{}},
		}},
	}}

	require.NoError(t, WriteModule(sink, ctx, m))

	got := sink.String()
	assert.True(t, strings.HasPrefix(got, "(module"))
	assert.True(t, strings.HasSuffix(got, ")"))
	assert.Equal(t, strings.Count(got, "("), strings.Count(got, ")"))
	assert.NotContains(t, got, " )")
}

func TestWriteModuleWithTwoItemsNewlineSeparated(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	m := &ast.Module{Items: []ast.ModuleItem{
		&ast.Start{Var: ast.VarIndex(0)},
		&ast.Start{Var: ast.VarIndex(1)},
	}}

	require.NoError(t, WriteModule(sink, ctx, m))

	got := sink.String()
	assert.Equal(t, "(module\n  (start 0)\n  (start 1))", got)
}
