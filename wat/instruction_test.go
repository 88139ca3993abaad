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

func writeInstr(t *testing.T, instr ast.Instruction) string {
	t.Helper()
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)
	require := WriteInstruction(sink, ctx, instr)
	assert.NoError(t, require)
	return sink.String()
}

func TestWriteInstructionNoImmediate(t *testing.T) {
	got := writeInstr(t, ast.Instruction{Opcode: opcode.I32Add, Immediate: ast.NoImmediate{}})
	assert.Equal(t, "i32.add", got)
}

func TestWriteInstructionS32Immediate(t *testing.T) {
	got := writeInstr(t, ast.Instruction{Opcode: opcode.I32Const, Immediate: ast.S32Immediate{Value: -1}})
	assert.Equal(t, "i32.const -1", got)
}

func TestWriteInstructionVarImmediate(t *testing.T) {
	got := writeInstr(t, ast.Instruction{Opcode: opcode.LocalGet, Immediate: ast.VarImmediate{Var: ast.VarName("x")}})
	assert.Equal(t, "local.get $x", got)
}

func TestWriteInstructionBrTableImmediate(t *testing.T) {
	instr := ast.Instruction{
		Opcode: opcode.BrTable,
		Immediate: ast.BrTableImmediate{
			Targets:       []ast.Var{ast.VarIndex(0), ast.VarIndex(1)},
			DefaultTarget: ast.VarIndex(2),
		},
	}
	got := writeInstr(t, instr)
	assert.Equal(t, "br_table 0 1 2", got)
}

// TestWriteInstructionSelectImmediateHasNoWrappingParens confirms
// SelectImmediate emits a bare value type list with no wrapping "(result
// ...)" at the instruction encoder's level.
func TestWriteInstructionSelectImmediateHasNoWrappingParens(t *testing.T) {
	instr := ast.Instruction{
		Opcode:    opcode.Select,
		Immediate: ast.SelectImmediate{Types: []ast.ValueType{ast.ValNumeric(ast.NumI32)}},
	}
	got := writeInstr(t, instr)
	assert.Equal(t, "select i32", got)
	assert.NotContains(t, got, "(")
}

func TestWriteInstructionMemArgImmediate(t *testing.T) {
	offset := uint32(8)
	instr := ast.Instruction{
		Opcode:    opcode.I32Load,
		Immediate: ast.MemArgImmediate{Offset: &offset},
	}
	got := writeInstr(t, instr)
	assert.Equal(t, "i32.load offset=8", got)
}

func TestWriteInstructionShuffleImmediate(t *testing.T) {
	var lanes [16]byte
	for i := range lanes {
		lanes[i] = byte(i)
	}
	instr := ast.Instruction{Opcode: opcode.I8x16Shuffle, Immediate: ast.ShuffleImmediate{Lanes: lanes}}
	got := writeInstr(t, instr)
	assert.Equal(t, "i8x16.shuffle 0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15", got)
}

func TestWriteImmediatePanicsOnUnknownImplementation(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)
	assert.Panics(t, func() {
		writeImmediate(sink, ctx, unknownImmediate{})
	})
}

type unknownImmediate struct {
	ast.NoImmediate
}
