// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"github.com/go-interpreter/wasmtext/ast"
	"github.com/go-interpreter/wasmtext/opcode"
)

// WriteInstruction emits a single instruction: its opcode mnemonic
// followed by zero or more immediate tokens, dispatched on the concrete
// Immediate implementation. This is one of the module's four public
// entry points (§6); it does not itself apply the control-flow
// indentation rules of §4.4 — callers writing a full instruction list
// should go through writeInstructionList instead.
func WriteInstruction(sink Sink, ctx *Context, instr ast.Instruction) error {
	writeInstruction(sink, ctx, instr)
	return ctx.Err()
}

func writeInstruction(sink Sink, ctx *Context, instr ast.Instruction) {
	logger.Println("writing instruction", opcode.Mnemonic(instr.Opcode))
	token(sink, ctx, opcode.Mnemonic(instr.Opcode))
	writeImmediate(sink, ctx, instr.Immediate)
}

func writeImmediate(sink Sink, ctx *Context, imm ast.Immediate) {
	switch v := imm.(type) {
	case ast.NoImmediate:
		// nothing

	case ast.S32Immediate:
		writeInt(sink, ctx, int64(v.Value))

	case ast.S64Immediate:
		writeInt(sink, ctx, v.Value)

	case ast.F32Immediate:
		writeFloat32(sink, ctx, v.Value)

	case ast.F64Immediate:
		writeFloat64(sink, ctx, v.Value)

	case ast.V128Immediate:
		writeV128(sink, ctx, v.Lanes)

	case ast.VarImmediate:
		writeVar(sink, ctx, v.Var)

	case ast.BlockImmediate:
		writeOptionalName(sink, ctx, v.Label)
		writeFunctionTypeUse(sink, ctx, v.Type)

	case ast.BrOnExnImmediate:
		writeVar(sink, ctx, v.Target)
		writeVar(sink, ctx, v.Event)

	case ast.BrTableImmediate:
		for _, t := range v.Targets {
			writeVar(sink, ctx, t)
		}
		writeVar(sink, ctx, v.DefaultTarget)

	case ast.CallIndirectImmediate:
		writeVar(sink, ctx, v.Table)
		writeFunctionTypeUse(sink, ctx, v.Type)

	case ast.CopyImmediate:
		writeVar(sink, ctx, v.Dst)
		writeVar(sink, ctx, v.Src)

	case ast.InitImmediate:
		if v.Dst != nil {
			writeVar(sink, ctx, *v.Dst)
		}
		writeVar(sink, ctx, v.Segment)

	case ast.MemArgImmediate:
		writeMemArg(sink, ctx, v.Offset, v.Align)

	case ast.ReferenceTypeImmediate:
		writeReferenceType(sink, ctx, v.Type)

	case ast.SelectImmediate:
		writeValueTypeList(sink, ctx, v.Types)

	case ast.ShuffleImmediate:
		for _, b := range v.Lanes {
			writeNat(sink, ctx, uint64(b))
		}

	case ast.SimdLaneImmediate:
		writeNat(sink, ctx, uint64(v.Lane))

	default:
		panic(UnsupportedNodeError{imm})
	}
}
