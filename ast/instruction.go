// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "github.com/go-interpreter/wasmtext/opcode"

// Immediate is the closed set of shapes an Instruction's operand can take.
// Every implementation below is matched exhaustively by the wat package's
// instruction encoder; its default arm renders nothing and only panics,
// since an unmatched variant is a contract violation (see
// wat.UnsupportedNodeError).
type Immediate interface {
	isImmediate()
}

// NoImmediate is the zero-operand shape, e.g. nop, drop, i32.add.
type NoImmediate struct{}

func (NoImmediate) isImmediate() {}

// S32Immediate carries a signed 32-bit literal, e.g. i32.const.
type S32Immediate struct{ Value int32 }

func (S32Immediate) isImmediate() {}

// S64Immediate carries a signed 64-bit literal, e.g. i64.const.
type S64Immediate struct{ Value int64 }

func (S64Immediate) isImmediate() {}

// F32Immediate carries an f32.const literal.
type F32Immediate struct{ Value float32 }

func (F32Immediate) isImmediate() {}

// F64Immediate carries an f64.const literal.
type F64Immediate struct{ Value float64 }

func (F64Immediate) isImmediate() {}

// V128Immediate carries a v128.const literal in its canonical i32x4 shape.
type V128Immediate struct{ Lanes [4]uint32 }

func (V128Immediate) isImmediate() {}

// VarImmediate carries a single index/name operand, e.g. call, local.get.
type VarImmediate struct{ Var Var }

func (VarImmediate) isImmediate() {}

// BlockImmediate carries a structured control instruction's optional label
// and block signature; shared by block, loop, if, and try.
type BlockImmediate struct {
	Label *string
	Type  FunctionTypeUse
}

func (BlockImmediate) isImmediate() {}

// BrOnExnImmediate carries br_on_exn's branch target and event reference.
type BrOnExnImmediate struct {
	Target Var
	Event  Var
}

func (BrOnExnImmediate) isImmediate() {}

// BrTableImmediate carries br_table's ordered branch targets and the
// trailing default target.
type BrTableImmediate struct {
	Targets       []Var
	DefaultTarget Var
}

func (BrTableImmediate) isImmediate() {}

// CallIndirectImmediate carries call_indirect's table reference and
// callee signature.
type CallIndirectImmediate struct {
	Table Var
	Type  FunctionTypeUse
}

func (CallIndirectImmediate) isImmediate() {}

// CopyImmediate carries table.copy/memory.copy's destination and source
// index-space references.
type CopyImmediate struct {
	Dst Var
	Src Var
}

func (CopyImmediate) isImmediate() {}

// InitImmediate carries table.init/memory.init's optional destination and
// required segment reference.
type InitImmediate struct {
	Dst     *Var
	Segment Var
}

func (InitImmediate) isImmediate() {}

// MemArgImmediate carries a load/store's optional offset and alignment.
type MemArgImmediate struct {
	Offset *uint32
	Align  *uint32
}

func (MemArgImmediate) isImmediate() {}

// ReferenceTypeImmediate carries a bare reference type, e.g. ref.null.
type ReferenceTypeImmediate struct{ Type ReferenceType }

func (ReferenceTypeImmediate) isImmediate() {}

// SelectImmediate carries the typed select proposal's explicit result
// type list.
type SelectImmediate struct{ Types []ValueType }

func (SelectImmediate) isImmediate() {}

// ShuffleImmediate carries i8x16.shuffle's 16 lane-index bytes.
type ShuffleImmediate struct{ Lanes [16]byte }

func (ShuffleImmediate) isImmediate() {}

// SimdLaneImmediate carries a SIMD lane extract/replace's lane index.
type SimdLaneImmediate struct{ Lane uint8 }

func (SimdLaneImmediate) isImmediate() {}

// Instruction pairs an opcode with its immediate. Opcode alone determines
// which Immediate implementation is valid; producers are responsible for
// pairing them correctly, the same contract as wasp's tagged union.
type Instruction struct {
	Opcode    opcode.Opcode
	Immediate Immediate
}
