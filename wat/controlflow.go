// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"github.com/go-interpreter/wasmtext/ast"
	"github.com/go-interpreter/wasmtext/opcode"
)

// writeInstructionList emits a function body's (or block's) instruction
// sequence, applying §4.4's newline/indent rules: dedent before
// end/else/catch/catch_all/delegate, indent after any block-opening
// immediate or after else/catch/catch_all, and a newline after every
// instruction.
func writeInstructionList(sink Sink, ctx *Context, instrs []ast.Instruction) {
	for _, instr := range instrs {
		if opcode.ClosesOrReopensHandler(instr.Opcode) {
			ctx.Dedent()
			ctx.Newline()
		}

		writeInstruction(sink, ctx, instr)

		if opcode.IsBlockOpening(instr.Opcode) || opcode.OpensHandlerRegion(instr.Opcode) {
			ctx.Indent()
		}
		ctx.Newline()
	}
}

// writeElementExpressionList emits a table-element expression list:
// space-separated, each expression wrapped in its own parens, per §4.4's
// "element expressions use spaces, not newlines" rule.
func writeElementExpressionList(sink Sink, ctx *Context, exprs []ast.ElementExpression) {
	for _, e := range exprs {
		lpar(sink, ctx)
		for _, instr := range e.Instructions {
			writeInstruction(sink, ctx, instr)
		}
		rpar(sink, ctx)
	}
}
