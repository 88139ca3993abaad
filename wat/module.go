// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import "github.com/go-interpreter/wasmtext/ast"

// writeModuleItem dispatches on ModuleItem's concrete type and emits the
// corresponding top-level form.
func writeModuleItem(sink Sink, ctx *Context, item ast.ModuleItem) {
	switch v := item.(type) {
	case *ast.TypeEntry:
		logger.Println("writing type entry")
		writeTypeEntry(sink, ctx, v)
	case *ast.Import:
		logger.Println("writing import")
		writeImport(sink, ctx, v)
	case *ast.Function:
		logger.Println("writing func")
		writeFunction(sink, ctx, v)
	case *ast.Table:
		logger.Println("writing table")
		writeTable(sink, ctx, v)
	case *ast.Memory:
		logger.Println("writing memory")
		writeMemory(sink, ctx, v)
	case *ast.Global:
		logger.Println("writing global")
		writeGlobal(sink, ctx, v)
	case *ast.Export:
		logger.Println("writing export")
		writeExport(sink, ctx, v)
	case *ast.Start:
		logger.Println("writing start")
		writeStart(sink, ctx, v)
	case *ast.ElementSegment:
		logger.Println("writing elem")
		writeElementSegment(sink, ctx, v)
	case *ast.DataSegment:
		logger.Println("writing data")
		writeDataSegment(sink, ctx, v)
	case *ast.Event:
		logger.Println("writing event")
		writeEvent(sink, ctx, v)
	default:
		panic(UnsupportedNodeError{item})
	}
}

func writeTypeEntry(sink Sink, ctx *Context, t *ast.TypeEntry) {
	lparKeyword(sink, ctx, "type")
	writeOptionalName(sink, ctx, t.Name)
	lparKeyword(sink, ctx, "func")
	writeBoundFunctionType(sink, ctx, t.Type)
	rpar(sink, ctx)
	rpar(sink, ctx)
}

func writeInlineImport(sink Sink, ctx *Context, imp *ast.InlineImport) {
	lparKeyword(sink, ctx, "import")
	writeText(sink, ctx, ast.Text{Raw: []byte(imp.Module)})
	writeText(sink, ctx, ast.Text{Raw: []byte(imp.Name)})
	rpar(sink, ctx)
}

func writeInlineExports(sink Sink, ctx *Context, exports []ast.InlineExport) {
	for _, e := range exports {
		lparKeyword(sink, ctx, "export")
		writeText(sink, ctx, ast.Text{Raw: []byte(e.Name)})
		rpar(sink, ctx)
	}
}

// writeImportDesc emits an import/inline-import's descriptor keyword,
// optional bound name, and type — the shape shared by top-level (import
// ...) items and by the sugar form on Function/Table/Memory/Global/Event
// when Import is set.
func writeImportDesc(sink Sink, ctx *Context, desc ast.ImportDesc) {
	switch d := desc.(type) {
	case ast.FunctionDesc:
		lparKeyword(sink, ctx, "func")
		writeOptionalName(sink, ctx, d.Name)
		writeFunctionTypeUse(sink, ctx, ast.FunctionTypeUse{TypeUse: d.TypeUse, Type: d.Type})
		rpar(sink, ctx)
	case ast.TableDesc:
		lparKeyword(sink, ctx, "table")
		writeOptionalName(sink, ctx, d.Name)
		writeLimits(sink, ctx, d.Type.Limits)
		writeReferenceType(sink, ctx, d.Type.ElemType)
		rpar(sink, ctx)
	case ast.MemoryDesc:
		lparKeyword(sink, ctx, "memory")
		writeOptionalName(sink, ctx, d.Name)
		writeLimits(sink, ctx, d.Type.Limits)
		rpar(sink, ctx)
	case ast.GlobalDesc:
		lparKeyword(sink, ctx, "global")
		writeOptionalName(sink, ctx, d.Name)
		writeGlobalType(sink, ctx, d.Type)
		rpar(sink, ctx)
	case ast.EventDesc:
		lparKeyword(sink, ctx, "event")
		writeOptionalName(sink, ctx, d.Name)
		writeFunctionTypeUse(sink, ctx, d.Type.Type)
		rpar(sink, ctx)
	default:
		panic(UnsupportedNodeError{desc})
	}
}

func writeImport(sink Sink, ctx *Context, imp *ast.Import) {
	lparKeyword(sink, ctx, "import")
	writeText(sink, ctx, ast.Text{Raw: []byte(imp.Module)})
	writeText(sink, ctx, ast.Text{Raw: []byte(imp.Name)})
	writeImportDesc(sink, ctx, imp.Desc)
	rpar(sink, ctx)
}

func writeFunction(sink Sink, ctx *Context, f *ast.Function) {
	lparKeyword(sink, ctx, "func")
	writeOptionalName(sink, ctx, f.Desc.Name)
	writeInlineExports(sink, ctx, f.Exports)
	if f.Import != nil {
		writeInlineImport(sink, ctx, f.Import)
		writeFunctionTypeUse(sink, ctx, ast.FunctionTypeUse{TypeUse: f.Desc.TypeUse, Type: f.Desc.Type})
		rpar(sink, ctx)
		return
	}
	writeFunctionTypeUse(sink, ctx, ast.FunctionTypeUse{TypeUse: f.Desc.TypeUse, Type: f.Desc.Type})
	ctx.Indent()
	ctx.Newline()
	writeBoundValueTypeList(sink, ctx, "local", f.Locals)
	ctx.Newline()
	writeInstructionList(sink, ctx, f.Instructions)
	ctx.Dedent()
	rpar(sink, ctx)
}

func writeTable(sink Sink, ctx *Context, t *ast.Table) {
	lparKeyword(sink, ctx, "table")
	writeOptionalName(sink, ctx, t.Desc.Name)
	writeInlineExports(sink, ctx, t.Exports)
	if t.Import != nil {
		writeInlineImport(sink, ctx, t.Import)
		writeLimits(sink, ctx, t.Desc.Type.Limits)
		writeReferenceType(sink, ctx, t.Desc.Type.ElemType)
		rpar(sink, ctx)
		return
	}
	if t.Elements != nil {
		// Table-with-elements sugar: limits are implied by the element
		// count, so only the element type is written before the (elem
		// ...) shorthand.
		writeReferenceType(sink, ctx, t.Desc.Type.ElemType)
		lparKeyword(sink, ctx, "elem")
		writeElementListSugar(sink, ctx, *t.Elements)
		rpar(sink, ctx)
		rpar(sink, ctx)
		return
	}
	writeLimits(sink, ctx, t.Desc.Type.Limits)
	writeReferenceType(sink, ctx, t.Desc.Type.ElemType)
	rpar(sink, ctx)
}

func writeMemory(sink Sink, ctx *Context, m *ast.Memory) {
	lparKeyword(sink, ctx, "memory")
	writeOptionalName(sink, ctx, m.Desc.Name)
	writeInlineExports(sink, ctx, m.Exports)
	if m.Import != nil {
		writeInlineImport(sink, ctx, m.Import)
		writeLimits(sink, ctx, m.Desc.Type.Limits)
		rpar(sink, ctx)
		return
	}
	if m.Data != nil {
		lparKeyword(sink, ctx, "data")
		for _, d := range m.Data {
			writeText(sink, ctx, d)
		}
		rpar(sink, ctx)
		rpar(sink, ctx)
		return
	}
	writeLimits(sink, ctx, m.Desc.Type.Limits)
	rpar(sink, ctx)
}

func writeGlobal(sink Sink, ctx *Context, g *ast.Global) {
	lparKeyword(sink, ctx, "global")
	writeOptionalName(sink, ctx, g.Desc.Name)
	writeInlineExports(sink, ctx, g.Exports)
	if g.Import != nil {
		writeInlineImport(sink, ctx, g.Import)
		writeGlobalType(sink, ctx, g.Desc.Type)
		rpar(sink, ctx)
		return
	}
	writeGlobalType(sink, ctx, g.Desc.Type)
	writeConstantExpressionInline(sink, ctx, g.Init)
	rpar(sink, ctx)
}

// writeConstantExpressionInline emits a constant expression's
// instructions bare and space-separated, with no wrapping parens and no
// newline/indent bookkeeping — the shape used inline inside an already-
// open form (a global's initializer, an active segment's offset), as
// opposed to writeInstructionList's function-body newline treatment.
func writeConstantExpressionInline(sink Sink, ctx *Context, e ast.ConstantExpression) {
	for _, instr := range e.Instructions {
		writeInstruction(sink, ctx, instr)
	}
}

func writeEvent(sink Sink, ctx *Context, e *ast.Event) {
	lparKeyword(sink, ctx, "event")
	writeOptionalName(sink, ctx, e.Desc.Name)
	writeInlineExports(sink, ctx, e.Exports)
	if e.Import != nil {
		writeInlineImport(sink, ctx, e.Import)
		writeFunctionTypeUse(sink, ctx, e.Desc.Type.Type)
		rpar(sink, ctx)
		return
	}
	writeFunctionTypeUse(sink, ctx, e.Desc.Type.Type)
	rpar(sink, ctx)
}

func writeExport(sink Sink, ctx *Context, e *ast.Export) {
	lparKeyword(sink, ctx, "export")
	writeText(sink, ctx, ast.Text{Raw: []byte(e.Name)})
	lparKeyword(sink, ctx, externalKindKeyword(e.Kind))
	writeVar(sink, ctx, e.Var)
	rpar(sink, ctx)
	rpar(sink, ctx)
}

func writeStart(sink Sink, ctx *Context, s *ast.Start) {
	lparKeyword(sink, ctx, "start")
	writeVar(sink, ctx, s.Var)
	rpar(sink, ctx)
}

func writeOffsetExpression(sink Sink, ctx *Context, e *ast.ConstantExpression) {
	lparKeyword(sink, ctx, "offset")
	writeConstantExpressionInline(sink, ctx, *e)
	rpar(sink, ctx)
}

// writeElementListPayload emits an ElementList's kind/elemtype tag
// followed by its var or expression list, without the surrounding
// (elem ...) parens, which callers add themselves. Used by the top-level
// element-segment encoder; the table sugar form uses
// writeElementListSugar instead.
func writeElementListPayload(sink Sink, ctx *Context, list ast.ElementList) {
	switch l := list.(type) {
	case ast.ElementListWithVars:
		token(sink, ctx, externalKindKeyword(l.Kind))
		for _, v := range l.List {
			writeVar(sink, ctx, v)
		}
	case ast.ElementListWithExpressions:
		writeReferenceType(sink, ctx, l.ElemType)
		writeElementExpressionList(sink, ctx, l.List)
	default:
		panic(UnsupportedNodeError{list})
	}
}

// writeElementListSugar emits the bare payload of a table-with-elements
// shorthand's (elem ...): just the var/expression list, with no leading
// external-kind keyword and no reference type, since both are already
// implied by the table's own element type written before the (elem ...)
// opens. Matches write.h's Table writer, which special-cases this and
// writes only the list, never routing through the general ElementList
// writer writeElementListPayload wraps.
func writeElementListSugar(sink Sink, ctx *Context, list ast.ElementList) {
	switch l := list.(type) {
	case ast.ElementListWithVars:
		for _, v := range l.List {
			writeVar(sink, ctx, v)
		}
	case ast.ElementListWithExpressions:
		writeElementExpressionList(sink, ctx, l.List)
	default:
		panic(UnsupportedNodeError{list})
	}
}

func writeElementSegment(sink Sink, ctx *Context, e *ast.ElementSegment) {
	lparKeyword(sink, ctx, "elem")
	writeOptionalName(sink, ctx, e.Name)

	switch e.Type {
	case ast.Declared:
		token(sink, ctx, "declare")
		writeElementListPayload(sink, ctx, e.Elements)

	case ast.Passive:
		writeElementListPayload(sink, ctx, e.Elements)

	case ast.Active:
		if e.Table != nil {
			lparKeyword(sink, ctx, "table")
			writeVar(sink, ctx, *e.Table)
			rpar(sink, ctx)
		}
		if e.Offset != nil {
			writeOffsetExpression(sink, ctx, e.Offset)
		}
		if vars, ok := e.Elements.(ast.ElementListWithVars); ok {
			// §4.5 legacy MVP omission: the leading "func" keyword is
			// elided only when nothing forces the newer syntax.
			omitFunc := vars.Kind == ast.ExternalFunction && e.Table == nil && e.Name == nil
			if !omitFunc {
				token(sink, ctx, externalKindKeyword(vars.Kind))
			}
			for _, v := range vars.List {
				writeVar(sink, ctx, v)
			}
		} else {
			writeElementListPayload(sink, ctx, e.Elements)
		}

	default:
		panic(UnsupportedNodeError{e.Type})
	}

	rpar(sink, ctx)
}

func writeDataSegment(sink Sink, ctx *Context, d *ast.DataSegment) {
	lparKeyword(sink, ctx, "data")
	writeOptionalName(sink, ctx, d.Name)
	if d.Memory != nil {
		lparKeyword(sink, ctx, "memory")
		writeVar(sink, ctx, *d.Memory)
		rpar(sink, ctx)
	}
	if d.Offset != nil {
		writeOffsetExpression(sink, ctx, d.Offset)
	}
	for _, t := range d.Data {
		writeText(sink, ctx, t)
	}
	rpar(sink, ctx)
}
