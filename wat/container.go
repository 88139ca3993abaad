// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"fmt"

	"github.com/go-interpreter/wasmtext/ast"
)

// WriteModule emits m as a bare "(module item*)" form, one item per line
// at one indentation level, closing at column zero. This is one of the
// module's four public entry points (§6).
func WriteModule(sink Sink, ctx *Context, m *ast.Module) error {
	writeModuleBody(sink, ctx, m)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wat: write module: %w", err)
	}
	return nil
}

func writeModuleBody(sink Sink, ctx *Context, m *ast.Module) {
	lparKeyword(sink, ctx, "module")
	writeModuleItems(sink, ctx, m)
	rpar(sink, ctx)
}

func writeModuleItems(sink Sink, ctx *Context, m *ast.Module) {
	logger.Printf("There are %d items in the module.", len(m.Items))
	ctx.Indent()
	ctx.Newline()
	for i, item := range m.Items {
		if i > 0 {
			ctx.Newline()
		}
		writeModuleItem(sink, ctx, item)
	}
	ctx.Dedent()
}

// writeScriptModule emits a (module ...) script command in any of its
// three shapes (§4.6): parsed text, a raw binary blob, or a to-be-parsed
// quoted blob.
func writeScriptModule(sink Sink, ctx *Context, sm *ast.ScriptModule) {
	switch sm.Kind {
	case ast.ScriptModuleText:
		lparKeyword(sink, ctx, "module")
		writeOptionalName(sink, ctx, sm.Name)
		writeModuleItems(sink, ctx, sm.Module)
		rpar(sink, ctx)

	case ast.ScriptModuleBinary:
		lparKeyword(sink, ctx, "module")
		writeOptionalName(sink, ctx, sm.Name)
		token(sink, ctx, "binary")
		for _, t := range sm.TextList {
			writeText(sink, ctx, t)
		}
		rpar(sink, ctx)

	case ast.ScriptModuleQuote:
		lparKeyword(sink, ctx, "module")
		writeOptionalName(sink, ctx, sm.Name)
		token(sink, ctx, "quote")
		for _, t := range sm.TextList {
			writeText(sink, ctx, t)
		}
		rpar(sink, ctx)

	default:
		panic(UnsupportedNodeError{sm.Kind})
	}
}
