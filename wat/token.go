// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import "github.com/go-interpreter/wasmtext/ast"

// writeSeparator flushes ctx's pending separator to sink, then clears it.
// Every other primitive in this file except rpar (which clears the
// separator instead of flushing it) routes through it before emitting
// its own content, per §4.1's "flush then clear" rule.
func writeSeparator(sink Sink, ctx *Context) {
	if ctx.separator == "" {
		return
	}
	if _, err := sink.WriteString(ctx.separator); err != nil {
		ctx.setErr(err)
	}
	ctx.separator = ""
}

// lpar flushes the pending separator and writes "(", with no trailing
// separator of its own.
func lpar(sink Sink, ctx *Context) {
	if ctx.err != nil {
		return
	}
	writeSeparator(sink, ctx)
	if err := sink.WriteByte('('); err != nil {
		ctx.setErr(err)
	}
}

// lparKeyword writes "(" followed immediately by kw, then arms the
// separator for whatever comes next.
func lparKeyword(sink Sink, ctx *Context, kw string) {
	lpar(sink, ctx)
	if ctx.err != nil {
		return
	}
	if _, err := sink.WriteString(kw); err != nil {
		ctx.setErr(err)
	}
	ctx.Space()
}

// rpar suppresses any pending space before ")", writes ")", then arms
// the separator for whatever follows.
func rpar(sink Sink, ctx *Context) {
	if ctx.err != nil {
		return
	}
	ctx.ClearSeparator()
	if err := sink.WriteByte(')'); err != nil {
		ctx.setErr(err)
	}
	ctx.Space()
}

// token emits a single keyword, identifier, or number, flushing the
// pending separator first and arming a space afterward.
func token(sink Sink, ctx *Context, s string) {
	if ctx.err != nil {
		return
	}
	writeSeparator(sink, ctx)
	if ctx.err != nil {
		return
	}
	if _, err := sink.WriteString(s); err != nil {
		ctx.setErr(err)
	}
	ctx.Space()
}

// writeVar emits a Var as either its bound name (with the leading '$')
// or its numeric index.
func writeVar(sink Sink, ctx *Context, v ast.Var) {
	if v.HasName {
		token(sink, ctx, "$"+v.Name)
		return
	}
	writeNat(sink, ctx, uint64(v.Index))
}

// writeOptionalName emits "$name" if name is non-nil, and nothing
// otherwise.
func writeOptionalName(sink Sink, ctx *Context, name *string) {
	if name != nil {
		token(sink, ctx, "$"+*name)
	}
}

// writeText emits t as a quoted string literal. t.Raw is already in
// escaped form, so it is written verbatim between the quotes.
func writeText(sink Sink, ctx *Context, t ast.Text) {
	if ctx.err != nil {
		return
	}
	writeSeparator(sink, ctx)
	if ctx.err != nil {
		return
	}
	if err := sink.WriteByte('"'); err != nil {
		ctx.setErr(err)
		return
	}
	if _, err := sink.WriteString(string(t.Raw)); err != nil {
		ctx.setErr(err)
		return
	}
	if err := sink.WriteByte('"'); err != nil {
		ctx.setErr(err)
		return
	}
	ctx.Space()
}
