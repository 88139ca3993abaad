// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import "github.com/go-interpreter/wasmtext/numeric"

// Context carries the writer's per-call mutable state: the pending
// inter-token separator, the current indentation string, and the
// requested numeric base. It is created fresh for each top-level write
// and is never shared between concurrent writers (SPEC_FULL.md §5).
//
// Named Context rather than WriteContext (wasp's name) to keep struct
// literals terse; renamed away from "WriteContext" entirely to avoid any
// reader mistaking it for context.Context, which this synchronous writer
// never uses.
type Context struct {
	separator string
	indent    string
	base      numeric.Base
	err       error
}

// NewContext returns a Context ready for a top-level write call, with the
// indentation reset to a single newline and the given numeric base.
func NewContext(base numeric.Base) *Context {
	return &Context{indent: "\n", base: base}
}

// Space sets the pending separator to a single space.
func (c *Context) Space() { c.separator = " " }

// Newline sets the pending separator to the current indentation.
func (c *Context) Newline() { c.separator = c.indent }

// ClearSeparator suppresses the pending separator.
func (c *Context) ClearSeparator() { c.separator = "" }

// Indent grows the current indentation by one level (two spaces).
func (c *Context) Indent() { c.indent += "  " }

// Dedent shrinks the current indentation by one level. Clamped at the
// bare "\n" baseline rather than panicking on an unbalanced Indent/Dedent
// pair (wasp's C++ WriteContext::Dedent, by contrast, does an unchecked
// indent.erase(indent.size() - 2), which underflows given the same
// input); a writer that is documented total over well-formed ASTs (§4.7)
// should never crash on an indentation accounting slip.
func (c *Context) Dedent() {
	if len(c.indent) < 2 {
		return
	}
	c.indent = c.indent[:len(c.indent)-2]
}

// Base returns the numeric base literals are rendered in.
func (c *Context) Base() numeric.Base { return c.base }

// Err returns the first sink error encountered during this Context's
// lifetime, or nil if every emission has succeeded so far. Every token
// primitive in token.go short-circuits once this is set, the same
// "ignore errors inline, check once at the end" idiom wagon's
// wast/write.go applies via bufio.Writer.Flush.
func (c *Context) Err() error { return c.err }

// setErr records err as the Context's sticky error if none is already
// recorded.
func (c *Context) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
