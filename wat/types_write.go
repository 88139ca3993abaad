// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import "github.com/go-interpreter/wasmtext/ast"

var numericMnemonics = map[ast.NumericKind]string{
	ast.NumI32:  "i32",
	ast.NumI64:  "i64",
	ast.NumF32:  "f32",
	ast.NumF64:  "f64",
	ast.NumV128: "v128",
}

// writeValueType emits a scalar value type: either a numeric kind's bare
// keyword or a reference type.
func writeValueType(sink Sink, ctx *Context, v ast.ValueType) {
	if v.IsRef {
		writeReferenceType(sink, ctx, v.Ref)
		return
	}
	name, ok := numericMnemonics[v.Numeric]
	if !ok {
		panic(UnsupportedNodeError{v})
	}
	token(sink, ctx, name)
}

// writeReferenceType emits funcref, externref, or a typed (ref null? ht)
// reference.
func writeReferenceType(sink Sink, ctx *Context, r ast.ReferenceType) {
	switch r.Kind {
	case ast.RefFuncShort:
		token(sink, ctx, "funcref")
	case ast.RefExternShort:
		token(sink, ctx, "externref")
	case ast.RefTyped:
		lparKeyword(sink, ctx, "ref")
		if r.Null {
			token(sink, ctx, "null")
		}
		writeHeapType(sink, ctx, r.Heap)
		rpar(sink, ctx)
	default:
		panic(UnsupportedNodeError{r})
	}
}

func writeHeapType(sink Sink, ctx *Context, h ast.HeapType) {
	switch h.Kind {
	case ast.HeapFunc:
		token(sink, ctx, "func")
	case ast.HeapExtern:
		token(sink, ctx, "extern")
	case ast.HeapIndex:
		writeVar(sink, ctx, h.Index)
	default:
		panic(UnsupportedNodeError{h})
	}
}

// writeValueTypeList emits a bare space-separated list of value types,
// with no wrapping parens of its own — used both for SelectImmediate
// (§4.3) and as the payload of a named ("param"/"result") group below.
func writeValueTypeList(sink Sink, ctx *Context, types []ast.ValueType) {
	for _, t := range types {
		writeValueType(sink, ctx, t)
	}
}

// writeNamedValueTypeList wraps types in (name t*), omitting the group
// entirely when types is empty, per wasp's
// Write(WriteContext&, const ValueTypeList&, string_view, Iterator).
func writeNamedValueTypeList(sink Sink, ctx *Context, name string, types []ast.ValueType) {
	if len(types) == 0 {
		return
	}
	lparKeyword(sink, ctx, name)
	writeValueTypeList(sink, ctx, types)
	rpar(sink, ctx)
}

// writeFunctionType emits a bare (unbound) signature's (param ...)
// (result ...) groups.
func writeFunctionType(sink Sink, ctx *Context, t ast.FunctionType) {
	writeNamedValueTypeList(sink, ctx, "param", t.Params)
	writeNamedValueTypeList(sink, ctx, "result", t.Results)
}

// writeBoundFunctionType emits a signature whose params may carry bound
// names: params are grouped per §4.5.1's bound-value-type-list grouping
// algorithm, results are a single bare (result ...) group.
func writeBoundFunctionType(sink Sink, ctx *Context, t ast.BoundFunctionType) {
	writeBoundValueTypeList(sink, ctx, "param", t.Params)
	writeNamedValueTypeList(sink, ctx, "result", t.Results)
}

// writeBoundValueTypeList implements §4.5.1's grouping algorithm: runs of
// consecutive anonymous entries share one (prefix t*) group; any named
// entry gets its own singleton (prefix $name t) group.
func writeBoundValueTypeList(sink Sink, ctx *Context, prefix string, values []ast.Bound[ast.ValueType]) {
	first := true
	prevHasName := false
	open := false
	for _, v := range values {
		hasName := v.Name != nil
		if (hasName || prevHasName) && !first {
			rpar(sink, ctx)
			open = false
		}
		if hasName || prevHasName || first {
			lparKeyword(sink, ctx, prefix)
			open = true
		}
		if hasName {
			token(sink, ctx, "$"+*v.Name)
		}
		writeValueType(sink, ctx, v.Value)
		prevHasName = hasName
		first = false
	}
	if open {
		rpar(sink, ctx)
	}
}

// writeFunctionTypeUse emits an optional (type <var>) back-reference
// followed by the (possibly bound, possibly redundant) signature written
// out at the use site.
func writeFunctionTypeUse(sink Sink, ctx *Context, u ast.FunctionTypeUse) {
	if u.TypeUse != nil {
		lparKeyword(sink, ctx, "type")
		writeVar(sink, ctx, *u.TypeUse)
		rpar(sink, ctx)
	}
	writeBoundFunctionType(sink, ctx, u.Type)
}

// writeLimits emits a table's or memory's min/max/shared triple.
func writeLimits(sink Sink, ctx *Context, l ast.Limits) {
	writeNat(sink, ctx, uint64(l.Min))
	if l.Max != nil {
		writeNat(sink, ctx, uint64(*l.Max))
	}
	if l.Shared {
		token(sink, ctx, "shared")
	}
}

// writeGlobalType emits a global's value type, wrapped in (mut ...) when
// mutable.
func writeGlobalType(sink Sink, ctx *Context, g ast.GlobalType) {
	if g.Mut == ast.MutVar {
		lparKeyword(sink, ctx, "mut")
		writeValueType(sink, ctx, g.ValType)
		rpar(sink, ctx)
		return
	}
	writeValueType(sink, ctx, g.ValType)
}

var externalKindMnemonics = map[ast.ExternalKind]string{
	ast.ExternalFunction: "func",
	ast.ExternalTable:    "table",
	ast.ExternalMemory:   "memory",
	ast.ExternalGlobal:   "global",
	ast.ExternalEvent:    "event",
}

func externalKindKeyword(k ast.ExternalKind) string {
	name, ok := externalKindMnemonics[k]
	if !ok {
		panic(UnsupportedNodeError{k})
	}
	return name
}
