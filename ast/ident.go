// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the in-memory representation of a WebAssembly text
// module and of the script/assertion sublanguage used by the official
// spec test harness. Nothing in this package reads or writes text; it is
// pure data.
package ast

// Var identifies a definition either by its numeric index in the
// relevant index space or by its bound name (without the leading '$').
// Exactly one of Name or the zero Index is meaningful, selected by
// HasName.
type Var struct {
	HasName bool
	Name    string
	Index   uint32
}

// VarIndex builds a Var referring to a definition by index.
func VarIndex(i uint32) Var { return Var{Index: i} }

// VarName builds a Var referring to a definition by bound name.
func VarName(name string) Var { return Var{HasName: true, Name: name} }

// Text is an already-escaped quoted string literal, as it appears
// between the quotes of a .wat/.wast string token. Data segments and
// action/module names carry raw bytes rather than a Go string so that
// non-UTF8 payloads and \xx escapes round-trip losslessly.
type Text struct {
	Raw []byte
}

// Bound pairs an optional name with a value, used for params, locals,
// and any other definition that may be referred to either by index or
// by name.
type Bound[T any] struct {
	Name  *string
	Value T
}
