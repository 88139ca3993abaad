// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// NumericKind distinguishes the five non-reference scalar value types.
type NumericKind uint8

const (
	NumI32 NumericKind = iota
	NumI64
	NumF32
	NumF64
	NumV128
)

// ValueType is a scalar value type: either one of the five numeric kinds
// or a reference type (funcref, externref, or a typed reference).
type ValueType struct {
	IsRef   bool
	Numeric NumericKind
	Ref     ReferenceType
}

// ValNumeric builds a non-reference ValueType.
func ValNumeric(k NumericKind) ValueType { return ValueType{Numeric: k} }

// ValRef builds a reference-typed ValueType.
func ValRef(r ReferenceType) ValueType { return ValueType{IsRef: true, Ref: r} }

// ReferenceKind distinguishes the two MVP reference type shorthands from
// the typed-reference-proposal's general (ref null? heaptype) form.
type ReferenceKind uint8

const (
	RefFuncShort ReferenceKind = iota
	RefExternShort
	RefTyped
)

// HeapKind distinguishes the two built-in heap types from an indexed
// (user-defined) one.
type HeapKind uint8

const (
	HeapFunc HeapKind = iota
	HeapExtern
	HeapIndex
)

// HeapType is the target of a typed reference. Index is meaningful only
// when Kind is HeapIndex.
type HeapType struct {
	Kind  HeapKind
	Index Var
}

// ReferenceType is funcref, externref, or a typed reference (ref null? ht).
// Null and Heap are meaningful only when Kind is RefTyped.
type ReferenceType struct {
	Kind ReferenceKind
	Null bool
	Heap HeapType
}

// Funcref builds the funcref shorthand.
func Funcref() ReferenceType { return ReferenceType{Kind: RefFuncShort} }

// Externref builds the externref shorthand.
func Externref() ReferenceType { return ReferenceType{Kind: RefExternShort} }

// FunctionType is a bare (unbound) function signature, used for type
// entries' referenced shape and for matching against a type use.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}

// BoundFunctionType is a function signature whose parameters may carry
// bound names, as written inline on a func/block/type definition.
type BoundFunctionType struct {
	Params  []Bound[ValueType]
	Results []ValueType
}

// FunctionTypeUse pairs an optional reference to a previously declared
// type with the (possibly redundant, possibly bound) signature written
// out at the use site.
type FunctionTypeUse struct {
	TypeUse *Var
	Type    BoundFunctionType
}

// Limits bounds a table's or memory's size. Max is absent when
// unconstrained; Shared marks a shared (thread-proposal) memory.
type Limits struct {
	Min    uint32
	Max    *uint32
	Shared bool
}

// TableType is a table's element type together with its size limits.
type TableType struct {
	Limits   Limits
	ElemType ReferenceType
}

// MemoryType is a memory's size limits.
type MemoryType struct {
	Limits Limits
}

// MutKind distinguishes immutable globals from mutable ones. Named
// MutConst/MutVar rather than Const/Var to avoid colliding with Var, the
// index/name identifier type.
type MutKind uint8

const (
	MutConst MutKind = iota
	MutVar
)

// GlobalType is a global's value type together with its mutability.
type GlobalType struct {
	ValType ValueType
	Mut     MutKind
}

// EventType is an exception-handling-proposal event's signature, reusing
// the function-type-use machinery since events are declared the same way
// functions are.
type EventType struct {
	Type FunctionTypeUse
}

// ExternalKind tags which index space a Var in an import, export, or
// element segment refers into.
type ExternalKind uint8

const (
	ExternalFunction ExternalKind = iota
	ExternalTable
	ExternalMemory
	ExternalGlobal
	ExternalEvent
)

// SegmentType distinguishes the three element/data segment placement
// modes introduced by the bulk-memory and reference-types proposals.
type SegmentType uint8

const (
	Active SegmentType = iota
	Passive
	Declared
)
