// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// InlineImport is the sugar form attaching an import directly to a
// func/table/memory/global/event definition instead of a top-level
// (import ...) item.
type InlineImport struct {
	Module string
	Name   string
}

// InlineExport is the sugar form attaching an export directly to a
// definition instead of a top-level (export ...) item.
type InlineExport struct {
	Name string
}

// ImportDesc is the closed set of shapes a top-level import's descriptor
// can take.
type ImportDesc interface {
	isImportDesc()
}

// FunctionDesc names a function's optional type use and signature; also
// embedded (by value) in Function for the defining form.
type FunctionDesc struct {
	Name    *string
	TypeUse *Var
	Type    BoundFunctionType
}

func (FunctionDesc) isImportDesc() {}

// TableDesc names a table's optional bound name and type.
type TableDesc struct {
	Name *string
	Type TableType
}

func (TableDesc) isImportDesc() {}

// MemoryDesc names a memory's optional bound name and type.
type MemoryDesc struct {
	Name *string
	Type MemoryType
}

func (MemoryDesc) isImportDesc() {}

// GlobalDesc names a global's optional bound name and type.
type GlobalDesc struct {
	Name *string
	Type GlobalType
}

func (GlobalDesc) isImportDesc() {}

// EventDesc names an event's optional bound name and type.
type EventDesc struct {
	Name *string
	Type EventType
}

func (EventDesc) isImportDesc() {}

// ModuleItem is the closed set of top-level forms a module body can
// contain.
type ModuleItem interface {
	isModuleItem()
}

// TypeEntry declares a named function type, (type $name (func ...)).
type TypeEntry struct {
	Name *string
	Type BoundFunctionType
}

func (*TypeEntry) isModuleItem() {}

// Import is a top-level (import "module" "name" (desc)) item.
type Import struct {
	Module string
	Name   string
	Desc   ImportDesc
}

func (*Import) isModuleItem() {}

// Function is a defining func item: either an inline-imported declaration
// (Import != nil, Instructions/Locals unused) or a full definition.
type Function struct {
	Desc         FunctionDesc
	Exports      []InlineExport
	Import       *InlineImport
	Locals       []Bound[ValueType]
	Instructions []Instruction
}

func (*Function) isModuleItem() {}

// Table is a defining table item. At most one of Import and Elements is
// set; Elements implements the table-with-elements shorthand (§4.5
// "Table sugar"), which elides explicit limits.
type Table struct {
	Desc     TableDesc
	Exports  []InlineExport
	Import   *InlineImport
	Elements *ElementList
}

func (*Table) isModuleItem() {}

// Memory is a defining memory item. At most one of Import and Data is
// set; Data implements the memory-with-data shorthand.
type Memory struct {
	Desc    MemoryDesc
	Exports []InlineExport
	Import  *InlineImport
	Data    []Text
}

func (*Memory) isModuleItem() {}

// Global is a defining global item. When Import is nil, Init supplies
// the global's initializer constant expression.
type Global struct {
	Desc    GlobalDesc
	Exports []InlineExport
	Import  *InlineImport
	Init    ConstantExpression
}

func (*Global) isModuleItem() {}

// Export is a top-level (export "name" (kind var)) item.
type Export struct {
	Name string
	Kind ExternalKind
	Var  Var
}

func (*Export) isModuleItem() {}

// Start is the module's (start $func) item.
type Start struct{ Var Var }

func (*Start) isModuleItem() {}

// ElementExpression is a single parenthesized instruction sequence used
// as a table element when the element list carries expressions rather
// than bare function indices.
type ElementExpression struct {
	Instructions []Instruction
}

// ElementList is the closed set of shapes an element segment's payload
// can take: either a bare external-kind-tagged var list (the legacy MVP
// shape, also usable for tables of any reference type under the
// reference-types proposal) or a typed list of element expressions.
type ElementList interface {
	isElementList()
}

// ElementListWithVars is the var-list shape, e.g. the function indices of
// a classic MVP active element segment.
type ElementListWithVars struct {
	Kind ExternalKind
	List []Var
}

func (ElementListWithVars) isElementList() {}

// ElementListWithExpressions is the expression-list shape required for
// any reference type other than funcref referenced by plain indices.
type ElementListWithExpressions struct {
	ElemType ReferenceType
	List     []ElementExpression
}

func (ElementListWithExpressions) isElementList() {}

// ConstantExpression is an instruction sequence restricted (by the
// out-of-scope validator) to constant-producing instructions, used for
// global initializers and active segment offsets.
type ConstantExpression struct {
	Instructions []Instruction
}

// ElementSegment is a top-level (elem ...) item, active, passive, or
// declared.
type ElementSegment struct {
	Name     *string
	Type     SegmentType
	Table    *Var
	Offset   *ConstantExpression
	Elements ElementList
}

func (*ElementSegment) isModuleItem() {}

// DataSegment is a top-level (data ...) item.
type DataSegment struct {
	Name   *string
	Type   SegmentType
	Memory *Var
	Offset *ConstantExpression
	Data   []Text
}

func (*DataSegment) isModuleItem() {}

// Event is a defining event item (exception-handling proposal).
type Event struct {
	Desc    EventDesc
	Exports []InlineExport
	Import  *InlineImport
}

func (*Event) isModuleItem() {}

// Module is an ordered sequence of top-level items.
type Module struct {
	Items []ModuleItem
}
