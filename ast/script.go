// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// ScriptModuleKind distinguishes the three ways a script can embed a
// module: parsed text, a raw binary blob, or a quoted (to be parsed as
// text, possibly malformed) blob.
type ScriptModuleKind uint8

const (
	ScriptModuleText ScriptModuleKind = iota
	ScriptModuleBinary
	ScriptModuleQuote
)

// ScriptModule is a (module ...) script command. Module is meaningful
// only when Kind is ScriptModuleText; TextList (the binary/quoted payload
// split into possibly-multiple string literals) otherwise.
type ScriptModule struct {
	Name     *string
	Kind     ScriptModuleKind
	Module   *Module
	TextList []Text
}

func (*ScriptModule) isCommand() {}

// Const is the closed set of shapes an action argument constant can take.
type Const interface {
	isConst()
}

// U32Const is an i32.const argument.
type U32Const struct{ Value uint32 }

func (U32Const) isConst() {}

// U64Const is an i64.const argument.
type U64Const struct{ Value uint64 }

func (U64Const) isConst() {}

// F32Const is an f32.const argument.
type F32Const struct{ Value float32 }

func (F32Const) isConst() {}

// F64Const is an f64.const argument.
type F64Const struct{ Value float64 }

func (F64Const) isConst() {}

// V128Const is a v128.const argument in its canonical i32x4 shape.
type V128Const struct{ Lanes [4]uint32 }

func (V128Const) isConst() {}

// RefNullConst is a ref.null argument.
type RefNullConst struct{}

func (RefNullConst) isConst() {}

// RefExternConst is a ref.extern argument naming an extern index.
type RefExternConst struct{ Var Var }

func (RefExternConst) isConst() {}

// NanKind is a float-result pattern standing in for any bit pattern
// satisfying the canonical- or arithmetic-NaN predicate, rather than an
// exact value.
type NanKind uint8

const (
	Canonical NanKind = iota
	Arithmetic
)

// FloatResult is either an exact expected float value or a NaN-kind
// pattern, used by assert_return's f32/f64/f32x4/f64x2 result forms.
type FloatResult[T any] struct {
	IsNan bool
	Value T
	Nan   NanKind
}

// ReturnResult is the closed set of shapes an assert_return expected
// result can take: the Const shapes, plus pattern-only float/reference
// forms that Const has no use for.
type ReturnResult interface {
	isReturnResult()
}

// U32Result expects an exact i32 value.
type U32Result struct{ Value uint32 }

func (U32Result) isReturnResult() {}

// U64Result expects an exact i64 value.
type U64Result struct{ Value uint64 }

func (U64Result) isReturnResult() {}

// V128Result expects an exact v128 value in its canonical i32x4 shape.
type V128Result struct{ Lanes [4]uint32 }

func (V128Result) isReturnResult() {}

// F32Result expects an f32 value or NaN-kind pattern.
type F32Result struct{ Result FloatResult[float32] }

func (F32Result) isReturnResult() {}

// F64Result expects an f64 value or NaN-kind pattern.
type F64Result struct{ Result FloatResult[float64] }

func (F64Result) isReturnResult() {}

// F32x4Result expects a v128 interpreted as four lanes, each an f32
// value or NaN-kind pattern.
type F32x4Result struct{ Lanes [4]FloatResult[float32] }

func (F32x4Result) isReturnResult() {}

// F64x2Result expects a v128 interpreted as two lanes, each an f64 value
// or NaN-kind pattern.
type F64x2Result struct{ Lanes [2]FloatResult[float64] }

func (F64x2Result) isReturnResult() {}

// RefNullResult expects a null reference.
type RefNullResult struct{}

func (RefNullResult) isReturnResult() {}

// RefExternConstResult expects an exact externref value, supplementing
// the distilled spec's pattern-only RefExternResult; see DESIGN.md for
// wasp's case 8 this is grounded on.
type RefExternConstResult struct{ Var Var }

func (RefExternConstResult) isReturnResult() {}

// RefExternResult expects any non-null externref (pattern-only, no
// payload).
type RefExternResult struct{}

func (RefExternResult) isReturnResult() {}

// RefFuncResult expects any non-null funcref (pattern-only, no payload).
type RefFuncResult struct{}

func (RefFuncResult) isReturnResult() {}

// Action is invoking a function or reading a global, either standalone
// as a command or embedded in an assertion.
type Action interface {
	isAction()
	isCommand()
}

// InvokeAction calls an exported function with the given arguments.
type InvokeAction struct {
	Module *string
	Name   Text
	Consts []Const
}

func (InvokeAction) isAction()  {}
func (InvokeAction) isCommand() {}

// GetAction reads an exported global's current value.
type GetAction struct {
	Module *string
	Name   Text
}

func (GetAction) isAction()  {}
func (GetAction) isCommand() {}

// AssertionKind is the closed set of assertion forms the spec-test
// sublanguage supports.
type AssertionKind uint8

const (
	Malformed AssertionKind = iota
	Invalid
	Unlinkable
	ActionTrap
	Return
	ModuleTrap
	Exhaustion
)

// ModuleAssertion is the payload of a module-body assertion
// (assert_malformed/assert_invalid/assert_unlinkable and the module-form
// of assert_trap): a script module expected to fail, with a diagnostic
// message.
type ModuleAssertion struct {
	Module  ScriptModule
	Message Text
}

// ActionAssertion is the payload of an action-body assertion
// (assert_trap/assert_exhaustion): an action expected to trap or exhaust
// resources, with a diagnostic message.
type ActionAssertion struct {
	Action  Action
	Message Text
}

// ReturnAssertion is the payload of assert_return: an action and its
// expected results.
type ReturnAssertion struct {
	Action  Action
	Results []ReturnResult
}

// Assertion is a single assert_* script command. Exactly one of Module,
// ActionDesc, or ReturnDesc is set, selected by Kind.
type Assertion struct {
	Kind       AssertionKind
	Module     *ModuleAssertion
	ActionDesc *ActionAssertion
	ReturnDesc *ReturnAssertion
}

func (Assertion) isCommand() {}

// Register is a (register "name" $module?) script command, binding a
// module's exports into the spec-test harness's import namespace.
type Register struct {
	Name   Text
	Module *Var
}

func (Register) isCommand() {}

// Command is the closed set of forms a script's top-level entries can
// take.
type Command interface {
	isCommand()
}

// Script is an ordered sequence of commands.
type Script struct {
	Commands []Command
}
