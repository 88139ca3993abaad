// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"testing"

	"github.com/go-interpreter/wasmtext/ast"
	"github.com/go-interpreter/wasmtext/numeric"
	"github.com/stretchr/testify/assert"
)

func TestLparKeywordArmsSpace(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	lparKeyword(sink, ctx, "module")
	token(sink, ctx, "foo")
	rpar(sink, ctx)

	assert.Equal(t, "(module foo)", sink.String())
}

func TestRparSuppressesPendingSpace(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	lparKeyword(sink, ctx, "nop")
	rpar(sink, ctx)

	assert.Equal(t, "(nop)", sink.String())
}

func TestWriteVarByIndex(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	writeVar(sink, ctx, ast.VarIndex(3))

	assert.Equal(t, "3", sink.String())
}

func TestWriteVarByName(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	writeVar(sink, ctx, ast.VarName("foo"))

	assert.Equal(t, "$foo", sink.String())
}

func TestWriteOptionalNameNilIsNoop(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	writeOptionalName(sink, ctx, nil)

	assert.Equal(t, "", sink.String())
}

func TestWriteTextQuotesRawBytes(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	writeText(sink, ctx, ast.Text{Raw: []byte(`hello\20world`)})

	assert.Equal(t, `"hello\20world"`, sink.String())
}

// TestMemArgGluesKeyAndNumber exercises the S3 scenario: offset=/align=
// glue directly onto their number with no intervening space, but the
// two fields are themselves space-separated.
func TestMemArgGluesKeyAndNumber(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	offset := uint32(4)
	align := uint32(2)
	writeMemArg(sink, ctx, &offset, &align)

	assert.Equal(t, "offset=4 align=2", sink.String())
}

func TestMemArgOmitsAbsentFields(t *testing.T) {
	sink := NewBufferSink()
	ctx := NewContext(numeric.Decimal)

	writeMemArg(sink, ctx, nil, nil)

	assert.Equal(t, "", sink.String())
}

func TestSinkErrorShortCircuitsSubsequentTokens(t *testing.T) {
	ctx := NewContext(numeric.Decimal)
	fail := &failingSink{}

	lparKeyword(fail, ctx, "module")
	require := ctx.Err()
	token(fail, ctx, "unreachable")

	assert.Error(t, require)
	assert.Equal(t, require, ctx.Err())
	assert.Equal(t, 1, fail.calls)
}

// failingSink errors on the very first write, letting tests confirm that
// once Context.err is set no further bytes reach the sink.
type failingSink struct {
	calls int
}

func (f *failingSink) WriteByte(c byte) error {
	f.calls++
	return assert.AnError
}

func (f *failingSink) WriteString(s string) (int, error) {
	f.calls++
	return 0, assert.AnError
}
