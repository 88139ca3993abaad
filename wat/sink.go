// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"bufio"
	"bytes"
	"io"
)

// Sink is the append-only destination the writer emits characters to. It
// never flushes, seeks, or is queried by the writer, matching §6 of
// SPEC_FULL.md. *bytes.Buffer and *bufio.Writer both already satisfy it.
type Sink interface {
	WriteByte(c byte) error
	WriteString(s string) (int, error)
}

// NewBufferSink returns a Sink backed by an in-memory buffer, for callers
// that want the rendered text as a string or []byte.
func NewBufferSink() *bytes.Buffer {
	return &bytes.Buffer{}
}

// WriterSink adapts any io.Writer to Sink via a buffered writer, mirroring
// the *bufio.Writer wast/write.go's WriteTo threads through every emission
// call. Callers must call Flush once writing is done.
type WriterSink struct {
	*bufio.Writer
}

// NewWriterSink wraps w in a WriterSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{Writer: bufio.NewWriter(w)}
}
