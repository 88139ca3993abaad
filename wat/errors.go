// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import "fmt"

// UnsupportedNodeError reports a contract violation: an AST node carrying
// a tag/variant combination the writer has no case for (e.g. an
// Immediate implementation the instruction encoder's type switch does
// not recognize). Per §4.7/§7, this is not a recoverable condition; the
// dispatch sites that construct it pass it to panic rather than
// returning it as an error value.
type UnsupportedNodeError struct {
	Node interface{}
}

func (e UnsupportedNodeError) Error() string {
	return fmt.Sprintf("wat: unsupported AST node %T", e.Node)
}
