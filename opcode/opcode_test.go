// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMnemonic(t *testing.T) {
	assert.Equal(t, "i32.add", Mnemonic(I32Add))
	assert.Equal(t, "end", Mnemonic(End))
	assert.Equal(t, "local.get", Mnemonic(LocalGet))
}

func TestMnemonicPanicsOnUnknownOpcode(t *testing.T) {
	assert.Panics(t, func() {
		Mnemonic(Opcode(0xffff))
	})
}

func TestIsBlockOpening(t *testing.T) {
	for _, op := range []Opcode{Block, Loop, If, Try} {
		assert.True(t, IsBlockOpening(op), Mnemonic(op))
	}
	assert.False(t, IsBlockOpening(Nop))
	assert.False(t, IsBlockOpening(End))
}

func TestClosesOrReopensHandler(t *testing.T) {
	for _, op := range []Opcode{End, Else, Catch, CatchAll, Delegate} {
		assert.True(t, ClosesOrReopensHandler(op), Mnemonic(op))
	}
	assert.False(t, ClosesOrReopensHandler(Nop))
}

func TestOpensHandlerRegion(t *testing.T) {
	for _, op := range []Opcode{Else, Catch, CatchAll} {
		assert.True(t, OpensHandlerRegion(op), Mnemonic(op))
	}
	assert.False(t, OpensHandlerRegion(Delegate))
	assert.False(t, OpensHandlerRegion(End))
}
