// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import "github.com/go-interpreter/wasmtext/numeric"

func writeNat(sink Sink, ctx *Context, v uint64) {
	token(sink, ctx, numeric.NatToString(v, ctx.Base()))
}

func writeInt(sink Sink, ctx *Context, v int64) {
	token(sink, ctx, numeric.IntToString(v, ctx.Base()))
}

func writeFloat32(sink Sink, ctx *Context, v float32) {
	token(sink, ctx, numeric.FloatToString32(v, ctx.Base()))
}

func writeFloat64(sink Sink, ctx *Context, v float64) {
	token(sink, ctx, numeric.FloatToString64(v, ctx.Base()))
}

// writeV128 emits v's canonical i32x4 shape: the shape keyword followed
// by its four lanes.
func writeV128(sink Sink, ctx *Context, lanes [4]uint32) {
	token(sink, ctx, "i32x4")
	for _, l := range lanes {
		writeNat(sink, ctx, uint64(l))
	}
}

// writeMemArg emits a MemArgImmediate's optional offset= and align=
// fields, gluing the key and the number with no intervening separator.
func writeMemArg(sink Sink, ctx *Context, offset, align *uint32) {
	if offset != nil {
		token(sink, ctx, "offset=")
		ctx.ClearSeparator()
		writeNat(sink, ctx, uint64(*offset))
	}
	if align != nil {
		token(sink, ctx, "align=")
		ctx.ClearSeparator()
		writeNat(sink, ctx, uint64(*align))
	}
}
