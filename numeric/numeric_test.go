// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatToString(t *testing.T) {
	assert.Equal(t, "42", NatToString(42, Decimal))
	assert.Equal(t, "0x2a", NatToString(42, Hexadecimal))
	assert.Equal(t, "0", NatToString(0, Decimal))
}

func TestIntToString(t *testing.T) {
	assert.Equal(t, "-7", IntToString(-7, Decimal))
	assert.Equal(t, "-0x7", IntToString(-7, Hexadecimal))
	assert.Equal(t, "0x2a", IntToString(42, Hexadecimal))
}

func TestFloatToString32Finite(t *testing.T) {
	assert.Equal(t, "1", FloatToString32(1.0, Decimal))
	assert.Equal(t, "-0.5", FloatToString32(-0.5, Decimal))
}

func TestFloatToString32Infinity(t *testing.T) {
	assert.Equal(t, "inf", FloatToString32(float32(math.Inf(1)), Decimal))
	assert.Equal(t, "-inf", FloatToString32(float32(math.Inf(-1)), Decimal))
}

func TestFloatToString32Nan(t *testing.T) {
	bits := uint32(0x7fc00001)
	v := math.Float32frombits(bits)
	got := FloatToString32(v, Decimal)
	assert.Contains(t, got, "nan:0x")
}

func TestFloatToString64Infinity(t *testing.T) {
	assert.Equal(t, "inf", FloatToString64(math.Inf(1), Decimal))
	assert.Equal(t, "-inf", FloatToString64(math.Inf(-1), Decimal))
}

func TestFloatToString64HexNoLeadingZeroExponent(t *testing.T) {
	got := FloatToString64(12, Hexadecimal)
	assert.NotContains(t, got, "p+03")
	assert.Contains(t, got, "p+")
}

func TestV128LaneToString(t *testing.T) {
	got := V128LaneToString([]uint32{1, 2, 3, 4}, Decimal)
	assert.Equal(t, []string{"1", "2", "3", "4"}, got)
}
