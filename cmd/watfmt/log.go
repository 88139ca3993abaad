// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"log"
	"os"
)

// PrintDebugInfo selects whether the package logger discards output or
// writes to stderr, mirroring wasm.PrintDebugInfo/wat.PrintDebugInfo.
// It is read once, when the package is initialized; changing it later
// does not affect the logger.
var PrintDebugInfo = false

var logger *log.Logger

func init() {
	w := ioutil.Discard

	if PrintDebugInfo {
		w = os.Stderr
	}

	logger = log.New(w, "", log.Lshortfile)
}
