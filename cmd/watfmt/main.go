// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command watfmt demonstrates the wat package's writer against a small
// set of built-in sample modules and scripts. This module has no text
// parser (§1/§12), so unlike wasm-dump (which reads a real .wasm file
// from disk) watfmt has nothing on-disk to read; -sample selects which
// in-process AST to render instead.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/go-interpreter/wasmtext/numeric"
	"github.com/go-interpreter/wasmtext/wat"
)

// Options holds watfmt's command-line configuration.
type Options struct {
	Sample string
	Hex    bool
	Out    string
}

func main() {
	log.SetPrefix("watfmt: ")
	log.SetFlags(0)

	opts := Options{}
	flag.StringVar(&opts.Sample, "sample", "add", "built-in sample to render (add|empty-func|spec-script)")
	flag.BoolVar(&opts.Hex, "hex", false, "render numeric literals in hexadecimal")
	flag.StringVar(&opts.Out, "o", "", "output file (default: stdout)")
	flag.Parse()

	out := os.Stdout
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			log.Fatalf("could not create %q: %v", opts.Out, err)
		}
		defer f.Close()
		out = f
	}

	if err := process(out, opts); err != nil {
		log.Fatalf("could not render sample %q: %v", opts.Sample, err)
	}
}

func process(w *os.File, opts Options) error {
	base := numeric.Decimal
	if opts.Hex {
		base = numeric.Hexadecimal
	}
	ctx := wat.NewContext(base)
	sink := wat.NewWriterSink(w)
	defer sink.Flush()

	logger.Printf("rendering sample %q", opts.Sample)

	switch opts.Sample {
	case "add":
		return wat.WriteModule(sink, ctx, sampleAddModule())
	case "empty-func":
		return wat.WriteModule(sink, ctx, sampleEmptyFuncModule())
	case "spec-script":
		return wat.WriteScript(sink, ctx, sampleSpecScript())
	default:
		logger.Printf("unknown sample %q", opts.Sample)
		flag.Usage()
		os.Exit(1)
		return nil
	}
}
