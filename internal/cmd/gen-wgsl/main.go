// Copyright 2025 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Command gen-wgsl regenerates the WGSL side of the primitive schema.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"honnef.co/go/ydraw/wgsl"
)

func main() {
	var out string
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-out <file>]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&out, "out", "", "Path to output `file`, stdout when empty")
	flag.Parse()

	if len(flag.Args()) != 0 {
		flag.Usage()
		os.Exit(2)
	}

	var buf bytes.Buffer
	if err := wgsl.Generate(&buf); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't generate WGSL: %s\n", err)
		os.Exit(1)
	}
	if out == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(out, buf.Bytes(), 0666); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write %s: %s\n", out, err)
		os.Exit(1)
	}
}
