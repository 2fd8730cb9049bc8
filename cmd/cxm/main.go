// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cxm compresses and decompresses files in the cxm format.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cxminify/cxm"
	"github.com/ogier/pflag"
)

const usageStr = `Usage: cxm <command> [OPTION]... FILE

Commands:
  compress    compress FILE into the cxm format
  decompress  reconstruct the original file from a cxm stream

Options:
  -o, --output FILE   write the result to FILE
  -l, --level N       compression preset 0-9 (default 9, compress only)
  -h, --help          give this help

Without -o, compress writes FILE.cxm and decompress strips the .cxm
suffix (or appends .out if there is none to strip).
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	cmd := os.Args[1]
	switch cmd {
	case "-h", "--help", "help":
		usage(os.Stdout)
		os.Exit(0)
	case "compress", "decompress":
	default:
		log.Printf("unknown command %q", cmd)
		usage(os.Stderr)
		os.Exit(1)
	}

	flags := pflag.NewFlagSet(cmdName+" "+cmd, pflag.ExitOnError)
	flags.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		output = flags.StringP("output", "o", "", "")
		level  = flags.IntP("level", "l", cxm.DefaultLevel, "")
		help   = flags.BoolP("help", "h", false, "")
	)
	flags.Parse(os.Args[2:])
	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if flags.NArg() != 1 {
		log.Print("exactly one input file required")
		usage(os.Stderr)
		os.Exit(1)
	}
	path := flags.Arg(0)

	var err error
	if cmd == "compress" {
		err = compressFile(path, *output, *level)
	} else {
		err = decompressFile(path, *output)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// units for human-readable sizes
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// humanSize formats a byte count the way the classic tools do.
func humanSize(n int64) string {
	s := float64(n)
	for _, u := range sizeUnits {
		if s < 1024.0 {
			return fmt.Sprintf("%.2f %s", s, u)
		}
		s /= 1024.0
	}
	return fmt.Sprintf("%.2f EB", s)
}

// compressFile compresses the file at path into target.
func compressFile(path, target string, level int) error {
	if target == "" {
		target = path + ".cxm"
	}
	data, err := readFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("Compressing: %s\n", path)
	fmt.Printf("Original size: %s\n", humanSize(int64(len(data))))
	out, err := cxm.Compress(data, level)
	if err != nil {
		return err
	}
	if err = writeFile(target, out); err != nil {
		return err
	}
	fmt.Printf("Compressed size: %s\n", humanSize(int64(len(out))))
	if len(data) > 0 {
		saved := (1 - float64(len(out))/float64(len(data))) * 100
		fmt.Printf("Space saved: %.1f%%\n", saved)
	}
	fmt.Printf("Output: %s\n", target)
	return nil
}

// decompressFile reconstructs the original file from the cxm stream at
// path.
func decompressFile(path, target string) error {
	if target == "" {
		if ext := filepath.Ext(path); ext == ".cxm" {
			target = path[:len(path)-len(ext)]
		} else {
			target = path + ".out"
		}
	}
	data, err := readFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("Decompressing: %s\n", path)
	fmt.Printf("Compressed size: %s\n", humanSize(int64(len(data))))
	out, err := cxm.Decompress(data)
	if err != nil {
		return err
	}
	if err = writeFile(target, out); err != nil {
		return err
	}
	fmt.Printf("Decompressed size: %s\n", humanSize(int64(len(out))))
	fmt.Printf("Output: %s\n", target)
	return nil
}
