// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Command kmp prints the index of the first occurrence of PATTERN in TEXT,
// or -1 if there is none.
//
// Usage:
//
//	kmp [-table] [-runes] TEXT PATTERN
//
// The exit status is 0 if PATTERN was found, 1 if it was not and 2 if an
// error occurred.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charlievieth/kmp"
)

func printResult(w io.Writer, text, pattern string, table, runes bool) (int, error) {
	var index int
	var next []int
	if runes {
		m := kmp.Compile([]rune(pattern))
		index = m.Index([]rune(text))
		next = m.Table()
	} else {
		m := kmp.CompileString(pattern)
		index = m.Index(text)
		next = m.Table()
	}
	if table {
		if _, err := fmt.Fprintln(w, next); err != nil {
			return index, err
		}
	}
	_, err := fmt.Fprintln(w, index)
	return index, err
}

func realMain(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("kmp", flag.ContinueOnError)
	flags.SetOutput(stderr)
	table := flags.Bool("table", false, "also print the failure table of PATTERN")
	runes := flags.Bool("runes", false, "match runes instead of bytes (indexes are rune offsets)")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %s [-table] [-runes] TEXT PATTERN\n", flags.Name())
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return 2
	}
	index, err := printResult(stdout, flags.Arg(0), flags.Arg(1), *table, *runes)
	if err != nil {
		log.Println("error:", err)
		return 2
	}
	if index < 0 {
		return 1
	}
	return 0
}

func main() {
	log.SetPrefix("kmp: ")
	log.SetFlags(log.Lshortfile)
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}
