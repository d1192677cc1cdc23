// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Describe prints descriptive statistics for samples of numbers.
//
// Usage:
//
//	describe [flags] [file ...]
//
// Each input file holds whitespace-separated real numbers forming one
// sample. With no files, describe reads a sample from standard input.
// For each sample, describe prints the six-number summary (mean,
// minimum, quartiles, median, maximum); flags add the deciles, the
// modal values, and the tie-averaged ranks.
//
// For example:
//
//	$ echo 15 20 35 40 50 | describe
//	mean:          32.000000
//	minimum:       15.000000
//	1st quartile:  20.000000
//	median:        35.000000
//	3rd quartile:  40.000000
//	maximum:       50.000000
//	$
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/ignace-computing/statsbase"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: describe [flags] [file ...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagDeciles = flag.Bool("deciles", false, "also print the nine deciles")
	flagModes   = flag.Bool("modes", false, "also print the modal value(s)")
	flagRanks   = flag.Bool("ranks", false, "also print tie-averaged ranks")
)

func main() {
	log.SetPrefix("describe: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		xs, err := readSample(file)
		if err != nil {
			log.Fatal(err)
		}
		if len(files) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", file)
		}
		if err := report(os.Stdout, xs); err != nil {
			log.Fatal(errors.Wrap(err, file))
		}
	}
}

// readSample parses one whitespace-separated sample from a file, or
// from stdin when file is "-".
func readSample(file string) ([]float64, error) {
	var text []byte
	var err error
	if file == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(text))
	xs := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", file)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func report(w io.Writer, xs []float64) error {
	if err := statsbase.Describe(w, xs); err != nil {
		return err
	}
	if *flagDeciles {
		ds, err := statsbase.Decile(xs)
		if err != nil {
			return err
		}
		for i, d := range ds {
			fmt.Fprintf(w, "decile %d:      %.6f\n", i+1, d)
		}
	}
	if *flagModes {
		ms, err := statsbase.Modes(xs)
		if err != nil {
			return err
		}
		strs := make([]string, len(ms))
		for i, m := range ms {
			strs[i] = strconv.FormatFloat(m, 'g', -1, 64)
		}
		fmt.Fprintf(w, "mode:          %s\n", strings.Join(strs, " "))
	}
	if *flagRanks {
		for i, r := range statsbase.TiedRank(xs) {
			fmt.Fprintf(w, "rank %-9d %.1f\n", i+1, r)
		}
	}
	return nil
}
