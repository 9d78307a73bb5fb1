// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ssabuild constructs a sparse suffix array for a file and writes it
// out, either as a bitpacked stream or as a plain list of decimal offsets.
// Passing -q switches to query mode, which loads a previously built index
// back and reports the retained positions whose suffix begins with a given
// sequence.
//
// Example usage:
//
//	$ ssabuild -s 4 genome.fa genome.fa.ssa
//	$ ssabuild -s 4 -c genome.fa genome.fa.ssa.packed
//	$ ssabuild -q ACGT genome.fa genome.fa.ssa
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sparsessa/ssa/alphabet"
	"github.com/sparsessa/ssa/bitpack"
	"github.com/sparsessa/ssa/ssa"
)

func main() {
	sparseness := flag.Int("s", 1, "sparseness factor k; only suffixes at positions divisible by k are indexed")
	dnaMode := flag.Bool("d", false, "treat input as a nucleotide sequence (A, C, G, T); absent, the input is treated as protein")
	compressed := flag.Bool("c", false, "write (or, with -q, read) the suffix array bitpacked instead of as decimal text")
	unoptimized := flag.Bool("u", false, "use the reference construction path (full suffix array, then subsample)")
	query := flag.String("q", "", "query mode: instead of building an index, search a previously built one for this sequence")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: ssabuild [flags] input output")
		flag.PrintDefaults()
		os.Exit(2)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	mode := alphabet.Protein
	if *dnaMode {
		mode = alphabet.DNA
	}

	var err error
	if *query != "" {
		err = runQuery(inPath, outPath, *sparseness, *compressed, *query)
	} else {
		err = runBuild(inPath, outPath, *sparseness, mode, *compressed, *unoptimized)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ssabuild:", err)
		os.Exit(1)
	}
}

func runBuild(inPath, outPath string, sparseness int, mode alphabet.Mode, compressed, unoptimized bool) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	cfg := ssa.Config{Sparseness: sparseness, Mode: mode}
	var result *ssa.SSA
	if unoptimized {
		result, err = ssa.BuildUnoptimized(data, cfg)
	} else {
		result, err = ssa.Build(data, cfg)
	}
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if compressed {
		return bitpack.Pack(out, result.SA, sparseness)
	}
	return writeText(out, result.SA)
}

// runQuery loads the sequence at inPath and the index previously written to
// idxPath (by runBuild) back into an ssa.SSA, then reports every retained
// position whose suffix begins with query, in ascending text order.
func runQuery(inPath, idxPath string, sparseness int, compressed bool, query string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	idx, err := os.Open(idxPath)
	if err != nil {
		return err
	}
	defer idx.Close()

	var sa []int64
	if compressed {
		sa, _, err = bitpack.Unpack(idx)
	} else {
		sa, err = readText(idx)
	}
	if err != nil {
		return err
	}

	s := &ssa.SSA{Data: data, Sparseness: sparseness, SA: sa}
	hits := s.LookupTextOrder([]byte(query))
	if len(hits) == 0 {
		fmt.Println("no match")
		return nil
	}
	for _, pos := range hits {
		fmt.Println(pos)
	}
	return nil
}

func writeText(out *os.File, sa []int64) error {
	w := bufio.NewWriter(out)
	for _, pos := range sa {
		if _, err := fmt.Fprintln(w, pos); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readText(in *os.File) ([]int64, error) {
	var sa []int64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		pos, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return nil, err
		}
		sa = append(sa, pos)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sa, nil
}
