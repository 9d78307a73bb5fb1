// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ssabench compares the construction speed of ssa.Build against the
// ssa.BuildUnoptimized reference path across a matrix of input sizes and
// sparseness factors, and reports how well the resulting bitpacked array
// compresses relative to two general-purpose baselines.
//
// Example usage:
//
//	$ ssabench -sizes 1e4,1e5,1e6 -sparseness 1,2,4,8 -file genome.fa
package main

import (
	"bytes"
	"flag"
	"fmt"
	"math"
	"os"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/dsnet/golib/strconv"
	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/sparsessa/ssa/alphabet"
	"github.com/sparsessa/ssa/bitpack"
	"github.com/sparsessa/ssa/internal/testutil"
	"github.com/sparsessa/ssa/ssa"
)

const (
	defaultSizes      = "1e4,1e5,1e6"
	defaultSparseness = "1,2,4,8"
)

var sep = regexp.MustCompile("[,:]")

func main() {
	f0 := flag.String("sizes", defaultSizes, "list of input sizes to benchmark")
	f1 := flag.String("sparseness", defaultSparseness, "list of sparseness factors to benchmark")
	f2 := flag.String("file", "", "corpus file to slice inputs from; a synthetic repetitive DNA sequence is used if empty")
	f3 := flag.Bool("ratio", true, "also report compression ratio of the bitpacked array against flate and xz baselines")
	flag.Parse()

	var sizes []int
	for _, s := range sep.Split(*f0, -1) {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ssabench: invalid size", s)
			os.Exit(2)
		}
		sizes = append(sizes, int(n))
	}

	var factors []int
	for _, s := range sep.Split(*f1, -1) {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ssabench: invalid sparseness factor", s)
			os.Exit(2)
		}
		factors = append(factors, int(n))
	}

	maxSize := 0
	for _, n := range sizes {
		if n > maxSize {
			maxSize = n
		}
	}
	corpus, err := loadCorpus(*f2, maxSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ssabench:", err)
		os.Exit(1)
	}

	runRateBench(corpus, sizes, factors)
	if *f3 {
		runRatioBench(corpus, sizes, factors)
	}
}

// loadCorpus reads and replicates path out to n bytes via testutil.LoadFile,
// or (when path is empty) synthesizes a repetitive DNA-like sequence of the
// same length -- repetition keeps the suffix array interesting (lots of ties
// to break) without requiring a bundled test file.
func loadCorpus(path string, n int) ([]byte, error) {
	if path != "" {
		return testutil.LoadFile(path, n)
	}
	const unit = "ACGTACGGTTACGTTTACGGGTACGTACCGTA"
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(unit)
	}
	return []byte(b.String())[:n], nil
}

func slice(corpus []byte, n int) []byte {
	if n > len(corpus) {
		n = len(corpus)
	}
	return corpus[:n]
}

type rate struct {
	buildMBs       float64
	unoptimizedMBs float64
}

func runRateBench(corpus []byte, sizes, factors []int) {
	fmt.Println("BENCHMARK: construction rate (MB/s)")
	cells := [][]string{{"size", "k", "Build", "BuildUnoptimized", "speedup"}}
	for _, n := range sizes {
		input := slice(corpus, n)
		for _, k := range factors {
			cfg := ssa.Config{Sparseness: k, Mode: alphabet.DNA}
			r := benchmarkRates(input, cfg)
			speedup := r.unoptimizedMBs / r.buildMBs
			cells = append(cells, []string{
				strconv.FormatPrefix(float64(len(input)), strconv.Base1000, 3),
				fmt.Sprint(k),
				fmt.Sprintf("%.2f", r.buildMBs),
				fmt.Sprintf("%.2f", r.unoptimizedMBs),
				fmt.Sprintf("%.2fx", 1/speedup),
			})
		}
	}
	printTable(cells)
}

func benchmarkRates(input []byte, cfg ssa.Config) rate {
	var r rate
	br := testing.Benchmark(func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		runtime.GC()
		for i := 0; i < b.N; i++ {
			if _, err := ssa.Build(input, cfg); err != nil {
				b.Fatalf("Build: %v", err)
			}
		}
	})
	r.buildMBs = mbPerSec(br)

	ur := testing.Benchmark(func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		runtime.GC()
		for i := 0; i < b.N; i++ {
			if _, err := ssa.BuildUnoptimized(input, cfg); err != nil {
				b.Fatalf("BuildUnoptimized: %v", err)
			}
		}
	})
	r.unoptimizedMBs = mbPerSec(ur)
	return r
}

func mbPerSec(r testing.BenchmarkResult) float64 {
	if r.N == 0 {
		return math.NaN()
	}
	secs := r.T.Seconds() / float64(r.N)
	return float64(r.Bytes) / secs / 1e6
}

func runRatioBench(corpus []byte, sizes, factors []int) {
	fmt.Println()
	fmt.Println("BENCHMARK: bitpacked array size vs. general-purpose baselines")
	cells := [][]string{{"size", "k", "packed bytes", "flate bytes", "xz bytes"}}
	for _, n := range sizes {
		input := slice(corpus, n)
		for _, k := range factors {
			cfg := ssa.Config{Sparseness: k, Mode: alphabet.DNA}
			result, err := ssa.Build(input, cfg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "ssabench:", err)
				continue
			}

			var packed bytes.Buffer
			if err := bitpack.Pack(&packed, result.SA, k); err != nil {
				fmt.Fprintln(os.Stderr, "ssabench:", err)
				continue
			}

			flateSize := flateCompressedSize(packed.Bytes())
			xzSize := xzCompressedSize(packed.Bytes())

			cells = append(cells, []string{
				strconv.FormatPrefix(float64(len(input)), strconv.Base1000, 3),
				fmt.Sprint(k),
				fmt.Sprint(packed.Len()),
				fmt.Sprint(flateSize),
				fmt.Sprint(xzSize),
			})
		}
	}
	printTable(cells)
}

func flateCompressedSize(b []byte) int {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return -1
	}
	if _, err := zw.Write(b); err != nil {
		return -1
	}
	if err := zw.Close(); err != nil {
		return -1
	}
	return buf.Len()
}

func xzCompressedSize(b []byte) int {
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	if err != nil {
		return -1
	}
	if _, err := zw.Write(b); err != nil {
		return -1
	}
	if err := zw.Close(); err != nil {
		return -1
	}
	return buf.Len()
}

func printTable(cells [][]string) {
	maxLens := make([]int, len(cells[0]))
	for _, row := range cells {
		for i, s := range row {
			if len(s) > maxLens[i] {
				maxLens[i] = len(s)
			}
		}
	}
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			fmt.Print(s, strings.Repeat(" ", 2+maxLens[i]-len(s)))
		}
		fmt.Println()
	}
}
