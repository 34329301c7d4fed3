// bytepress compares Huffman and run-length compression of hex byte
// sequences and reports the smaller encoding of each.
//
// Usage:
//
//	bytepress [options] inputfile outputfile
//
// Options:
//
//	-lenient        Decode non-hex digits as 0 instead of rejecting the sequence
//	-recursive      Generate Huffman codes by recursion instead of an explicit stack
//	-max-bytes N    Reject sequences declaring more than N bytes (default 1048576)
//	-baseline       Log flate/zstd/snappy/lz4/brotli sizes for every sequence
//	-v              Verbose output
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chronos-tachyon/bytepress"
	"github.com/chronos-tachyon/bytepress/baseline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("bytepress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		lenient   = fs.Bool("lenient", false, "Decode non-hex digits as 0")
		recursive = fs.Bool("recursive", false, "Generate codes by recursion")
		maxBytes  = fs.Int("max-bytes", bytepress.DefaultMaxSequenceBytes, "Maximum declared bytes per sequence (negative for no limit)")
		baselines = fs.Bool("baseline", false, "Log sizes from general-purpose compressors")
		verbose   = fs.Bool("v", false, "Verbose output")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: bytepress [options] inputfile outputfile")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}

	logger := log.New(stderr, "bytepress: ", 0)

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		logger.Print(err)
		return 1
	}
	defer in.Close()

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		logger.Print(err)
		return 1
	}

	opts := bytepress.Options{
		Lenient:          *lenient,
		MaxSequenceBytes: *maxBytes,
		Verbose:          *verbose,
		Logger:           logger,
	}
	if *recursive {
		opts.Traversal = bytepress.RecursiveTraversal
	}
	if *baselines {
		opts.Baselines = baseline.Default()
	}

	stats, err := bytepress.Process(in, out, opts)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Print(err)
		return 1
	}

	if *verbose {
		logger.Printf("%d sequences, %d lines written, %d failed", stats.Sequences, stats.Lines, stats.Failed)
	}
	return 0
}
