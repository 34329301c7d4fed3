package bytepress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/chronos-tachyon/assert"
	"github.com/chronos-tachyon/bytepress/baseline"
)

// DefaultMaxSequenceBytes is the per-sequence size limit used when
// Options.MaxSequenceBytes is zero.
const DefaultMaxSequenceBytes = 1 << 20

// Options configures Process.  The zero value is ready to use.
type Options struct {
	// Lenient makes non-hex digits decode to 0 instead of failing the
	// sequence.
	Lenient bool

	// Traversal selects how Huffman codes are read off the tree.
	Traversal Traversal

	// MaxSequenceBytes bounds the declared size of a single sequence.
	// Zero means DefaultMaxSequenceBytes; negative means no limit.
	MaxSequenceBytes int

	// Baselines, if non-empty, are measured against every decoded
	// sequence and logged.  They never affect the report.
	Baselines []baseline.Sizer

	// Verbose logs per-sequence sizes.
	Verbose bool

	// Logger receives diagnostics.  Nil discards them.
	Logger *log.Logger
}

// Stats summarizes a call to Process.
type Stats struct {
	// Sequences is the number of sequences read, including failed ones.
	Sequences int

	// Lines is the number of report lines written.
	Lines int

	// Failed is the number of sequences that produced no report line.
	Failed int
}

// Process reads sequences from r, compares the Huffman and RLE codecs on
// each, and writes the report to w.
//
// Errors confined to one sequence are logged and counted in Stats.Failed,
// and processing continues.  Errors in the leading counts, truncated input,
// and write errors are returned.
//
func Process(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	var stats Stats

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	maxBytes := opts.MaxSequenceBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxSequenceBytes
	}

	sr, err := NewSequenceReader(r, maxBytes)
	if err != nil {
		return stats, err
	}

	bw := bufio.NewWriter(w)
	huf := HuffmanCodec{Traversal: opts.Traversal}
	rle := RLECodec{}

	for {
		seq, err := sr.Next()
		if err == io.EOF {
			break
		}
		var seqErr *SequenceError
		if errors.As(err, &seqErr) {
			stats.Sequences++
			stats.Failed++
			logger.Printf("skipping %v", seqErr)
			continue
		}
		if err != nil {
			// Keep the lines already produced for earlier sequences.
			if ferr := bw.Flush(); ferr != nil {
				err = errors.Join(err, fmt.Errorf("flushing report: %w", ferr))
			}
			return stats, err
		}
		stats.Sequences++

		buf, err := DecodeHex(seq.Hex, seq.Declared, opts.Lenient)
		if err != nil {
			stats.Failed++
			logger.Printf("skipping %v", &SequenceError{Index: seq.Index, Err: err})
			continue
		}

		cmp := Compare(buf, huf, rle)
		if opts.Verbose {
			logger.Printf("sequence %d: %d bytes, HUF=%d RLE=%d", seq.Index, cmp.Original, cmp.Huffman.Size(), cmp.RLE.Size())
		}
		if len(opts.Baselines) != 0 {
			logBaselines(logger, seq.Index, buf, opts.Baselines)
		}

		for _, line := range cmp.Lines(seq.Index) {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return stats, fmt.Errorf("writing report for sequence %d after %d lines: %w", seq.Index, stats.Lines, err)
			}
			stats.Lines++
		}
	}

	assert.Assertf(stats.Sequences == sr.Count(), "read %d of %d sequences", stats.Sequences, sr.Count())
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("flushing report after %d lines: %w", stats.Lines, err)
	}
	return stats, nil
}

func logBaselines(logger *log.Logger, index int, buf []byte, sizers []baseline.Sizer) {
	measurements, err := baseline.Measure(sizers, buf)
	if err != nil {
		logger.Printf("sequence %d: baseline: %v", index, err)
		return
	}
	logger.Printf("sequence %d: xxh32=%08x %s", index, baseline.Digest(buf), baseline.Format(measurements, len(buf)))
}
