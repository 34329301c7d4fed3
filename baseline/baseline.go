// Package baseline measures how general-purpose compressors fare on the same
// buffers bytepress compares, so that the Huffman and RLE ratios can be put
// in context.  Only sizes are reported; nothing is ever decompressed.
package baseline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pierrec/xxHash/xxHash32"
)

// A Sizer reports the compressed size of a buffer under one codec.
type Sizer interface {
	// Name returns a short lowercase identifier for the codec.
	Name() string

	// Size returns the number of bytes src compresses to.
	Size(src []byte) (int, error)
}

// Measurement is the result of one Sizer on one buffer.
type Measurement struct {
	Name string
	Size int
}

// Default returns one Sizer for each supported codec, each tuned for ratio
// rather than speed.
func Default() []Sizer {
	return []Sizer{
		Flate{},
		&Zstd{},
		Snappy{},
		LZ4{},
		Brotli{},
	}
}

// Measure runs every sizer over src.
func Measure(sizers []Sizer, src []byte) ([]Measurement, error) {
	out := make([]Measurement, 0, len(sizers))
	for _, s := range sizers {
		n, err := s.Size(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		out = append(out, Measurement{Name: s.Name(), Size: n})
	}
	return out, nil
}

// Format renders measurements as "name=size(ratio%)" pairs separated by
// spaces, with ratios relative to original.
func Format(measurements []Measurement, original int) string {
	var buf strings.Builder
	for i, m := range measurements {
		if i > 0 {
			buf.WriteByte(' ')
		}
		var ratio float64
		if original != 0 {
			ratio = 100 * float64(m.Size) / float64(original)
		}
		fmt.Fprintf(&buf, "%s=%d(%.2f%%)", m.Name, m.Size, ratio)
	}
	return buf.String()
}

// Digest returns the xxHash32 checksum of src with seed 0.  It identifies a
// sequence in the logs independently of its position in the input.
func Digest(src []byte) uint32 {
	return xxHash32.Checksum(src, 0)
}

// Flate measures DEFLATE (RFC 1951) output.
type Flate struct{}

func (Flate) Name() string { return "flate" }

func (Flate) Size(src []byte) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(src); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// Zstd measures a single Zstandard frame.  The encoder is created on first
// use and reused afterwards; it is not safe for concurrent use.
type Zstd struct {
	enc *zstd.Encoder
}

func (*Zstd) Name() string { return "zstd" }

func (z *Zstd) Size(src []byte) (int, error) {
	if z.enc == nil {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderConcurrency(1))
		if err != nil {
			return 0, err
		}
		z.enc = enc
	}
	return len(z.enc.EncodeAll(src, nil)), nil
}

// Snappy measures the Snappy block format.
type Snappy struct{}

func (Snappy) Name() string { return "snappy" }

func (Snappy) Size(src []byte) (int, error) {
	return len(snappy.Encode(nil, src)), nil
}

// LZ4 measures the LZ4 block format.  Blocks LZ4 cannot shrink are counted
// at their original size, as a container would store them uncompressed.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Size(src []byte) (int, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return len(src), nil
	}
	return n, nil
}

// Brotli measures Brotli output.
type Brotli struct{}

func (Brotli) Name() string { return "brotli" }

func (Brotli) Size(src []byte) (int, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(src); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

var (
	_ Sizer = Flate{}
	_ Sizer = (*Zstd)(nil)
	_ Sizer = Snappy{}
	_ Sizer = LZ4{}
	_ Sizer = Brotli{}
)
