package bytepress

import (
	"fmt"
)

// Ratio returns compressed as a percentage of original.  A zero-length
// original has a ratio of 0.
func Ratio(original int, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return 100 * float64(compressed) / float64(original)
}

// Comparison holds the outputs of the Huffman and RLE codecs for the same
// buffer.
type Comparison struct {
	Original int
	Huffman  Result
	RLE      Result
}

// Compare runs both codecs over src.
func Compare(src []byte, huf Codec, rle Codec) Comparison {
	return Comparison{
		Original: len(src),
		Huffman:  Run(huf, src),
		RLE:      Run(rle, src),
	}
}

// Winners returns the result with the strictly smaller size, or both
// (Huffman first) when the sizes are equal.
func (c Comparison) Winners() []Result {
	switch {
	case c.Huffman.Size() < c.RLE.Size():
		return []Result{c.Huffman}
	case c.RLE.Size() < c.Huffman.Size():
		return []Result{c.RLE}
	default:
		return []Result{c.Huffman, c.RLE}
	}
}

// Lines renders the winners as report lines for the sequence at index.
func (c Comparison) Lines(index int) []Line {
	winners := c.Winners()
	lines := make([]Line, len(winners))
	for i, r := range winners {
		lines[i] = Line{
			Index:  index,
			Method: r.Method,
			Ratio:  Ratio(c.Original, r.Size()),
			Hex:    r.Hex(),
		}
	}
	return lines
}

// Line is one line of the report.
type Line struct {
	Index  int
	Method Method
	Ratio  float64
	Hex    string
}

// String renders the line as "<index>-><METHOD>(<ratio>%)=<HEX>", without a
// trailing newline.
func (l Line) String() string {
	return fmt.Sprintf("%d->%s(%.2f%%)=%s", l.Index, l.Method, l.Ratio, l.Hex)
}

var _ fmt.Stringer = Line{}
