package bytepress

import (
	"bytes"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Pack appends the Huffman encoding of src to dst and returns the extended
// slice.  Codes are written in input order, most significant bit first, and
// the final partial byte is padded with zero bits.
//
// Every byte of src must have a code in codes.  The output is sized exactly
// from the table before any bit is written, so codes of any length up to
// MaxCodeSize fit.
//
func Pack(dst []byte, src []byte, codes *CodeTable) []byte {
	freq := CountFrequencies(src)
	totalBits := codes.EncodedBits(&freq)
	start := len(dst)

	buf := bytes.NewBuffer(dst)
	buf.Grow(bytesForBits(totalBits))
	w := bitio.NewWriter(buf)

	for _, b := range src {
		hc := codes[b]
		assert.Assertf(hc.Size != 0, "no code for symbol %02X", b)
		writeCode(w, hc)
	}

	// bytes.Buffer never fails a write, so neither can the bit writer.
	_, err := w.Align()
	assert.Assertf(err == nil, "bitio: Align: %v", err)
	err = w.Close()
	assert.Assertf(err == nil, "bitio: Close: %v", err)

	out := buf.Bytes()
	assert.Assertf(len(out)-start == bytesForBits(totalBits), "packed %d bytes, expected %d", len(out)-start, bytesForBits(totalBits))
	return out
}

// writeCode emits hc in at most four WriteBits calls, one per 64-bit word.
// Code stores its first bit in the least significant position of each word,
// while bitio writes the most significant of the n bits first, so each word
// is bit-reversed before it is written.
func writeCode(w *bitio.Writer, hc Code) {
	remaining := int(hc.Size)
	for _, word := range hc.Bits {
		if remaining == 0 {
			break
		}
		n := remaining
		if n > 64 {
			n = 64
		}
		err := w.WriteBits(mathbits.Reverse64(word)>>(64-uint(n)), uint8(n))
		assert.Assertf(err == nil, "bitio: WriteBits: %v", err)
		remaining -= n
	}
}
