package bytepress

import (
	"fmt"
)

// Method names a codec in the report.
type Method string

const (
	MethodHuffman Method = "HUF"
	MethodRLE     Method = "RLE"
)

// A Codec compresses a whole buffer in one call.
type Codec interface {
	// Method returns the tag that identifies this codec in the report.
	Method() Method

	// Encode appends the compressed form of src to dst, and returns dst.
	Encode(dst []byte, src []byte) []byte
}

// Result is the output of one codec for one buffer.
type Result struct {
	Method Method
	Data   []byte
}

// Size returns the compressed size in bytes.
func (r Result) Size() int {
	return len(r.Data)
}

// Hex returns the compressed bytes as uppercase hex.
func (r Result) Hex() string {
	return EncodeHex(r.Data)
}

// String returns the string representation of this Result.
func (r Result) String() string {
	return fmt.Sprintf("%s[%d]=%s", r.Method, r.Size(), r.Hex())
}

var _ fmt.Stringer = Result{}

// Run encodes src with c and wraps the output in a Result.
func Run(c Codec, src []byte) Result {
	return Result{Method: c.Method(), Data: c.Encode(nil, src)}
}

// HuffmanCodec encodes a buffer with a Huffman code derived from that same
// buffer's byte frequencies.  The code table itself is not emitted.
type HuffmanCodec struct {
	// Traversal selects how codes are read off the tree.
	Traversal Traversal
}

// Method implements Codec.
func (HuffmanCodec) Method() Method {
	return MethodHuffman
}

// Encode implements Codec.  An empty src has no tree and appends nothing.
func (c HuffmanCodec) Encode(dst []byte, src []byte) []byte {
	codes, err := c.Codes(src)
	if err != nil {
		return dst
	}
	return Pack(dst, src, &codes)
}

// Codes builds the code table Encode would use for src.  It returns
// ErrEmptyInput if src is empty.
func (c HuffmanCodec) Codes(src []byte) (CodeTable, error) {
	freq := CountFrequencies(src)
	t, ok := BuildTree(&freq)
	if !ok {
		return CodeTable{}, ErrEmptyInput
	}
	return c.Traversal.Generate(t), nil
}

var _ Codec = HuffmanCodec{}

// RLECodec encodes a buffer as (count, value) pairs.
type RLECodec struct{}

// Method implements Codec.
func (RLECodec) Method() Method {
	return MethodRLE
}

// Encode implements Codec.
func (RLECodec) Encode(dst []byte, src []byte) []byte {
	return EncodeRLE(dst, src)
}

var _ Codec = RLECodec{}
