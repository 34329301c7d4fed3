package bytepress

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports a count, hex digit, or line length that does
	// not fit the input format.
	ErrMalformedInput = errors.New("bytepress: malformed input")

	// ErrTruncatedInput reports input that ends before every declared
	// sequence has been read.
	ErrTruncatedInput = errors.New("bytepress: input ended before all sequences were read")

	// ErrAllocation reports a sequence that declares more bytes than the
	// configured limit.
	ErrAllocation = errors.New("bytepress: sequence exceeds allocation limit")

	// ErrEmptyInput reports that a buffer has no bytes and therefore no
	// Huffman tree.
	ErrEmptyInput = errors.New("bytepress: empty input")
)

// SequenceError reports a failure that is terminal for one input sequence
// only.  Processing continues with the next sequence.
type SequenceError struct {
	Index int
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("sequence %d: %v", e.Index, e.Err)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}
