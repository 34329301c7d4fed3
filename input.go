package bytepress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Sequence is one declared byte sequence from the input file, not yet
// decoded.
type Sequence struct {
	// Index is the zero-based position of the sequence in the file.
	Index int

	// Declared is the byte count announced on the sequence's count line.
	Declared int

	// Hex holds the data line with all whitespace removed.
	Hex string
}

// SequenceReader reads the input format:
//
//     <number of sequences>
//     <byte count 0>
//     <space-separated hex bytes>
//     <byte count 1>
//     ...
//
// A sequence with a byte count of 0 may be followed by an empty data line.
//
type SequenceReader struct {
	r        *bufio.Reader
	maxBytes int
	count    int
	next     int
	pending  *boundedLine
}

// NewSequenceReader reads the leading sequence count from r.  Sequences that
// declare more than maxBytes bytes are rejected with ErrAllocation; a
// maxBytes of 0 or less means no limit.
func NewSequenceReader(r io.Reader, maxBytes int) (*SequenceReader, error) {
	sr := &SequenceReader{r: bufio.NewReader(r), maxBytes: maxBytes}
	count, err := sr.readCount("sequence count")
	if err != nil {
		return nil, err
	}
	sr.count = count
	return sr, nil
}

// Count returns the number of sequences declared by the input.
func (sr *SequenceReader) Count() int {
	return sr.count
}

// Next returns the next sequence, or io.EOF once every declared sequence has
// been read.
//
// A *SequenceError is terminal for that sequence only, and the reader is
// positioned at the following sequence.  Any other error is fatal.
//
// At most dataLineLimit(declared) bytes of a data line are kept in memory.
// The rest of an overlong line, and the whole line of a sequence declaring
// more than the allocation limit, is discarded as it is read.
//
func (sr *SequenceReader) Next() (Sequence, error) {
	if sr.next >= sr.count {
		return Sequence{}, io.EOF
	}
	index := sr.next

	declared, err := sr.readCount(fmt.Sprintf("byte count of sequence %d", index))
	if err != nil {
		return Sequence{}, err
	}
	sr.next++

	seq := Sequence{Index: index, Declared: declared}
	if declared == 0 {
		// The data line is optional here: consume it only if it is blank.
		line, err := sr.peekLine()
		if err == nil && !line.over && strings.TrimSpace(line.text) == "" {
			sr.pending = nil
		}
		return seq, nil
	}

	tooLarge := sr.maxBytes > 0 && declared > sr.maxBytes
	limit := dataLineLimit(declared)
	if tooLarge {
		limit = 0
	}

	line, err := sr.readLine(limit)
	if err == io.EOF {
		return Sequence{}, fmt.Errorf("%w: missing data line for sequence %d", ErrTruncatedInput, index)
	}
	if err != nil {
		return Sequence{}, err
	}

	if tooLarge {
		return seq, &SequenceError{
			Index: index,
			Err:   fmt.Errorf("%w: %d bytes declared, limit is %d", ErrAllocation, declared, sr.maxBytes),
		}
	}
	if line.over {
		return seq, &SequenceError{
			Index: index,
			Err:   fmt.Errorf("%w: data line longer than %d bytes for %d declared bytes", ErrMalformedInput, limit, declared),
		}
	}
	seq.Hex = stripSpace(line.text)
	return seq, nil
}

// dataLineLimit is the longest data line accepted for n declared bytes: two
// digits and a separator per byte, plus room for a trailing CR.
func dataLineLimit(n int) int {
	if n > (math.MaxInt-4)/3 {
		// Keep limit+2 in readBoundedLine from overflowing.
		return math.MaxInt - 2
	}
	return 3*n + 2
}

// countLineLimit is the longest count line accepted.
const countLineLimit = 64

// readCount reads the next non-blank line and parses it as a non-negative
// integer.
func (sr *SequenceReader) readCount(what string) (int, error) {
	for {
		line, err := sr.readLine(countLineLimit)
		if err == io.EOF {
			return 0, fmt.Errorf("%w: missing %s", ErrTruncatedInput, what)
		}
		if err != nil {
			return 0, err
		}
		text := strings.TrimSpace(line.text)
		if line.over {
			return 0, fmt.Errorf("%w: %s longer than %d bytes", ErrMalformedInput, what, countLineLimit)
		}
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: invalid %s %q", ErrMalformedInput, what, text)
		}
		return n, nil
	}
}

// boundedLine is one input line with the line terminator removed.  If over
// is true, the line was longer than the limit it was read with and text
// holds only a prefix of it.
type boundedLine struct {
	text string
	over bool
}

func (sr *SequenceReader) peekLine() (boundedLine, error) {
	if sr.pending != nil {
		return *sr.pending, nil
	}
	line, err := sr.readBoundedLine(countLineLimit)
	if err != nil {
		return boundedLine{}, err
	}
	sr.pending = &line
	return line, nil
}

func (sr *SequenceReader) readLine(limit int) (boundedLine, error) {
	if sr.pending != nil {
		line := *sr.pending
		sr.pending = nil
		if len(line.text) > limit {
			line.text, line.over = line.text[:limit], true
		}
		return line, nil
	}
	return sr.readBoundedLine(limit)
}

// readBoundedLine reads through the next newline, keeping at most limit
// bytes of the line.  Anything past the limit is read and dropped.
func (sr *SequenceReader) readBoundedLine(limit int) (boundedLine, error) {
	var kept []byte
	var total int
	var over bool
	for {
		chunk, err := sr.r.ReadSlice('\n')
		total += len(chunk)
		if !over {
			// Allow two extra bytes for the CR LF that is trimmed below.
			if room := limit + 2 - len(kept); len(chunk) <= room {
				kept = append(kept, chunk...)
			} else {
				kept = append(kept, chunk[:room]...)
				over = true
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if errors.Is(err, io.EOF) {
			if total == 0 {
				return boundedLine{}, io.EOF
			}
			err = nil
		}
		if err != nil {
			return boundedLine{}, err
		}
		break
	}

	text := strings.TrimRight(string(kept), "\r\n")
	if len(text) > limit {
		text, over = text[:limit], true
	}
	return boundedLine{text: text, over: over}, nil
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
