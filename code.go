package bytepress

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of up to MaxCodeSize bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i of the code (counting
	// from the root of the tree, i.e. the first bit emitted) is stored in
	// bit i%64 of Bits[i/64].  Bits at or beyond Size are always zero.
	Bits [4]uint64
}

// MakeCode is a convenience function that constructs a Code from a string of
// '0' and '1' characters.
func MakeCode(s string) Code {
	assert.Assertf(len(s) <= MaxCodeSize, "len(%q) %d > MaxCodeSize %d", s, len(s), MaxCodeSize)
	var hc Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			panic(fmt.Errorf("MakeCode: invalid bit %q in %q", s[i], s))
		}
	}
	return hc
}

// Bit returns the i'th bit of the code, 0 or 1.
func (hc Code) Bit(i int) uint {
	return uint(hc.Bits[i>>6]>>(uint(i)&63)) & 1
}

// Append returns hc with one more bit added at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code is already %d bits long", hc.Size)
	i := uint(hc.Size)
	hc.Bits[i>>6] |= uint64(bit&1) << (i & 63)
	hc.Size++
	return hc
}

// Truncate returns the first n bits of hc.
func (hc Code) Truncate(n int) Code {
	if n >= int(hc.Size) {
		return hc
	}
	for i := n; i < int(hc.Size); i++ {
		hc.Bits[i>>6] &^= 1 << (uint(i) & 63)
	}
	hc.Size = byte(n)
	return hc
}

// HasPrefix returns true iff the first prefix.Size bits of hc are equal to
// prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Truncate(int(prefix.Size)) == prefix
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(int(hc.Size) + 2)
	buf.WriteByte('"')
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte('0' + byte(hc.Bit(i)))
	}
	buf.WriteByte('"')
	return buf.String()
}

var _ fmt.Stringer = Code{}
