package bytepress

import (
	"fmt"
)

// DecodeHex converts a string of exactly 2*n hexadecimal digits into n raw
// bytes, high nibble first.
//
// If lenient is false, any character that is not a hex digit is rejected
// with ErrMalformedInput.  If lenient is true, such characters decode to 0.
// A length other than 2*n is always rejected.
//
func DecodeHex(s string, n int, lenient bool) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", ErrMalformedInput, n)
	}
	if len(s) != 2*n {
		return nil, fmt.Errorf("%w: expected %d hex digits for %d bytes, got %d", ErrMalformedInput, 2*n, n, len(s))
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		hi, ok := nibble(s[2*i])
		if !ok && !lenient {
			return nil, fmt.Errorf("%w: invalid hex digit %q at offset %d", ErrMalformedInput, s[2*i], 2*i)
		}
		lo, ok := nibble(s[2*i+1])
		if !ok && !lenient {
			return nil, fmt.Errorf("%w: invalid hex digit %q at offset %d", ErrMalformedInput, s[2*i+1], 2*i+1)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// EncodeHex renders buf as uppercase hex, two digits per byte.
func EncodeHex(buf []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 2*len(buf))
	for i, b := range buf {
		out[2*i] = digits[b>>4]
		out[2*i+1] = digits[b&0x0f]
	}
	return string(out)
}

func nibble(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	default:
		return 0, false
	}
}
