package bytepress

// EncodeRLE appends the run-length encoding of src to dst and returns the
// extended slice.  Each run of identical bytes becomes a (count, value) pair;
// runs longer than 255 are split across several pairs.  An empty src appends
// nothing.
func EncodeRLE(dst []byte, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}

	current := src[0]
	count := 1
	for _, b := range src[1:] {
		if b == current && count < maxRun {
			count++
			continue
		}
		dst = append(dst, byte(count), current)
		current = b
		count = 1
	}
	return append(dst, byte(count), current)
}
