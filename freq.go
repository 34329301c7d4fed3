package bytepress

// FrequencyTable holds the number of occurrences of each byte value within a
// single buffer.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies tallies every byte of buf.
func CountFrequencies(buf []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range buf {
		freq[b]++
	}
	return freq
}

// Total returns the sum of all counts, which equals the length of the buffer
// the table was built from.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}

// Distinct returns the number of byte values with a nonzero count.
func (freq *FrequencyTable) Distinct() int {
	var count int
	for _, n := range freq {
		if n != 0 {
			count++
		}
	}
	return count
}
