// Package bytepress measures how well two simple codecs compress small byte
// sequences: a Huffman code built from the sequence's own byte frequencies,
// and a run-length code of (count, value) pairs.  For every sequence the
// smaller encoding is reported, or both when their sizes are equal.
//
// The package never decompresses.  It is a rate-comparison instrument.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Run-length_encoding>
//
package bytepress
