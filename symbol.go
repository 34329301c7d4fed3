package bytepress

// NumSymbols is the size of the alphabet: every possible byte value.
const NumSymbols = 256

// MaxCodeSize is the longest code a Huffman tree over NumSymbols leaves can
// assign, reached only by a completely unbalanced tree.
const MaxCodeSize = NumSymbols - 1

// maxRun is the longest run a single RLE pair can describe.
const maxRun = 255
