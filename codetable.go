package bytepress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Traversal selects how GenerateCodes walks a Tree.
type Traversal byte

const (
	// StackTraversal walks the tree with an explicit, growable stack.
	StackTraversal Traversal = iota

	// RecursiveTraversal walks the tree by recursion.
	RecursiveTraversal
)

// String returns the string representation of this Traversal.
func (tr Traversal) String() string {
	switch tr {
	case StackTraversal:
		return "stack"
	case RecursiveTraversal:
		return "recursive"
	default:
		return fmt.Sprintf("Traversal(%d)", byte(tr))
	}
}

// Generate builds the CodeTable for t using this traversal.
func (tr Traversal) Generate(t *Tree) CodeTable {
	if tr == RecursiveTraversal {
		return GenerateCodesRecursive(t)
	}
	return GenerateCodes(t)
}

var _ fmt.Stringer = Traversal(0)

// CodeTable maps each symbol to its Huffman code.  Symbols that did not
// occur in the input have a zero-Size code.
type CodeTable [NumSymbols]Code

// singleLeafCode is assigned when the tree is a lone leaf.  A zero-length
// code cannot be packed, so the lone symbol gets the 1-bit code "0".
var singleLeafCode = MakeCode("0")

// GenerateCodes assigns a code to every leaf of t: '0' for each descent to a
// left child and '1' for each descent to a right child.  The walk uses an
// explicit stack that starts with room for twice the node count and grows as
// needed, so no tree shape can overflow it.
//
func GenerateCodes(t *Tree) CodeTable {
	var codes CodeTable
	root := t.Root()
	if t.Kind(root) == LeafNode {
		codes[t.Symbol(root)] = singleLeafCode
		return codes
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed.  The stack depth at the moment a
	// child is processed is that child's depth, and path holds the bits
	// leading to it.

	type stackItem struct {
		id NodeID
		x  byte
	}

	stack := make([]stackItem, 0, 2*t.Len())
	var path Code

	processChild := func(child NodeID, bit uint) {
		depth := len(stack)
		assert.Assertf(depth <= MaxCodeSize, "tree depth %d > MaxCodeSize %d", depth, MaxCodeSize)
		path = path.Truncate(depth - 1).Append(bit)
		if t.Kind(child) == InternalNode {
			stack = append(stack, stackItem{id: child})
			return
		}
		codes[t.Symbol(child)] = path
	}

	// And now the tree-walking loop.
	stack = append(stack, stackItem{id: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		left, right := t.Children(top.id)
		switch x {
		case 0:
			processChild(left, 0)
		case 1:
			processChild(right, 1)
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return codes
}

// GenerateCodesRecursive produces the same CodeTable as GenerateCodes using
// plain recursion.  The recursion depth is bounded by MaxCodeSize.
func GenerateCodesRecursive(t *Tree) CodeTable {
	var codes CodeTable
	root := t.Root()
	if t.Kind(root) == LeafNode {
		codes[t.Symbol(root)] = singleLeafCode
		return codes
	}
	assignCodes(t, root, Code{}, &codes)
	return codes
}

func assignCodes(t *Tree, id NodeID, path Code, codes *CodeTable) {
	if t.Kind(id) == LeafNode {
		codes[t.Symbol(id)] = path
		return
	}
	left, right := t.Children(id)
	assignCodes(t, left, path.Append(0), codes)
	assignCodes(t, right, path.Append(1), codes)
}

// Lookup returns the code for a symbol.
func (codes *CodeTable) Lookup(symbol byte) Code {
	return codes[symbol]
}

// EncodedBits returns the exact number of bits needed to encode a buffer
// with the given frequencies, i.e. the sum of code size times frequency.
func (codes *CodeTable) EncodedBits(freq *FrequencyTable) uint64 {
	var bits uint64
	for symbol, n := range freq {
		bits += uint64(codes[symbol].Size) * n
	}
	return bits
}

// PrefixFree returns true iff no assigned code is a prefix of another.
func (codes *CodeTable) PrefixFree() bool {
	for i := range codes {
		if codes[i].Size == 0 {
			continue
		}
		for j := range codes {
			if i == j || codes[j].Size == 0 {
				continue
			}
			if codes[j].HasPrefix(codes[i]) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols without a code are omitted.
func (codes *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := range codes {
		if hc := codes[symbol]; hc.Size != 0 {
			fmt.Fprintf(&buf, "\tLookup(%02X) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
