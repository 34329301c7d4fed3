package bytepress

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within a Tree.
type NodeID int32

// InvalidNode is returned by some methods to clearly indicate that no node is
// being returned.
const InvalidNode = NodeID(-1)

// NodeKind distinguishes the two node variants of a Huffman tree.
type NodeKind byte

const (
	// LeafNode carries a symbol and its weight.
	LeafNode NodeKind = iota

	// InternalNode carries a weight and exactly two children.
	InternalNode
)

// String returns the string representation of this NodeKind.
func (kind NodeKind) String() string {
	switch kind {
	case LeafNode:
		return "Leaf"
	case InternalNode:
		return "Internal"
	default:
		return fmt.Sprintf("NodeKind(%d)", byte(kind))
	}
}

var _ fmt.Stringer = NodeKind(0)

type treeNode struct {
	kind   NodeKind
	symbol byte
	weight uint64
	left   NodeID
	right  NodeID
}

// Tree is a Huffman code tree.  Nodes live in a single arena owned by the
// Tree and refer to their children by NodeID, so every internal node owns its
// two children exclusively and the structure is acyclic by construction.
type Tree struct {
	nodes     []treeNode
	root      NodeID
	numLeaves int
}

// BuildTree builds a Huffman tree from the given frequency table.  It returns
// false if every count in the table is zero, in which case no tree exists.
//
// Leaves are created in ascending symbol order.  The two lowest-weight nodes
// are repeatedly combined into an internal node whose left child is the first
// node extracted and whose right child is the second.  Nodes of equal weight
// are extracted in insertion order.
//
func BuildTree(freq *FrequencyTable) (*Tree, bool) {
	numLeaves := freq.Distinct()
	if numLeaves == 0 {
		return nil, false
	}

	// A tree with n leaves has exactly n-1 internal nodes.
	t := &Tree{
		nodes:     make([]treeNode, 0, 2*numLeaves-1),
		root:      InvalidNode,
		numLeaves: numLeaves,
	}

	h := nodeHeap{tree: t, list: make([]NodeID, 0, numLeaves)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if weight := freq[symbol]; weight != 0 {
			id := t.alloc(treeNode{kind: LeafNode, symbol: byte(symbol), weight: weight, left: InvalidNode, right: InvalidNode})
			h.list = append(h.list, id)
		}
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)
		sum := t.nodes[a].weight + t.nodes[b].weight
		assert.Assertf(sum >= t.nodes[a].weight, "weight overflow combining nodes %d and %d", a, b)
		id := t.alloc(treeNode{kind: InternalNode, weight: sum, left: a, right: b})
		heap.Push(&h, id)
	}

	t.root = heap.Pop(&h).(NodeID)
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(t.nodes), numLeaves)
	assert.Assertf(t.nodes[t.root].weight == freq.Total(), "root weight %d != total %d", t.nodes[t.root].weight, freq.Total())
	return t, true
}

func (t *Tree) alloc(node treeNode) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node)
	return id
}

// Root returns the root node of the tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, which equals the number of distinct
// symbols in the frequency table the tree was built from.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Kind returns whether the given node is a leaf or an internal node.
func (t *Tree) Kind(id NodeID) NodeKind {
	return t.nodes[id].kind
}

// Symbol returns the symbol of a leaf node.
func (t *Tree) Symbol(id NodeID) byte {
	node := &t.nodes[id]
	assert.Assertf(node.kind == LeafNode, "Symbol called on %v node %d", node.kind, id)
	return node.symbol
}

// Weight returns the weight of any node.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.nodes[id].weight
}

// Children returns the children of an internal node, or (InvalidNode,
// InvalidNode) for a leaf.
func (t *Tree) Children(id NodeID) (left NodeID, right NodeID) {
	node := &t.nodes[id]
	return node.left, node.right
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in pre-order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.nodes))
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	t.dumpNode(&buf, t.root, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) dumpNode(buf *bytes.Buffer, id NodeID, depth int) {
	node := &t.nodes[id]
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if node.kind == LeafNode {
		fmt.Fprintf(buf, "Leaf(%02X, %d)\n", node.symbol, node.weight)
		return
	}
	fmt.Fprintf(buf, "Internal(%d)\n", node.weight)
	t.dumpNode(buf, node.left, depth+1)
	t.dumpNode(buf, node.right, depth+1)
}

// type nodeHeap {{{

// nodeHeap is a min-heap of node handles ordered by weight.  Because nodes
// are allocated in insertion order, NodeID doubles as the insertion sequence
// number used to break ties.
type nodeHeap struct {
	tree *Tree
	list []NodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	wa, wb := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
