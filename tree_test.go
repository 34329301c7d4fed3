package bytepress

import (
	"strings"
	"testing"
)

func makeFrequencies(counts ...uint64) FrequencyTable {
	var freq FrequencyTable
	copy(freq[:], counts)
	return freq
}

// makeChainTree builds the most unbalanced tree possible over all 256
// symbols: leaf k hangs at depth k+1, except leaf 255 which shares the
// deepest internal node with leaf 254.
func makeChainTree() *Tree {
	t := &Tree{numLeaves: NumSymbols}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		t.alloc(treeNode{kind: LeafNode, symbol: byte(symbol), weight: 1, left: InvalidNode, right: InvalidNode})
	}
	right := NodeID(NumSymbols - 1)
	for symbol := NumSymbols - 2; symbol >= 0; symbol-- {
		weight := t.nodes[symbol].weight + t.nodes[right].weight
		right = t.alloc(treeNode{kind: InternalNode, weight: weight, left: NodeID(symbol), right: right})
	}
	t.root = right
	return t
}

func TestCountFrequencies(t *testing.T) {
	freq := CountFrequencies([]byte{0xAA, 0x01, 0xAA, 0xFF, 0xAA})
	if freq[0xAA] != 3 || freq[0x01] != 1 || freq[0xFF] != 1 {
		t.Errorf("wrong counts: AA=%d 01=%d FF=%d", freq[0xAA], freq[0x01], freq[0xFF])
	}
	if total := freq.Total(); total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if distinct := freq.Distinct(); distinct != 3 {
		t.Errorf("expected 3 distinct symbols, got %d", distinct)
	}

	empty := CountFrequencies(nil)
	if empty.Total() != 0 || empty.Distinct() != 0 {
		t.Errorf("expected empty table, got total %d distinct %d", empty.Total(), empty.Distinct())
	}
}

func TestBuildTree(t *testing.T) {
	freq := makeFrequencies(5, 9, 12, 13, 16, 45)
	tree, ok := BuildTree(&freq)
	if !ok {
		t.Fatal("BuildTree returned no tree")
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLen() = 11\n",
		"\tNumLeaves() = 6\n",
		"\tInternal(100)\n",
		"\t\tLeaf(05, 45)\n",
		"\t\tInternal(55)\n",
		"\t\t\tInternal(25)\n",
		"\t\t\t\tLeaf(02, 12)\n",
		"\t\t\t\tLeaf(03, 13)\n",
		"\t\t\tInternal(30)\n",
		"\t\t\t\tInternal(14)\n",
		"\t\t\t\t\tLeaf(00, 5)\n",
		"\t\t\t\t\tLeaf(01, 9)\n",
		"\t\t\t\tLeaf(04, 16)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_WeightInvariant(t *testing.T) {
	freq := CountFrequencies([]byte("the quick brown fox jumps over the lazy dog"))
	tree, ok := BuildTree(&freq)
	if !ok {
		t.Fatal("BuildTree returned no tree")
	}

	if tree.NumLeaves() != freq.Distinct() {
		t.Errorf("expected %d leaves, got %d", freq.Distinct(), tree.NumLeaves())
	}
	if tree.Len() != 2*tree.NumLeaves()-1 {
		t.Errorf("expected %d nodes, got %d", 2*tree.NumLeaves()-1, tree.Len())
	}
	if tree.Weight(tree.Root()) != freq.Total() {
		t.Errorf("expected root weight %d, got %d", freq.Total(), tree.Weight(tree.Root()))
	}

	var leaves int
	for id := NodeID(0); id < NodeID(tree.Len()); id++ {
		left, right := tree.Children(id)
		switch tree.Kind(id) {
		case LeafNode:
			leaves++
			if left != InvalidNode || right != InvalidNode {
				t.Errorf("leaf %d has children %d, %d", id, left, right)
			}
			if tree.Weight(id) != freq[tree.Symbol(id)] {
				t.Errorf("leaf %d: expected weight %d, got %d", id, freq[tree.Symbol(id)], tree.Weight(id))
			}
		case InternalNode:
			if sum := tree.Weight(left) + tree.Weight(right); tree.Weight(id) != sum {
				t.Errorf("internal %d: weight %d != children sum %d", id, tree.Weight(id), sum)
			}
		}
	}
	if leaves != tree.NumLeaves() {
		t.Errorf("counted %d leaves, NumLeaves() = %d", leaves, tree.NumLeaves())
	}
}

func TestBuildTree_Empty(t *testing.T) {
	var freq FrequencyTable
	tree, ok := BuildTree(&freq)
	if ok || tree != nil {
		t.Errorf("expected no tree, got %v, %v", tree, ok)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	freq := CountFrequencies([]byte{0xAA, 0xAA, 0xAA, 0xAA})
	tree, ok := BuildTree(&freq)
	if !ok {
		t.Fatal("BuildTree returned no tree")
	}
	root := tree.Root()
	if tree.Kind(root) != LeafNode {
		t.Errorf("expected root to be a leaf, got %v", tree.Kind(root))
	}
	if tree.Symbol(root) != 0xAA || tree.Weight(root) != 4 {
		t.Errorf("expected Leaf(AA, 4), got Leaf(%02X, %d)", tree.Symbol(root), tree.Weight(root))
	}
	if tree.Len() != 1 {
		t.Errorf("expected 1 node, got %d", tree.Len())
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	// A and B merge first; the resulting internal node ties with C at
	// weight 2, and C was inserted earlier, so C is extracted first.
	freq := CountFrequencies([]byte("ABCC"))
	tree, ok := BuildTree(&freq)
	if !ok {
		t.Fatal("BuildTree returned no tree")
	}
	left, right := tree.Children(tree.Root())
	if tree.Kind(left) != LeafNode || tree.Symbol(left) != 'C' {
		t.Errorf("expected left child Leaf('C'), got %v node %d", tree.Kind(left), left)
	}
	if tree.Kind(right) != InternalNode || tree.Weight(right) != 2 {
		t.Errorf("expected right child Internal(2), got %v node %d", tree.Kind(right), right)
	}
}
