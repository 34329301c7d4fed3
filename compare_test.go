package bytepress

import (
	"bytes"
	"strings"
	"testing"
)

func compareLines(index int, src []byte) string {
	cmp := Compare(src, HuffmanCodec{}, RLECodec{})
	var buf strings.Builder
	for _, line := range cmp.Lines(index) {
		buf.WriteString(line.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}

func TestCompare(t *testing.T) {
	type testRow struct {
		name   string
		index  int
		input  []byte
		expect string
	}

	testData := [...]testRow{
		{
			name:   "single-symbol",
			index:  0,
			input:  []byte{0xAA, 0xAA, 0xAA, 0xAA},
			expect: "0->HUF(25.00%)=00\n",
		},
		{
			name:   "one-byte",
			index:  1,
			input:  []byte{0xFF},
			expect: "1->HUF(100.00%)=00\n",
		},
		{
			name:   "empty",
			index:  2,
			input:  []byte{},
			expect: "2->HUF(0.00%)=\n2->RLE(0.00%)=\n",
		},
		{
			name:   "tie",
			index:  3,
			input:  bytes.Repeat([]byte{0xAA}, 9),
			expect: "3->HUF(22.22%)=0000\n3->RLE(22.22%)=09AA\n",
		},
		{
			name:   "long-run",
			index:  4,
			input:  bytes.Repeat([]byte{0x00}, 255),
			expect: "4->RLE(0.78%)=FF00\n",
		},
		{
			name:   "varied",
			index:  5,
			input:  []byte("ABAC"),
			expect: "5->HUF(25.00%)=4C\n",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := compareLines(row.index, row.input)
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCompare_Idempotent(t *testing.T) {
	input := []byte("abracadabra, abracadabra")
	first := Compare(input, HuffmanCodec{}, RLECodec{})
	second := Compare(input, HuffmanCodec{Traversal: RecursiveTraversal}, RLECodec{})

	if first.Huffman.Size() != second.Huffman.Size() || first.RLE.Size() != second.RLE.Size() {
		t.Errorf("sizes differ: %v %v vs %v %v", first.Huffman, first.RLE, second.Huffman, second.RLE)
	}
	a, b := first.Winners(), second.Winners()
	if len(a) != len(b) {
		t.Fatalf("winner count differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Method != b[i].Method {
			t.Errorf("winner %d differs: %s vs %s", i, a[i].Method, b[i].Method)
		}
	}
}

func TestRatio(t *testing.T) {
	type testRow struct {
		original   int
		compressed int
		expect     float64
	}

	testData := [...]testRow{
		{0, 0, 0},
		{0, 5, 0},
		{4, 1, 25},
		{1, 2, 200},
		{8, 8, 100},
	}
	for _, row := range testData {
		if actual := Ratio(row.original, row.compressed); actual != row.expect {
			t.Errorf("Ratio(%d, %d): expected %v, got %v", row.original, row.compressed, row.expect, actual)
		}
	}
}
