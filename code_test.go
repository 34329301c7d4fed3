package bytepress

import (
	"strings"
	"testing"
)

func TestCode(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{"", "\"\""},
		{"0", "\"0\""},
		{"1", "\"1\""},
		{"0110", "\"0110\""},
		{strings.Repeat("10", 40), "\"" + strings.Repeat("10", 40) + "\""},
		{strings.Repeat("1", MaxCodeSize), "\"" + strings.Repeat("1", MaxCodeSize) + "\""},
	}
	for _, row := range testData {
		hc := MakeCode(row.input)
		t.Run(hc.String(), func(t *testing.T) {
			if int(hc.Size) != len(row.input) {
				t.Errorf("expected size %d, got %d", len(row.input), hc.Size)
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_Truncate(t *testing.T) {
	hc := MakeCode("1011" + strings.Repeat("1", 100))
	if actual := hc.Truncate(3); actual != MakeCode("101") {
		t.Errorf("expected \"101\", got %s", actual)
	}
	if actual := hc.Truncate(0); actual != (Code{}) {
		t.Errorf("expected empty code, got %s", actual)
	}
	if actual := hc.Truncate(200); actual != hc {
		t.Errorf("expected %s unchanged, got %s", hc, actual)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{"0", "", true},
		{"0", "0", true},
		{"0", "1", false},
		{"0", "00", false},
		{"1101", "11", true},
		{"1101", "10", false},
		{strings.Repeat("1", 70) + "0", strings.Repeat("1", 70), true},
		{strings.Repeat("1", 70) + "0", strings.Repeat("1", 69) + "0", false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			actual := MakeCode(row.code).HasPrefix(MakeCode(row.prefix))
			if actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
