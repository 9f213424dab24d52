package huffman

import (
	"testing"
)

func TestCode_Append(t *testing.T) {
	hc := Code{}
	for _, bit := range []byte{1, 0, 1, 1} {
		hc = hc.Append(bit)
	}

	expect := MakeCode(4, 0x0b)
	if hc != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, hc)
	}
}

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, expect: "\"\""},
		{size: 1, bits: 0x00, expect: "\"0\""},
		{size: 1, bits: 0x01, expect: "\"1\""},
		{size: 3, bits: 0x05, expect: "\"101\""},
		{size: 8, bits: 0x31, expect: "\"00110001\""},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		actual := hc.String()
		if actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func mustParseCode(bits string) Code {
	var hc Code
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			panic("code strings may only contain '0' and '1'")
		}
	}
	return hc
}
