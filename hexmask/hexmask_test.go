package hexmask

import "testing"

func TestParsePlain(t *testing.T) {
	bs, err := Parse("9f3602002a", '*')
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	raw, ok := bs.Raw()
	if !ok {
		t.Fatalf("unexpected masking")
	}
	want := []byte{0x9F, 0x36, 0x02, 0x00, 0x2A}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("byte %d: got 0x%02X want 0x%02X", i, raw[i], want[i])
		}
	}
}

func TestParseWhitespaceAndPrefix(t *testing.T) {
	bs, err := Parse("0x9F 0x36\n02 2a", '*')
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if bs.Hex() != "9F36022A" {
		t.Fatalf("got %s", bs.Hex())
	}
}

func TestParseMask(t *testing.T) {
	bs, err := Parse("5A*4", '*')
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(bs) != 2 {
		t.Fatalf("got %d bytes", len(bs))
	}
	if !bs[1].Hi.Masked() || bs[1].Lo.Masked() {
		t.Fatalf("masking wrong: %+v", bs[1])
	}
	if bs.Hex() != "5A?4" {
		t.Fatalf("hex: got %s", bs.Hex())
	}
}

func TestParseCustomMaskRune(t *testing.T) {
	bs, err := Parse("F#", '#')
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !bs[0].Lo.Masked() {
		t.Fatalf("custom mask rune ignored")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("5A9", '*'); err == nil {
		t.Fatalf("odd digit count accepted")
	}
	if _, err := Parse("5G", '*'); err == nil {
		t.Fatalf("invalid character accepted")
	}
}

func TestParseEmpty(t *testing.T) {
	bs, err := Parse("", '*')
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(bs) != 0 {
		t.Fatalf("got %d bytes", len(bs))
	}
	if bs.Masked() {
		t.Fatalf("empty input masked")
	}
}
