package tlv

import (
	"bytes"
	"testing"

	"github.com/emvscope/emvscope"
)

func TestParseFixedTagBasic(t *testing.T) {
	in := []byte{
		0x9F, 0x36, 0x02, 0x00, 0x2A,
		0xDF, 0x01, 0x01, 0xFF,
	}
	nodes, err := ParseFixedTag(emvscope.FromRaw(in))
	if err != nil {
		t.Fatalf("ParseFixedTag failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[0].TagHex() != "9F36" || nodes[1].TagHex() != "DF01" {
		t.Fatalf("tags: %s, %s", nodes[0].TagHex(), nodes[1].TagHex())
	}
	raw, _ := nodes[1].Value.Raw()
	if !bytes.Equal(raw, []byte{0xFF}) {
		t.Fatalf("payload: got % X", raw)
	}
}

func TestParseFixedTagLongLength(t *testing.T) {
	payload := make([]byte, 0x123)
	in := append([]byte{0x9F, 0x02, 0x81, 0x23}, payload...)
	nodes, err := ParseFixedTag(emvscope.FromRaw(in))
	if err != nil {
		t.Fatalf("ParseFixedTag failed: %v", err)
	}
	if nodes[0].Length != 0x123 {
		t.Fatalf("length: got 0x%X want 0x123", nodes[0].Length)
	}
}

func TestParseFixedTagPaddedLength(t *testing.T) {
	// Leading zero padding in the long form: 0x80 0x05 declares 5.
	in := append([]byte{0x9F, 0x02, 0x80, 0x05}, make([]byte, 5)...)
	nodes, err := ParseFixedTag(emvscope.FromRaw(in))
	if err != nil {
		t.Fatalf("ParseFixedTag failed: %v", err)
	}
	if nodes[0].Length != 5 {
		t.Fatalf("length: got %d want 5", nodes[0].Length)
	}
}

func TestParseFixedTagNeverNests(t *testing.T) {
	// A payload that happens to be valid TLV stays raw bytes: the fixed
	// tag dialect has no constructed objects.
	in := []byte{0x70, 0x00, 0x04, 0x5A, 0x02, 0x11, 0x22}
	nodes, err := ParseFixedTag(emvscope.FromRaw(in))
	if err != nil {
		t.Fatalf("ParseFixedTag failed: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Children != nil {
		t.Fatalf("expected a single flat node, got %+v", nodes)
	}
}

func TestParseFixedTagErrors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		kind emvscope.ErrorKind
	}{
		{"mid-tag truncation", []byte{0x9F}, emvscope.ErrTruncatedTag},
		{"missing length", []byte{0x9F, 0x36}, emvscope.ErrMalformedLength},
		{"truncated 15-bit length", []byte{0x9F, 0x36, 0x81}, emvscope.ErrMalformedLength},
		{"length exceeds input", []byte{0x9F, 0x36, 0x04, 0x00}, emvscope.ErrMalformedLength},
		{"trailing fragment", []byte{0x9F, 0x36, 0x01, 0x2A, 0xDF, 0x01}, emvscope.ErrTrailingData},
	}
	for _, c := range cases {
		_, err := ParseFixedTag(emvscope.FromRaw(c.in))
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if !emvscope.IsKind(err, c.kind) {
			t.Fatalf("%s: got %v, want kind %v", c.name, err, c.kind)
		}
	}
}

func TestParseFixedTagMaskedPayload(t *testing.T) {
	data := emvscope.FromMasked([]byte{0x12, 0x34, 0x02, 0xFF, 0x2A}, 0xF)
	nodes, err := ParseFixedTag(data)
	if err != nil {
		t.Fatalf("ParseFixedTag failed on masked payload: %v", err)
	}
	if !nodes[0].Value.Masked() {
		t.Fatalf("payload lost its masking")
	}
}
