package decode

import (
	"testing"

	"github.com/emvscope/emvscope"
)

func TestDecodeServiceCode(t *testing.T) {
	// 201: international ICC, normal authorisation, no restrictions.
	bd, err := decodeServiceCode(emvscope.FromRaw([]byte{0x02, 0x01}), Context{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := map[string]string{
		"Interchange":              "International",
		"Technology":               "Integrated circuit card (ICC)",
		"Authorisation Processing": "Normal",
		"Allowed Services":         "No restrictions",
		"PIN Requirements":         "None",
	}
	for _, e := range bd.Entries {
		if want[e.Name] != e.Meaning {
			t.Fatalf("%s: got %q want %q", e.Name, e.Meaning, want[e.Name])
		}
	}
}

func TestDecodeServiceCodeInvalidDigits(t *testing.T) {
	for _, in := range [][]byte{
		{0x0A, 0x01}, // hex digit beyond 9
		{0x12, 0x01}, // more than three digits
	} {
		if _, err := decodeServiceCode(emvscope.FromRaw(in), Context{}); !emvscope.IsKind(err, emvscope.ErrUnrecognised) {
			t.Fatalf("% X: got %v, want unrecognised", in, err)
		}
	}
}

func TestDecodeServiceCodeMaskedDigit(t *testing.T) {
	in := emvscope.Bytes{
		emvscope.KnownByte(0x02),
		{Hi: emvscope.MaskedNibble(), Lo: emvscope.KnownNibble(0x1)},
	}
	bd, err := decodeServiceCode(in, Context{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, e := range bd.Entries {
		if e.Name == "Authorisation Processing" && e.Meaning != emvscope.MeaningMasked {
			t.Fatalf("masked digit decoded to %q", e.Meaning)
		}
		if e.Name == "Interchange" && e.Meaning != "International" {
			t.Fatalf("known digit: got %q", e.Meaning)
		}
	}
}
