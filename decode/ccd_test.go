package decode

import (
	"testing"

	"github.com/emvscope/emvscope"
)

func iadFixture() []byte {
	iad := make([]byte, iadBytes)
	iad[0] = 0x0F  // EMVCo-defined data length
	iad[1] = 0xA5  // CCI: format A, 3DES
	iad[2] = 0x01  // DKI
	iad[3] = 0xA0  // CVR: ARQC in 1st GENERATE AC
	iad[16] = 0x0F // issuer-discretionary data length
	return iad
}

func TestDecodeIssuerApplicationData(t *testing.T) {
	bd, err := decodeIssuerApplicationData(emvscope.FromRaw(iadFixture()), Context{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if bd.Entries[0].Name != "Common Core Identifier" || bd.Entries[0].Children == nil {
		t.Fatalf("CCI entry: %+v", bd.Entries[0])
	}
	if bd.Entries[1].Meaning != "01" {
		t.Fatalf("DKI: got %q", bd.Entries[1].Meaning)
	}
	cvr := bd.Entries[2].Children
	if cvr == nil {
		t.Fatalf("CVR entry has no breakdown")
	}
	if cvr.Entries[1].Meaning != "ARQC (Authorization Request Cryptogram)" {
		t.Fatalf("1st GENERATE AC type: got %q", cvr.Entries[1].Meaning)
	}
}

func TestDecodeIssuerApplicationDataNotCCD(t *testing.T) {
	cases := map[string][]byte{
		"wrong length":         make([]byte, 7),
		"bad length indicator": func() []byte { b := iadFixture(); b[0] = 0x06; return b }(),
		"unknown format code":  func() []byte { b := iadFixture(); b[1] = 0x15; return b }(),
		"bad idd length byte":  func() []byte { b := iadFixture(); b[16] = 0x00; return b }(),
	}
	for name, in := range cases {
		if _, err := decodeIssuerApplicationData(emvscope.FromRaw(in), Context{}); !emvscope.IsKind(err, emvscope.ErrUnrecognised) {
			t.Fatalf("%s: got %v, want unrecognised", name, err)
		}
	}
}

func TestDecodeCVRSeverities(t *testing.T) {
	// Issuer authentication failed and PIN try limit exceeded.
	bd, err := DecodeCVR(emvscope.FromRaw([]byte{0x01, 0x02, 0x00, 0x00, 0x00}))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if bd.MaxSeverity() != emvscope.SeverityError {
		t.Fatalf("max severity: got %v", bd.MaxSeverity())
	}
}
