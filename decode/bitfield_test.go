package decode

import (
	"testing"

	"github.com/emvscope/emvscope"
)

func TestSpecDecodeTVR(t *testing.T) {
	// SDA failed (byte 1 bit 7) and new card (byte 2 bit 4).
	data := emvscope.FromRaw([]byte{0x40, 0x08, 0x00, 0x00, 0x00})
	bd, err := tvrSpec.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(bd.Entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(bd.Entries), bd.Entries)
	}
	if bd.Entries[0].Name != "SDA (Static Data Authentication) failed" ||
		bd.Entries[0].Severity != emvscope.SeverityError {
		t.Fatalf("first entry wrong: %+v", bd.Entries[0])
	}
	if bd.Entries[1].Name != "New card" || bd.Entries[1].Severity != emvscope.SeverityWarning {
		t.Fatalf("second entry wrong: %+v", bd.Entries[1])
	}
	if bd.MaxSeverity() != emvscope.SeverityError {
		t.Fatalf("max severity: got %v", bd.MaxSeverity())
	}
}

func TestSpecDecodeBitSpans(t *testing.T) {
	data := emvscope.FromRaw([]byte{0x40, 0x00, 0x00, 0x00, 0x00})
	bd, err := tvrSpec.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// Byte 0 bit 6 sits 38 bits above the LSB of the 5-byte value.
	if bd.Entries[0].Bits != (emvscope.BitSpan{Offset: 38, Len: 1}) {
		t.Fatalf("bit span: got %+v", bd.Entries[0].Bits)
	}
}

func TestSpecDecodeWrongLength(t *testing.T) {
	_, err := tvrSpec.Decode(emvscope.FromRaw([]byte{0x00}))
	if !emvscope.IsKind(err, emvscope.ErrWrongLength) {
		t.Fatalf("got %v, want wrong length", err)
	}
}

func TestSpecDecodeEnumRFU(t *testing.T) {
	// CCI with an unpublished format code nibble.
	bd, err := cciSpec.Decode(emvscope.FromRaw([]byte{0x15}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if bd.Entries[0].Meaning != emvscope.MeaningRFU {
		t.Fatalf("format code meaning: got %q", bd.Entries[0].Meaning)
	}
	if bd.Entries[0].Severity != emvscope.SeverityNone {
		t.Fatalf("RFU severity: got %v", bd.Entries[0].Severity)
	}
	if bd.Entries[1].Meaning != "Triple DES (3DES)" {
		t.Fatalf("cryptogram version: got %q", bd.Entries[1].Meaning)
	}
}

func TestSpecDecodeMaskedField(t *testing.T) {
	// High nibble of TSI byte 0 masked: fields under it become unknown,
	// fields wholly in the low nibble still decode.
	data := emvscope.Bytes{
		{Hi: emvscope.MaskedNibble(), Lo: emvscope.KnownNibble(0x4)},
		emvscope.KnownByte(0x00),
	}
	bd, err := tsiSpec.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	var maskedCount int
	var sawScript bool
	for _, e := range bd.Entries {
		if e.Meaning == emvscope.MeaningMasked {
			maskedCount++
			if e.Severity != emvscope.SeverityNone {
				t.Fatalf("masked entry severity: got %v", e.Severity)
			}
		}
		if e.Name == "Script processing was performed" && e.Meaning != emvscope.MeaningMasked {
			sawScript = true
		}
	}
	// Four flags live in the masked high nibble.
	if maskedCount != 4 {
		t.Fatalf("masked entries: got %d want 4", maskedCount)
	}
	if !sawScript {
		t.Fatalf("set bit in the known nibble was not decoded")
	}
}

func TestChecklistMatchesSourceTable(t *testing.T) {
	data := emvscope.FromRaw([]byte{0xFC, 0xF8, 0xFC, 0xF8, 0xF0})
	result, err := tvrSpec.Decode(data)
	if err != nil {
		t.Fatalf("result decode failed: %v", err)
	}
	checklist, err := iacDenialSpec.Decode(data)
	if err != nil {
		t.Fatalf("checklist decode failed: %v", err)
	}
	if len(result.Entries) != len(checklist.Entries) {
		t.Fatalf("entry counts differ: %d vs %d", len(result.Entries), len(checklist.Entries))
	}
	for i := range result.Entries {
		r, c := result.Entries[i], checklist.Entries[i]
		if r.Name != c.Name || r.Bits != c.Bits {
			t.Fatalf("entry %d differs: %+v vs %+v", i, r, c)
		}
		if c.Severity != emvscope.SeverityNone {
			t.Fatalf("checklist entry %d severity: got %v", i, c.Severity)
		}
	}
}
