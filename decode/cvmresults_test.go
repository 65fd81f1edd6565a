package decode

import (
	"testing"

	"github.com/emvscope/emvscope"
	"github.com/emvscope/emvscope/tlv"
)

func TestDecodeCVMResults(t *testing.T) {
	// Enciphered PIN online, always, failed.
	bd, err := decodeCVMResults(emvscope.FromRaw([]byte{0x02, 0x00, 0x01}), Context{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	var sawResult bool
	for _, e := range bd.Entries {
		if e.Name == "Result" {
			sawResult = true
			if e.Meaning != "Failed" || e.Severity != emvscope.SeverityError {
				t.Fatalf("result entry: %+v", e)
			}
		}
	}
	if !sawResult {
		t.Fatalf("no result entry: %+v", bd.Entries)
	}
}

func TestDecodeCVMResultsNamesListRule(t *testing.T) {
	list := emvscope.FromRaw([]byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x41, 0x03, // rule 1: plaintext PIN
		0x02, 0x00, // rule 2: enciphered PIN online, always
	})
	siblings := []tlv.Node{{
		Tag:    []byte{0x8E},
		Length: len(list),
		Value:  list,
	}}
	bd, err := decodeCVMResults(emvscope.FromRaw([]byte{0x02, 0x00, 0x02}), Context{Siblings: siblings})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	last := bd.Entries[len(bd.Entries)-1]
	if last.Name != "Matches list entry" || last.Meaning != "CV Rule 2 of the CVM List" {
		t.Fatalf("cross-reference entry: %+v", last)
	}
}

func TestDecodeCVMResultsNoListMatch(t *testing.T) {
	bd, err := decodeCVMResults(emvscope.FromRaw([]byte{0x3F, 0x00, 0x00}), Context{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, e := range bd.Entries {
		if e.Name == "Matches list entry" {
			t.Fatalf("cross-reference without a sibling list")
		}
	}
}
