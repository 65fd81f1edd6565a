package decode

import (
	"fmt"

	"github.com/emvscope/emvscope"
)

// Common Core Definitions values carried in the Issuer Application Data,
// tag 9F10. EMV Book 3 sections C7.1 through C7.3.

const iadBytes = 32

// Common Core Identifier, byte 2 of a CCD-compliant IAD.
var cciSpec = Spec{
	Label:    "Common Core Identifier",
	NumBytes: 1,
	Fields: []Field{
		{Byte: 0, Mask: 0xF0, Name: "IAD Format Code", Severity: emvscope.SeverityInfo, Enum: map[uint8]string{
			0xA: "Format A",
		}},
		{Byte: 0, Mask: 0x0F, Name: "Cryptogram Version", Severity: emvscope.SeverityInfo, Enum: map[uint8]string{
			0x5: "Triple DES (3DES)",
			0x6: "AES",
		}},
	},
}

// Card Verification Results, bytes 4 through 8 of a Format A IAD.
var cvrSpec = Spec{
	Label:    "Card Verification Results",
	NumBytes: 5,
	Fields: []Field{
		{Byte: 0, Mask: 0xC0, Name: "Application cryptogram type returned in 2nd GENERATE AC", Severity: emvscope.SeverityInfo, Enum: map[uint8]string{
			0b00: "AAC (Application Authentication Cryptogram)",
			0b01: "TC (Transaction Certificate)",
			0b10: "Second GENERATE AC not requested",
			0b11: "RFU (Reserved For Use)",
		}},
		{Byte: 0, Mask: 0x30, Name: "Application cryptogram type returned in 1st GENERATE AC", Severity: emvscope.SeverityInfo, Enum: map[uint8]string{
			0b00: "AAC (Application Authentication Cryptogram)",
			0b01: "TC (Transaction Certificate)",
			0b10: "ARQC (Authorization Request Cryptogram)",
			0b11: "RFU (Reserved For Use)",
		}},
		{Byte: 0, Mask: 0x08, Name: "CDA performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x04, Name: "Offline DDA performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x02, Name: "Issuer authentication not performed", Severity: emvscope.SeverityWarning},
		{Byte: 0, Mask: 0x01, Name: "Issuer authentication failed", Severity: emvscope.SeverityError},

		{Byte: 1, Mask: 0xF0, Name: "PIN try count", Describe: func(v uint8) (string, emvscope.Severity) {
			return fmt.Sprintf("%d", v), emvscope.SeverityInfo
		}},
		{Byte: 1, Mask: 0x08, Name: "Offline PIN verification performed", Severity: emvscope.SeverityInfo},
		{Byte: 1, Mask: 0x04, Name: "Offline PIN verification performed and PIN not successfully verified", Severity: emvscope.SeverityError},
		{Byte: 1, Mask: 0x02, Name: "PIN try limit exceeded", Severity: emvscope.SeverityError},
		{Byte: 1, Mask: 0x01, Name: "Last online transaction not completed", Severity: emvscope.SeverityWarning},

		{Byte: 2, Mask: 0x80, Name: "Lower offline transaction count limit exceeded", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x40, Name: "Upper offline transaction count limit exceeded", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x20, Name: "Lower cumulative offline amount limit exceeded", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x10, Name: "Upper cumulative offline amount limit exceeded", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x08, Name: "Issuer-discretionary bit 1", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x04, Name: "Issuer-discretionary bit 2", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x02, Name: "Issuer-discretionary bit 3", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x01, Name: "Issuer-discretionary bit 4", Severity: emvscope.SeverityInfo},

		{Byte: 3, Mask: 0xF0, Name: "Number of successfully processed issuer script commands containing secure messaging", Describe: func(v uint8) (string, emvscope.Severity) {
			return fmt.Sprintf("%d", v), emvscope.SeverityInfo
		}},
		{Byte: 3, Mask: 0x08, Name: "Issuer script processing failed", Severity: emvscope.SeverityError},
		{Byte: 3, Mask: 0x04, Name: "Offline data authentication failed on previous transaction", Severity: emvscope.SeverityWarning},
		{Byte: 3, Mask: 0x02, Name: "Go online on next transaction", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x01, Name: "Unable to go online", Severity: emvscope.SeverityWarning},
	},
}

// DecodeCVR decodes a bare Card Verification Results value. The CVR has no
// tag of its own, it is carried inside the IAD, but terminals often log it
// separately so it gets a standalone entry point.
func DecodeCVR(data emvscope.Bytes) (*emvscope.Breakdown, error) {
	return cvrSpec.Decode(data)
}

// decodeIssuerApplicationData decodes a CCD-compliant IAD. Byte 1 holds the
// length of the EMVCo-defined data and byte 17 the length of the
// issuer-discretionary data; both are 0x0F for every CCD format, so
// anything else means the issuer uses a proprietary layout and the value
// is reported unrecognised rather than misread.
func decodeIssuerApplicationData(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
	if len(data) != iadBytes {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrUnrecognised,
			Detail: fmt.Sprintf("Issuer Application Data: CCD layout is %d bytes, got %d", iadBytes, len(data)),
		}
	}
	for _, i := range []int{0, 16} {
		v, known := data[i].Bits(0xFF)
		if !known || v != 0x0F {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrUnrecognised,
				Detail: fmt.Sprintf("Issuer Application Data: length indicator at byte %d is not 0x0F", i+1),
			}
		}
	}
	format, known := data[1].Bits(0xF0)
	if known && format != 0xA {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrUnrecognised,
			Detail: fmt.Sprintf("Issuer Application Data: unknown IAD Format Code 0x%X", format),
		}
	}

	cci, err := cciSpec.Decode(data[1:2])
	if err != nil {
		return nil, err
	}
	cvr, err := cvrSpec.Decode(data[3:8])
	if err != nil {
		return nil, err
	}

	bd := &emvscope.Breakdown{Label: "Issuer Application Data", RawHex: data.Hex()}
	bd.Entries = append(bd.Entries,
		emvscope.Entry{Name: "Common Core Identifier", Children: cci},
		emvscope.Entry{Name: "Derivation Key Index", Meaning: data[2:3].Hex()},
		emvscope.Entry{Name: "Card Verification Results", Severity: cvr.MaxSeverity(), Children: cvr},
		emvscope.Entry{Name: "Counters (Payment System-Specific)", Meaning: data[8:16].Hex()},
		emvscope.Entry{Name: "Issuer-Discretionary Data", Meaning: data[17:32].Hex()},
	)
	return bd, nil
}
