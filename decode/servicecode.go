package decode

import (
	"fmt"

	"github.com/emvscope/emvscope"
)

// Magnetic-stripe service code, tag 5F30. ISO/IEC 7813. Not an EMV value:
// the two bytes spell three decimal digits when written out in hex, and
// each digit position carries its own meanings.

func serviceInterchange(d uint8) string {
	switch d {
	case 1, 2:
		return "International"
	case 5, 6:
		return "National"
	case 7:
		return "Private"
	case 9:
		return "Test"
	default:
		return emvscope.MeaningRFU
	}
}

func serviceTechnology(d uint8) string {
	if d == 2 || d == 6 {
		return "Integrated circuit card (ICC)"
	}
	return "Magnetic stripe only (MSR)"
}

func serviceAuthorisation(d uint8) string {
	switch d {
	case 0:
		return "Normal"
	case 2:
		return "By issuer only (no offline authorisation)"
	case 4:
		return "By issuer only unless an explicit bilateral agreement applies (no offline authorisation)"
	default:
		return emvscope.MeaningRFU
	}
}

func serviceAllowed(d uint8) string {
	switch d {
	case 0, 1, 6:
		return "No restrictions"
	case 2, 5, 7:
		return "Goods and services only"
	case 3:
		return "ATM only"
	case 4:
		return "Cash only"
	default:
		return emvscope.MeaningRFU
	}
}

func servicePIN(d uint8) string {
	switch d {
	case 0, 3, 5:
		return "None"
	case 6, 7:
		return "PIN required"
	default:
		return "Prompt for PIN if PIN pad is present"
	}
}

func decodeServiceCode(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
	const label = "Service Code"
	if len(data) != 2 {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrWrongLength,
			Detail: fmt.Sprintf("%s: expected 2 bytes, got %d", label, len(data)),
		}
	}
	// The value is written as hex digits and read as a 3-digit decimal
	// number, so the leading nibble must be zero and the rest must each
	// be 0 through 9.
	digits := [4]emvscope.Nibble{data[0].Hi, data[0].Lo, data[1].Hi, data[1].Lo}
	for i, n := range digits {
		if !n.Masked() {
			v, _ := n.Known()
			if (i == 0 && v != 0) || v > 9 {
				return nil, &emvscope.Error{
					Kind:   emvscope.ErrUnrecognised,
					Detail: fmt.Sprintf("%s: %s is not a 3-digit decimal number", label, data.Hex()),
				}
			}
		}
	}

	bd := &emvscope.Breakdown{Label: label, RawHex: data.Hex()}
	digitEntry := func(name string, n emvscope.Nibble, meaningOf func(uint8) string) {
		e := emvscope.Entry{Name: name, Severity: emvscope.SeverityInfo}
		if n.Masked() {
			e.Meaning = emvscope.MeaningMasked
			e.Severity = emvscope.SeverityNone
		} else {
			v, _ := n.Known()
			e.Meaning = meaningOf(v)
		}
		bd.Entries = append(bd.Entries, e)
	}
	digitEntry("Interchange", digits[1], serviceInterchange)
	digitEntry("Technology", digits[1], serviceTechnology)
	digitEntry("Authorisation Processing", digits[2], serviceAuthorisation)
	digitEntry("Allowed Services", digits[3], serviceAllowed)
	digitEntry("PIN Requirements", digits[3], servicePIN)
	return bd, nil
}
