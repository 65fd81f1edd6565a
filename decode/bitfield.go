// Package decode turns raw tag payloads into semantic breakdowns. Each
// supported value type is declared as a data table of bit ranges, meanings,
// and severities, evaluated by one generic routine; the registry maps EMV
// tag identifiers to the matching decoder.
package decode

import (
	"fmt"
	"math/bits"

	"github.com/emvscope/emvscope"
)

// Field describes one bit or bit range within a bitfield value.
//
// Exactly one of the meaning forms applies: a plain single-bit flag uses
// Name as its meaning, a multi-bit field looks its value up in Enum, and
// Describe overrides both when the meaning or severity depends on the
// numeric value itself.
type Field struct {
	Byte     int   // byte index from the left (most significant first)
	Mask     uint8 // bits of that byte covered by this field
	Name     string
	Severity emvscope.Severity

	Enum     map[uint8]string
	Describe func(v uint8) (string, emvscope.Severity)
}

func (f Field) multiBit() bool { return bits.OnesCount8(f.Mask) > 1 }

// Spec declares the layout of one fixed-size bitfield value. Fields are
// listed most-significant first, the order entries appear in the breakdown.
type Spec struct {
	Label    string
	NumBytes int
	Fields   []Field
}

// Decode evaluates the table against data and returns the breakdown.
//
// Set single-bit flags produce entries at their declared severity; clear
// flags are omitted. Multi-bit fields always produce an entry; a value
// absent from the field's table reports Reserved For Future Use rather
// than failing. A field whose bits overlap a masked nibble reports
// "Unknown (masked)" at severity none, never a concrete outcome.
func (s Spec) Decode(data emvscope.Bytes) (*emvscope.Breakdown, error) {
	if len(data) != s.NumBytes {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrWrongLength,
			Detail: fmt.Sprintf("%s: expected %d bytes, got %d", s.Label, s.NumBytes, len(data)),
		}
	}
	bd := &emvscope.Breakdown{Label: s.Label, RawHex: data.Hex()}
	for _, f := range s.Fields {
		span := bitSpan(s.NumBytes, f.Byte, f.Mask)
		v, known := data[f.Byte].Bits(f.Mask)
		if !known {
			bd.Entries = append(bd.Entries, emvscope.Entry{
				Name:    f.Name,
				Bits:    span,
				Meaning: emvscope.MeaningMasked,
			})
			continue
		}
		switch {
		case f.Describe != nil:
			meaning, severity := f.Describe(v)
			bd.Entries = append(bd.Entries, emvscope.Entry{
				Name:     f.Name,
				Bits:     span,
				Meaning:  meaning,
				Severity: severity,
			})
		case f.multiBit():
			meaning, found := f.Enum[v]
			severity := f.Severity
			if !found {
				meaning = emvscope.MeaningRFU
				severity = emvscope.SeverityNone
			}
			bd.Entries = append(bd.Entries, emvscope.Entry{
				Name:     f.Name,
				Bits:     span,
				Meaning:  meaning,
				Severity: severity,
			})
		default:
			if v == 0 {
				continue
			}
			bd.Entries = append(bd.Entries, emvscope.Entry{
				Name:     f.Name,
				Bits:     span,
				Meaning:  f.Name,
				Severity: f.Severity,
			})
		}
	}
	return bd, nil
}

// Checklist derives a spec that reuses the receiver's full bit table with
// every severity forced to none. Action-code style values list the same
// bits as their result-style counterparts but mean "checked for", not
// "actually occurred", so nothing in them warrants a warning colour.
func (s Spec) Checklist(label string) Spec {
	out := Spec{Label: label, NumBytes: s.NumBytes, Fields: make([]Field, len(s.Fields))}
	copy(out.Fields, s.Fields)
	for i := range out.Fields {
		out.Fields[i].Severity = emvscope.SeverityNone
		if d := out.Fields[i].Describe; d != nil {
			out.Fields[i].Describe = func(v uint8) (string, emvscope.Severity) {
				meaning, _ := d(v)
				return meaning, emvscope.SeverityNone
			}
		}
	}
	return out
}

// bitSpan converts a byte index and mask into a span counted from the
// least-significant bit of the whole value.
func bitSpan(numBytes, byteIndex int, mask uint8) emvscope.BitSpan {
	if mask == 0 {
		return emvscope.BitSpan{}
	}
	low := uint8(bits.TrailingZeros8(mask))
	high := uint8(7 - bits.LeadingZeros8(mask))
	base := uint8(numBytes-1-byteIndex) * 8
	return emvscope.BitSpan{Offset: base + low, Len: high - low + 1}
}
