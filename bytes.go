// Package emvscope holds the data model shared by the TLV parsers and the
// tag decoders: maskable input bytes, breakdown trees, and the error type.
//
// Transaction dumps are frequently redacted before they reach this tool, so
// the byte model is tri-state at nibble granularity. A bit test that touches
// a masked nibble reports "unknown" rather than true or false, which keeps a
// masked PAN from ever matching a real bit pattern.
package emvscope

// Nibble is a single 4-bit unit of input: either a known value or masked.
// The zero value is a known 0x0.
type Nibble struct {
	value  uint8
	masked bool
}

// KnownNibble returns a nibble with the given value. Only the low 4 bits of
// v are kept.
func KnownNibble(v uint8) Nibble { return Nibble{value: v & 0x0F} }

// MaskedNibble returns a redacted nibble.
func MaskedNibble() Nibble { return Nibble{masked: true} }

// Known returns the nibble value, or false if the nibble is masked.
func (n Nibble) Known() (uint8, bool) {
	if n.masked {
		return 0, false
	}
	return n.value, true
}

// Masked reports whether the nibble is redacted.
func (n Nibble) Masked() bool { return n.masked }

// Byte is one input byte as a pair of independently maskable nibbles.
type Byte struct {
	Hi Nibble
	Lo Nibble
}

// KnownByte returns a fully known byte.
func KnownByte(v uint8) Byte {
	return Byte{Hi: KnownNibble(v >> 4), Lo: KnownNibble(v)}
}

// MaskedByte returns a byte with both nibbles redacted.
func MaskedByte() Byte {
	return Byte{Hi: MaskedNibble(), Lo: MaskedNibble()}
}

// Known returns the byte value, or false if either nibble is masked.
func (b Byte) Known() (uint8, bool) {
	hi, hok := b.Hi.Known()
	lo, lok := b.Lo.Known()
	if !hok || !lok {
		return 0, false
	}
	return hi<<4 | lo, true
}

// Masked reports whether any nibble of the byte is redacted.
func (b Byte) Masked() bool { return b.Hi.Masked() || b.Lo.Masked() }

// Bits extracts the bits selected by mask, shifted down to the mask's
// lowest set bit. ok is false when any selected bit falls within a masked
// nibble; the value is meaningless in that case.
func (b Byte) Bits(mask uint8) (v uint8, ok bool) {
	if mask == 0 {
		return 0, true
	}
	if mask&0xF0 != 0 && b.Hi.Masked() {
		return 0, false
	}
	if mask&0x0F != 0 && b.Lo.Masked() {
		return 0, false
	}
	hi, _ := b.Hi.Known()
	lo, _ := b.Lo.Known()
	v = (hi<<4 | lo) & mask
	for mask&1 == 0 {
		mask >>= 1
		v >>= 1
	}
	return v, true
}

const hexDigits = "0123456789ABCDEF"

// MaskedHexDigit is the placeholder printed for a redacted nibble.
const MaskedHexDigit = '?'

// Bytes is a sequence of maskable input bytes.
type Bytes []Byte

// FromRaw wraps a plain byte slice with every nibble known.
func FromRaw(data []byte) Bytes {
	out := make(Bytes, len(data))
	for i, v := range data {
		out[i] = KnownByte(v)
	}
	return out
}

// FromMasked wraps a byte slice in which the upstream text decoder has
// written the sentinel nibble value into every redacted position. Each
// nibble equal to sentinel (low 4 bits) becomes masked.
func FromMasked(data []byte, sentinel uint8) Bytes {
	sentinel &= 0x0F
	out := make(Bytes, len(data))
	for i, v := range data {
		b := KnownByte(v)
		if v>>4 == sentinel {
			b.Hi = MaskedNibble()
		}
		if v&0x0F == sentinel {
			b.Lo = MaskedNibble()
		}
		out[i] = b
	}
	return out
}

// Raw returns the underlying bytes. ok is false when any nibble is masked,
// in which case no byte slice is returned.
func (bs Bytes) Raw() ([]byte, bool) {
	out := make([]byte, len(bs))
	for i, b := range bs {
		v, ok := b.Known()
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Masked reports whether any byte in the sequence has a redacted nibble.
func (bs Bytes) Masked() bool {
	for _, b := range bs {
		if b.Masked() {
			return true
		}
	}
	return false
}

// Uint interprets the sequence as a big-endian unsigned integer. ok is
// false when any nibble is masked or the sequence is longer than 8 bytes.
func (bs Bytes) Uint() (v uint64, ok bool) {
	if len(bs) > 8 {
		return 0, false
	}
	for _, b := range bs {
		bv, known := b.Known()
		if !known {
			return 0, false
		}
		v = v<<8 | uint64(bv)
	}
	return v, true
}

// Hex renders the sequence as uppercase hex, with MaskedHexDigit standing
// in for each redacted nibble.
func (bs Bytes) Hex() string {
	out := make([]byte, 0, len(bs)*2)
	for _, b := range bs {
		out = append(out, nibbleHex(b.Hi), nibbleHex(b.Lo))
	}
	return string(out)
}

func nibbleHex(n Nibble) byte {
	v, ok := n.Known()
	if !ok {
		return MaskedHexDigit
	}
	return hexDigits[v]
}
