package tlv

import (
	"fmt"

	"github.com/emvscope/emvscope"
)

// Lengths wider than 32 bits are not supported by this profile.
const maxLengthBytes = 4

// ParseBER parses a complete sequence of BER-TLV data objects. The whole
// input must be consumed; anything left over is an error. An empty input
// parses to an empty sequence.
//
// Constructed tags are handled with a fallback: the payload is accepted as
// nested TLV only when it parses cleanly end to end, and is kept as a raw
// primitive payload otherwise. Some manufacturer-custom tags set the
// constructed bit without carrying nested data (the Verifone E3 tag, for
// one), and masked payload bytes fail the nested parse the same way, so
// both degrade to primitive without special handling.
func ParseBER(data emvscope.Bytes) ([]Node, error) {
	return parseBER(data, 0)
}

// parseBER parses data as a BER-TLV sequence. base is the absolute offset
// of data within the original buffer, used only for error reporting.
func parseBER(data emvscope.Bytes, base int) ([]Node, error) {
	nodes := []Node{}
	i := 0
	for i < len(data) {
		if len(data)-i == 1 && i > 0 {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrTrailingData,
				Offset: base + i,
				Detail: "1 byte left over after last complete data object",
			}
		}

		// Tag: class and constructed flag come from the first byte. The
		// tag number continues into subsequent bytes while the low 5 bits
		// of the first byte are all ones and the continuation bit is set.
		start := i
		b0, ok := data[i].Known()
		if !ok {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrTruncatedTag,
				Offset: base + i,
				Detail: "masked byte in tag position",
			}
		}
		class, constructed := tagMeta(b0)
		i++
		if b0&0x1F == 0x1F {
			for {
				if i >= len(data) {
					return nil, &emvscope.Error{
						Kind:   emvscope.ErrTruncatedTag,
						Offset: base + i,
						Detail: "input ends inside multi-byte tag number",
					}
				}
				bn, ok := data[i].Known()
				if !ok {
					return nil, &emvscope.Error{
						Kind:   emvscope.ErrTruncatedTag,
						Offset: base + i,
						Detail: "masked byte in tag position",
					}
				}
				i++
				if bn&0x80 == 0 {
					break
				}
			}
		}
		tag, _ := data[start:i].Raw()

		// Length.
		length, n, err := readBERLength(data, i, base)
		if err != nil {
			return nil, err
		}
		i += n
		if length > len(data)-i {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrMalformedLength,
				Offset: base + i,
				Detail: fmt.Sprintf("declared length %d exceeds %d remaining bytes", length, len(data)-i),
			}
		}

		node := Node{
			Tag:         tag,
			Class:       class,
			Constructed: constructed,
			Length:      length,
			Value:       data[i : i+length],
		}
		if constructed && length > 0 {
			if children, cerr := parseBER(node.Value, base+i); cerr == nil {
				node.Children = children
			}
		}
		i += length
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// readBERLength reads a BER length field at data[i], returning the length
// value and the number of bytes consumed. Short form carries the value in
// a single byte; long form gives a byte count in the low 7 bits followed
// by a big-endian value. The indefinite-length marker 0x80 is forbidden in
// this profile.
func readBERLength(data emvscope.Bytes, i, base int) (int, int, error) {
	if i >= len(data) {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: base + i,
			Detail: "input ends before length",
		}
	}
	l0, ok := data[i].Known()
	if !ok {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: base + i,
			Detail: "masked byte in length position",
		}
	}
	if l0&0x80 == 0 {
		return int(l0), 1, nil
	}
	count := int(l0 & 0x7F)
	if count == 0 {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: base + i,
			Detail: "indefinite length is forbidden",
		}
	}
	if count > maxLengthBytes {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: base + i,
			Detail: fmt.Sprintf("length field of %d bytes exceeds the %d byte maximum", count, maxLengthBytes),
		}
	}
	if i+1+count > len(data) {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: base + i,
			Detail: "input ends inside long-form length",
		}
	}
	length := 0
	for k := 0; k < count; k++ {
		b, ok := data[i+1+k].Known()
		if !ok {
			return 0, 0, &emvscope.Error{
				Kind:   emvscope.ErrMalformedLength,
				Offset: base + i + 1 + k,
				Detail: "masked byte in length position",
			}
		}
		length = length<<8 | int(b)
	}
	return length, 1 + count, nil
}
