package tlv

import (
	"fmt"

	"github.com/emvscope/emvscope"
)

// Maximum value a fixed-tag length field may declare (15 bits).
const maxFixedTagLength = 0x7FFF

// ParseFixedTag parses the proprietary fixed-tag TLV encoding emitted by
// some terminal vendors. Every tag is exactly two bytes with no extension
// mechanism, and values are never nested regardless of what the tag's
// constructed bit claims. Lengths up to 0x7F are a single literal byte;
// with the high bit set, the low 7 bits and the following byte form a
// 15-bit big-endian length. Real-world encoders have been seen padding the
// length with leading zeros, so non-minimal encodings are accepted.
func ParseFixedTag(data emvscope.Bytes) ([]Node, error) {
	nodes := []Node{}
	i := 0
	for i < len(data) {
		if len(data)-i < 3 && i > 0 {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrTrailingData,
				Offset: i,
				Detail: fmt.Sprintf("%d bytes left over after last complete data object", len(data)-i),
			}
		}
		if len(data)-i < 2 {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrTruncatedTag,
				Offset: i,
				Detail: "input ends inside 2-byte tag",
			}
		}
		b0, ok0 := data[i].Known()
		b1, ok1 := data[i+1].Known()
		if !ok0 || !ok1 {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrTruncatedTag,
				Offset: i,
				Detail: "masked byte in tag position",
			}
		}
		class, constructed := tagMeta(b0)
		tag := []byte{b0, b1}
		i += 2

		length, n, err := readFixedTagLength(data, i)
		if err != nil {
			return nil, err
		}
		i += n
		if length > len(data)-i {
			return nil, &emvscope.Error{
				Kind:   emvscope.ErrMalformedLength,
				Offset: i,
				Detail: fmt.Sprintf("declared length %d exceeds %d remaining bytes", length, len(data)-i),
			}
		}

		nodes = append(nodes, Node{
			Tag:         tag,
			Class:       class,
			Constructed: constructed,
			Length:      length,
			Value:       data[i : i+length],
		})
		i += length
	}
	return nodes, nil
}

// readFixedTagLength reads a fixed-tag dialect length field at data[i],
// returning the value and the number of bytes consumed.
func readFixedTagLength(data emvscope.Bytes, i int) (int, int, error) {
	if i >= len(data) {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: i,
			Detail: "input ends before length",
		}
	}
	l0, ok := data[i].Known()
	if !ok {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: i,
			Detail: "masked byte in length position",
		}
	}
	if l0&0x80 == 0 {
		return int(l0), 1, nil
	}
	if i+1 >= len(data) {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: i,
			Detail: "input ends inside 15-bit length",
		}
	}
	l1, ok := data[i+1].Known()
	if !ok {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: i + 1,
			Detail: "masked byte in length position",
		}
	}
	// Strip leading zero padding before combining the magnitude bytes.
	// Padded encodings such as 0x80 0x05 for a length of 5 occur in the
	// wild even though the short form would fit.
	magnitude := []uint8{l0 & 0x7F, l1}
	for len(magnitude) > 1 && magnitude[0] == 0 {
		magnitude = magnitude[1:]
	}
	length := 0
	for _, b := range magnitude {
		length = length<<8 | int(b)
	}
	if length > maxFixedTagLength {
		return 0, 0, &emvscope.Error{
			Kind:   emvscope.ErrMalformedLength,
			Offset: i,
			Detail: fmt.Sprintf("declared length %d exceeds the 15-bit maximum", length),
		}
	}
	return length, 2, nil
}
