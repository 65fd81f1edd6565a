// Package tlv parses EMV tag-length-value data in the two encodings seen in
// terminal dumps: spec-compliant BER-TLV (EMV Book 3, Annex B) and a
// proprietary fixed-tag encoding, plus automatic detection between them.
package tlv

import (
	"encoding/hex"
	"strings"

	"github.com/emvscope/emvscope"
)

// TagClass is the BER tag class, taken from the top two bits of the first
// tag byte.
type TagClass uint8

const (
	ClassUniversal TagClass = iota
	ClassApplication
	ClassContext
	ClassPrivate
)

func (c TagClass) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContext:
		return "Context-Specific"
	case ClassPrivate:
		return "Private"
	default:
		return "Unknown"
	}
}

// Node is one parsed tag-length-value unit.
//
// Value always holds the raw (possibly masked) payload of Length bytes.
// Children is non-nil only when the node is constructed and its payload
// parsed cleanly as nested TLV; the re-encoded children then occupy exactly
// the same Length bytes. Nodes are built once per parse call and are never
// mutated by decoders.
type Node struct {
	Tag         []byte
	Class       TagClass
	Constructed bool
	Length      int
	Value       emvscope.Bytes
	Children    []Node
}

// TagHex returns the tag identifier as uppercase hex.
func (n Node) TagHex() string {
	return strings.ToUpper(hex.EncodeToString(n.Tag))
}

// tagMeta splits the first tag byte into its class and constructed flag.
func tagMeta(b0 uint8) (TagClass, bool) {
	return TagClass(b0 >> 6), b0&0x20 != 0
}
