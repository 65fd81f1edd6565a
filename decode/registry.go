package decode

import (
	"strings"

	"github.com/emvscope/emvscope"
	"github.com/emvscope/emvscope/tlv"
)

// Context carries the surrounding nodes a decoder may need. The CVM
// Results decoder reads the sibling CVM List to name the rule it refers
// to; everything else ignores it.
type Context struct {
	Siblings []tlv.Node
}

// Decoder decodes one tag payload into a breakdown.
type Decoder func(data emvscope.Bytes, ctx Context) (*emvscope.Breakdown, error)

// Entry ties a tag to its annotation and, when one exists, its decoder.
// UnrecognisedName is substituted when the decoder reports ErrUnrecognised:
// the payload is present but does not follow the layout the name implies.
type Entry struct {
	Name             string
	UnrecognisedName string
	Decode           Decoder
}

func key(tag []byte) string {
	const hexDigits = "0123456789ABCDEF"
	var b strings.Builder
	for _, c := range tag {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}
	return b.String()
}

// Lookup returns the registry entry for a tag, if any.
func Lookup(tag []byte) (Entry, bool) {
	e, ok := registry[key(tag)]
	return e, ok
}

// Known reports whether a tag appears in the registry. It is the
// predicate format detection uses to judge whether a parse produced
// anything recognisable.
func Known(tag []byte) bool {
	_, ok := registry[key(tag)]
	return ok
}

// TagName returns the annotation for a tag, or "" when unknown.
func TagName(tag []byte) string {
	return registry[key(tag)].Name
}

func spec(s Spec) Decoder {
	return func(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
		return s.Decode(data)
	}
}
