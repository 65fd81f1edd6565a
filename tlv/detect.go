package tlv

import "github.com/emvscope/emvscope"

// Format identifies which TLV dialect produced a parse result.
type Format int

const (
	FormatUnknown Format = iota
	FormatBER
	FormatFixedTag
)

func (f Format) String() string {
	switch f {
	case FormatBER:
		return "BER-TLV"
	case FormatFixedTag:
		return "Fixed-Tag TLV"
	default:
		return "unknown"
	}
}

// DetectOptions controls result acceptance during format detection.
type DetectOptions struct {
	// KnownTag reports whether a tag identifier has a registered decoder.
	// A parse whose nodes all carry empty payloads is accepted only when
	// one of its tags is known; nil treats every tag as unknown.
	KnownTag func(tag []byte) bool
}

// Detect parses data with each dialect in a fixed priority order, BER-TLV
// first and the fixed-tag dialect second, and returns the first accepted
// result. A candidate is accepted only when its parser reported no error
// and at least one node carries a non-empty payload or a known tag; the
// second guard stops empty or all-masked input from matching trivially
// under any dialect. Detection is deterministic and order-dependent, not
// scored: input valid under both dialects always reports BER-TLV.
func Detect(data emvscope.Bytes, opts DetectOptions) (Format, []Node, error) {
	attempts := []struct {
		format Format
		parse  func(emvscope.Bytes) ([]Node, error)
	}{
		{FormatBER, ParseBER},
		{FormatFixedTag, ParseFixedTag},
	}
	for _, a := range attempts {
		nodes, err := a.parse(data)
		if err != nil {
			continue
		}
		if !nonTrivial(nodes, opts.KnownTag) {
			continue
		}
		return a.format, nodes, nil
	}
	return FormatUnknown, nil, &emvscope.Error{
		Kind:   emvscope.ErrUnknownFormat,
		Detail: "input matched neither BER-TLV nor Fixed-Tag TLV",
	}
}

func nonTrivial(nodes []Node, known func([]byte) bool) bool {
	for _, n := range nodes {
		if len(n.Value) > 0 {
			return true
		}
		if known != nil && known(n.Tag) {
			return true
		}
		if nonTrivial(n.Children, known) {
			return true
		}
	}
	return false
}
