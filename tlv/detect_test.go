package tlv

import (
	"testing"

	"github.com/emvscope/emvscope"
)

func knownTag95(tag []byte) bool {
	return len(tag) == 1 && tag[0] == 0x95
}

func TestDetectEmptyInput(t *testing.T) {
	_, _, err := Detect(nil, DetectOptions{})
	if !emvscope.IsKind(err, emvscope.ErrUnknownFormat) {
		t.Fatalf("empty input: got %v, want unknown format", err)
	}
}

func TestDetectBER(t *testing.T) {
	in := emvscope.FromRaw([]byte{0x95, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00})
	format, nodes, err := Detect(in, DetectOptions{KnownTag: knownTag95})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if format != FormatBER || len(nodes) != 1 {
		t.Fatalf("got format=%v nodes=%d", format, len(nodes))
	}
}

func TestDetectFixedTag(t *testing.T) {
	// The zero-padded long-form length reads as the forbidden indefinite
	// marker under BER, so only the fixed-tag dialect accepts this.
	in := append([]byte{0xDF, 0x01, 0x80, 0x05}, []byte{1, 2, 3, 4, 5}...)
	format, nodes, err := Detect(emvscope.FromRaw(in), DetectOptions{})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if format != FormatFixedTag {
		t.Fatalf("got format=%v, want fixed-tag", format)
	}
	if len(nodes) != 1 || nodes[0].Length != 5 {
		t.Fatalf("nodes wrong: %+v", nodes)
	}
}

func TestDetectPrecedence(t *testing.T) {
	// Parseable under both dialects: two-byte tag, short length. BER must
	// win by priority.
	in := emvscope.FromRaw([]byte{0x9F, 0x36, 0x02, 0x11, 0x22})
	format, nodes, err := Detect(in, DetectOptions{})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if format != FormatBER {
		t.Fatalf("got format=%v, want BER", format)
	}
	if nodes[0].TagHex() != "9F36" {
		t.Fatalf("tag: got %s", nodes[0].TagHex())
	}
}

func TestDetectRejectsTrivial(t *testing.T) {
	// A lone zero-length tag parses cleanly under BER but carries nothing;
	// without a registry hit it must not be accepted.
	in := emvscope.FromRaw([]byte{0x5A, 0x00})
	if _, _, err := Detect(in, DetectOptions{}); !emvscope.IsKind(err, emvscope.ErrUnknownFormat) {
		t.Fatalf("trivial parse accepted: %v", err)
	}
}

func TestDetectAcceptsTrivialKnownTag(t *testing.T) {
	in := emvscope.FromRaw([]byte{0x95, 0x00})
	format, _, err := Detect(in, DetectOptions{KnownTag: knownTag95})
	if err != nil || format != FormatBER {
		t.Fatalf("known empty tag: got (%v,%v)", format, err)
	}
}
