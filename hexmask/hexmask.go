// Package hexmask decodes hex text in which some digits have been replaced
// by a masking character. It is the boundary between redacted transaction
// dumps pasted from logs and the nibble-level byte model the parsers use.
package hexmask

import (
	"fmt"
	"strings"

	"github.com/emvscope/emvscope"
)

// DefaultMaskRune is the masking character most redaction tools emit.
const DefaultMaskRune = '*'

// Parse decodes hex text into maskable bytes. The text may be split into
// whitespace-separated runs, each with an optional "0x" prefix; every
// occurrence of maskRune stands for one redacted nibble. The input must
// resolve to a whole number of bytes.
func Parse(s string, maskRune rune) (emvscope.Bytes, error) {
	var nibbles []emvscope.Nibble
	for _, run := range strings.Fields(s) {
		if strings.HasPrefix(run, "0x") || strings.HasPrefix(run, "0X") {
			run = run[2:]
		}
		for _, r := range run {
			if r == maskRune {
				nibbles = append(nibbles, emvscope.MaskedNibble())
				continue
			}
			v, ok := hexNibble(r)
			if !ok {
				return nil, fmt.Errorf("hexmask: invalid character %q", r)
			}
			nibbles = append(nibbles, emvscope.KnownNibble(v))
		}
	}
	if len(nibbles)%2 != 0 {
		return nil, fmt.Errorf("hexmask: odd number of hex digits (%d)", len(nibbles))
	}
	out := make(emvscope.Bytes, len(nibbles)/2)
	for i := range out {
		out[i] = emvscope.Byte{Hi: nibbles[2*i], Lo: nibbles[2*i+1]}
	}
	return out, nil
}

func hexNibble(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, true
	default:
		return 0, false
	}
}
