package decode

import (
	"github.com/emvscope/emvscope"
	"github.com/emvscope/emvscope/tlv"
)

// Report is one processed TLV node: the node itself, its annotation, and
// the breakdown when a decoder exists and accepted the payload.
type Report struct {
	Node      tlv.Node
	Name      string
	Breakdown *emvscope.Breakdown
	Err       error
	Children  []Report
}

// Process annotates and decodes every node in a parsed TLV tree. A decoder
// failing on one tag is recorded on that tag's report and never stops the
// siblings from being decoded. A decoder reporting ErrUnrecognised swaps
// in the registry's fallback annotation instead of recording an error,
// when one is declared: the payload is present but payment system-specific.
func Process(nodes []tlv.Node) []Report {
	reports := make([]Report, 0, len(nodes))
	for _, node := range nodes {
		reports = append(reports, processNode(node, nodes))
	}
	return reports
}

func processNode(node tlv.Node, siblings []tlv.Node) Report {
	r := Report{Node: node}
	entry, ok := Lookup(node.Tag)
	if !ok {
		for _, child := range node.Children {
			r.Children = append(r.Children, processNode(child, node.Children))
		}
		return r
	}
	r.Name = entry.Name

	if len(node.Children) > 0 {
		for _, child := range node.Children {
			r.Children = append(r.Children, processNode(child, node.Children))
		}
		return r
	}
	if entry.Decode == nil || fullyMasked(node.Value) {
		return r
	}

	bd, err := entry.Decode(node.Value, Context{Siblings: siblings})
	switch {
	case err == nil:
		r.Breakdown = bd
	case emvscope.IsKind(err, emvscope.ErrUnrecognised) && entry.UnrecognisedName != "":
		r.Name = entry.UnrecognisedName
	default:
		r.Err = err
	}
	return r
}

// fullyMasked reports whether every nibble of the payload is redacted.
// There is nothing left to decode in that case, so the tag stays
// annotation-only rather than producing an all-"Unknown (masked)" tree.
func fullyMasked(data emvscope.Bytes) bool {
	for _, b := range data {
		if !b.Hi.Masked() || !b.Lo.Masked() {
			return false
		}
	}
	return len(data) > 0
}
