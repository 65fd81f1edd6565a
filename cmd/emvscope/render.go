package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/emvscope/emvscope"
	"github.com/emvscope/emvscope/decode"
)

// renderer writes breakdown trees as indented plain text. Colour is left
// to the terminal pager; severity shows up as a textual marker so output
// stays greppable.
type renderer struct {
	w            io.Writer
	showSeverity bool
}

func (r *renderer) reports(reports []decode.Report, depth int) {
	for _, rep := range reports {
		name := rep.Name
		if name == "" {
			name = "Unknown tag"
		}
		r.linef(depth, "%s (tag 0x%s, %d bytes)", name, rep.Node.TagHex(), rep.Node.Length)
		if rep.Err != nil {
			r.linef(depth+1, "decode error: %v", rep.Err)
		}
		if rep.Breakdown != nil {
			r.breakdown(rep.Breakdown, depth+1)
		} else if rep.Breakdown == nil && rep.Err == nil && len(rep.Children) == 0 && len(rep.Node.Value) > 0 {
			r.linef(depth+1, "raw: %s", rep.Node.Value.Hex())
		}
		r.reports(rep.Children, depth+1)
	}
}

func (r *renderer) breakdown(bd *emvscope.Breakdown, depth int) {
	r.linef(depth, "%s [%s]", bd.Label, bd.RawHex)
	for _, e := range bd.Entries {
		r.entry(e, depth+1)
	}
}

func (r *renderer) entry(e emvscope.Entry, depth int) {
	text := e.Name
	if e.Meaning != "" && e.Meaning != e.Name {
		text += ": " + e.Meaning
	}
	if r.showSeverity && e.Severity > emvscope.SeverityInfo {
		text += fmt.Sprintf(" [%s]", e.Severity)
	}
	r.linef(depth, "%s", text)
	if e.Children != nil {
		for _, child := range e.Children.Entries {
			r.entry(child, depth+1)
		}
	}
}

func (r *renderer) linef(depth int, format string, args ...any) {
	fmt.Fprintf(r.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}
