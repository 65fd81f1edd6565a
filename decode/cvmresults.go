package decode

import (
	"fmt"

	"github.com/emvscope/emvscope"
)

// CVM Results, tag 9F34. EMV Book 4 section A4. The first two bytes are
// the CV Rule that was applied; the third is the outcome.
var cvmResultsSpec = Spec{
	Label:    "CVM Results",
	NumBytes: 3,
	Fields: []Field{
		{Byte: 0, Mask: 0x40, Name: "Apply succeeding CV Rule if this CVM is unsuccessful", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x3F, Name: "Method", Describe: cvRuleSpec.Fields[1].Describe},
		{Byte: 1, Mask: 0xFF, Name: "Condition", Describe: cvRuleSpec.Fields[2].Describe},
		{Byte: 2, Mask: 0xFF, Name: "Result", Describe: func(v uint8) (string, emvscope.Severity) {
			switch v {
			case 0x00:
				return "Unknown", emvscope.SeverityInfo
			case 0x01:
				return "Failed", emvscope.SeverityError
			case 0x02:
				return "Successful", emvscope.SeverityInfo
			default:
				return emvscope.MeaningRFU, emvscope.SeverityNone
			}
		}},
	},
}

// decodeCVMResults decodes the three bytes and, when the sibling CVM List
// is available, names which of its rules was applied.
func decodeCVMResults(data emvscope.Bytes, ctx Context) (*emvscope.Breakdown, error) {
	bd, err := cvmResultsSpec.Decode(data)
	if err != nil {
		return nil, err
	}
	if idx, ok := appliedRuleIndex(data, ctx); ok {
		bd.Entries = append(bd.Entries, emvscope.Entry{
			Name:    "Matches list entry",
			Meaning: fmt.Sprintf("CV Rule %d of the CVM List", idx+1),
		})
	}
	return bd, nil
}

// appliedRuleIndex finds the first rule in the sibling CVM List whose
// method and condition bytes match the performed CVM. Masked bytes on
// either side disqualify the comparison.
func appliedRuleIndex(data emvscope.Bytes, ctx Context) (int, bool) {
	method, ok := data[0].Bits(0x3F)
	if !ok {
		return 0, false
	}
	cond, ok := data[1].Bits(0xFF)
	if !ok {
		return 0, false
	}
	for _, sib := range ctx.Siblings {
		if sib.TagHex() != "8E" || len(sib.Value) < cvmListHeaderBytes {
			continue
		}
		rules := sib.Value[cvmListHeaderBytes:]
		for i := 0; i+1 < len(rules); i += 2 {
			rm, ok := rules[i].Bits(0x3F)
			if !ok {
				continue
			}
			rc, ok := rules[i+1].Bits(0xFF)
			if !ok {
				continue
			}
			if rm == method && rc == cond {
				return i / 2, true
			}
		}
	}
	return 0, false
}
