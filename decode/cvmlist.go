package decode

import (
	"fmt"
	"strconv"

	"github.com/emvscope/emvscope"
)

// CVM List, tag 8E. EMV Book 3 section 10.5. Two 4-byte amounts (X and Y)
// followed by 2-byte CV Rules.
const cvmListHeaderBytes = 8

func decodeCVMList(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
	if len(data) < cvmListHeaderBytes {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrWrongLength,
			Detail: fmt.Sprintf("CVM List: expected at least %d bytes, got %d", cvmListHeaderBytes, len(data)),
		}
	}
	rules := data[cvmListHeaderBytes:]
	if len(rules)%2 != 0 {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrWrongLength,
			Detail: fmt.Sprintf("CVM List: %d trailing bytes do not form whole CV Rules", len(rules)),
		}
	}

	// The X and Y amounts only matter when some rule's condition compares
	// against them. A masked condition byte could reference either, so it
	// keeps both.
	var showX, showY bool
	for i := 0; i < len(rules); i += 2 {
		cond, known := rules[i+1].Bits(0xFF)
		if !known {
			showX, showY = true, true
			break
		}
		showX = showX || conditionRefersToX(cond)
		showY = showY || conditionRefersToY(cond)
	}

	bd := &emvscope.Breakdown{Label: "CVM List", RawHex: data.Hex()}
	if showX {
		bd.Entries = append(bd.Entries, emvscope.Entry{
			Name:    "X value",
			Meaning: amountMeaning(data[0:4]),
		})
	}
	if showY {
		bd.Entries = append(bd.Entries, emvscope.Entry{
			Name:    "Y value",
			Meaning: amountMeaning(data[4:8]),
		})
	}
	for i := 0; i < len(rules); i += 2 {
		child, err := cvRuleSpec.Decode(rules[i : i+2])
		if err != nil {
			return nil, err
		}
		bd.Entries = append(bd.Entries, emvscope.Entry{
			Name:     fmt.Sprintf("CV Rule %d", i/2+1),
			Severity: child.MaxSeverity(),
			Children: child,
		})
	}
	return bd, nil
}

func amountMeaning(b emvscope.Bytes) string {
	v, known := b.Uint()
	if !known {
		return emvscope.MeaningMasked
	}
	return strconv.FormatUint(v, 10)
}
