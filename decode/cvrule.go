package decode

import "github.com/emvscope/emvscope"

// Cardholder Verification Rule, the 2-byte unit of the CVM List and the
// first two bytes of CVM Results. EMV Book 3 section C3.

var cvMethodNames = map[uint8]string{
	0x00: "Fail CVM processing",
	0x01: "Plaintext PIN verification performed by ICC",
	0x02: "Enciphered PIN verified online",
	0x03: "Plaintext PIN verification performed by ICC and signature (paper)",
	0x04: "Enciphered PIN verification performed by ICC",
	0x05: "Enciphered PIN verification performed by ICC and signature (paper)",
	0x1E: "Signature (paper)",
	0x1F: "No CVM required",
	// Book 3 marks 3F as unavailable; Book 4 page 121 uses it for
	// "no CVM performed".
	0x3F: "No CVM performed",
}

var cvConditionNames = map[uint8]string{
	0x00: "Always",
	0x01: "If unattended cash",
	0x02: "If not unattended cash and not manual cash and not purchase with cashback",
	0x03: "If terminal supports the CVM",
	0x04: "If manual cash",
	0x05: "If purchase with cashback",
	0x06: "If transaction is in the application currency and is under X value",
	0x07: "If transaction is in the application currency and is over X value",
	0x08: "If transaction is in the application currency and is under Y value",
	0x09: "If transaction is in the application currency and is over Y value",
}

func conditionRefersToX(v uint8) bool { return v == 0x06 || v == 0x07 }
func conditionRefersToY(v uint8) bool { return v == 0x08 || v == 0x09 }

var cvRuleSpec = Spec{
	Label:    "CV Rule",
	NumBytes: 2,
	Fields: []Field{
		{Byte: 0, Mask: 0x40, Name: "Apply succeeding CV Rule if this CVM is unsuccessful", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x3F, Name: "Method", Describe: func(v uint8) (string, emvscope.Severity) {
			if name, ok := cvMethodNames[v]; ok {
				return name, emvscope.SeverityInfo
			}
			return "Unknown (likely issuer or payment system-specific)", emvscope.SeverityWarning
		}},
		{Byte: 1, Mask: 0xFF, Name: "Condition", Describe: func(v uint8) (string, emvscope.Severity) {
			if name, ok := cvConditionNames[v]; ok {
				return name, emvscope.SeverityInfo
			}
			return "Unknown (likely payment system-specific)", emvscope.SeverityWarning
		}},
	},
}
