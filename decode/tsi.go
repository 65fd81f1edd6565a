package decode

import "github.com/emvscope/emvscope"

// Transaction Status Information, tag 9B. EMV Book 3 section C6.
var tsiSpec = Spec{
	Label:    "Transaction Status Information",
	NumBytes: 2,
	Fields: []Field{
		{Byte: 0, Mask: 0x80, Name: "Offline data authentication was performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x40, Name: "Cardholder verification was performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x20, Name: "Card risk management was performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x10, Name: "Issuer authentication was performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x08, Name: "Terminal risk management was performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x04, Name: "Script processing was performed", Severity: emvscope.SeverityInfo},
	},
}
