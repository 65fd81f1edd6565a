package decode

import "github.com/emvscope/emvscope"

// Terminal Capabilities, tag 9F33. EMV Book 4 section A2.
var terminalCapsSpec = Spec{
	Label:    "Terminal Capabilities",
	NumBytes: 3,
	Fields: []Field{
		// Card data input capabilities
		{Byte: 0, Mask: 0x80, Name: "Manual key entry", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x40, Name: "Magnetic stripe", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x20, Name: "IC with contacts", Severity: emvscope.SeverityInfo},

		// CVM capabilities
		{Byte: 1, Mask: 0x80, Name: "Plaintext PIN for ICC verification", Severity: emvscope.SeverityInfo},
		{Byte: 1, Mask: 0x40, Name: "Enciphered PIN for online verification", Severity: emvscope.SeverityInfo},
		{Byte: 1, Mask: 0x20, Name: "Signature (paper)", Severity: emvscope.SeverityInfo},
		{Byte: 1, Mask: 0x10, Name: "Enciphered PIN for offline verification", Severity: emvscope.SeverityInfo},
		{Byte: 1, Mask: 0x08, Name: "No CVM Required", Severity: emvscope.SeverityInfo},

		// Security capabilities
		{Byte: 2, Mask: 0x80, Name: "SDA (Static Data Authentication)", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x40, Name: "DDA (Dynamic Data Authentication)", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x20, Name: "Card capture (ATM retaining the card)", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x08, Name: "CDA (Combined Data Authentication)", Severity: emvscope.SeverityInfo},
	},
}

// Additional Terminal Capabilities, tag 9F40. EMV Book 4 section A3.
var additionalCapsSpec = Spec{
	Label:    "Additional Terminal Capabilities",
	NumBytes: 5,
	Fields: []Field{
		// Transaction type capabilities
		{Byte: 0, Mask: 0x80, Name: "Cash", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x40, Name: "Goods", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x20, Name: "Services", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x10, Name: "Cashback", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x08, Name: "Inquiry (request for information about one of the cardholder's accounts)", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x04, Name: "Transfer (between cardholder accounts at the same financial institution)", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x02, Name: "Payment (from a cardholder account to another party)", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x01, Name: "Administrative", Severity: emvscope.SeverityInfo},
		{Byte: 1, Mask: 0x80, Name: "Cash Deposit (into a bank account related to an application on the card used)", Severity: emvscope.SeverityInfo},

		// Terminal data input capabilities
		{Byte: 2, Mask: 0x80, Name: "Numeric keys", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x40, Name: "Alphabetic and special characters keys", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x20, Name: "Command keys", Severity: emvscope.SeverityInfo},
		{Byte: 2, Mask: 0x10, Name: "Function keys", Severity: emvscope.SeverityInfo},

		// Terminal data output capabilities
		{Byte: 3, Mask: 0x80, Name: "Print, attendant", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x40, Name: "Print, cardholder", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x20, Name: "Display, attendant", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x10, Name: "Display, cardholder", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x02, Name: "ISO/IEC 8859 Code Table 10", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x01, Name: "ISO/IEC 8859 Code Table 9", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x80, Name: "ISO/IEC 8859 Code Table 8", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x40, Name: "ISO/IEC 8859 Code Table 7", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x20, Name: "ISO/IEC 8859 Code Table 6", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x10, Name: "ISO/IEC 8859 Code Table 5", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x08, Name: "ISO/IEC 8859 Code Table 4", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x04, Name: "ISO/IEC 8859 Code Table 3", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x02, Name: "ISO/IEC 8859 Code Table 2", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x01, Name: "ISO/IEC 8859 Code Table 1", Severity: emvscope.SeverityInfo},
	},
}
