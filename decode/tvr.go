package decode

import "github.com/emvscope/emvscope"

// Terminal Verification Results, tag 95. EMV Book 3 section C5.
var tvrSpec = Spec{
	Label:    "Terminal Verification Results",
	NumBytes: 5,
	Fields: []Field{
		{Byte: 0, Mask: 0x80, Name: "Offline data authentication was not performed", Severity: emvscope.SeverityInfo},
		{Byte: 0, Mask: 0x40, Name: "SDA (Static Data Authentication) failed", Severity: emvscope.SeverityError},
		{Byte: 0, Mask: 0x20, Name: "ICC data missing", Severity: emvscope.SeverityError},
		{Byte: 0, Mask: 0x10, Name: "Card appears on terminal exception file", Severity: emvscope.SeverityError},
		{Byte: 0, Mask: 0x08, Name: "DDA (Dynamic Data Authentication) failed", Severity: emvscope.SeverityError},
		{Byte: 0, Mask: 0x04, Name: "CDA (Combined Data Authentication) failed", Severity: emvscope.SeverityError},

		{Byte: 1, Mask: 0x80, Name: "ICC and terminal have different application versions", Severity: emvscope.SeverityWarning},
		{Byte: 1, Mask: 0x40, Name: "Expired application", Severity: emvscope.SeverityError},
		{Byte: 1, Mask: 0x20, Name: "Application not yet effective", Severity: emvscope.SeverityError},
		{Byte: 1, Mask: 0x10, Name: "Requested service not allowed for card product", Severity: emvscope.SeverityError},
		{Byte: 1, Mask: 0x08, Name: "New card", Severity: emvscope.SeverityWarning},

		{Byte: 2, Mask: 0x80, Name: "Cardholder verification was not successful", Severity: emvscope.SeverityWarning},
		{Byte: 2, Mask: 0x40, Name: "Unrecognised CVM (Cardholder Verification Method)", Severity: emvscope.SeverityWarning},
		{Byte: 2, Mask: 0x20, Name: "PIN try limit exceeded", Severity: emvscope.SeverityError},
		{Byte: 2, Mask: 0x10, Name: "PIN entry required and PIN pad not present or not working", Severity: emvscope.SeverityError},
		{Byte: 2, Mask: 0x08, Name: "PIN entry required, PIN pad present, but PIN was not entered (PIN bypass)", Severity: emvscope.SeverityWarning},
		{Byte: 2, Mask: 0x04, Name: "Online PIN entered", Severity: emvscope.SeverityInfo},

		{Byte: 3, Mask: 0x80, Name: "Transaction exceeds floor limit", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x40, Name: "Lower consecutive offline limit exceeded", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x20, Name: "Upper consecutive offline limit exceeded", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x10, Name: "Transaction selected randomly for online processing", Severity: emvscope.SeverityInfo},
		{Byte: 3, Mask: 0x08, Name: "Merchant forced transaction online", Severity: emvscope.SeverityInfo},

		{Byte: 4, Mask: 0x80, Name: "Default TDOL (Transaction Certificate Data Object List) used", Severity: emvscope.SeverityInfo},
		{Byte: 4, Mask: 0x40, Name: "Issuer authentication failed", Severity: emvscope.SeverityError},
		{Byte: 4, Mask: 0x20, Name: "Script processing failed before final GENERATE AC", Severity: emvscope.SeverityError},
		{Byte: 4, Mask: 0x10, Name: "Script processing failed after final GENERATE AC", Severity: emvscope.SeverityError},
	},
}
