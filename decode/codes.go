package decode

import (
	"fmt"

	"github.com/emvscope/emvscope"
)

// Single-value tags: Terminal Type, Transaction Type, POS Entry Mode, and
// the Authorisation Response Code. Each decodes to a one-entry breakdown;
// values outside the published tables report ErrUnrecognised so the
// processing layer can fall back to an annotation.

// EMV Book 4 section A1.
var terminalTypeNames = map[uint8]string{
	0x11: "Attended, Online-Only, Controlled by a Financial Institution",
	0x12: "Attended, Offline With Online Capabilities, Controlled by a Financial Institution",
	0x13: "Attended, Offline-Only, Controlled by a Financial Institution",
	0x14: "Unattended, Online-Only, Controlled by a Financial Institution (ATM if it supports Cash Disbursement)",
	0x15: "Unattended, Offline With Online Capabilities, Controlled by a Financial Institution (ATM if it supports Cash Disbursement)",
	0x16: "Unattended, Offline-Only, Controlled by a Financial Institution (ATM if it supports Cash Disbursement)",
	0x21: "Attended, Online-Only, Controlled by a Merchant",
	0x22: "Attended, Offline With Online Capabilities, Controlled by a Merchant",
	0x23: "Attended, Offline-Only, Controlled by a Merchant",
	0x24: "Unattended, Online-Only, Controlled by a Merchant",
	0x25: "Unattended, Offline With Online Capabilities, Controlled by a Merchant",
	0x26: "Unattended, Offline-Only, Controlled by a Merchant",
	0x34: "Unattended, Online-Only, Controlled by the Cardholder (self-attended, home PC, etc.)",
	0x35: "Unattended, Offline With Online Capabilities, Controlled by the Cardholder (self-attended, home PC, etc.)",
	0x36: "Unattended, Offline-Only, Controlled by the Cardholder (self-attended, home PC, etc.)",
}

// First two digits of the ISO 8583:1987 Processing Code. Hard to find a
// complete published list, so this may be missing values.
var transactionTypeNames = map[uint8]string{
	0x00: "Purchase",
	0x01: "Cash Advance",
	0x02: "Void",
	0x09: "Purchase With Cashback",
	0x20: "Refund",
	0x31: "Balance Inquiry",
	0x38: "Mini Statement",
	0x40: "Fund Transfer",
}

// First two digits of the ISO 8583:1987 POS Entry Mode.
var posEntryModeNames = map[uint8]string{
	0x00: "Unknown",
	0x01: "Manual (keyed entry)",
	0x02: "Magnetic Stripe Reader (MSR)",
	0x03: "Barcode",
	0x04: "Optical Character Recognition (OCR)",
	0x05: "Integrated Circuit Chip (ICC) - Data Reliable (contact/insert transaction) (CVV can be checked)",
	0x06: "Magnetic Stripe Track 1",
	0x07: "Contactless Chip (contactless/tap transaction)",
	0x83: "Contactless Chip (contactless/tap transaction)",
	0x08: "Contactless Chip (contactless/tap transaction) - Contactless Mapping Service Applied",
	0x92: "Contactless Chip (contactless/tap transaction) - Contactless Mapping Service Applied",
	0x09: "E-Commerce - Including Remote Chip",
	0x10: "Merchant Has Cardholder Credentials On File (token, recurring payment, etc.)",
	0x80: "ICC Could Not Process - Fallback to MSR",
	0x81: "E-Commerce - Including Chip",
	0x82: "Via a Server (issuer, acquirer, third-party vendor)",
	0x90: "Magnetic Stripe Reader (MSR) - Full Track Data - Data Reliable (CVV can be checked)",
	0x91: "Contactless Magnetic Stripe Data (MSD)",
	0x95: "Integrated Circuit Chip (ICC) - Data Unreliable (contact/insert transaction) (CVV cannot be checked)",
}

func decodeTerminalType(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
	return decodeByteEnum("Terminal Type", terminalTypeNames, data)
}

func decodeTransactionType(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
	return decodeByteEnum("Transaction Type", transactionTypeNames, data)
}

func decodePOSEntryMode(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
	return decodeByteEnum("POS Entry Mode", posEntryModeNames, data)
}

func decodeByteEnum(label string, names map[uint8]string, data emvscope.Bytes) (*emvscope.Breakdown, error) {
	if len(data) != 1 {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrWrongLength,
			Detail: fmt.Sprintf("%s: expected 1 byte, got %d", label, len(data)),
		}
	}
	bd := &emvscope.Breakdown{Label: label, RawHex: data.Hex()}
	v, known := data[0].Bits(0xFF)
	if !known {
		bd.Entries = append(bd.Entries, emvscope.Entry{Name: label, Meaning: emvscope.MeaningMasked})
		return bd, nil
	}
	name, ok := names[v]
	if !ok {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrUnrecognised,
			Detail: fmt.Sprintf("%s: no published meaning for 0x%02X", label, v),
		}
	}
	bd.Entries = append(bd.Entries, emvscope.Entry{
		Name:     label,
		Meaning:  name,
		Severity: emvscope.SeverityInfo,
	})
	return bd, nil
}

// ISO 8583:1987 response codes, with EMV additions. Two ASCII digits.
var authResponseCodeNames = map[string]string{
	"00": "Approval",
	"01": "Call",
	"02": "Call - Special Conditions",
	"03": "Terminal ID Error",
	"04": "Hold Card - Call",
	"05": "Decline - Do Not Honour",
	"06": "Error",
	"07": "Hold Card - Call - Special Conditions",
	"08": "Honour With Identification",
	"09": "No Original Transaction",
	"10": "Partial Approval",
	"11": "Approved (VIP)",
	"12": "Invalid Transaction",
	"13": "Invalid Amount",
	"14": "Invalid Card Number",
	"15": "No Such Issuer",
	"16": "Approved - Update Track 3",
	"17": "Customer Cancellation",
	"18": "Customer Dispute",
	"19": "Retry Transaction",
	"20": "Invalid Response",
	"21": "No Action Taken",
	"22": "Suspected Malfunction",
	"23": "Invalid Minimum Amount",
	"24": "File Update Not Supported",
	"25": "Invalid ICC Data",
	"26": "Duplicate File Update Record",
	"27": "File Update Field Edit Error",
	"28": "File Update File Locked Out",
	"29": "File Update Not Successful",
	"30": "Format Error",
	"31": "Bank Not Supported By Switch",
	"32": "Completed Partially",
	"33": "Expired Card",
	"54": "Expired Card",
	"34": "Suspected Fraud",
	"59": "Suspected Fraud",
	"35": "Card Acceptor, Contact Acquirer",
	"60": "Card Acceptor, Contact Acquirer",
	"36": "Restricted Card",
	"62": "Restricted Card",
	"37": "Card Acceptor, Call Acquirer Security",
	"66": "Card Acceptor, Call Acquirer Security",
	"38": "Allowable PIN Retries Exceeded",
	"75": "Allowable PIN Retries Exceeded",
	"39": "No Credit Account",
	"40": "Requested Function Not Supported",
	"41": "Lost Card",
	"42": "No Universal Account",
	"43": "Stolen Card",
	"44": "No Investment Account",
	"51": "Insufficient Funds",
	"52": "No Chequing Account",
	"53": "No Savings Account",
	"55": "Incorrect PIN",
	"56": "No Card Record",
	"57": "Transaction Not Allowed For Cardholder",
	"58": "Transaction Not Allowed For Terminal",
	"61": "Debit Cashback Withdrawal Limit Decline",
	"63": "Security Violation",
	"64": "Original Amount Incorrect",
	"65": "Decline - Insert Card (often due to too many contactless transactions)",
	"67": "ATM Hard Card Capture",
	"68": "Response Received Too Late",
	"91": "Issuer Timeout",
	"92": "Issuer Routing Problem",
	"93": "Transaction Not Completed - Law Violation",
	"94": "Duplicate Transmission",
	"95": "Reconciliation Error",
	"96": "System Malfunction",
}

func decodeAuthResponseCode(data emvscope.Bytes, _ Context) (*emvscope.Breakdown, error) {
	const label = "Authorisation Response Code"
	if len(data) != 2 {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrWrongLength,
			Detail: fmt.Sprintf("%s: expected 2 bytes, got %d", label, len(data)),
		}
	}
	bd := &emvscope.Breakdown{Label: label, RawHex: data.Hex()}
	raw, known := data.Raw()
	if !known {
		bd.Entries = append(bd.Entries, emvscope.Entry{Name: label, Meaning: emvscope.MeaningMasked})
		return bd, nil
	}
	name, ok := authResponseCodeNames[string(raw)]
	if !ok {
		return nil, &emvscope.Error{
			Kind:   emvscope.ErrUnrecognised,
			Detail: fmt.Sprintf("%s: no published meaning for %q", label, raw),
		}
	}
	bd.Entries = append(bd.Entries, emvscope.Entry{
		Name:     label,
		Meaning:  name,
		Severity: emvscope.SeverityInfo,
	})
	return bd, nil
}
