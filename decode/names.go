package decode

// registry maps uppercase hex tag identifiers to their annotations and
// decoders. Tags with a Decode func get a full breakdown; the rest are
// name-only. Names follow EMV Book 3 Annex A.
var registry = map[string]Entry{
	"42":   {Name: "Issuer Identification Number (IIN)"},
	"4F":   {Name: "Application Dedicated File (ADF) Name"},
	"50":   {Name: "Application Label"},
	"57":   {Name: "Track 2 Equivalent Data"},
	"5A":   {Name: "Application Primary Account Number (PAN)"},
	"5F20": {Name: "Cardholder Name"},
	"5F24": {Name: "Application Expiration Date"},
	"5F25": {Name: "Application Effective Date"},
	"5F28": {Name: "Issuer Country Code"},
	"5F2A": {Name: "Transaction Currency Code"},
	"5F2D": {Name: "Language Preference"},
	"5F30": {Name: "Service Code", Decode: decodeServiceCode},
	"5F34": {Name: "Application Primary Account Number (PAN) Sequence Number"},
	"5F36": {Name: "Transaction Currency Exponent"},
	"5F50": {Name: "Issuer URL"},
	"5F53": {Name: "International Bank Account Number (IBAN)"},
	"5F54": {Name: "Bank Identifier Code (BIC)"},
	"5F55": {Name: "Issuer Country Code (alpha2 format)"},
	"5F56": {Name: "Issuer Country Code (alpha3 format)"},
	"5F57": {Name: "Account Type"},
	"61":   {Name: "Application Template"},
	"6F":   {Name: "File Control Information (FCI) Template"},
	"70":   {Name: "READ RECORD Response Message Template"},
	"71":   {Name: "Issuer Script Template 1"},
	"72":   {Name: "Issuer Script Template 2"},
	"73":   {Name: "Directory Discretionary Template"},
	"77":   {Name: "Response Message Template Format 2"},
	"80":   {Name: "Response Message Template Format 1"},
	"81":   {Name: "Amount, Authorised (Binary)"},
	"82":   {Name: "Application Interchange Profile"},
	"83":   {Name: "Command Template"},
	"84":   {Name: "Dedicated File (DF) Name"},
	"86":   {Name: "Issuer Script Command"},
	"87":   {Name: "Application Priority Indicator"},
	"88":   {Name: "Short File Identifier (SFI)"},
	"89":   {Name: "Authorisation Code"},
	"8A": {
		Name:             "Authorisation Response Code",
		UnrecognisedName: "Authorisation Response Code (Unrecognised - likely payment system-specific)",
		Decode:           decodeAuthResponseCode,
	},
	"8C": {Name: "Card Risk Management Data Object List 1 (CDOL1)"},
	"8D": {Name: "Card Risk Management Data Object List 2 (CDOL2)"},
	"8E": {Name: "CVM List", Decode: decodeCVMList},
	"8F": {Name: "Certification Authority Public Key Index (ICC)"},
	"90": {Name: "Issuer Public Key Certificate"},
	"91": {Name: "Issuer Authentication Data"},
	"92": {Name: "Issuer Public Key Remainder"},
	"93": {Name: "Signed Static Application Data"},
	"94": {Name: "Application File Locator (AFL)"},
	"95": {Name: "Terminal Verification Results (TVR)", Decode: spec(tvrSpec)},
	"97": {Name: "Transaction Certificate Data Object List (TDOL)"},
	"98": {Name: "Transaction Certificate (TC) Hash Value"},
	"99": {Name: "Transaction PIN Data"},
	"9A": {Name: "Transaction Date"},
	"9B": {Name: "Transaction Status Information (TSI)", Decode: spec(tsiSpec)},
	"9C": {
		Name:             "Transaction Type",
		UnrecognisedName: "Transaction Type (Unrecognised - likely payment system-specific)",
		Decode:           decodeTransactionType,
	},
	"9D":   {Name: "Directory Definition File (DDF) Name"},
	"9F01": {Name: "Acquirer Identifier"},
	"9F02": {Name: "Amount, Authorised (Numeric)"},
	"9F03": {Name: "Amount, Other (Numeric)"},
	"9F04": {Name: "Amount, Other (Binary)"},
	"9F05": {Name: "Application Discretionary Data"},
	"9F06": {Name: "Application Identifier (AID)"},
	"9F07": {Name: "Application Usage Control"},
	"9F08": {Name: "Application Version Number (ICC)"},
	"9F09": {Name: "Application Version Number (Terminal)"},
	"9F0B": {Name: "Cardholder Name Extended"},
	"9F0D": {Name: "Issuer Action Code - Default", Decode: spec(iacDefaultSpec)},
	"9F0E": {Name: "Issuer Action Code - Denial", Decode: spec(iacDenialSpec)},
	"9F0F": {Name: "Issuer Action Code - Online", Decode: spec(iacOnlineSpec)},
	"9F10": {
		Name:             "Issuer Application Data (CCD-Compliant)",
		UnrecognisedName: "Issuer Application Data (Not CCD-Compliant)",
		Decode:           decodeIssuerApplicationData,
	},
	"9F11": {Name: "Issuer Code Table Index"},
	"9F12": {Name: "Application Preferred Name"},
	"9F13": {Name: "Last Online Application Transaction Counter (ATC) Register"},
	"9F14": {Name: "Lower Consecutive Offline Limit"},
	"9F15": {Name: "Merchant Category Code"},
	"9F16": {Name: "Merchant Identifier"},
	"9F17": {Name: "PIN Try Counter"},
	"9F18": {Name: "Issuer Script Identifier"},
	"9F1A": {Name: "Terminal Country Code"},
	"9F1B": {Name: "Terminal Floor Limit"},
	"9F1C": {Name: "Terminal Identification"},
	"9F1D": {Name: "Terminal Risk Management Data"},
	"9F1E": {Name: "Interface Device (IFD/Terminal) Serial Number"},
	"9F1F": {Name: "Track 1 Discretionary Data"},
	"9F20": {Name: "Track 2 Discretionary Data"},
	"9F21": {Name: "Transaction Time"},
	"9F22": {Name: "Certification Authority Public Key Index (Terminal)"},
	"9F23": {Name: "Upper Consecutive Offline Limit"},
	"9F26": {Name: "Application Cryptogram"},
	"9F27": {Name: "Cryptogram Information Data (CID)"},
	"9F2D": {Name: "ICC PIN Encipherment Public Key Certificate"},
	"9F2E": {Name: "ICC PIN Encipherment Public Key Exponent"},
	"9F2F": {Name: "ICC PIN Encipherment Public Key Remainder"},
	"9F32": {Name: "Issuer Public Key Exponent"},
	"9F33": {Name: "Terminal Capabilities", Decode: spec(terminalCapsSpec)},
	"9F34": {Name: "CVM Results", Decode: decodeCVMResults},
	"9F35": {Name: "Terminal Type", Decode: decodeTerminalType},
	"9F36": {Name: "Application Transaction Counter (ATC)"},
	"9F37": {Name: "Unpredictable Number"},
	"9F38": {Name: "Processing Options Data Object List (PDOL)"},
	"9F39": {Name: "POS Entry Mode", Decode: decodePOSEntryMode},
	"9F3A": {Name: "Amount, Reference Currency (Binary)"},
	"9F3B": {Name: "Application Reference Currency"},
	"9F3C": {Name: "Transaction Reference Currency Code"},
	"9F3D": {Name: "Transaction Reference Currency Exponent"},
	"9F40": {Name: "Additional Terminal Capabilities", Decode: spec(additionalCapsSpec)},
	"9F41": {Name: "Transaction Sequence Counter"},
	"9F42": {Name: "Application Currency Code"},
	"9F43": {Name: "Application Reference Currency Exponent"},
	"9F44": {Name: "Application Currency Exponent"},
	"9F45": {Name: "Data Authentication Code"},
	"9F46": {Name: "ICC Public Key Certificate"},
	"9F47": {Name: "ICC Public Key Exponent"},
	"9F48": {Name: "ICC Public Key Remainder"},
	"9F49": {Name: "Dynamic Data Authentication Data Object List (DDOL)"},
	"9F4A": {Name: "Static Data Authentication Tag List"},
	"9F4B": {Name: "Signed Dynamic Application Data"},
	"9F4C": {Name: "ICC Dynamic Number"},
	"9F4D": {Name: "Log Entry"},
	"9F4E": {Name: "Merchant Name and Location"},
	"9F4F": {Name: "Log Format"},
	"A5":   {Name: "File Control Information (FCI) Proprietary Template"},
	"BF0C": {Name: "File Control Information (FCI) Issuer Discretionary Data"},
}
