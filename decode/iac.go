package decode

// Issuer Action Codes, tags 9F0D/9F0E/9F0F. Each shares the TVR bit layout
// but lists conditions the issuer wants checked rather than events that
// occurred, so the severities are suppressed. The label carries the action
// the terminal takes when a listed bit matches the TVR.
var (
	iacDefaultSpec = tvrSpec.Checklist(
		"If not an online transaction and any of the following match the TVR, reject the transaction")
	iacDenialSpec = tvrSpec.Checklist(
		"If any of the following match the TVR, deny the transaction without even going online")
	iacOnlineSpec = tvrSpec.Checklist(
		"If any of the following match the TVR, complete the transaction online")
)
