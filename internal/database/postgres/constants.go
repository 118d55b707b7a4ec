package postgres

// Log messages
const (
	LogMsgSkippingMalformedProfile = "Skipping malformed profile document"
)
