package controller

// GenericErrorMessage is sent for unexpected errors with no translation.
const GenericErrorMessage = "Something went very wrong!"

// ErrorMessages maps raw error text to the message shown to clients.
type ErrorMessages map[string]string

// DefaultErrorMessages holds the translations every deployment gets.
var DefaultErrorMessages = ErrorMessages{
	"jwt expired": "Token has expired",
}

// With returns a copy of m extended by extra. Entries in extra win.
func (m ErrorMessages) With(extra map[string]string) ErrorMessages {
	merged := make(ErrorMessages, len(m)+len(extra))
	for raw, msg := range m {
		merged[raw] = msg
	}
	for raw, msg := range extra {
		merged[raw] = msg
	}
	return merged
}

// Resolve returns the translation for raw, or GenericErrorMessage.
func (m ErrorMessages) Resolve(raw string) string {
	if msg, ok := m[raw]; ok && raw != "" {
		return msg
	}
	return GenericErrorMessage
}
