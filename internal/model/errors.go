package model

// ErrorKind classifies a validation failure.
// Keep these values stable; they are returned verbatim as machine-readable
// error codes by the API and tool surfaces.
type ErrorKind string

const (
	KindMissingField ErrorKind = "MISSING_FIELD"
	KindOutOfRange   ErrorKind = "OUT_OF_RANGE"
	KindInvalidTime  ErrorKind = "INVALID_TIME"
)

// ValidationError reports one rejected input field. All validation failures
// are user-correctable; callers translate them into a form message, an error
// payload, or a CLI message, never a crash.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(kind ErrorKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

// MissingFieldError builds the error used by decoding boundaries when a
// required numeric field is absent or not a number. The engine itself never
// sees absent fields (a typed request has Go zero values), so this kind is
// produced where text or JSON is coerced into a ConversionRequest.
func MissingFieldError(field, message string) *ValidationError {
	return newValidationError(KindMissingField, field, message)
}
