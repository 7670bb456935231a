package services

// ValidationError reports malformed input or a violated business rule.
// The boundary maps it to a 400; anything else coming out of a service
// is treated as a store failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
