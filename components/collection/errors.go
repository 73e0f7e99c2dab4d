package collection

import "errors"

var (
	// ErrNoDraft is returned when a draft operation runs while the session is idle.
	ErrNoDraft = errors.New("collection: no draft in progress")
	// ErrUnknownField is returned for fields the entity does not expose.
	ErrUnknownField = errors.New("collection: unknown field")
	// ErrInvalidValue is returned when a transition value is outside the entity enum.
	ErrInvalidValue = errors.New("collection: invalid field value")
)

// ValidationError carries the single human-readable message produced when a
// draft fails validation on commit.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
