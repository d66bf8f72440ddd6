package errorz

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError blocks a wizard transition with a user-facing message.
// It is recoverable by correcting the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AsValidation unwraps a validation error if the chain carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
