package validators

import (
	"errors"
	"strings"
)

// ErrUnsupportedType is returned by [Validator.Validate] when the supplied
// object does not match any model type known to the validator.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationError carries the ordered list of user-facing field messages
// produced by a failed validation pass. The messages are product-facing
// contract strings and must be reproduced verbatim in API responses.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface by joining all field messages.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationError unwraps err as a *ValidationError.
// Returns nil when err does not carry one.
func AsValidationError(err error) *ValidationError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	return nil
}
