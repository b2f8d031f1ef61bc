package service

import (
	"errors"
	"fmt"
)

// ValidationError marks user-correctable input problems. Handlers map it to
// a 400 with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var ErrInvalidCredentials = errors.New("invalid credentials")
