package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")
var ErrorUnauthorized = errors.New("unauthorized")
var ErrorAdminRequired = errors.New("admin role required")

// InputError marks a rejected request: failed validation, a business rule,
// a malformed filter. Anything else bubbling out of the models is treated
// as a server fault.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func NewInputError(message string) error {
	return &InputError{Message: message}
}
