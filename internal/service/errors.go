package service

import (
	"errors"

	"github.com/GiannisClipper/payments/internal/validate"
)

// ValidationError carries the merged field/uniqueness/integrity error map
// of one validation pass. It is the only error class that accumulates;
// the fatal ones below short-circuit.
type ValidationError struct {
	Errors validate.Errors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return "Not found."
}

type ForbiddenError struct{}

func (e *ForbiddenError) Error() string {
	return "No permission to access data."
}

// ErrCredentialsMismatch means the username/password re-submitted for a
// destructive self-service action did not match the stored credentials.
var ErrCredentialsMismatch = errors.New("Wrong credentials.")

func validationError(key, msg string) *ValidationError {
	errs := validate.Errors{}
	errs.Add(key, msg)
	return &ValidationError{Errors: errs}
}
