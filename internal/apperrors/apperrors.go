package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrReferenceNotFound = errors.New("referenced resource not found")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")
)

type UserAlreadyExistsError struct{ Username, Email string }

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user with username '%s' or email '%s' already exists", e.Username, e.Email)
}
func (e *UserAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// NotFoundError names the kind and identifier of a missing record.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id '%d' not found", e.Kind, e.ID)
}
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
