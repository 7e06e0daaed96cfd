package domain

import (
	"strings"

	"github.com/YusovID/defect-tracker/internal/apperrors"
)

// ValidationResult reports whether a record is well-formed. Errors keeps the
// order in which the checks ran.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func newValidationResult(errs []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Err converts a failed result into a *ValidationFailure and returns nil for
// a valid one.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}

	return &ValidationFailure{Errors: r.Errors}
}

// ValidationFailure carries the violation messages of a rejected record.
type ValidationFailure struct {
	Errors []string
}

func (e *ValidationFailure) Error() string {
	return strings.Join(e.Errors, ", ")
}

func (e *ValidationFailure) Is(target error) bool { return target == apperrors.ErrValidation }

func oneOfMessage[T ~string](field string, values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return field + " must be one of: " + strings.Join(parts, ", ")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
