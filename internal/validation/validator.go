// Package validation checks transport-level request data (path and query
// parameters) with go-playground/validator. Record contents are validated by
// the domain package.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	rules := map[string]validator.Func{
		"defect_status": func(fl validator.FieldLevel) bool {
			return slices.Contains(domain.Statuses, domain.Status(fl.Field().String()))
		},
		"defect_severity": func(fl validator.FieldLevel) bool {
			return slices.Contains(domain.Severities, domain.Severity(fl.Field().String()))
		},
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register custom validation %q: %v", tag, err))
		}
	}
}

// ValidationError holds one message per failed field.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateStruct runs the validate tags of s and returns a *ValidationError
// describing every failure.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate struct: %w", err)
	}

	messages := make([]string, 0, len(fieldErrors))

	for _, fe := range fieldErrors {
		var message string

		switch fe.Tag() {
		case "defect_status":
			message = fmt.Sprintf("field '%s' must be one of: %s", fe.Field(), joinValues(domain.Statuses))
		case "defect_severity":
			message = fmt.Sprintf("field '%s' must be one of: %s", fe.Field(), joinValues(domain.Severities))
		default:
			message = fmt.Sprintf("field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}

		messages = append(messages, message)
	}

	return &ValidationError{Errors: messages}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return strings.Join(parts, ", ")
}
