package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestStruct struct {
	ID       int64  `validate:"required,gt=0"`
	Status   string `validate:"omitempty,defect_status"`
	Severity string `validate:"omitempty,defect_severity"`
	Priority int    `validate:"omitempty,min=1,max=5"`
}

func TestValidateStruct(t *testing.T) {
	testCases := []struct {
		name             string
		input            TestStruct
		expectError      bool
		expectedErrorMsg string
	}{
		{
			name:        "Success: All fields are valid",
			input:       TestStruct{ID: 1, Status: "In Progress", Severity: "Critical", Priority: 5},
			expectError: false,
		},
		{
			name:        "Success: Optional fields empty",
			input:       TestStruct{ID: 3},
			expectError: false,
		},
		{
			name:             "Failure: Missing ID",
			input:            TestStruct{},
			expectError:      true,
			expectedErrorMsg: "field 'ID' failed on the 'required' tag",
		},
		{
			name:             "Failure: Unknown status",
			input:            TestStruct{ID: 1, Status: "open"},
			expectError:      true,
			expectedErrorMsg: "field 'Status' must be one of: Open, In Progress, Fixed, Closed, Reopened",
		},
		{
			name:             "Failure: Unknown severity",
			input:            TestStruct{ID: 1, Severity: "Blocker"},
			expectError:      true,
			expectedErrorMsg: "field 'Severity' must be one of: Low, Medium, High, Critical",
		},
		{
			name:             "Failure: Priority out of range",
			input:            TestStruct{ID: 1, Priority: 9},
			expectError:      true,
			expectedErrorMsg: "field 'Priority' failed on the 'max' tag",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.input)

			if tc.expectError {
				assert.Error(t, err)
				require.IsType(t, &ValidationError{}, err, "error should be of type ValidationError")
				verr := err.(*ValidationError)
				assert.Contains(t, verr.Error(), tc.expectedErrorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []string{"error 1", "error 2"},
	}
	assert.Equal(t, "error 1, error 2", err.Error())
}
