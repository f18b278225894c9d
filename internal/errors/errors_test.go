package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/systmms/paramstore/internal/errors"
)

// TestUserErrorFormatting verifies UserError displays properly
func TestUserErrorFormatting(t *testing.T) {
	t.Parallel()

	err := errors.UserError{
		Message:    "Operation failed",
		Details:    "Connection timeout",
		Suggestion: "Check network connectivity",
	}

	errMsg := err.Error()

	assert.Contains(t, errMsg, "Operation failed")
	assert.Contains(t, errMsg, "Connection timeout")
	assert.Contains(t, errMsg, "Check network connectivity")
	assert.Contains(t, errMsg, "💡")
}

// TestUserErrorUnwrap verifies the wrapped cause stays reachable
func TestUserErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("underlying failure")
	err := errors.UserError{
		Message: "Operation failed",
		Err:     cause,
	}

	assert.Equal(t, cause, err.Unwrap())
}

// TestConfigErrorFormatting verifies ConfigError displays with context
func TestConfigErrorFormatting(t *testing.T) {
	t.Parallel()

	err := errors.ConfigError{
		Field:      "region",
		Value:      "eu-invalid-7",
		Message:    "Unknown AWS region",
		Suggestion: "Use a region like eu-central-1",
	}

	errMsg := err.Error()

	assert.Contains(t, errMsg, "region")
	assert.Contains(t, errMsg, "eu-invalid-7")
	assert.Contains(t, errMsg, "Unknown AWS region")
	assert.Contains(t, errMsg, "eu-central-1")
}

// TestBackendSuggestion verifies the error-to-suggestion mapping
func TestBackendSuggestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "access denied",
			err:      fmt.Errorf("AccessDeniedException: not authorized"),
			contains: "IAM permissions",
		},
		{
			name:     "throttling",
			err:      fmt.Errorf("ThrottlingException: rate exceeded"),
			contains: "throttled",
		},
		{
			name:     "bad kms key",
			err:      fmt.Errorf("InvalidKeyId: key does not exist"),
			contains: "KMS key",
		},
		{
			name:     "missing credentials",
			err:      fmt.Errorf("failed to retrieve credentials"),
			contains: "aws configure",
		},
		{
			name:     "anything else",
			err:      fmt.Errorf("internal server error"),
			contains: "Check AWS credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, errors.BackendSuggestion(tt.err), tt.contains)
		})
	}
}
