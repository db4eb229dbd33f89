package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/workout"
)

// CodeUnknownMethod is returned for calls naming no registered tool.
const CodeUnknownMethod = "UNKNOWN_METHOD"

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the stable error code.
func (e *APIError) ErrorCode() string {
	return e.Code
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, workout.ErrEmptySession):
		return &APIError{Code: "EMPTY_SESSION", Message: "enter at least one exercise", RecoveryHint: "Give at least one exercise a name"}
	case errors.Is(err, workout.ErrInvalidDate):
		return &APIError{Code: "INVALID_DATE", Message: "date must be YYYY-MM-DD", RecoveryHint: "Omit the date to log today"}
	case errors.Is(err, workout.ErrEntryNotFound):
		return &APIError{Code: "ENTRY_NOT_FOUND", Message: "entry not found", RecoveryHint: "Call list_entries for valid IDs"}
	case errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid activity query", RecoveryHint: "Limit and offset must be non-negative"}
	case errors.Is(err, errInvalidParams):
		return &APIError{Code: "INVALID_PARAMS", Message: err.Error()}
	default:
		return nil
	}
}
