// Package error defines domain-specific errors for the Wealth Tracker application.
package error

import "errors"

// Prediction domain errors.
var (
	// ErrInvalidTargetMonth is returned when the target month is not in YYYY-MM format.
	ErrInvalidTargetMonth = errors.New("invalid target month")

	// ErrMissingPredictionKey is returned when a dismissal request carries no prediction key.
	ErrMissingPredictionKey = errors.New("prediction key is required")

	// ErrInvalidRecurrenceType is returned when the recurrence type is not recognized.
	ErrInvalidRecurrenceType = errors.New("invalid recurrence type")
)

// PredictionErrorCode defines error codes for prediction errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type PredictionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetMonth    PredictionErrorCode = "PRD-010001"
	ErrCodeMissingPredictionKey  PredictionErrorCode = "PRD-010002"
	ErrCodeInvalidRecurrenceType PredictionErrorCode = "PRD-010003"

	// Persistence errors (02XXXX)
	ErrCodeDismissalPersistence PredictionErrorCode = "PRD-020001"
)

// PredictionError represents a prediction error with code and message.
type PredictionError struct {
	Code    PredictionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PredictionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PredictionError) Unwrap() error {
	return e.Err
}

// NewPredictionError creates a new PredictionError with the given code and message.
func NewPredictionError(code PredictionErrorCode, message string, err error) *PredictionError {
	return &PredictionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
