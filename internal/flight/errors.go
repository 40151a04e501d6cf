package flight

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrorCodeMissingField     ErrorCode = "MISSING_FIELD"
	ErrorCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrorCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrorCodeDateInPast       ErrorCode = "DATE_IN_PAST"
	ErrorCodeSameAirport      ErrorCode = "SAME_AIRPORT"
	ErrorCodeInvalidTripType  ErrorCode = "INVALID_TRIP_TYPE"
	ErrorCodeInvalidPassenger ErrorCode = "INVALID_PASSENGERS"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeInternalFailure  ErrorCode = "INTERNAL_FAILURE"
)

// ValidationError rejects a search submission before any provider call.
type ValidationError struct {
	Code  ErrorCode
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Is matches on Code so callers can write errors.Is(err, ErrMissingField).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code && (t.Field == "" || t.Field == e.Field)
}

var (
	ErrMissingField     = &ValidationError{Code: ErrorCodeMissingField}
	ErrInvalidDateRange = &ValidationError{Code: ErrorCodeInvalidDateRange}
	ErrInvalidDate      = &ValidationError{Code: ErrorCodeInvalidDate}
	ErrDateInPast       = &ValidationError{Code: ErrorCodeDateInPast}
	ErrSameAirport      = &ValidationError{Code: ErrorCodeSameAirport}
	ErrInvalidTripType  = &ValidationError{Code: ErrorCodeInvalidTripType}
	ErrInvalidPassenger = &ValidationError{Code: ErrorCodeInvalidPassenger}
)

func missingField(field string) *ValidationError {
	return &ValidationError{Code: ErrorCodeMissingField, Field: field, Msg: "is required"}
}

// AppError carries an HTTP status for the handler layer.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func newAppError(status int, code ErrorCode, msg string) *AppError {
	return &AppError{Status: status, Code: code, Message: msg}
}

// ErrSessionNotFound is returned for unknown or already closed sessions.
var ErrSessionNotFound = newAppError(http.StatusNotFound, ErrorCodeNotFound, "session not found")
