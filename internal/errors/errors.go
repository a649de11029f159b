package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeConfiguration ErrCode = "CONFIGURATION_ERROR"
	ErrCodeFetch         ErrCode = "FETCH_ERROR"
	ErrCodeParse         ErrCode = "PARSE_ERROR"
	ErrCodeNotFound      ErrCode = "NOT_FOUND"
)

// AppError represents an application error. StatusCode and Reason are only
// set for fetch errors caused by a non-success upstream response.
type AppError struct {
	Code       ErrCode
	Message    string
	StatusCode int
	Reason     string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates an error for a missing or invalid setting
func NewConfigurationError(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

// NewFetchError creates an error for a non-success upstream response
func NewFetchError(statusCode int, reason string) *AppError {
	return &AppError{
		Code:       ErrCodeFetch,
		Message:    fmt.Sprintf("failed to fetch data: %d %s", statusCode, reason),
		StatusCode: statusCode,
		Reason:     reason,
	}
}

// NewNetworkError creates a fetch error for a request that never got a response
func NewNetworkError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeFetch,
		Message: "failed to fetch data",
		Err:     err,
	}
}

// NewParseError creates an error for a malformed upstream response
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsFetch checks if the error is a fetch error
func IsFetch(err error) bool {
	return hasCode(err, ErrCodeFetch)
}

// IsParse checks if the error is a parse error
func IsParse(err error) bool {
	return hasCode(err, ErrCodeParse)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

func hasCode(err error, code ErrCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
