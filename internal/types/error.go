package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	NotFound             ErrorCode = "NOT_FOUND"
	BadRequest           ErrorCode = "BAD_REQUEST"
	Unauthorized         ErrorCode = "UNAUTHORIZED"
	Forbidden            ErrorCode = "FORBIDDEN"
	AlreadyInitialized   ErrorCode = "ALREADY_INITIALIZED"
	TransferFailed       ErrorCode = "TRANSFER_FAILED"
	TotalRaisedOverflow  ErrorCode = "TOTAL_RAISED_OVERFLOW"
	ClockUnavailable     ErrorCode = "CLOCK_UNAVAILABLE"
	InvocationReplayed   ErrorCode = "INVOCATION_REPLAYED"
)

// Error is the error type returned by the service layer. It carries the
// status the API surfaces to the caller.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return &Error{
		Err:        errors.New(msg),
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
	}
}

func NewValidationFailedError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusBadRequest,
		ErrorCode:  ValidationError,
	}
}

// AsError unwraps err into *Error. Anything that is not already an *Error is
// reported as an internal service error.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return NewInternalServiceError(err)
}

// HasCode reports whether err is an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.ErrorCode == code
	}
	return false
}
