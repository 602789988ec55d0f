package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidInput    = errors.New("invalid input")
	ErrStorage         = errors.New("storage error")
)

// QuotaExceededError rejects a translation before the provider is called.
type QuotaExceededError struct {
	Remaining int
	Required  int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly quota exceeded: %d tokens remaining, %d required", e.Remaining, e.Required)
}

// GatewayError reports a failure of the upstream translation provider.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
		Code:    "INTERNAL_ERROR",
	}
}
