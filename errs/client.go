package errs

import (
	"errors"
	"fmt"
)

// Common error sentinel values
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrRequestFailed   = errors.New("request failed")
	ErrNetwork         = errors.New("network error")
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("operation not allowed")
)

type ClientErr struct {
	StatusCode int // HTTP status from the backend, 0 when no response arrived
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ClientErr as an argument of type `error`
func (e *ClientErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ClientErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if clientErr, ok := e.Cause.(*ClientErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, clientErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ClientErr{err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ClientErr) Unwrap() error {
	return e.err
}

// Message returns the text suitable for a user-facing notification: the
// server-provided or validation detail when present, the sentinel text
// otherwise.
func (e *ClientErr) Message() string {
	if e.Details != "" {
		return e.Details
	}
	return e.err.Error()
}

// NewUnauthenticated reports an action attempted without a session. No
// request is issued for these; they are resolved locally.
func NewUnauthenticated(action string) *ClientErr {
	return &ClientErr{
		err:     ErrUnauthenticated,
		Details: fmt.Sprintf("Please login to %s", action),
	}
}

// NewRequestFailed wraps a non-2xx response. serverMsg is the message the
// backend put in the response body; fallback is used when the body carried
// none.
func NewRequestFailed(statusCode int, serverMsg, fallback string) *ClientErr {
	details := serverMsg
	if details == "" {
		details = fallback
	}
	return &ClientErr{
		StatusCode: statusCode,
		err:        ErrRequestFailed,
		Details:    details,
	}
}

// NewNetworkError wraps a request that never produced a response.
func NewNetworkError(operation string, cause error) *ClientErr {
	return &ClientErr{
		err:     ErrNetwork,
		Details: fmt.Sprintf("Failed to %s", operation),
		Cause:   cause,
	}
}

// NewDecodeError reports a response that arrived with a success status but
// whose body could not be decoded. The request itself completed, so this is
// a failed request, not a network error.
func NewDecodeError(statusCode int, operation string, cause error) *ClientErr {
	return &ClientErr{
		StatusCode: statusCode,
		err:        ErrRequestFailed,
		Details:    fmt.Sprintf("Failed to %s", operation),
		Cause:      cause,
	}
}

func NewValidationError(field, reason string) *ClientErr {
	return &ClientErr{
		err:     ErrValidation,
		Details: reason,
		Field:   field,
	}
}

func NewNotFound(entity string) *ClientErr {
	return &ClientErr{
		StatusCode: 404,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

func IsRequestFailed(err error) bool {
	return errors.Is(err, ErrRequestFailed)
}

func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// UserMessage extracts the notification text from any error. Non-ClientErr
// values fall back to their plain Error string.
func UserMessage(err error) string {
	var clientErr *ClientErr
	if errors.As(err, &clientErr) {
		return clientErr.Message()
	}
	return err.Error()
}
