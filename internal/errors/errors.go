package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy for the console core. Every failure a caller can see
// unwraps to exactly one of these sentinels, so callers branch with
// errors.Is instead of probing messages.
var (
	// ErrValidation is a local failure; requests that fail validation
	// never reach the network.
	ErrValidation = errors.New("validation failed")

	// ErrSessionExpired is the 401 path: the gateway has already cleared
	// the credential store and fired the session-invalidated hook by the
	// time a caller sees this.
	ErrSessionExpired = errors.New("session expired")

	// ErrRequestFailed covers every other non-success response, plus
	// success responses whose payload cannot be decoded.
	ErrRequestFailed = errors.New("request failed")

	// ErrNetworkFailure is a transport-level failure with no response.
	// Absence of a response is not proof of bad credentials, so the
	// session is never cleared on this path.
	ErrNetworkFailure = errors.New("network failure")
)

// RequestError carries the remote status and the server-supplied message
// for a failed call. It unwraps to ErrRequestFailed.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

// ValidationError reports which field failed local validation.
// It unwraps to ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
