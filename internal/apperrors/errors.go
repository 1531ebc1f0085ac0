package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies every error produced by this layer so call sites can pick
// the right user-facing treatment without inspecting concrete types.
type Kind int

const (
	// KindUnexpected covers network failures, undecodable responses and
	// anything else that cannot be attributed to the caller or the server.
	KindUnexpected Kind = iota
	// KindValidation covers input rejected before dispatch, including local
	// authorization gates. Validation errors never reach the network.
	KindValidation
	// KindTransport covers structured failures returned by the API; the
	// server-supplied message is surfaced to the user verbatim.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	default:
		return "unexpected"
	}
}

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrForbidden indicates the acting user lacks the capability for an action.
var ErrForbidden = errors.New("action not permitted")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrSessionUnresolved indicates the identity fetch has not completed yet.
var ErrSessionUnresolved = errors.New("session not resolved")

// Error carries a classified failure plus the message intended for the user.
type Error struct {
	Kind    Kind
	Message string // user-facing; server-supplied for KindTransport
	Err     error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a pre-dispatch rejection wrapping cause (may be nil).
func Validation(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: cause}
}

// Transport builds an error from a structured API failure message.
func Transport(message string, cause error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: cause}
}

// Unexpected builds an error for unclassified failures.
func Unexpected(message string, cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: cause}
}

// KindOf returns the classification of err, defaulting to KindUnexpected for
// errors that did not originate in this layer.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrForbidden) || errors.Is(err, ErrSessionUnresolved) {
		return KindValidation
	}
	return KindUnexpected
}

// UserMessage returns the notice to show for err: the carried message for
// classified errors, fallback otherwise. Unexpected errors always get the
// fallback so raw internals never leak into the UI.
func UserMessage(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindUnexpected && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
