// Package apperror defines the typed errors the service layer returns.
//
// Each error carries a kind and the HTTP status it maps to, so the API layer
// can translate failures without string matching. None of these errors are
// retried internally; callers decide.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a service failure.
type Kind int

const (
	// KindNotFound: a referenced group, profile, asset or transaction does
	// not exist, or a group has no members.
	KindNotFound Kind = iota

	// KindInvalidInput: the caller supplied bad data (non-positive amount,
	// missing id, malformed date, unknown enum value).
	KindInvalidInput

	// KindDataIntegrity: persisted data violates an invariant (unparseable
	// date feeding depreciation, unknown transaction kind in storage).
	KindDataIntegrity

	// KindTransactionFailure: an atomic multi-write commit failed and was
	// rolled back; no partial state survives.
	KindTransactionFailure
)

// Error is a service-level failure with a client-visible message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for this error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput builds a KindInvalidInput error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// DataIntegrity builds a KindDataIntegrity error wrapping cause.
func DataIntegrity(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindDataIntegrity, Message: fmt.Sprintf(format, args...), Err: cause}
}

// TransactionFailure builds a KindTransactionFailure error wrapping cause.
func TransactionFailure(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindTransactionFailure, Message: fmt.Sprintf(format, args...), Err: cause}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
