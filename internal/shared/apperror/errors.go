// Package apperror defines the error kinds shared by every feature and the
// HTTP status each kind maps to.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Concrete errors wrap exactly one of these so callers can
// classify them with errors.Is.
var (
	// ErrMissingParameter is returned when a required input is absent.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidParameter is returned when an input is present but unusable.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnauthenticated is returned when the bearer token is absent or rejected.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrConflict is returned when the store rejects a duplicate row.
	ErrConflict = errors.New("conflict")

	// ErrUpstreamDataShape is returned when an upstream payload does not
	// match the schema we decode it into.
	ErrUpstreamDataShape = errors.New("unexpected upstream data shape")

	// ErrUpstream is returned for any other failure talking to an upstream API.
	ErrUpstream = errors.New("upstream request failed")

	// ErrStore is returned for any other failure talking to the store.
	ErrStore = errors.New("store request failed")
)

// Error carries a kind, the message that is safe to show to clients and
// the underlying cause (never shown).
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// New creates an Error of the given kind with a public message.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind that keeps cause for logging.
func Wrap(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// UpstreamError describes a non-success answer from an upstream provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s http %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s http %d: %s", e.Provider, e.StatusCode, e.Message)
}

// Unwrap classifies every UpstreamError as ErrUpstream.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// StatusCode maps an error to the HTTP status of its kind.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingParameter), errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUpstreamDataShape):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that may be sent to a client.
// Causes, upstream bodies and store errors stay in the logs.
func PublicMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	switch {
	case errors.Is(err, ErrUpstream):
		return "upstream request failed"
	case errors.Is(err, ErrStore):
		return "server error"
	case errors.Is(err, ErrUpstreamDataShape):
		return "unexpected upstream data"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	default:
		return "server error"
	}
}
