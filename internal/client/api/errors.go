package api

import (
	"errors"
	"fmt"
)

// ErrNoCredentials is returned when an authorized call is attempted without a
// stored token.
var ErrNoCredentials = errors.New("no authentication token found")

// Kind classifies an API failure. The original client collapsed all four into
// one untyped message; keeping the kind lets callers decide between surfacing,
// rollback, and forced logout.
type Kind int

const (
	// KindUnknown means the error did not come from this package.
	KindUnknown Kind = iota
	// KindTransport covers network failures and request timeouts.
	KindTransport
	// KindStatus covers non-2xx HTTP responses.
	KindStatus
	// KindPayload covers 2xx responses whose envelope reports success:false
	// or cannot be decoded.
	KindPayload
	// KindCredentials covers authorized calls made without a stored token.
	KindCredentials
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindPayload:
		return "payload"
	case KindCredentials:
		return "credentials"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the REST client. Message holds
// the backend's human-readable message when the response body carried one.
type Error struct {
	Kind    Kind
	Status  int // HTTP status, set for KindStatus
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return fmt.Sprintf("request failed (%s)", e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the Kind from err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	if errors.Is(err, ErrNoCredentials) {
		return KindCredentials
	}
	return KindUnknown
}

func transportErr(err error) *Error {
	return &Error{Kind: KindTransport, cause: err}
}

func statusErr(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &Error{Kind: KindStatus, Status: status, Message: message}
}

func payloadErr(message string, cause error) *Error {
	return &Error{Kind: KindPayload, Message: message, cause: cause}
}

func credentialsErr() *Error {
	return &Error{Kind: KindCredentials, Message: ErrNoCredentials.Error(), cause: ErrNoCredentials}
}
