package rest

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classes a status code can map to.
type ErrorKind int

const (
	KindUnknownStatus ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInternal
)

// String returns the snake_case name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown_status"
	}
}

// StatusError is returned when a response carries a status code that is not
// a success. Body holds the raw payload for diagnostics; it is never decoded.
type StatusError struct {
	Kind       ErrorKind
	StatusCode int
	Body       []byte
}

func newStatusError(kind ErrorKind, code int) *StatusError {
	return &StatusError{Kind: kind, StatusCode: code}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rest: %s (status %d)", e.Kind, e.StatusCode)
}

// EncodeError wraps a failure to serialize a request body. No request was sent.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "rest: encode request body: " + e.Err.Error() }
func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError wraps a failure to parse a response body as JSON.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string { return "rest: decode response body: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind of a status error and whether err was one.
func KindOf(err error) (ErrorKind, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

func isKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsBadRequest checks if the error is a 400 Bad Request.
func IsBadRequest(err error) bool { return isKind(err, KindBadRequest) }

// IsUnauthorized checks if the error is a 401 Unauthorized.
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }

// IsForbidden checks if the error is a 403 Forbidden.
func IsForbidden(err error) bool { return isKind(err, KindForbidden) }

// IsNotFound checks if the error is a 404 Not Found.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsInternal checks if the error is a 500 Internal Server Error.
func IsInternal(err error) bool { return isKind(err, KindInternal) }

// IsUnknownStatus checks if the error is a status code outside the known set.
func IsUnknownStatus(err error) bool { return isKind(err, KindUnknownStatus) }

// IsDecode checks if the error is a response body parse failure.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsEncode checks if the error is a request body serialization failure.
func IsEncode(err error) bool {
	var ee *EncodeError
	return errors.As(err, &ee)
}
