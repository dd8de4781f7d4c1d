package rest

import "net/http"

// Status is the semantic outcome of a successful exchange.
type Status int

const (
	StatusOK Status = iota + 1
	StatusCreated
	StatusAccepted
	StatusNoContent
)

// String returns ok, created, accepted or no-content.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCreated:
		return "created"
	case StatusAccepted:
		return "accepted"
	case StatusNoContent:
		return "no-content"
	default:
		return "unknown"
	}
}

// Classify maps an HTTP status code to a Status. Only 200, 201, 202 and 204
// succeed; every other code returns a *StatusError and the caller must not
// interpret the response body as data.
func Classify(code int) (Status, error) {
	switch code {
	case http.StatusOK:
		return StatusOK, nil
	case http.StatusCreated:
		return StatusCreated, nil
	case http.StatusAccepted:
		return StatusAccepted, nil
	case http.StatusNoContent:
		return StatusNoContent, nil
	case http.StatusBadRequest:
		return 0, newStatusError(KindBadRequest, code)
	case http.StatusUnauthorized:
		return 0, newStatusError(KindUnauthorized, code)
	case http.StatusForbidden:
		return 0, newStatusError(KindForbidden, code)
	case http.StatusNotFound:
		return 0, newStatusError(KindNotFound, code)
	case http.StatusInternalServerError:
		return 0, newStatusError(KindInternal, code)
	default:
		return 0, newStatusError(KindUnknownStatus, code)
	}
}
