package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMalformedPayload wraps responses that do not decode into the
	// expected schema or fail its validation.
	ErrMalformedPayload = errors.New("malformed backend payload")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnavailable      = errors.New("backend unavailable")
)

// Error is a failed backend call. Message carries the backend's own message
// so it can be shown to the user verbatim.
type Error struct {
	Op      string
	Status  int
	Message string
	// Declined is set when the backend answered 2xx with success:false.
	Declined bool
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s: %d %s", e.Op, e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.Declined {
		return nil
	}
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

// UserMessage returns the text to surface for err, falling back when the
// backend gave none.
func UserMessage(err error, fallback string) string {
	var be *Error
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
