package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the request never produced an
// HTTP status. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// APIError carries a non-2xx HTTP response: the status code and the message
// the server put in the body's "message" field (or a per-call fallback when
// the body carries none). Match with errors.As.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
