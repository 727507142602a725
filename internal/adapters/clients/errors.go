// Package clients provides the instrumented HTTP client used by the
// downstream adapters.
package clients

import (
	"errors"
	"fmt"
)

// Infrastructure errors. ACL adapters translate these into domain errors.
var (
	// ErrCircuitOpen means the breaker is rejecting requests to the downstream.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once all attempts are spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrDecode means a 2xx body could not be decoded.
	ErrDecode = errors.New("decoding response")
)

// StatusError is a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}
