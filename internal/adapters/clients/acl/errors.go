package acl

import (
	"context"
	"errors"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// MapClientError translates a failure from the HTTP client into a domain
// error for service. Cancellation passes through unchanged so callers can
// tell an abandoned request from a broken downstream; a deadline is a
// downstream failure.
//
//	*clients.StatusError        -> GatewayError with the upstream status
//	clients.ErrCircuitOpen      -> GatewayError "circuit breaker open"
//	clients.ErrDecode           -> GatewayError "malformed response"
//	anything else (transport)   -> GatewayError with the cause
func MapClientError(service string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	var statusErr *clients.StatusError

	switch {
	case errors.As(err, &statusErr):
		return domain.NewGatewayStatusError(service, statusErr.StatusCode)
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewGatewayError(service, "circuit breaker open")
	case errors.Is(err, clients.ErrDecode):
		return domain.NewGatewayError(service, "malformed response")
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewGatewayError(service, "timeout")
	default:
		return domain.NewGatewayError(service, err.Error())
	}
}

// breakerCheck reports an open circuit as a readiness failure.
func breakerCheck(service string, b *clients.Breaker) error {
	if snap := b.Snapshot(); snap.State == clients.StateOpen {
		return domain.NewGatewayError(service, "circuit breaker open since "+snap.OpenedAt.UTC().Format("15:04:05Z"))
	}

	return nil
}
