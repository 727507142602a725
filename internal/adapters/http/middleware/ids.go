// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID identifies a kiosk session across requests and is
	// forwarded to the geocoder and astrology calls.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// idSource describes one propagated identifier.
type idSource struct {
	header string
	key    string
	store  func(ctx context.Context, id string) context.Context
}

// RequestID returns middleware that takes X-Request-ID from the request or
// generates a UUID v4. The id is echoed in the response, stored on the gin
// context, placed on the request context for outbound calls and added to the
// context logger.
func RequestID() gin.HandlerFunc {
	return propagateID(idSource{
		header: HeaderRequestID,
		key:    ContextKeyRequestID,
		store: func(ctx context.Context, id string) context.Context {
			return logging.WithRequestID(ContextWithRequestID(ctx, id), id)
		},
	})
}

// CorrelationID is RequestID for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return propagateID(idSource{
		header: HeaderCorrelationID,
		key:    ContextKeyCorrelationID,
		store: func(ctx context.Context, id string) context.Context {
			return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
		},
	})
}

func propagateID(src idSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(src.header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(src.key, id)
		c.Header(src.header, id)
		c.Request = c.Request.WithContext(src.store(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID returns the request ID, or "" before RequestID has run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" before CorrelationID has run.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
