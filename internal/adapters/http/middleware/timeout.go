package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
)

// Timeout returns middleware that puts a deadline on the request context.
// Outbound calls inherit it. If the handler returns without writing and the
// deadline has passed, a 504 envelope is written. Paths in skipPaths run
// without a deadline.
//
// The handler runs on the request goroutine; a handler that ignores its
// context is not interrupted.
func Timeout(timeout time.Duration, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok || timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			handleTimeout(c, timeout)
		}
	}
}

// handleTimeout logs the timeout and responds with the error envelope.
func handleTimeout(c *gin.Context, timeout time.Duration) {
	logging.FromContext(c.Request.Context()).Warn("request timeout",
		slog.String("path", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.Duration("timeout", timeout),
	)

	dto.AbortWithCode(c, dto.ErrorCodeTimeout, "request timeout exceeded")
}
