package dto

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
)

// traceIDKey is the gin context key a handler may set to override the trace id.
const traceIDKey = "trace_id"

// MapDomainError maps a domain error to an HTTP status code and error response.
// Specific rashi failures are matched before their categories. Unknown errors
// are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	msg := publicMessage(err)

	switch {
	case errors.Is(err, domain.ErrMissingLocation):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeMissingLocation, msg)

	case errors.Is(err, domain.ErrMalformedCoordinate):
		resp := NewErrorResponse(ErrorCodeMalformedCoordinate, msg)

		var coordErr *domain.CoordinateError
		if errors.As(err, &coordErr) {
			resp.Error.Details = map[string]string{coordErr.Field: "cannot interpret " + strconv.Quote(coordErr.Value)}
		}

		return http.StatusBadRequest, resp

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, msg)
		// Extract field details if available
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case errors.Is(err, domain.ErrPlaceNotFound):
		return http.StatusNotFound, NewErrorResponse(ErrorCodePlaceNotFound, msg)

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, msg)

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, msg)

	case errors.Is(err, domain.ErrGatewayUnavailable):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeGatewayUnavailable, msg)

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, msg)

	case errors.Is(err, domain.ErrMoonSignNotFound):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeMoonSignNotFound, msg)

	case errors.Is(err, domain.ErrUnknownSign):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeUnknownSign, msg)

	case domain.IsMisconfigured(err):
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeMisconfigured, msg)

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, "request cancelled")

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// publicMessage drops wrapping added on the way up (pipeline step, binding)
// so clients see the domain message only.
func publicMessage(err error) string {
	var (
		validationErr *domain.ValidationError
		coordErr      *domain.CoordinateError
		execErr       *app.ExecutionError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &coordErr):
		return coordErr.Error()
	case errors.As(err, &execErr) && execErr.Cause != nil:
		return execErr.Cause.Error()
	default:
		return err.Error()
	}
}

// GetTraceID returns the id clients should quote when reporting an error:
// an explicit trace_id on the gin context, then the active span, then the
// request id header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(traceIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.Request.Header.Get("X-Request-ID")
}

// HandleError writes the error envelope for err. Server-side failures are
// logged with the full error.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("request failed",
			"status", status,
			"code", resp.Error.Code,
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// HandleBindError answers a binding or validation failure from
// BindAndValidate or ValidateAll.
func HandleBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		AbortWithCode(c, ErrorCodePayloadTooLarge, "request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
	case IsValidationError(err):
		resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", ValidationErrors(err))
		c.JSON(http.StatusBadRequest, resp.WithTraceID(GetTraceID(c)))
	case errors.Is(err, ErrBinding):
		resp := NewErrorResponse(ErrorCodeBadRequest, "request body must be valid JSON")
		c.JSON(http.StatusBadRequest, resp.WithTraceID(GetTraceID(c)))
	default:
		HandleError(c, err)
	}
}

// AbortWithCode stops the chain with an error envelope for code.
func AbortWithCode(c *gin.Context, code, message string) {
	resp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}
