package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/middleware"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/config"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"

	defaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of a failed response is kept for diagnostics.
	maxErrorBody = 512
)

// Config configures a Client.
type Config struct {
	// BaseURL prefixes every request path.
	BaseURL string

	// ServiceName names the downstream in logs, spans and metrics.
	ServiceName string

	// Timeout applies per attempt.
	Timeout time.Duration

	Retry     config.RetryConfig
	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	// Headers are set on every request, e.g. User-Agent.
	Headers map[string]string

	// AuthFunc is applied to every attempt, including retries.
	AuthFunc func(*http.Request)

	Logger *slog.Logger
}

// Client is an instrumented HTTP client for one downstream service. It adds
// tracing, metrics, request id propagation, a circuit breaker and optional
// retries with jittered exponential backoff.
type Client struct {
	http    *http.Client
	cfg     Config
	baseURL string
	logger  *slog.Logger
	breaker *Breaker
	tracer  trace.Tracer

	duration metric.Float64Histogram
	requests metric.Int64Counter
}

// New creates a client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	c := *cfg
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}

	if c.Retry.MaxAttempts < 1 {
		c.Retry.MaxAttempts = 1
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", c.ServiceName),
	)

	breaker := NewBreaker(BreakerSettings{
		MaxFailures:   c.Circuit.MaxFailures,
		Cooldown:      c.Circuit.Timeout,
		HalfOpenLimit: c.Circuit.HalfOpenLimit,
	})
	breaker.Notify(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of downstream HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requests, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Downstream HTTP requests by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	return &Client{
		http:     &http.Client{Timeout: c.Timeout, Transport: newTransport(c.Transport)},
		cfg:      c,
		baseURL:  strings.TrimSuffix(c.BaseURL, "/"),
		logger:   logger,
		breaker:  breaker,
		tracer:   otel.Tracer(instrumentationName),
		duration: duration,
		requests: requests,
	}, nil
}

func newTransport(tc config.TransportConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()

	if tc.MaxIdleConns > 0 {
		t.MaxIdleConns = tc.MaxIdleConns
	}

	if tc.MaxIdleConnsPerHost > 0 {
		t.MaxIdleConnsPerHost = tc.MaxIdleConnsPerHost
	}

	if tc.IdleConnTimeout > 0 {
		t.IdleConnTimeout = tc.IdleConnTimeout
	}

	return t
}

// ServiceName returns the downstream name.
func (c *Client) ServiceName() string { return c.cfg.ServiceName }

// CircuitState returns the breaker state.
func (c *Client) CircuitState() State { return c.breaker.State() }

// Breaker exposes the circuit breaker for health reporting.
func (c *Client) Breaker() *Breaker { return c.breaker }

// Do sends req and returns whatever response the final attempt produced; the
// caller owns the body. 5xx responses count as breaker failures. Retries only
// happen when Retry.MaxAttempts > 1 and need a rewindable body (GetBody set).
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.cfg.ServiceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if err := c.breaker.Admit(); err != nil {
		c.record(ctx, req.Method, 0, start, "circuit_open")
		logger.WarnContext(ctx, "request blocked by circuit breaker")

		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.cfg.ServiceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("peer.service", c.cfg.ServiceName),
		),
	)
	defer span.End()

	c.decorate(ctx, req)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.attempt(ctx, req, logger)
	if err != nil {
		c.breaker.Report(false)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.record(ctx, req.Method, 0, start, resultFor(err))
		logger.ErrorContext(ctx, "request failed",
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)

		return nil, err
	}

	c.breaker.Report(resp.StatusCode < http.StatusInternalServerError)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "HTTP "+resp.Status)
	}

	c.record(ctx, req.Method, resp.StatusCode, start, fmt.Sprintf("%dxx", resp.StatusCode/100))
	logger.DebugContext(ctx, "request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

func (c *Client) attempt(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, error) {
	var lastErr error

	for n := range c.cfg.Retry.MaxAttempts {
		if n > 0 {
			if err := c.pause(ctx, n); err != nil {
				return nil, err
			}

			if err := rewind(req); err != nil {
				return nil, errors.Join(lastErr, err)
			}

			if c.cfg.AuthFunc != nil {
				c.cfg.AuthFunc(req)
			}

			logger.DebugContext(ctx, "retrying request", slog.Int("attempt", n+1))
		}

		resp, err := c.http.Do(req.WithContext(ctx))

		switch {
		case err != nil && !isRetryableError(err):
			return nil, err
		case err != nil:
			lastErr = err
		case resp.StatusCode >= http.StatusInternalServerError && n+1 < c.cfg.Retry.MaxAttempts:
			drain(resp)
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		default:
			return resp, nil
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, lastErr)
}

func (c *Client) pause(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.calculateBackoff(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func rewind(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}

	if req.GetBody == nil {
		return errors.New("request body cannot be replayed")
	}

	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding body: %w", err)
	}

	req.Body = body

	return nil
}

// Get sends a GET for path with the given query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.URL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.Do(ctx, req)
}

// PostJSON encodes body as JSON and POSTs it to path.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	req, err := c.NewJSONRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, req)
}

// NewJSONRequest builds a replayable request carrying body as JSON.
func (c *Client) NewJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// ReadJSON closes resp and decodes a 2xx body into target. Other statuses
// come back as a *StatusError.
func ReadJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &StatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

func (c *Client) decorate(ctx context.Context, req *http.Request) {
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}

	if c.cfg.AuthFunc != nil {
		c.cfg.AuthFunc(req)
	}
}

// URL joins path onto the base URL.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

// calculateBackoff is exponential in attempt, capped at MaxInterval, with
// symmetric jitter of JitterFactor.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	r := c.cfg.Retry

	backoff := float64(r.InitialInterval) * math.Pow(r.Multiplier, float64(attempt))
	if r.MaxInterval > 0 {
		backoff = math.Min(backoff, float64(r.MaxInterval))
	}

	jitter := backoff * r.JitterFactor * (rand.Float64()*2 - 1) //nolint:gosec // jitter only

	return time.Duration(backoff + jitter)
}

func (c *Client) record(ctx context.Context, method string, status int, start time.Time, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("peer.service", c.cfg.ServiceName),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", status))
	}

	opt := metric.WithAttributes(attrs...)
	c.duration.Record(ctx, time.Since(start).Seconds(), opt)
	c.requests.Add(ctx, 1, opt)
}

func resultFor(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context_canceled"
	case errors.Is(err, ErrMaxRetriesExceeded):
		return "retries_exhausted"
	default:
		return "error"
	}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}

// isRetryableError reports transport failures worth another attempt.
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
