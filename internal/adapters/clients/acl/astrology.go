package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

const (
	// AstrologyService is the service name used in astrology errors.
	AstrologyService = "astrology"

	// Fixed chart settings: topocentric observation, Lahiri ayanamsha.
	observationPoint = "topocentric"
	ayanamsha        = "lahiri"

	maxPlanetsBody = 1 << 20
)

// AstrologyConfig configures the planets gateway.
type AstrologyConfig struct {
	// Client must point at the astrology API base URL.
	Client *clients.Client

	// APIKey is sent as x-api-key. An empty key fails each call as
	// misconfigured instead of failing startup.
	APIKey string

	Logger *slog.Logger
}

// Astrology implements ports.AstrologyGateway against the free astrology
// API's /planets endpoint.
type Astrology struct {
	client *clients.Client
	apiKey string
	logger *slog.Logger
}

// NewAstrology creates the gateway. It panics without a client.
func NewAstrology(cfg AstrologyConfig) *Astrology {
	if cfg.Client == nil {
		panic("acl: Astrology requires a Client")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Astrology{
		client: cfg.Client,
		apiKey: strings.TrimSpace(cfg.APIKey),
		logger: logger.With(slog.String("component", "acl.Astrology")),
	}
}

type planetsSettings struct {
	ObservationPoint string `json:"observation_point"`
	Ayanamsha        string `json:"ayanamsha"`
}

type planetsPayload struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Date      int             `json:"date"`
	Hours     int             `json:"hours"`
	Minutes   int             `json:"minutes"`
	Seconds   int             `json:"seconds"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  float64         `json:"timezone"`
	Settings  planetsSettings `json:"settings"`
}

func newPlanetsPayload(r domain.PlanetsRequest) planetsPayload {
	return planetsPayload{
		Year:      r.Moment.Year,
		Month:     r.Moment.Month,
		Date:      r.Moment.Day,
		Hours:     r.Moment.Hour,
		Minutes:   r.Moment.Minute,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
		Settings:  planetsSettings{ObservationPoint: observationPoint, Ayanamsha: ayanamsha},
	}
}

// Planets requests a chart and decodes the moon position. A reading with
// ShapeUnrecognized is returned as is; deciding that it is an error is up
// to the caller.
func (a *Astrology) Planets(ctx context.Context, r domain.PlanetsRequest) (*domain.PlanetsReading, error) {
	if a.apiKey == "" {
		return nil, domain.NewMisconfiguredError(AstrologyService, "api key")
	}

	resp, err := a.post(ctx, newPlanetsPayload(r))
	if err != nil {
		return nil, MapClientError(AstrologyService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		a.logger.WarnContext(ctx, "astrology request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)

		return nil, domain.NewGatewayStatusError(AstrologyService, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPlanetsBody))
	if err != nil {
		return nil, MapClientError(AstrologyService, fmt.Errorf("reading body: %w", err))
	}

	reading := DecodePlanets(body)
	a.logger.DebugContext(ctx, "planets decoded", slog.String("shape", reading.Shape.String()))

	return &reading, nil
}

func (a *Astrology) post(ctx context.Context, payload planetsPayload) (*http.Response, error) {
	req, err := a.client.NewJSONRequest(ctx, http.MethodPost, "/planets", payload)
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-api-key", a.apiKey)

	return a.client.Do(ctx, req)
}

// Name implements ports.HealthChecker.
func (a *Astrology) Name() string { return AstrologyService }

// Check fails while the API key is missing or the circuit is open.
func (a *Astrology) Check(context.Context) error {
	if a.apiKey == "" {
		return domain.NewMisconfiguredError(AstrologyService, "api key")
	}

	return breakerCheck(AstrologyService, a.client.Breaker())
}
