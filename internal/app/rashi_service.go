// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

// RashiService computes a visitor's moon sign and the trees recommended for it.
type RashiService struct {
	locations *LocationResolver
	gateway   ports.AstrologyGateway
	catalog   ports.Catalog
	exec      *Executor
	logger    *slog.Logger
	computes  metric.Int64Counter
}

// RashiServiceConfig contains the dependencies of the rashi service.
type RashiServiceConfig struct {
	Geocoder ports.Geocoder
	Gateway  ports.AstrologyGateway
	Catalog  ports.Catalog
	Logger   *slog.Logger
}

// NewRashiService creates the service. It panics when a dependency is missing.
func NewRashiService(cfg RashiServiceConfig) *RashiService {
	if cfg.Gateway == nil || cfg.Catalog == nil {
		panic("app: RashiService requires an AstrologyGateway and a Catalog")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.RashiService"))

	computes, err := otel.Meter(instrumentationName).Int64Counter("rashi.compute.requests",
		metric.WithDescription("Rashi computations by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &RashiService{
		locations: NewLocationResolver(cfg.Geocoder, logger),
		gateway:   cfg.Gateway,
		catalog:   cfg.Catalog,
		exec:      NewExecutor(logger),
		logger:    logger,
		computes:  computes,
	}
}

type computed struct {
	moment   domain.BirthMoment
	location domain.Location
	reading  domain.PlanetsReading
}

type verifiedSign struct {
	computed
	rashi      domain.Rashi
	sign       int
	fullDegree float64
}

// Compute runs a single attempt: resolve the location, request the chart,
// decode the moon sign and resolve the trees. The first failure aborts.
func (s *RashiService) Compute(ctx context.Context, q domain.BirthQuery) (*domain.ComputeResult, error) {
	op := Operation[domain.BirthQuery, computed, verifiedSign, *domain.ComputeResult]{
		Name:     "rashi.compute",
		Validate: s.validate,
		Perform:  s.perform,
		Verify:   s.verify,
		Respond:  s.respond,
	}

	result, err := Execute(ctx, s.exec, op, q)
	s.record(ctx, err)

	return result, err
}

// ComputeForm normalizes raw kiosk tokens and computes the result.
func (s *RashiService) ComputeForm(ctx context.Context, raw domain.RawBirthInput) (*domain.ComputeResult, error) {
	q, err := raw.Normalize()
	if err != nil {
		s.record(ctx, err)

		return nil, &ExecutionError{Step: StepValidate, Message: "form normalization failed", Cause: err}
	}

	return s.Compute(ctx, q)
}

func (s *RashiService) validate(_ context.Context, q domain.BirthQuery) error {
	if !q.HasLocation() {
		return domain.ErrMissingLocation
	}

	_, err := domain.ParseBirthMoment(q.DateOfBirth, q.TimeOfBirth)

	return err
}

func (s *RashiService) perform(ctx context.Context, q domain.BirthQuery) (computed, error) {
	loc, err := s.locations.Resolve(ctx, q)
	if err != nil {
		return computed{}, err
	}

	moment, err := domain.ParseBirthMoment(q.DateOfBirth, q.TimeOfBirth)
	if err != nil {
		return computed{}, err
	}

	reading, err := s.gateway.Planets(ctx, domain.PlanetsRequest{
		Moment:    moment,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timezone:  loc.Timezone,
	})
	if err != nil {
		return computed{}, err
	}

	return computed{moment: moment, location: loc, reading: *reading}, nil
}

func (s *RashiService) verify(ctx context.Context, _ domain.BirthQuery, c computed) (verifiedSign, error) {
	sign, fullDegree, err := c.reading.Moon()
	if err != nil {
		return verifiedSign{}, err
	}

	key, err := domain.RashiKeyForSign(sign)
	if err != nil {
		return verifiedSign{}, err
	}

	rashi, ok := s.catalog.Rashi(key)
	if !ok {
		return verifiedSign{}, domain.ErrUnknownSign
	}

	s.logger.DebugContext(ctx, "moon sign decoded",
		slog.String("shape", c.reading.Shape.String()),
		slog.Int("sign", int(sign)),
		slog.String("rashi", string(key)),
	)

	return verifiedSign{computed: c, rashi: rashi, sign: int(sign), fullDegree: fullDegree}, nil
}

func (s *RashiService) respond(_ context.Context, _ domain.BirthQuery, v verifiedSign) (*domain.ComputeResult, error) {
	return &domain.ComputeResult{
		Rashi:             v.rashi,
		SiderealLongitude: v.fullDegree,
		MoonSignNumber:    v.sign,
		Location:          v.location,
		Confidence:        domain.ConfidenceFor(v.moment.TimeKnown),
		Trees:             s.catalog.Resolve(v.rashi.Key),
	}, nil
}

func (s *RashiService) record(ctx context.Context, err error) {
	if s.computes == nil {
		return
	}

	s.computes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", Outcome(err))))
}

// Outcome names the result of a computation for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrMissingLocation):
		return "missing_location"
	case errors.Is(err, domain.ErrMalformedCoordinate):
		return "malformed_coordinate"
	case errors.Is(err, domain.ErrValidation):
		return "invalid_input"
	case errors.Is(err, domain.ErrPlaceNotFound):
		return "place_not_found"
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return "gateway_unavailable"
	case errors.Is(err, domain.ErrMoonSignNotFound):
		return "moon_sign_not_found"
	case errors.Is(err, domain.ErrUnknownSign):
		return "unknown_sign"
	case errors.Is(err, domain.ErrMisconfigured):
		return "misconfigured"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
