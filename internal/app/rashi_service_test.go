package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func f64(v float64) *float64 { return &v }

func newTestRashiService(t *testing.T) (*RashiService, *mocks.MockGeocoder, *mocks.MockAstrologyGateway) {
	t.Helper()

	geocoder := mocks.NewMockGeocoder(t)
	gateway := mocks.NewMockAstrologyGateway(t)

	svc := NewRashiService(RashiServiceConfig{
		Geocoder: geocoder,
		Gateway:  gateway,
		Catalog:  catalog.Default(),
		Logger:   discardLogger(),
	})

	return svc, geocoder, gateway
}

func TestNewRashiService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewRashiService(RashiServiceConfig{Catalog: catalog.Default()})
	})
	assert.Panics(t, func() {
		NewRashiService(RashiServiceConfig{Gateway: mocks.NewMockAstrologyGateway(t), Catalog: catalog.Default()})
	})
}

func TestRashiService_Compute_PlaceInIndiaWithoutTime(t *testing.T) {
	svc, geocoder, gateway := newTestRashiService(t)

	geocoder.EXPECT().Geocode(mock.Anything, "Ahmedabad, India").
		Return(&domain.GeoPoint{Latitude: 23.0225, Longitude: 72.5714, DisplayName: "Ahmedabad, Gujarat, India"}, nil)

	gateway.EXPECT().Planets(mock.Anything, domain.PlanetsRequest{
		Moment:    domain.BirthMoment{Year: 1990, Month: 7, Day: 15, Hour: 12},
		Latitude:  23.0225,
		Longitude: 72.5714,
		Timezone:  domain.ISTOffset,
	}).Return(&domain.PlanetsReading{Shape: domain.ShapePreferred, Sign: 4, FullDegree: 105.25}, nil)

	result, err := svc.Compute(context.Background(), domain.BirthQuery{
		DateOfBirth: "1990-07-15",
		Place:       "Ahmedabad, India",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Karka, result.Rashi.Key)
	assert.Equal(t, "Karka (Cancer)", result.Label())
	assert.Equal(t, 4, result.MoonSignNumber)
	assert.InDelta(t, 105.25, result.SiderealLongitude, 0)
	assert.InDelta(t, 5.5, result.Location.Timezone, 0)
	assert.Equal(t, "Ahmedabad, Gujarat, India", result.Location.DisplayName)
	assert.Equal(t, domain.ConfidenceApproximate, result.Confidence)
	require.NotEmpty(t, result.Trees)
	assert.Equal(t, "kadamba", result.Trees[0].ID)
	assert.True(t, result.Trees[0].IsPrimary)
}

func TestRashiService_Compute_CoordinatesWithTime(t *testing.T) {
	svc, _, gateway := newTestRashiService(t)

	gateway.EXPECT().Planets(mock.Anything, mock.MatchedBy(func(req domain.PlanetsRequest) bool {
		return req.Moment.Hour == 0 && req.Moment.Minute == 30 && req.Timezone == 5 && req.Moment.TimeKnown
	})).Return(&domain.PlanetsReading{Shape: domain.ShapeFallback, Sign: 1, FullDegree: 12}, nil)

	result, err := svc.Compute(context.Background(), domain.BirthQuery{
		DateOfBirth: "2000-01-01",
		TimeOfBirth: "00:30",
		Latitude:    f64(23.0),
		Longitude:   f64(72.6),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Mesha, result.Rashi.Key)
	assert.Equal(t, domain.ConfidenceExact, result.Confidence)
	assert.Equal(t, "Exact (birth time provided)", result.Confidence.Note())
}

func TestRashiService_Compute_Failures(t *testing.T) {
	tests := []struct {
		name     string
		query    domain.BirthQuery
		setup    func(*mocks.MockGeocoder, *mocks.MockAstrologyGateway)
		wantErr  error
		wantStep ExecutionStep
	}{
		{
			name:     "missing location",
			query:    domain.BirthQuery{DateOfBirth: "1990-07-15"},
			wantErr:  domain.ErrMissingLocation,
			wantStep: StepValidate,
		},
		{
			name:     "invalid date",
			query:    domain.BirthQuery{DateOfBirth: "1990-13-40", Place: "Surat"},
			wantErr:  domain.ErrValidation,
			wantStep: StepValidate,
		},
		{
			name:  "place not found",
			query: domain.BirthQuery{DateOfBirth: "1990-07-15", Place: "Atlantis"},
			setup: func(g *mocks.MockGeocoder, _ *mocks.MockAstrologyGateway) {
				g.EXPECT().Geocode(mock.Anything, "Atlantis").Return(nil, domain.ErrPlaceNotFound)
			},
			wantErr:  domain.ErrPlaceNotFound,
			wantStep: StepPerform,
		},
		{
			name:  "geocoder unavailable",
			query: domain.BirthQuery{DateOfBirth: "1990-07-15", Place: "Surat"},
			setup: func(g *mocks.MockGeocoder, _ *mocks.MockAstrologyGateway) {
				g.EXPECT().Geocode(mock.Anything, "Surat").Return(nil, domain.NewGatewayError("geocoder", "connection refused"))
			},
			wantErr:  domain.ErrGatewayUnavailable,
			wantStep: StepPerform,
		},
		{
			name:  "gateway non-2xx",
			query: domain.BirthQuery{DateOfBirth: "1990-07-15", Latitude: f64(1), Longitude: f64(2)},
			setup: func(_ *mocks.MockGeocoder, a *mocks.MockAstrologyGateway) {
				a.EXPECT().Planets(mock.Anything, mock.Anything).Return(nil, domain.NewGatewayStatusError("astrology", 429))
			},
			wantErr:  domain.ErrGatewayUnavailable,
			wantStep: StepPerform,
		},
		{
			name:  "missing api key",
			query: domain.BirthQuery{DateOfBirth: "1990-07-15", Latitude: f64(1), Longitude: f64(2)},
			setup: func(_ *mocks.MockGeocoder, a *mocks.MockAstrologyGateway) {
				a.EXPECT().Planets(mock.Anything, mock.Anything).Return(nil, domain.NewMisconfiguredError("astrology", "api key"))
			},
			wantErr:  domain.ErrMisconfigured,
			wantStep: StepPerform,
		},
		{
			name:  "moon sign missing in both shapes",
			query: domain.BirthQuery{DateOfBirth: "1990-07-15", Latitude: f64(1), Longitude: f64(2)},
			setup: func(_ *mocks.MockGeocoder, a *mocks.MockAstrologyGateway) {
				a.EXPECT().Planets(mock.Anything, mock.Anything).Return(&domain.PlanetsReading{Shape: domain.ShapeUnrecognized}, nil)
			},
			wantErr:  domain.ErrMoonSignNotFound,
			wantStep: StepVerify,
		},
		{
			name:  "fractional sign",
			query: domain.BirthQuery{DateOfBirth: "1990-07-15", Latitude: f64(1), Longitude: f64(2)},
			setup: func(_ *mocks.MockGeocoder, a *mocks.MockAstrologyGateway) {
				a.EXPECT().Planets(mock.Anything, mock.Anything).Return(&domain.PlanetsReading{Shape: domain.ShapePreferred, Sign: 3.5}, nil)
			},
			wantErr:  domain.ErrUnknownSign,
			wantStep: StepVerify,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, geocoder, gateway := newTestRashiService(t)
			if tt.setup != nil {
				tt.setup(geocoder, gateway)
			}

			result, err := svc.Compute(context.Background(), tt.query)

			require.Error(t, err)
			assert.Nil(t, result)
			require.ErrorIs(t, err, tt.wantErr)

			step, ok := GetExecutionStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStep, step)
		})
	}
}

func TestRashiService_ComputeForm(t *testing.T) {
	svc, _, gateway := newTestRashiService(t)

	gateway.EXPECT().Planets(mock.Anything, mock.MatchedBy(func(req domain.PlanetsRequest) bool {
		return req.Moment.Hour == 13 && req.Moment.Minute == 5 && req.Timezone == 5.5 && req.Longitude < 0
	})).Return(&domain.PlanetsReading{Shape: domain.ShapePreferred, Sign: 12, FullDegree: 350}, nil)

	result, err := svc.ComputeForm(context.Background(), domain.RawBirthInput{
		Day: "5", Month: "07", Year: "1990",
		Hour: "1", Minute: "05", Meridiem: "PM",
		LatDeg: "23", LatMin: "1", LatSec: "21",
		LonDeg: "72", LonMin: "34", LonSec: "17", LonDir: "W",
		Timezone: "5.5",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Meena, result.Rashi.Key)
}

func TestRashiService_ComputeForm_MalformedCoordinate(t *testing.T) {
	svc, _, _ := newTestRashiService(t)

	_, err := svc.ComputeForm(context.Background(), domain.RawBirthInput{
		Day: "5", Month: "07", Year: "1990", LatDeg: "north", LonDeg: "72",
	})

	require.ErrorIs(t, err, domain.ErrMalformedCoordinate)

	step, _ := GetExecutionStep(err)
	assert.Equal(t, StepValidate, step)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "missing_location", Outcome(domain.ErrMissingLocation))
	assert.Equal(t, "malformed_coordinate", Outcome(&domain.CoordinateError{Field: "lat_deg"}))
	assert.Equal(t, "invalid_input", Outcome(domain.NewValidationError("date_of_birth", "bad")))
	assert.Equal(t, "gateway_unavailable", Outcome(domain.NewGatewayStatusError("astrology", 500)))
	assert.Equal(t, "unknown_sign", Outcome(domain.ErrUnknownSign))
	assert.Equal(t, "cancelled", Outcome(context.Canceled))
	assert.Equal(t, "error", Outcome(io.EOF))
}
