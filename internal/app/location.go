package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

// LocationResolver turns a birth query into the coordinates and UTC offset
// used for the chart.
type LocationResolver struct {
	geocoder ports.Geocoder
	logger   *slog.Logger
}

// NewLocationResolver creates a resolver backed by geocoder.
func NewLocationResolver(geocoder ports.Geocoder, logger *slog.Logger) *LocationResolver {
	if geocoder == nil {
		panic("app: LocationResolver requires a Geocoder")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &LocationResolver{geocoder: geocoder, logger: logger}
}

// Resolve prefers explicit coordinates over the place name.
//
// With coordinates the offset is the query override or round(lon/15).
// With a place the override is ignored: India resolves to IST and anything
// else to round(lon/15).
func (r *LocationResolver) Resolve(ctx context.Context, q domain.BirthQuery) (domain.Location, error) {
	switch {
	case q.HasCoordinates():
		tz := domain.EstimateTimezone(*q.Longitude)
		if q.Timezone != nil {
			tz = *q.Timezone
		}

		return domain.Location{Latitude: *q.Latitude, Longitude: *q.Longitude, Timezone: tz}, nil

	case q.HasPlace():
		point, err := r.geocoder.Geocode(ctx, q.Place)
		if err != nil {
			return domain.Location{}, fmt.Errorf("resolving place %q: %w", q.Place, err)
		}

		loc := domain.Location{
			Latitude:    point.Latitude,
			Longitude:   point.Longitude,
			Timezone:    domain.PlaceTimezone(q.Place, point.Longitude),
			DisplayName: point.DisplayName,
		}

		r.logger.DebugContext(ctx, "place resolved",
			slog.String("place", q.Place),
			slog.Float64("lat", loc.Latitude),
			slog.Float64("lon", loc.Longitude),
			slog.Float64("timezone", loc.Timezone),
		)

		return loc, nil

	default:
		return domain.Location{}, domain.ErrMissingLocation
	}
}
