// Package cache holds in-memory decorators for outbound ports.
package cache

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/rashi-tree-guide/internal/adapters/cache"

// healthChecker matches ports.HealthChecker without forcing every geocoder
// to implement it.
type healthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// Geocoder memoizes successful lookups of the wrapped geocoder. Failures,
// including place-not-found, are never cached.
type Geocoder struct {
	next    ports.Geocoder
	entries *lru.Cache[string, domain.GeoPoint]
	lookups metric.Int64Counter
}

// NewGeocoder wraps next with an LRU of size entries. A size of zero or less
// returns next unchanged.
func NewGeocoder(next ports.Geocoder, size int) (ports.Geocoder, error) {
	if next == nil {
		return nil, fmt.Errorf("cache: nil geocoder")
	}

	if size <= 0 {
		return next, nil
	}

	entries, err := lru.New[string, domain.GeoPoint](size)
	if err != nil {
		return nil, fmt.Errorf("creating geocode cache: %w", err)
	}

	lookups, err := otel.Meter(instrumentationName).Int64Counter("geocode.cache.lookups",
		metric.WithDescription("Geocode cache lookups by result"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &Geocoder{next: next, entries: entries, lookups: lookups}, nil
}

// Geocode implements ports.Geocoder.
func (g *Geocoder) Geocode(ctx context.Context, place string) (*domain.GeoPoint, error) {
	key := cacheKey(place)

	if point, ok := g.entries.Get(key); ok {
		g.count(ctx, true)

		return &point, nil
	}

	g.count(ctx, false)

	point, err := g.next.Geocode(ctx, place)
	if err != nil {
		return nil, err
	}

	g.entries.Add(key, *point)

	return point, nil
}

// Len returns the number of cached places.
func (g *Geocoder) Len() int { return g.entries.Len() }

// Purge drops every cached place.
func (g *Geocoder) Purge() { g.entries.Purge() }

// Name implements ports.HealthChecker by delegation.
func (g *Geocoder) Name() string {
	if hc, ok := g.next.(healthChecker); ok {
		return hc.Name()
	}

	return "geocoder"
}

// Check implements ports.HealthChecker by delegation.
func (g *Geocoder) Check(ctx context.Context) error {
	if hc, ok := g.next.(healthChecker); ok {
		return hc.Check(ctx)
	}

	return nil
}

func (g *Geocoder) count(ctx context.Context, hit bool) {
	if g.lookups == nil {
		return
	}

	g.lookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}

// cacheKey folds case and surrounding space; interior spacing is kept.
func cacheKey(place string) string {
	return strings.ToLower(strings.TrimSpace(place))
}
