// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for anything that leaves the process
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrPlaceNotFound, ErrGatewayUnavailable, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// Geocoder resolves free-text place names to coordinates.
type Geocoder interface {
	// Geocode returns the first candidate for place.
	// Returns domain.ErrPlaceNotFound when there are no candidates and a
	// *domain.GatewayError when the service cannot be reached.
	Geocode(ctx context.Context, place string) (*domain.GeoPoint, error)
}

// AstrologyGateway computes planetary positions for a birth moment.
type AstrologyGateway interface {
	// Planets requests a chart and decodes the moon position.
	// A response in an unknown layout is not an error here; it comes back
	// as a reading with domain.ShapeUnrecognized.
	// Returns a *domain.MisconfiguredError when no API key is configured and
	// a *domain.GatewayError on transport failure or a non-2xx status.
	Planets(ctx context.Context, req domain.PlanetsRequest) (*domain.PlanetsReading, error)
}

// Catalog is the read-only rashi and tree table.
type Catalog interface {
	Rashis() []domain.Rashi
	Rashi(key domain.RashiKey) (domain.Rashi, bool)
	Tree(id string) (domain.Tree, bool)
	Resolve(key domain.RashiKey) []domain.Tree
	TreesFor(key domain.RashiKey) (string, []domain.Tree)
	Report() catalog.Report
}
