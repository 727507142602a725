package acl

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// DecodeResponse closes resp and decodes a 2xx JSON body into a T.
// Failures are already translated for service.
func DecodeResponse[T any](service string, resp *http.Response) (*T, error) {
	var out T
	if err := clients.ReadJSON(resp, &out); err != nil {
		return nil, MapClientError(service, err)
	}

	return &out, nil
}

// Translator converts one external DTO into a domain value, validating it
// on the way.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice applies translate to every item and stops at the first failure.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]*D, error) {
	out := make([]*D, 0, len(items))

	for i := range items {
		d, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		out = append(out, d)
	}

	return out, nil
}

// ValidateRequired rejects a blank value.
func ValidateRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, "is required")
	}

	return nil
}

// ParseDegrees parses a decimal-degree string such as Nominatim's "23.0225"
// and checks it against limit (90 for latitude, 180 for longitude).
func ParseDegrees(raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", raw, err)
	}

	if math.IsNaN(v) || math.Abs(v) > limit {
		return 0, fmt.Errorf("%q outside ±%g", raw, limit)
	}

	return v, nil
}
