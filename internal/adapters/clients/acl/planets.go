package acl

import (
	"encoding/json"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// planetsEnvelope is the astrology response. The moon appears in one of two
// layouts: output[1].Moon, or output[0]["2"] where planets are keyed by index.
type planetsEnvelope struct {
	Output []json.RawMessage `json:"output"`
}

type planetPosition struct {
	CurrentSign *float64 `json:"current_sign"`
	FullDegree  *float64 `json:"fullDegree"`
}

// DecodePlanets extracts the moon position from a raw response body. It never
// fails: a body that matches neither layout, or isn't JSON at all, decodes to
// ShapeUnrecognized. A layout only counts when its current_sign is a number
// within [1,12]; output[1].Moon is tried before output[0]["2"].
func DecodePlanets(body []byte) domain.PlanetsReading {
	var env planetsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.PlanetsReading{}
	}

	if pos, ok := positionAt(env.Output, 1, "Moon"); ok {
		return reading(domain.ShapePreferred, pos)
	}

	if pos, ok := positionAt(env.Output, 0, "2"); ok {
		return reading(domain.ShapeFallback, pos)
	}

	return domain.PlanetsReading{}
}

func positionAt(output []json.RawMessage, index int, key string) (planetPosition, bool) {
	if index >= len(output) {
		return planetPosition{}, false
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(output[index], &entries); err != nil {
		return planetPosition{}, false
	}

	raw, ok := entries[key]
	if !ok {
		return planetPosition{}, false
	}

	var pos planetPosition
	if err := json.Unmarshal(raw, &pos); err != nil {
		return planetPosition{}, false
	}

	if pos.CurrentSign == nil || !domain.SignInRange(*pos.CurrentSign) {
		return planetPosition{}, false
	}

	return pos, true
}

func reading(shape domain.PlanetsShape, pos planetPosition) domain.PlanetsReading {
	r := domain.PlanetsReading{Shape: shape, Sign: *pos.CurrentSign}
	if pos.FullDegree != nil {
		r.FullDegree = *pos.FullDegree
	}

	return r
}
