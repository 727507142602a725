package domain

import "math"

// PlanetsShape identifies which response layout carried the moon position.
type PlanetsShape int

// Known planets response layouts.
const (
	ShapeUnrecognized PlanetsShape = iota
	ShapePreferred
	ShapeFallback
)

func (s PlanetsShape) String() string {
	switch s {
	case ShapePreferred:
		return "preferred"
	case ShapeFallback:
		return "fallback"
	default:
		return "unrecognized"
	}
}

// PlanetsRequest is everything the astrology gateway needs for one chart.
type PlanetsRequest struct {
	Moment    BirthMoment
	Latitude  float64
	Longitude float64
	Timezone  float64
}

// PlanetsReading is the decoded moon position. Sign and FullDegree are only
// meaningful when Shape is not ShapeUnrecognized.
type PlanetsReading struct {
	Shape      PlanetsShape
	Sign       float64
	FullDegree float64
}

// SignInRange reports whether v is a finite moon sign value within [1,12].
func SignInRange(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 1 && v <= 12
}

// Moon returns the moon sign and sidereal longitude, or ErrMoonSignNotFound
// when no layout yielded a usable sign.
func (r PlanetsReading) Moon() (sign, fullDegree float64, err error) {
	if r.Shape == ShapeUnrecognized || !SignInRange(r.Sign) {
		return 0, 0, ErrMoonSignNotFound
	}

	return r.Sign, r.FullDegree, nil
}

// GeoPoint is a geocoded place candidate.
type GeoPoint struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}
