package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ISTOffset is the fixed India Standard Time offset in hours.
const ISTOffset = 5.5

// Layouts of the canonical birth strings.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// NoonHour is substituted when no birth time is known.
const NoonHour = 12

// BirthQuery is the canonical compute request.
// Latitude and Longitude are only used when both are set.
type BirthQuery struct {
	DateOfBirth string
	TimeOfBirth string
	Place       string
	Latitude    *float64
	Longitude   *float64
	Timezone    *float64
}

// HasCoordinates reports whether an explicit coordinate pair was supplied.
func (q BirthQuery) HasCoordinates() bool {
	return q.Latitude != nil && q.Longitude != nil
}

// HasPlace reports whether a non-blank place name was supplied.
func (q BirthQuery) HasPlace() bool {
	return strings.TrimSpace(q.Place) != ""
}

// HasLocation reports whether the query carries enough to resolve a location.
func (q BirthQuery) HasLocation() bool {
	return q.HasCoordinates() || q.HasPlace()
}

// HasTime reports whether a birth time was supplied.
func (q BirthQuery) HasTime() bool {
	return strings.TrimSpace(q.TimeOfBirth) != ""
}

// BirthMoment is a birth date and time split into numeric components.
type BirthMoment struct {
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	TimeKnown bool
}

// ParseBirthMoment parses canonical date and optional time strings.
// A blank time yields local noon with TimeKnown false. Midnight stays midnight.
func ParseBirthMoment(date, clock string) (BirthMoment, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return BirthMoment{}, NewValidationErrorWithValue("date_of_birth", "must be a valid YYYY-MM-DD date", date)
	}

	m := BirthMoment{
		Year:  d.Year(),
		Month: int(d.Month()),
		Day:   d.Day(),
		Hour:  NoonHour,
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return m, nil
	}

	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return BirthMoment{}, NewValidationErrorWithValue("time_of_birth", "must be a valid HH:MM 24-hour time", clock)
	}

	m.Hour = t.Hour()
	m.Minute = t.Minute()
	m.TimeKnown = true

	return m, nil
}

// EstimateTimezone approximates a UTC offset in hours as round(lon/15).
// It ignores political boundaries and half-hour zones.
func EstimateTimezone(lon float64) float64 {
	return math.Round(lon / 15)
}

// PlaceTimezone picks the offset for a geocoded place: IST when the place
// text mentions India, otherwise the longitude estimate.
func PlaceTimezone(place string, lon float64) float64 {
	if strings.Contains(strings.ToLower(place), "india") {
		return ISTOffset
	}

	return EstimateTimezone(lon)
}

// Confidence grades a computed result by whether the birth time was known.
type Confidence string

// Confidence values.
const (
	ConfidenceExact       Confidence = "exact"
	ConfidenceApproximate Confidence = "approximate"
)

// ConfidenceFor returns the confidence for a known or unknown birth time.
func ConfidenceFor(timeKnown bool) Confidence {
	if timeKnown {
		return ConfidenceExact
	}

	return ConfidenceApproximate
}

// Note is the human readable explanation shown with a result.
func (c Confidence) Note() string {
	if c == ConfidenceExact {
		return "Exact (birth time provided)"
	}

	return "Approximate (birth time not provided, using noon)"
}

// Location is the position and offset actually used for a computation.
type Location struct {
	Latitude    float64
	Longitude   float64
	Timezone    float64
	DisplayName string
}

// ComputeResult is the outcome of a successful rashi computation.
type ComputeResult struct {
	Rashi             Rashi
	SiderealLongitude float64
	MoonSignNumber    int
	Location          Location
	Confidence        Confidence
	Trees             []Tree
}

// Label is the Vedic name followed by the English name.
func (r ComputeResult) Label() string {
	return r.Rashi.ComputedLabel()
}

// ParseTimezone parses an optional decimal-hours offset token.
func ParseTimezone(token string) (*float64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil //nolint:nilnil // absent offset is not an error
	}

	tz, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(tz) || math.IsInf(tz, 0) {
		return nil, NewValidationErrorWithValue("timezone", "must be decimal hours", token)
	}

	return &tz, nil
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}
