package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// ComputeRequest is the canonical compute body. Date and time formats are
// checked by the domain so that the error carries the offending value.
type ComputeRequest struct {
	DateOfBirth string   `json:"date_of_birth" validate:"required"`
	TimeOfBirth string   `json:"time_of_birth,omitempty"`
	Place       string   `json:"place,omitempty" validate:"max=200"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Timezone    *float64 `json:"timezone,omitempty" validate:"omitempty,gte=-12,lte=14"`
}

// ToDomain converts the request into a birth query.
func (r ComputeRequest) ToDomain() domain.BirthQuery {
	return domain.BirthQuery{
		DateOfBirth: r.DateOfBirth,
		TimeOfBirth: r.TimeOfBirth,
		Place:       r.Place,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Timezone:    r.Timezone,
	}
}

// ComputeFormRequest carries the kiosk form tokens as typed. Coordinate
// tokens are left to the normalizer so that bad ones surface as malformed
// coordinates rather than generic validation failures.
type ComputeFormRequest struct {
	Day      string `json:"day" validate:"required,numeric"`
	Month    string `json:"month" validate:"required,numeric,len=2"`
	Year     string `json:"year" validate:"required,numeric,len=4"`
	Hour     string `json:"hour,omitempty" validate:"omitempty,numeric"`
	Minute   string `json:"minute,omitempty" validate:"omitempty,numeric,max=2"`
	Meridiem string `json:"meridiem,omitempty" validate:"omitempty,oneof=AM PM am pm"`

	LatDeg string `json:"lat_deg,omitempty"`
	LatMin string `json:"lat_min,omitempty"`
	LatSec string `json:"lat_sec,omitempty"`
	LatDir string `json:"lat_dir,omitempty"`

	LonDeg string `json:"lon_deg,omitempty"`
	LonMin string `json:"lon_min,omitempty"`
	LonSec string `json:"lon_sec,omitempty"`
	LonDir string `json:"lon_dir,omitempty"`

	Timezone string `json:"timezone,omitempty"`
	Place    string `json:"place,omitempty" validate:"max=200"`
}

// minBirthYear is the earliest year the kiosk form accepts.
const minBirthYear = 1900

// Validate applies the range checks the normalizer leaves to the form.
func (r ComputeFormRequest) Validate() error {
	if err := inRange("day", r.Day, 1, 31); err != nil {
		return err
	}

	if err := inRange("month", r.Month, 1, 12); err != nil {
		return err
	}

	if err := inRange("year", r.Year, minBirthYear, time.Now().Year()); err != nil {
		return err
	}

	if strings.TrimSpace(r.Hour) != "" {
		if err := inRange("hour", r.Hour, 1, 12); err != nil {
			return err
		}
	}

	if strings.TrimSpace(r.Minute) != "" {
		if err := inRange("minute", r.Minute, 0, 59); err != nil {
			return err
		}
	}

	return nil
}

func inRange(field, token string, lo, hi int) error {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < lo || n > hi {
		return domain.NewValidationErrorWithValue(field,
			"must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi), token)
	}

	return nil
}

// ToDomain converts the form into raw birth input.
func (r ComputeFormRequest) ToDomain() domain.RawBirthInput {
	return domain.RawBirthInput{
		Day:      r.Day,
		Month:    r.Month,
		Year:     r.Year,
		Hour:     r.Hour,
		Minute:   r.Minute,
		Meridiem: r.Meridiem,
		LatDeg:   r.LatDeg,
		LatMin:   r.LatMin,
		LatSec:   r.LatSec,
		LatDir:   r.LatDir,
		LonDeg:   r.LonDeg,
		LonMin:   r.LonMin,
		LonSec:   r.LonSec,
		LonDir:   r.LonDir,
		Timezone: r.Timezone,
		Place:    r.Place,
	}
}

// LocationResponse is the location actually used for a computation.
type LocationResponse struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    float64 `json:"timezone"`
	DisplayName string  `json:"display_name,omitempty"`
}

// ComputeResponse is the result of a rashi computation.
type ComputeResponse struct {
	RashiKey          string           `json:"rashi_key"`
	RashiLabel        string           `json:"rashi_label"`
	RashiVedic        string           `json:"rashi_vedic"`
	RashiNative       string           `json:"rashi_native"`
	SiderealLongitude float64          `json:"sidereal_longitude"`
	MoonSignNumber    int              `json:"moon_sign_number"`
	Location          LocationResponse `json:"location"`
	Confidence        string           `json:"confidence"`
	ConfidenceNote    string           `json:"confidence_note"`
	Trees             []TreeResponse   `json:"trees"`
}

// NewComputeResponse converts a computation result.
func NewComputeResponse(r *domain.ComputeResult) ComputeResponse {
	return ComputeResponse{
		RashiKey:          string(r.Rashi.Key),
		RashiLabel:        r.Label(),
		RashiVedic:        r.Rashi.Vedic,
		RashiNative:       r.Rashi.NativeLabel,
		SiderealLongitude: r.SiderealLongitude,
		MoonSignNumber:    r.MoonSignNumber,
		Location: LocationResponse{
			Lat:         r.Location.Latitude,
			Lon:         r.Location.Longitude,
			Timezone:    r.Location.Timezone,
			DisplayName: r.Location.DisplayName,
		},
		Confidence:     string(r.Confidence),
		ConfidenceNote: r.Confidence.Note(),
		Trees:          NewTreeResponses(r.Trees),
	}
}
