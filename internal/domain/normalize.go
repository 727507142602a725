package domain

import (
	"math"
	"strconv"
	"strings"
)

// Hemisphere is a coordinate direction letter.
type Hemisphere string

// Hemispheres.
const (
	North Hemisphere = "N"
	South Hemisphere = "S"
	East  Hemisphere = "E"
	West  Hemisphere = "W"
)

// Meridiem is the AM/PM marker of a 12-hour clock.
type Meridiem string

// Meridiem values.
const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// RawBirthInput carries the kiosk form tokens exactly as entered.
type RawBirthInput struct {
	Day      string
	Month    string
	Year     string
	Hour     string
	Minute   string
	Meridiem string

	LatDeg string
	LatMin string
	LatSec string
	LatDir string

	LonDeg string
	LonMin string
	LonSec string
	LonDir string

	Timezone string
	Place    string
}

// DMSToDecimal converts degrees, minutes and seconds to decimal degrees,
// negated for the southern and western hemispheres. An all-zero input is
// treated as not provided and yields nil.
func DMSToDecimal(deg, minutes, seconds float64, dir Hemisphere) *float64 {
	if deg == 0 && minutes == 0 && seconds == 0 {
		return nil
	}

	decimal := deg + minutes/60 + seconds/3600
	if dir == South || dir == West {
		decimal = -decimal
	}

	return &decimal
}

// To24Hour converts a 12-hour clock reading to "HH:MM".
func To24Hour(hour, minute int, m Meridiem) string {
	switch {
	case m == AM && hour == 12:
		hour = 0
	case m == PM && hour != 12:
		hour += 12
	}

	return pad2(hour) + ":" + pad2(minute)
}

// Normalize converts raw form tokens into a canonical BirthQuery.
// Numeric tokens are parsed strictly; range checks belong to form validation.
func (in RawBirthInput) Normalize() (BirthQuery, error) {
	day, err := strconv.Atoi(strings.TrimSpace(in.Day))
	if err != nil {
		return BirthQuery{}, NewValidationErrorWithValue("day", "must be a number", in.Day)
	}

	q := BirthQuery{
		DateOfBirth: strings.TrimSpace(in.Year) + "-" + strings.TrimSpace(in.Month) + "-" + pad2(day),
		Place:       strings.TrimSpace(in.Place),
	}

	if strings.TrimSpace(in.Hour) != "" && strings.TrimSpace(in.Minute) != "" {
		q.TimeOfBirth, err = in.clock()
		if err != nil {
			return BirthQuery{}, err
		}
	}

	if strings.TrimSpace(in.LatDeg) != "" {
		q.Latitude, err = parseDMS("lat", in.LatDeg, in.LatMin, in.LatSec, in.LatDir, North, South)
		if err != nil {
			return BirthQuery{}, err
		}
	}

	if strings.TrimSpace(in.LonDeg) != "" {
		q.Longitude, err = parseDMS("lon", in.LonDeg, in.LonMin, in.LonSec, in.LonDir, East, West)
		if err != nil {
			return BirthQuery{}, err
		}
	}

	q.Timezone, err = ParseTimezone(in.Timezone)
	if err != nil {
		return BirthQuery{}, err
	}

	return q, nil
}

func (in RawBirthInput) clock() (string, error) {
	hour, err := strconv.Atoi(strings.TrimSpace(in.Hour))
	if err != nil {
		return "", NewValidationErrorWithValue("hour", "must be a number", in.Hour)
	}

	minute, err := strconv.Atoi(strings.TrimSpace(in.Minute))
	if err != nil {
		return "", NewValidationErrorWithValue("minute", "must be a number", in.Minute)
	}

	m := Meridiem(strings.ToUpper(strings.TrimSpace(in.Meridiem)))
	switch m {
	case AM, PM:
	case "":
		m = AM
	default:
		return "", NewValidationErrorWithValue("meridiem", "must be AM or PM", in.Meridiem)
	}

	return To24Hour(hour, minute, m), nil
}

func parseDMS(axis, deg, minutes, seconds, dir string, positive, negative Hemisphere) (*float64, error) {
	d, err := coordinateComponent(axis+"_deg", deg)
	if err != nil {
		return nil, err
	}

	m, err := coordinateComponent(axis+"_min", minutes)
	if err != nil {
		return nil, err
	}

	s, err := coordinateComponent(axis+"_sec", seconds)
	if err != nil {
		return nil, err
	}

	h := Hemisphere(strings.ToUpper(strings.TrimSpace(dir)))
	switch h {
	case "":
		h = positive
	case positive, negative:
	default:
		return nil, &CoordinateError{Field: axis + "_dir", Value: dir}
	}

	return DMSToDecimal(d, m, s, h), nil
}

// coordinateComponent parses one D/M/S token; blank means zero.
func coordinateComponent(field, token string) (float64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, &CoordinateError{Field: field, Value: token}
	}

	return v, nil
}
