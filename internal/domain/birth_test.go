package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestBirthQuery_HasLocation(t *testing.T) {
	tests := []struct {
		name  string
		query BirthQuery
		want  bool
	}{
		{name: "place only", query: BirthQuery{Place: "Ahmedabad, India"}, want: true},
		{name: "coordinates only", query: BirthQuery{Latitude: ptr(23), Longitude: ptr(72.5)}, want: true},
		{name: "latitude only", query: BirthQuery{Latitude: ptr(23)}, want: false},
		{name: "blank place", query: BirthQuery{Place: "   "}, want: false},
		{name: "nothing", query: BirthQuery{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.HasLocation())
		})
	}
}

func TestParseBirthMoment(t *testing.T) {
	t.Run("time absent defaults to noon", func(t *testing.T) {
		m, err := ParseBirthMoment("1990-07-15", "")
		require.NoError(t, err)

		assert.Equal(t, BirthMoment{Year: 1990, Month: 7, Day: 15, Hour: 12}, m)
		assert.False(t, m.TimeKnown)
	})

	t.Run("explicit time", func(t *testing.T) {
		m, err := ParseBirthMoment("2001-12-31", "18:45")
		require.NoError(t, err)

		assert.Equal(t, 18, m.Hour)
		assert.Equal(t, 45, m.Minute)
		assert.True(t, m.TimeKnown)
	})

	t.Run("midnight is not replaced by noon", func(t *testing.T) {
		m, err := ParseBirthMoment("2001-01-01", "00:00")
		require.NoError(t, err)

		assert.Equal(t, 0, m.Hour)
		assert.True(t, m.TimeKnown)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := ParseBirthMoment("1990-02-31", "")
		require.ErrorIs(t, err, ErrValidation)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "date_of_birth", vErr.Field)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := ParseBirthMoment("1990-02-01", "25:00")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestEstimateTimezone(t *testing.T) {
	assert.InDelta(t, 5.0, EstimateTimezone(72.58), 0)
	assert.InDelta(t, -5.0, EstimateTimezone(-74.0), 0)
	assert.InDelta(t, 0.0, EstimateTimezone(-0.12), 0)
	assert.InDelta(t, 9.0, EstimateTimezone(139.69), 0)
}

func TestPlaceTimezone(t *testing.T) {
	assert.InDelta(t, ISTOffset, PlaceTimezone("Ahmedabad, India", 72.58), 0)
	assert.InDelta(t, ISTOffset, PlaceTimezone("Surat, Gujarat, INDIA", 72.83), 0)
	assert.InDelta(t, 0.0, PlaceTimezone("London", -0.12), 0)
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceExact, ConfidenceFor(true))
	assert.Equal(t, ConfidenceApproximate, ConfidenceFor(false))
	assert.Equal(t, "Exact (birth time provided)", ConfidenceExact.Note())
	assert.Equal(t, "Approximate (birth time not provided, using noon)", ConfidenceApproximate.Note())
}

func TestParseTimezone(t *testing.T) {
	tz, err := ParseTimezone("")
	require.NoError(t, err)
	assert.Nil(t, tz)

	tz, err = ParseTimezone(" 5.5 ")
	require.NoError(t, err)
	require.NotNil(t, tz)
	assert.InDelta(t, 5.5, *tz, 0)

	_, err = ParseTimezone("IST")
	require.ErrorIs(t, err, ErrValidation)
}
