package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/mocks"
)

func TestLocationResolver_Coordinates(t *testing.T) {
	geocoder := mocks.NewMockGeocoder(t)
	r := NewLocationResolver(geocoder, discardLogger())

	t.Run("estimated offset", func(t *testing.T) {
		loc, err := r.Resolve(context.Background(), domain.BirthQuery{Latitude: f64(40.7), Longitude: f64(-74.0)})
		require.NoError(t, err)
		assert.InDelta(t, -5.0, loc.Timezone, 0)
		assert.Empty(t, loc.DisplayName)
	})

	t.Run("override wins", func(t *testing.T) {
		loc, err := r.Resolve(context.Background(), domain.BirthQuery{Latitude: f64(23), Longitude: f64(72.6), Timezone: f64(5.5)})
		require.NoError(t, err)
		assert.InDelta(t, 5.5, loc.Timezone, 0)
	})

	t.Run("coordinates take priority over place", func(t *testing.T) {
		loc, err := r.Resolve(context.Background(), domain.BirthQuery{
			Place:     "Ahmedabad, India",
			Latitude:  f64(51.5),
			Longitude: f64(-0.12),
		})
		require.NoError(t, err)
		assert.InDelta(t, 51.5, loc.Latitude, 0)
		assert.InDelta(t, 0.0, loc.Timezone, 0)
	})
}

func TestLocationResolver_Place(t *testing.T) {
	t.Run("india uses IST and ignores override", func(t *testing.T) {
		geocoder := mocks.NewMockGeocoder(t)
		geocoder.EXPECT().Geocode(context.Background(), "Surat, Gujarat, India").
			Return(&domain.GeoPoint{Latitude: 21.17, Longitude: 72.83, DisplayName: "Surat"}, nil)

		loc, err := NewLocationResolver(geocoder, nil).Resolve(context.Background(), domain.BirthQuery{
			Place:    "Surat, Gujarat, India",
			Timezone: f64(-3),
		})
		require.NoError(t, err)
		assert.InDelta(t, domain.ISTOffset, loc.Timezone, 0)
		assert.Equal(t, "Surat", loc.DisplayName)
	})

	t.Run("elsewhere uses longitude estimate", func(t *testing.T) {
		geocoder := mocks.NewMockGeocoder(t)
		geocoder.EXPECT().Geocode(context.Background(), "Tokyo").
			Return(&domain.GeoPoint{Latitude: 35.68, Longitude: 139.69}, nil)

		loc, err := NewLocationResolver(geocoder, nil).Resolve(context.Background(), domain.BirthQuery{Place: "Tokyo"})
		require.NoError(t, err)
		assert.InDelta(t, 9.0, loc.Timezone, 0)
	})

	t.Run("not found propagates", func(t *testing.T) {
		geocoder := mocks.NewMockGeocoder(t)
		geocoder.EXPECT().Geocode(context.Background(), "Nowhere").Return(nil, domain.ErrPlaceNotFound)

		_, err := NewLocationResolver(geocoder, nil).Resolve(context.Background(), domain.BirthQuery{Place: "Nowhere"})
		require.ErrorIs(t, err, domain.ErrPlaceNotFound)
		assert.Contains(t, err.Error(), `"Nowhere"`)
	})
}

func TestLocationResolver_NothingSupplied(t *testing.T) {
	r := NewLocationResolver(mocks.NewMockGeocoder(t), nil)

	_, err := r.Resolve(context.Background(), domain.BirthQuery{Latitude: f64(23)})
	require.ErrorIs(t, err, domain.ErrMissingLocation)
}

func TestNewLocationResolver_PanicsWithoutGeocoder(t *testing.T) {
	assert.Panics(t, func() { NewLocationResolver(nil, nil) })
}
