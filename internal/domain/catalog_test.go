package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReferenceCatalog(t *testing.T) {
	c := ReferenceCatalog()

	require.Equal(t, 7, c.Len())
	require.Equal(t, "Hoan Kiem Lake", c.Origin().Name)
	require.Zero(t, c.Origin().Dwell)

	mausoleum := c.At(5)
	require.Equal(t, "Ho Chi Minh Mausoleum", mausoleum.Name)
	require.Equal(t, 20*time.Minute, mausoleum.BaselineTravel)
	require.Equal(t, 90*time.Minute, mausoleum.Dwell)
	require.Equal(t, "08:00", mausoleum.OpensAt.String())
	require.Equal(t, "11:00", mausoleum.ClosesAt.String())
}

func TestCatalogLocationsIsACopy(t *testing.T) {
	c := ReferenceCatalog()

	locs := c.Locations()
	locs[1].Name = "changed"

	require.Equal(t, "Old Quarter", c.At(1).Name)
}

func TestCatalogLocationUnknown(t *testing.T) {
	c := ReferenceCatalog()

	_, err := c.Location(7)
	require.ErrorIs(t, err, ErrUnknownLocation)

	_, err = c.Location(-1)
	require.ErrorIs(t, err, ErrUnknownLocation)

	l, err := c.Location(6)
	require.NoError(t, err)
	require.Equal(t, "One Pillar Pagoda", l.Name)
}

func TestNewCatalogAcceptsRestrictedOrigin(t *testing.T) {
	c, err := NewCatalog([]Location{
		{ID: 0, Name: "hotel", Dwell: 15 * time.Minute, OpensAt: MustTimeOfDay("09:00"), ClosesAt: MustTimeOfDay("09:30")},
	})
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, c.Origin().Dwell)
}

func TestNewCatalogValidation(t *testing.T) {
	origin := Location{ID: 0, Name: "origin", ClosesAt: MustTimeOfDay("23:59")}

	tests := []struct {
		name string
		locs []Location
	}{
		{name: "empty", locs: nil},
		{name: "non contiguous ids", locs: []Location{origin, {ID: 2, Name: "x"}}},
		{name: "empty name", locs: []Location{origin, {ID: 1, Name: "  "}}},
		{name: "negative dwell", locs: []Location{origin, {ID: 1, Name: "x", Dwell: -time.Minute}}},
		{name: "negative travel", locs: []Location{origin, {ID: 1, Name: "x", BaselineTravel: -time.Minute}}},
		{
			name: "inverted window",
			locs: []Location{origin, {ID: 1, Name: "x", OpensAt: MustTimeOfDay("12:00"), ClosesAt: MustTimeOfDay("09:00")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.locs)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}
}

func TestLocationOpenAtInclusive(t *testing.T) {
	l := Location{OpensAt: MustTimeOfDay("08:00"), ClosesAt: MustTimeOfDay("11:00")}

	require.False(t, l.OpenAt(MustTimeOfDay("07:59")))
	require.True(t, l.OpenAt(MustTimeOfDay("08:00")))
	require.True(t, l.OpenAt(MustTimeOfDay("11:00")))
	require.False(t, l.OpenAt(MustTimeOfDay("11:01")))
}
