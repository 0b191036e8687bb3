package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hours-server/dao/redis"
	"hours-server/db"
	"hours-server/hours"
	"hours-server/models/venue"
)

// Saturday 2015-05-16 10:00 UTC.
var saturdayTen = time.Date(2015, time.May, 16, 10, 0, 0, 0, time.UTC)

func newTestVenueService(t *testing.T, venues ...venue.Venue) *VenueService {
	t.Helper()
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	for _, v := range venues {
		require.NoError(t, dao.UpsertVenue(v))
	}
	return NewVenueService(dao, FixedClock{T: saturdayTen}, time.UTC)
}

func TestVenueService_Remaining(t *testing.T) {
	vs := newTestVenueService(t)

	// Act
	got, err := vs.Remaining("0830-1200", time.Time{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "830-12", got.Canonical)
	assert.Equal(t, "daily", got.Kind)
	assert.True(t, got.InSchedule)
	assert.Equal(t, 2*3600, got.SecondsUntilChange)
	assert.True(t, saturdayTen.Equal(got.At))
	assert.True(t, saturdayTen.Add(2*time.Hour).Equal(got.ChangesAt))
}

func TestVenueService_Remaining_InvalidSpec(t *testing.T) {
	vs := newTestVenueService(t)

	_, err := vs.Remaining("12-8", saturdayTen)
	assert.ErrorIs(t, err, hours.ErrNonMonotonicRange)

	_, err = vs.Remaining("BM8-12", saturdayTen)
	assert.ErrorIs(t, err, hours.ErrUnsupportedKind)
}

func TestVenueService_Classify(t *testing.T) {
	vs := newTestVenueService(t)

	assert.Equal(t, "weekly", vs.Classify("MWF8-12").Kind)
	assert.Equal(t, "invalid", vs.Classify("nonsense").Kind)
}

func TestVenueService_GetVenueStatus(t *testing.T) {
	vs := newTestVenueService(t,
		venue.Venue{VenueID: "office", VenueName: "Office", Hours: "MTWRF9-17"},
	)

	// Saturday: closed until Monday 09:00
	st, err := vs.GetVenueStatus("office", time.Time{})
	require.NoError(t, err)
	assert.False(t, st.Open)
	assert.Equal(t, "weekly", st.Kind)
	assert.Equal(t, (14+24+9)*3600, st.SecondsUntilChange)

	monday := time.Date(2015, time.May, 18, 12, 0, 0, 0, time.UTC)
	st, err = vs.GetVenueStatus("office", monday)
	require.NoError(t, err)
	assert.True(t, st.Open)
	assert.Equal(t, 5*3600, st.SecondsUntilChange)

	_, err = vs.GetVenueStatus("missing", monday)
	assert.ErrorIs(t, err, redis.ErrVenueNotFound)
}

func TestVenueService_GetOpenVenuesNearby(t *testing.T) {
	vs := newTestVenueService(t,
		venue.Venue{VenueID: "bakery", VenueLat: 40.7128, VenueLon: -74.0060, Hours: "P6-14"},
		venue.Venue{VenueID: "bar", VenueLat: 40.7130, VenueLon: -74.0061, Hours: "AF20-24"},
		venue.Venue{VenueID: "far", VenueLat: 51.5074, VenueLon: -0.1278, Hours: "0-24"},
	)

	// Act
	all, err := vs.GetVenuesNearbyWithStatus(40.7128, -74.0060, 5, time.Time{})
	require.NoError(t, err)
	open, err := vs.GetOpenVenuesNearby(40.7128, -74.0060, 5, time.Time{})
	require.NoError(t, err)

	// Assert
	require.Len(t, all, 2)
	require.Len(t, open, 1)
	assert.Equal(t, "bakery", open[0].Venue.VenueID)
	assert.Equal(t, 4*3600, open[0].Status.SecondsUntilChange)
}
