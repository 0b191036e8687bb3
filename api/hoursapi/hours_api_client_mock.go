package hoursapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hours-server/hours"
	"hours-server/models"
	"hours-server/models/venue"
)

// HoursApiClientMock answers from an in-memory venue map, computing
// statuses locally.
type HoursApiClientMock struct {
	mu     sync.Mutex
	venues map[string]venue.Venue
	Now    time.Time
}

// NewHoursApiClientMock creates a mock whose "now" is fixed.
func NewHoursApiClientMock(now time.Time) *HoursApiClientMock {
	return &HoursApiClientMock{venues: make(map[string]venue.Venue), Now: now}
}

func (c *HoursApiClientMock) Ping(ctx context.Context) error { return nil }

func (c *HoursApiClientMock) Classify(ctx context.Context, spec string) (*models.ClassifyResponse, error) {
	return &models.ClassifyResponse{Spec: spec, Kind: hours.Classify(spec).String()}, nil
}

func (c *HoursApiClientMock) Remaining(ctx context.Context, spec string, at time.Time) (*models.RemainingResponse, error) {
	if at.IsZero() {
		at = c.Now
	}
	s, err := hours.ParseInLocation(spec, at.Location())
	if err != nil {
		return nil, err
	}
	r := hours.Remaining(s, at)
	return &models.RemainingResponse{
		Spec:               spec,
		Canonical:          s.String(),
		Kind:               s.Kind().String(),
		InSchedule:         r.InSchedule,
		SecondsUntilChange: r.Seconds,
		ChangesAt:          r.ChangesAt(at),
		At:                 at,
	}, nil
}

func (c *HoursApiClientMock) GetVenueStatus(ctx context.Context, venueID string, at time.Time) (*models.VenueStatus, error) {
	c.mu.Lock()
	v, ok := c.venues[venueID]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	rem, err := c.Remaining(ctx, v.Hours, at)
	if err != nil {
		return nil, err
	}
	return &models.VenueStatus{
		VenueID:            v.VenueID,
		VenueName:          v.VenueName,
		Hours:              rem.Canonical,
		Kind:               rem.Kind,
		Open:               rem.InSchedule,
		SecondsUntilChange: rem.SecondsUntilChange,
		ChangesAt:          rem.ChangesAt,
		At:                 rem.At,
	}, nil
}

func (c *HoursApiClientMock) PutVenue(ctx context.Context, v venue.Venue) (*venue.Venue, error) {
	spec, err := v.HoursSpec()
	if err != nil {
		return nil, err
	}
	v.Hours = spec
	c.mu.Lock()
	c.venues[v.VenueID] = v
	c.mu.Unlock()
	return &v, nil
}
