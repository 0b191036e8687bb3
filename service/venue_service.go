package services

import (
	"fmt"
	"log"
	"time"

	"hours-server/dao/redis"
	"hours-server/hours"
	"hours-server/models"
	"hours-server/models/venue"
)

type VenueService struct {
	venueDao *redis.RedisVenueDAO
	clock    Clock
	location *time.Location
}

// NewVenueService constructs a new VenueService. Day boundaries and raw
// ranges are interpreted in location.
func NewVenueService(venueDao *redis.RedisVenueDAO, clock Clock, location *time.Location) *VenueService {
	if location == nil {
		location = time.Local
	}
	return &VenueService{
		venueDao: venueDao,
		clock:    clock,
		location: location,
	}
}

// instant returns at in the service location, or now when at is zero.
func (vs *VenueService) instant(at time.Time) time.Time {
	if at.IsZero() {
		at = vs.clock.Now()
	}
	return at.In(vs.location)
}

// Classify reports the kind of spec without parsing it.
func (vs *VenueService) Classify(spec string) models.ClassifyResponse {
	return models.ClassifyResponse{Spec: spec, Kind: hours.Classify(spec).String()}
}

// Remaining parses spec and reports whether at is inside it and for how
// long. A zero at means now.
func (vs *VenueService) Remaining(spec string, at time.Time) (*models.RemainingResponse, error) {
	s, err := hours.ParseInLocation(spec, vs.location)
	if err != nil {
		return nil, err
	}
	at = vs.instant(at)
	r := hours.Remaining(s, at)
	if !r.Valid {
		return nil, fmt.Errorf("no result for %q at %s", spec, at)
	}
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

func (vs *VenueService) GetVenue(venueID string) (*venue.Venue, error) {
	return vs.venueDao.GetVenue(venueID)
}

func (vs *VenueService) UpsertVenue(v venue.Venue) error {
	return vs.venueDao.UpsertVenue(v)
}

func (vs *VenueService) DeleteVenue(venueID string) error {
	return vs.venueDao.DeleteVenue(venueID)
}

func (vs *VenueService) GetVenuesNearby(lat, lon, radius float64) ([]venue.Venue, error) {
	return vs.venueDao.GetNearbyVenues(lat, lon, radius)
}

// GetVenueStatus reports whether the venue is open at at (now if zero).
func (vs *VenueService) GetVenueStatus(venueID string, at time.Time) (*models.VenueStatus, error) {
	v, err := vs.venueDao.GetVenue(venueID)
	if err != nil {
		return nil, err
	}
	return vs.status(*v, vs.instant(at))
}

func (vs *VenueService) status(v venue.Venue, at time.Time) (*models.VenueStatus, error) {
	rem, err := vs.Remaining(v.Hours, at)
	if err != nil {
		return nil, fmt.Errorf("venue %s: %w", v.VenueID, err)
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

// GetVenuesNearbyWithStatus returns nearby venues with their status at at.
// Venues whose stored hours no longer parse are skipped.
func (vs *VenueService) GetVenuesNearbyWithStatus(lat, lon, radius float64, at time.Time) ([]models.VenueWithStatus, error) {
	venues, err := vs.venueDao.GetNearbyVenues(lat, lon, radius)
	if err != nil {
		return nil, err
	}
	at = vs.instant(at)
	result := make([]models.VenueWithStatus, 0, len(venues))
	for _, v := range venues {
		st, err := vs.status(v, at)
		if err != nil {
			log.Printf("[VenueService] Skipping venue %s: %v", v.VenueID, err)
			continue
		}
		result = append(result, models.VenueWithStatus{Venue: v, Status: *st})
	}
	return result, nil
}

// GetOpenVenuesNearby is GetVenuesNearbyWithStatus limited to open venues.
func (vs *VenueService) GetOpenVenuesNearby(lat, lon, radius float64, at time.Time) ([]models.VenueWithStatus, error) {
	all, err := vs.GetVenuesNearbyWithStatus(lat, lon, radius, at)
	if err != nil {
		return nil, err
	}
	open := all[:0]
	for _, vws := range all {
		if vws.Status.Open {
			open = append(open, vws)
		}
	}
	return open, nil
}

// GetVenueSpec returns the venue with its parsed hours.
func (vs *VenueService) GetVenueSpec(venueID string) (hours.Spec, *venue.Venue, error) {
	v, err := vs.venueDao.GetVenue(venueID)
	if err != nil {
		return nil, nil, err
	}
	spec, err := hours.ParseInLocation(v.Hours, vs.location)
	if err != nil {
		return nil, nil, fmt.Errorf("venue %s: %w", venueID, err)
	}
	return spec, v, nil
}
