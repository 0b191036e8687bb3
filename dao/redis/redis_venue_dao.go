package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"hours-server/db"
	"hours-server/hours"
	"hours-server/models/venue"
)

const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_geo_place_v1:%s"

var (
	// ErrVenueNotFound is returned when no venue is stored under an ID.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrInvalidHours is returned when a venue's hours do not parse.
	ErrInvalidHours = errors.New("invalid venue hours")
)

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

func venueKey(venueID string) string {
	return fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
// Venues without parseable hours are rejected with ErrInvalidHours. When
// only per day opening hours are given, Hours is filled in from them.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	if v.VenueID == "" {
		return fmt.Errorf("%w: missing venue_id", ErrInvalidHours)
	}
	spec, err := v.HoursSpec()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHours, err)
	}
	// The zone only matters for raw ranges, not for whether they parse.
	if _, err := hours.ParseInLocation(spec, time.UTC); err != nil {
		return fmt.Errorf("%w: venue %s: %w", ErrInvalidHours, v.VenueID, err)
	}
	v.Hours = spec

	ctx := dao.client.GetContext()
	if err := dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey(v.VenueID), v.VenueLat, v.VenueLon, v); err != nil {
		return fmt.Errorf("[RedisVenueDAO] failed to upsert venue %s: %w", v.VenueID, err)
	}
	return nil
}

// GetVenue returns the stored venue, or ErrVenueNotFound.
func (dao *RedisVenueDAO) GetVenue(venueID string) (*venue.Venue, error) {
	str, err := dao.client.Get(venueKey(venueID))
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s from redis: %w", venueID, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// GetNearbyVenues retrieves venues within radius kilometers, nearest first.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon float64, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the geo index.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	keys, err := dao.client.Keys(venueKey("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list venue geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := venueKey("")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteVenue removes a venue from the geo index. Deleting a missing venue
// is not an error.
func (dao *RedisVenueDAO) DeleteVenue(venueID string) error {
	ctx := dao.client.GetContext()
	if err := dao.client.RemoveLocation(ctx, VENUES_GEO_KEY_V1, venueKey(venueID)); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	log.Printf("[RedisVenueDAO] Deleted venue %s", venueID)
	return nil
}
