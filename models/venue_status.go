package models

import (
	"time"

	"hours-server/models/venue"
)

// VenueStatus is whether a venue is open at At and when that changes.
type VenueStatus struct {
	VenueID            string    `json:"venue_id"`
	VenueName          string    `json:"venue_name"`
	Hours              string    `json:"hours"`
	Kind               string    `json:"kind"`
	Open               bool      `json:"open"`
	SecondsUntilChange int       `json:"seconds_until_change"`
	ChangesAt          time.Time `json:"changes_at"`
	At                 time.Time `json:"at"`
}

// VenueWithStatus pairs a catalog venue with its current status.
type VenueWithStatus struct {
	Venue  venue.Venue `json:"venue"`
	Status VenueStatus `json:"status"`
}
