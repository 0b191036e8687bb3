package models

import "hours-server/models/venue"

// VenueCatalog is the on disk list of venues loaded by the refresher.
type VenueCatalog struct {
	Venues []venue.Venue `json:"venues" yaml:"venues"`
}
