package hoursapi

import (
	"context"
	"time"

	"hours-server/models"
	"hours-server/models/venue"
)

// HoursAPI is the client side of the hours server.
type HoursAPI interface {
	Ping(ctx context.Context) error
	Classify(ctx context.Context, spec string) (*models.ClassifyResponse, error)
	Remaining(ctx context.Context, spec string, at time.Time) (*models.RemainingResponse, error)
	GetVenueStatus(ctx context.Context, venueID string, at time.Time) (*models.VenueStatus, error)
	PutVenue(ctx context.Context, v venue.Venue) (*venue.Venue, error)
}
