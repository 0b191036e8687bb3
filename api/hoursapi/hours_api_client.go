package hoursapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hours-server/api"
	"hours-server/models"
	"hours-server/models/venue"
)

// HoursApiClient embeds the common HTTPClient
type HoursApiClient struct {
	*api.HTTPClient
}

// NewHoursApiClient creates a new instance of HoursApiClient
func NewHoursApiClient(httpClient *api.HTTPClient) *HoursApiClient {
	return &HoursApiClient{
		HTTPClient: httpClient,
	}
}

func atQuery(at time.Time) url.Values {
	q := url.Values{}
	if !at.IsZero() {
		q.Set("at", at.Format(time.RFC3339))
	}
	return q
}

func (c *HoursApiClient) Ping(ctx context.Context) error {
	return c.Request(ctx, "GET", "/ping", nil, nil, nil)
}

func (c *HoursApiClient) Classify(ctx context.Context, spec string) (*models.ClassifyResponse, error) {
	var response models.ClassifyResponse
	err := c.Request(ctx, "GET", "/v1/hours/classify", url.Values{"spec": {spec}}, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Remaining asks the server about spec at at. A zero at means the server's
// now.
func (c *HoursApiClient) Remaining(ctx context.Context, spec string, at time.Time) (*models.RemainingResponse, error) {
	q := atQuery(at)
	q.Set("spec", spec)
	var response models.RemainingResponse
	if err := c.Request(ctx, "GET", "/v1/hours/remaining", q, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *HoursApiClient) GetVenueStatus(ctx context.Context, venueID string, at time.Time) (*models.VenueStatus, error) {
	var response models.VenueStatus
	endpoint := fmt.Sprintf("/v1/venues/%s/status", url.PathEscape(venueID))
	if err := c.Request(ctx, "GET", endpoint, atQuery(at), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *HoursApiClient) PutVenue(ctx context.Context, v venue.Venue) (*venue.Venue, error) {
	var response venue.Venue
	endpoint := "/v1/venues/" + url.PathEscape(v.VenueID)
	if err := c.Request(ctx, "PUT", endpoint, nil, v, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
