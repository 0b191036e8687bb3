package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hours-server/dao/redis"
	"hours-server/db"
	"hours-server/models"
	"hours-server/models/venue"
	services "hours-server/service"
)

// Saturday 2015-05-16 10:00 UTC.
var now = time.Date(2015, time.May, 16, 10, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, venues ...venue.Venue) *mux.Router {
	t.Helper()
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	for _, v := range venues {
		require.NoError(t, dao.UpsertVenue(v))
	}
	vs := services.NewVenueService(dao, services.FixedClock{T: now}, time.UTC)
	hh := NewHoursHandler(vs)
	vh := NewVenueHandler(vs)

	r := mux.NewRouter()
	r.HandleFunc("/ping", hh.Ping).Methods("GET")
	r.HandleFunc("/v1/hours/classify", hh.Classify).Methods("GET")
	r.HandleFunc("/v1/hours/remaining", hh.Remaining).Methods("GET")
	r.HandleFunc("/v1/venues/nearby", vh.GetVenuesNearby).Methods("GET")
	r.HandleFunc("/v1/venues/{id}", vh.GetVenue).Methods("GET")
	r.HandleFunc("/v1/venues/{id}", vh.PutVenue).Methods("PUT")
	r.HandleFunc("/v1/venues/{id}", vh.DeleteVenue).Methods("DELETE")
	r.HandleFunc("/v1/venues/{id}/status", vh.GetVenueStatus).Methods("GET")
	r.HandleFunc("/v1/venues/{id}/chart", vh.GetVenueChart).Methods("GET")
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHoursHandler_Classify(t *testing.T) {
	r := newTestRouter(t)

	rr := do(r, "GET", "/v1/hours/classify?spec=MWF8-12", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.ClassifyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "weekly", resp.Kind)

	rr = do(r, "GET", "/v1/hours/classify", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHoursHandler_Remaining(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		target  string
		status  int
		in      bool
		seconds int
	}{
		{"now", "/v1/hours/remaining?spec=830-12", http.StatusOK, true, 2 * 3600},
		{"explicit at", "/v1/hours/remaining?spec=830-12&at=2015-05-16T07:00:00Z", http.StatusOK, false, 90 * 60},
		{"bad spec", "/v1/hours/remaining?spec=12-830", http.StatusBadRequest, false, 0},
		{"missing spec", "/v1/hours/remaining", http.StatusBadRequest, false, 0},
		{"biweekly", "/v1/hours/remaining?spec=BM8-12", http.StatusBadRequest, false, 0},
		{"bad at", "/v1/hours/remaining?spec=8-12&at=yesterday", http.StatusBadRequest, false, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := do(r, "GET", test.target, "")

			require.Equal(t, test.status, rr.Code, rr.Body.String())
			if test.status != http.StatusOK {
				var e models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
				assert.NotEmpty(t, e.Error)
				return
			}
			var resp models.RemainingResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, test.in, resp.InSchedule)
			assert.Equal(t, test.seconds, resp.SecondsUntilChange)
		})
	}
}

func TestVenueHandler_CRUD(t *testing.T) {
	r := newTestRouter(t)

	// Arrange / Act
	rr := do(r, "PUT", "/v1/venues/cafe", `{"venue_name": "Cafe", "venue_lat": 1, "venue_lng": 2,
		"opening_hours": [{"day_int": 5, "venue_open": 9, "venue_closed": "1130"}]}`)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var stored venue.Venue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stored))
	assert.Equal(t, "cafe", stored.VenueID)
	assert.Equal(t, "A9-1130", stored.Hours)

	rr = do(r, "GET", "/v1/venues/cafe/status", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var st models.VenueStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
	assert.True(t, st.Open)
	assert.Equal(t, 90*60, st.SecondsUntilChange)

	rr = do(r, "GET", "/v1/venues/cafe/chart", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	rr = do(r, "DELETE", "/v1/venues/cafe", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(r, "GET", "/v1/venues/cafe", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVenueHandler_Errors(t *testing.T) {
	r := newTestRouter(t, venue.Venue{
		VenueID: "once",
		Hours:   "20150516121900-20150516122000",
	})

	assert.Equal(t, http.StatusBadRequest, do(r, "PUT", "/v1/venues/x", `{"hours": "25-26"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "PUT", "/v1/venues/x", `not json`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, "GET", "/v1/venues/missing/status", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "GET", "/v1/venues/once/status?at=noon", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(r, "GET", "/v1/venues/once/chart", "").Code)
}

func TestVenueHandler_GetVenuesNearby(t *testing.T) {
	r := newTestRouter(t,
		venue.Venue{VenueID: "bakery", VenueLat: 40.7128, VenueLon: -74.0060, Hours: "P6-14"},
		venue.Venue{VenueID: "bar", VenueLat: 40.7130, VenueLon: -74.0061, Hours: "AF20-24"},
	)

	rr := do(r, "GET", "/v1/venues/nearby?lat=40.7128&lon=-74.0060&radius=5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []models.VenueWithStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rr = do(r, "GET", "/v1/venues/nearby?lat=40.7128&lon=-74.0060&radius=5&open=true&at=2015-05-16T21:00:00Z", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var open []models.VenueWithStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &open))
	require.Len(t, open, 1)
	assert.Equal(t, "bar", open[0].Venue.VenueID)

	assert.Equal(t, http.StatusBadRequest, do(r, "GET", "/v1/venues/nearby?lat=x&lon=1&radius=1", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "GET", "/v1/venues/nearby?lat=1&lon=1&radius=1&open=maybe", "").Code)
}

func TestPing(t *testing.T) {
	rr := do(newTestRouter(t), "GET", "/ping", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}
