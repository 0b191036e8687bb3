package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"hours-server/hours"
	"hours-server/models"
	"hours-server/models/venue"
	"hours-server/util"
)

// VenueService is what VenueHandler needs from the venue catalog.
type VenueService interface {
	GetVenue(venueID string) (*venue.Venue, error)
	UpsertVenue(v venue.Venue) error
	DeleteVenue(venueID string) error
	GetVenueSpec(venueID string) (hours.Spec, *venue.Venue, error)
	GetVenueStatus(venueID string, at time.Time) (*models.VenueStatus, error)
	GetVenuesNearbyWithStatus(lat, lon, radius float64, at time.Time) ([]models.VenueWithStatus, error)
	GetOpenVenuesNearby(lat, lon, radius float64, at time.Time) ([]models.VenueWithStatus, error)
}

type VenueHandler struct {
	service VenueService
}

func NewVenueHandler(service VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

// GetVenuesNearby handles GET /v1/venues/nearby?lat=&lon=&radius=[&at=][&open=]
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	var coords [3]float64
	for i, name := range []string{LAT_QUERY_ARG, LON_QUERY_ARG, RADIUS_QUERY_ARG} {
		f, err := parseArgFloat64(vals, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		coords[i] = f
	}
	at, err := parseAt(vals)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	openOnly := false
	if v := vals.Get(OPEN_QUERY_ARG); v != "" {
		if openOnly, err = strconv.ParseBool(v); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid argument %s", OPEN_QUERY_ARG))
			return
		}
	}

	lookup := h.service.GetVenuesNearbyWithStatus
	if openOnly {
		lookup = h.service.GetOpenVenuesNearby
	}
	result, err := lookup(coords[0], coords[1], coords[2], at)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetVenue handles GET /v1/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.GetVenue(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// PutVenue handles PUT /v1/venues/{id}. The path ID wins over the body.
func (h *VenueHandler) PutVenue(w http.ResponseWriter, r *http.Request) {
	var v venue.Venue
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid venue body: %w", err))
		return
	}
	v.VenueID = mux.Vars(r)["id"]
	if err := h.service.UpsertVenue(v); err != nil {
		writeServiceError(w, err)
		return
	}
	stored, err := h.service.GetVenue(v.VenueID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// DeleteVenue handles DELETE /v1/venues/{id}
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteVenue(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetVenueStatus handles GET /v1/venues/{id}/status[?at=]
func (h *VenueHandler) GetVenueStatus(w http.ResponseWriter, r *http.Request) {
	at, err := parseAt(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	st, err := h.service.GetVenueStatus(mux.Vars(r)["id"], at)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// GetVenueChart handles GET /v1/venues/{id}/chart and returns HTML.
func (h *VenueHandler) GetVenueChart(w http.ResponseWriter, r *http.Request) {
	spec, v, err := h.service.GetVenueSpec(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	title := v.VenueName
	if title == "" {
		title = v.VenueID
	}
	var buf bytes.Buffer
	if err := util.RenderWeekChart(spec, title, &buf); err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
