package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hours-server/dao/redis"
	"hours-server/hours"
	"hours-server/models"
	"hours-server/util"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
	AT_QUERY_ARG     = "at"
	OPEN_QUERY_ARG   = "open"
	SPEC_QUERY_ARG   = "spec"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, redis.ErrVenueNotFound):
		return http.StatusNotFound
	case errors.Is(err, util.ErrNotRecurring):
		return http.StatusUnprocessableEntity
	case errors.Is(err, redis.ErrInvalidHours), hours.IsParseError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Println("Internal error:", err)
	}
	writeError(w, status, err)
}

// parseAt reads an optional RFC 3339 instant. Absent means zero, which the
// services take as now.
func parseAt(vals url.Values) (time.Time, error) {
	s := vals.Get(AT_QUERY_ARG)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid argument %s: %w", AT_QUERY_ARG, err)
	}
	return t, nil
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	f, err := strconv.ParseFloat(vals.Get(name), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %s", name)
	}
	return f, nil
}
