package handlers

import (
	"errors"
	"net/http"
	"time"

	"hours-server/models"
)

// HoursService answers ad hoc questions about a spec.
type HoursService interface {
	Classify(spec string) models.ClassifyResponse
	Remaining(spec string, at time.Time) (*models.RemainingResponse, error)
}

type HoursHandler struct {
	service HoursService
}

func NewHoursHandler(service HoursService) *HoursHandler {
	return &HoursHandler{service: service}
}

// Classify handles GET /v1/hours/classify?spec=
func (h *HoursHandler) Classify(w http.ResponseWriter, r *http.Request) {
	spec := r.URL.Query().Get(SPEC_QUERY_ARG)
	if spec == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing argument "+SPEC_QUERY_ARG))
		return
	}
	writeJSON(w, http.StatusOK, h.service.Classify(spec))
}

// Remaining handles GET /v1/hours/remaining?spec=&at=
func (h *HoursHandler) Remaining(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	at, err := parseAt(vals)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp, err := h.service.Remaining(vals.Get(SPEC_QUERY_ARG), at)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Ping handles GET /ping
func (h *HoursHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
