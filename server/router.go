package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HoursRoutes serves the spec endpoints.
type HoursRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	Classify(w http.ResponseWriter, r *http.Request)
	Remaining(w http.ResponseWriter, r *http.Request)
}

// VenueRoutes serves the venue endpoints.
type VenueRoutes interface {
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	PutVenue(w http.ResponseWriter, r *http.Request)
	DeleteVenue(w http.ResponseWriter, r *http.Request)
	GetVenueStatus(w http.ResponseWriter, r *http.Request)
	GetVenueChart(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	hoursHandler HoursRoutes
	venueHandler VenueRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	hoursHandler HoursRoutes,
	venueHandler VenueRoutes,
	router *mux.Router) *Router {
	return &Router{
		hoursHandler: hoursHandler,
		venueHandler: venueHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.hoursHandler.Ping).Methods("GET")

	// expects ?spec={hours spec}[&at={RFC 3339}]
	r.router.HandleFunc("/v1/hours/classify", r.hoursHandler.Classify).Methods("GET")
	r.router.HandleFunc("/v1/hours/remaining", r.hoursHandler.Remaining).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}[&at=][&open=]
	// Registered before /{id} so "nearby" is not taken as an ID.
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.PutVenue).Methods("PUT")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.DeleteVenue).Methods("DELETE")
	r.router.HandleFunc("/v1/venues/{id}/status", r.venueHandler.GetVenueStatus).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}/chart", r.venueHandler.GetVenueChart).Methods("GET")
}
