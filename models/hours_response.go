package models

import "time"

// ClassifyResponse is returned by GET /v1/hours/classify.
type ClassifyResponse struct {
	Spec string `json:"spec"`
	Kind string `json:"kind"`
}

// RemainingResponse is returned by GET /v1/hours/remaining.
type RemainingResponse struct {
	Spec               string    `json:"spec"`
	Canonical          string    `json:"canonical"`
	Kind               string    `json:"kind"`
	InSchedule         bool      `json:"in_schedule"`
	SecondsUntilChange int       `json:"seconds_until_change"`
	ChangesAt          time.Time `json:"changes_at"`
	At                 time.Time `json:"at"`
}

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
