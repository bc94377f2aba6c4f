package model

import "time"

// AvailableDate is the auxiliary date sub-resource exposed at
// /available-dates. The tour form edits dates inline, but the upstream
// also allows managing them independently per tour.
type AvailableDate struct {
	ID     string    `json:"_id"`
	TourID string    `json:"tourId"`
	Date   time.Time `json:"date"`
}

// AvailableDateInput creates a date for a tour.
type AvailableDateInput struct {
	TourID string `json:"tourId"`
	Date   string `json:"date"`
}
