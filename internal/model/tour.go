package model

import "time"

// Tour mirrors the upstream tour document.
//
// Fields:
//  ID             – tours._id
//  Name           – display name.
//  Description    – long description.
//  Duration       – duration in hours.
//  Price          – price per person.
//  MaxPeople      – capacity per departure.
//  IsActive       – only active tours accept new reservations.
//  AvailableDates – calendar days the tour can be booked. The upstream
//                   stores them as absolute instants; only the calendar
//                   day is meaningful to this client.
type Tour struct {
	ID             string      `json:"_id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Duration       float64     `json:"duration"`
	Price          float64     `json:"price"`
	MaxPeople      int         `json:"maxPeople"`
	IsActive       bool        `json:"isActive"`
	AvailableDates []time.Time `json:"availableDates"`
}

// TourInput is the create/update payload. Numeric fields are pointers so
// an empty form input travels as "unset" rather than zero. Dates are the
// canonical UTC-midnight RFC3339 strings produced by the tour form.
type TourInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Duration       *float64 `json:"duration,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	MaxPeople      *int     `json:"maxPeople,omitempty"`
	IsActive       bool     `json:"isActive"`
	AvailableDates []string `json:"availableDates"`
}
