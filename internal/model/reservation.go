package model

import "time"

// Reservation statuses accepted by the upstream API.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Statuses lists the valid reservation states in display order.
var Statuses = []string{StatusPending, StatusConfirmed, StatusCancelled}

// Reservation mirrors the upstream reservation document. On reads the
// upstream populates the customer and tour references, so they arrive as
// embedded objects rather than bare ids; either may be nil when the
// referenced document was deleted server-side.
//
// Fields:
//  ID         – reservations._id
//  Customer   – populated customer reference (json key customerId).
//  Tour       – populated tour reference (json key tourId).
//  Date       – booked departure day.
//  People     – party size, >= 1.
//  Status     – pending | confirmed | cancelled.
//  TotalPrice – tour price * people unless overridden server-side.
//  CreatedAt  – creation timestamp.
type Reservation struct {
	ID         string    `json:"_id"`
	Customer   *Customer `json:"customerId"`
	Tour       *Tour     `json:"tourId"`
	Date       time.Time `json:"date"`
	People     int       `json:"people"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReservationInput is the create/update payload: flat string references,
// people as an integer (never a string) and the date as a YYYY-MM-DD day.
type ReservationInput struct {
	CustomerID string `json:"customerId"`
	TourID     string `json:"tourId"`
	Date       string `json:"date"`
	People     int    `json:"people"`
	Status     string `json:"status"`
}

// ReservationList is the envelope of GET /reservations.
type ReservationList struct {
	Data  []Reservation `json:"data"`
	Total int           `json:"total"`
	Pages int           `json:"pages"`
}
