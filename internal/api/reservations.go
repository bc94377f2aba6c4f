package api

import (
	"context"
	"net/http"

	"github.com/rmonterol/tour-admin/internal/model"
)

// ListReservations fetches one page of reservations with their customer
// and tour references populated.
func (c *Client) ListReservations(ctx context.Context, page, limit int) (model.ReservationList, error) {
	var list model.ReservationList
	err := c.do(ctx, http.MethodGet, "/reservations", pageQuery(page, limit), nil, &list)
	return list, err
}

// GetReservation fetches a single reservation by id.
func (c *Client) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	var r model.Reservation
	err := c.do(ctx, http.MethodGet, "/reservations/"+id, nil, nil, &r)
	return r, err
}

// CreateReservation books a tour for a customer. The input is assumed to
// have passed booking.ValidateReservation; the upstream recomputes the
// total price from the tour.
func (c *Client) CreateReservation(ctx context.Context, in model.ReservationInput) (model.Reservation, error) {
	var r model.Reservation
	err := c.do(ctx, http.MethodPost, "/reservations", nil, in, &r)
	return r, err
}

// UpdateReservation replaces the editable fields of a reservation.
func (c *Client) UpdateReservation(ctx context.Context, id string, in model.ReservationInput) (model.Reservation, error) {
	var r model.Reservation
	err := c.do(ctx, http.MethodPut, "/reservations/"+id, nil, in, &r)
	return r, err
}

// DeleteReservation removes a reservation.
func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+id, nil, nil, nil)
}
