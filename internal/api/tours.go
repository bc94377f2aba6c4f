package api

import (
	"context"
	"net/http"

	"github.com/rmonterol/tour-admin/internal/model"
)

// ListTours fetches one page of tours. Unlike the other collections the
// upstream answers with a bare JSON array; page and limit are still sent.
func (c *Client) ListTours(ctx context.Context, page, limit int) ([]model.Tour, error) {
	var tours []model.Tour
	err := c.do(ctx, http.MethodGet, "/tours", pageQuery(page, limit), nil, &tours)
	return tours, err
}

// ActiveTours returns every tour with isActive=true, unpaginated. The
// reservation form uses it as reference data.
func (c *Client) ActiveTours(ctx context.Context) ([]model.Tour, error) {
	var tours []model.Tour
	err := c.do(ctx, http.MethodGet, "/tours/active", nil, nil, &tours)
	return tours, err
}

// GetTour fetches a single tour by id.
func (c *Client) GetTour(ctx context.Context, id string) (model.Tour, error) {
	var t model.Tour
	err := c.do(ctx, http.MethodGet, "/tours/"+id, nil, nil, &t)
	return t, err
}

// CreateTour creates a tour and returns the stored document.
func (c *Client) CreateTour(ctx context.Context, in model.TourInput) (model.Tour, error) {
	var t model.Tour
	err := c.do(ctx, http.MethodPost, "/tours", nil, in, &t)
	return t, err
}

// UpdateTour replaces the editable fields of an existing tour.
func (c *Client) UpdateTour(ctx context.Context, id string, in model.TourInput) (model.Tour, error) {
	var t model.Tour
	err := c.do(ctx, http.MethodPut, "/tours/"+id, nil, in, &t)
	return t, err
}

// DeleteTour removes a tour.
func (c *Client) DeleteTour(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tours/"+id, nil, nil, nil)
}
