package api

import (
	"context"
	"net/http"

	"github.com/rmonterol/tour-admin/internal/model"
)

// ListAvailableDates returns the date sub-resource rows for one tour.
func (c *Client) ListAvailableDates(ctx context.Context, tourID string) ([]model.AvailableDate, error) {
	var dates []model.AvailableDate
	err := c.do(ctx, http.MethodGet, "/available-dates/"+tourID, nil, nil, &dates)
	return dates, err
}

// CreateAvailableDate adds a bookable day to a tour.
func (c *Client) CreateAvailableDate(ctx context.Context, in model.AvailableDateInput) (model.AvailableDate, error) {
	var d model.AvailableDate
	err := c.do(ctx, http.MethodPost, "/available-dates", nil, in, &d)
	return d, err
}

// DeleteAvailableDate removes a bookable day by its own id.
func (c *Client) DeleteAvailableDate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/available-dates/"+id, nil, nil, nil)
}
