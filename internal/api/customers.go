package api

import (
	"context"
	"net/http"

	"github.com/rmonterol/tour-admin/internal/model"
)

// ListCustomers fetches one page of customers. The upstream wraps the rows
// in a JSend-style envelope, see model.CustomerList.
func (c *Client) ListCustomers(ctx context.Context, page, limit int) (model.CustomerList, error) {
	var list model.CustomerList
	err := c.do(ctx, http.MethodGet, "/customers", pageQuery(page, limit), nil, &list)
	return list, err
}

// GetCustomer fetches a single customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	var cust model.Customer
	err := c.do(ctx, http.MethodGet, "/customers/"+id, nil, nil, &cust)
	return cust, err
}

// CreateCustomer creates a customer and returns the stored document.
func (c *Client) CreateCustomer(ctx context.Context, in model.CustomerInput) (model.Customer, error) {
	var cust model.Customer
	err := c.do(ctx, http.MethodPost, "/customers", nil, in, &cust)
	return cust, err
}

// UpdateCustomer replaces the editable fields of an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id string, in model.CustomerInput) (model.Customer, error) {
	var cust model.Customer
	err := c.do(ctx, http.MethodPut, "/customers/"+id, nil, in, &cust)
	return cust, err
}

// DeleteCustomer removes a customer. Deleting an id that no longer exists
// comes back as a 404 *Error; the caller keeps its list untouched.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil, nil)
}
