package api

import (
	"context"
	"net/http"

	"github.com/rmonterol/tour-admin/internal/model"
)

// Login exchanges credentials for a bearer token and the user it belongs to.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &resp)
	return resp, err
}

// Register creates an operator account. The upstream logs the new account
// in immediately, so the response carries a token as well.
func (c *Client) Register(ctx context.Context, in model.RegisterInput) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, in, &resp)
	return resp, err
}

// Me validates the bearer token attached to ctx and returns the current
// user. A 401 means the stored token is stale and the session must be
// discarded.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &u)
	return u, err
}
