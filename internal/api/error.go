// Package api is the gateway client for the upstream tour-booking REST
// API. All entity data is owned by that service; this package only moves
// JSON across the wire and normalizes failures.
package api

import (
	"errors"
	"fmt"
)

// Error is the single failure type returned by every client operation.
// Transport problems (connection refused, timeout, bad DNS) carry Status 0;
// a non-2xx response carries the HTTP status and, when the body could be
// decoded, the server's own message. Callers treat both the same way: the
// operation failed and the previous view state stays as it was.
type Error struct {
	Status  int    // HTTP status, 0 for transport failures
	Message string // server message or transport error text
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: request failed: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an api.Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Message extracts a human-readable message from err, falling back to the
// provided default. Handlers use it to build flash notifications.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
