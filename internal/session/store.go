package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when no record exists for the id,
// because it expired, was deleted on logout, or never existed. Callers
// treat it as "anonymous", never as a failure.
var ErrNotFound = errors.New("session: not found")

// Store persists session records by id. Implementations apply their own
// TTL so abandoned sessions age out without an explicit logout.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Put(ctx context.Context, id string, s Session) error
	Delete(ctx context.Context, id string) error
}
