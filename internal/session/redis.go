package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session records in Redis so they survive process
// restarts and are shared between instances. Records are JSON blobs under
// "<prefix>:<id>" with the configured TTL; every Put refreshes the TTL so
// an active session does not expire mid-use.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisStore wraps an established Redis client.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: "sess"}
}

func (r *RedisStore) key(id string) string { return r.prefix + ":" + id }

// Get loads and decodes one record. A missing key maps to ErrNotFound; a
// corrupt record is treated the same way so a bad blob cannot wedge a
// browser out of logging in again.
func (r *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	raw, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		_ = r.rdb.Del(ctx, r.key(id)).Err()
		return Session{}, ErrNotFound
	}
	return s, nil
}

// Put stores the record with the configured TTL.
func (r *RedisStore) Put(ctx context.Context, id string, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key(id), raw, r.ttl).Err()
}

// Delete removes the record. Deleting an absent id is not an error.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, r.key(id)).Err()
}
