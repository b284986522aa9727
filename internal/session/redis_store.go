package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Field names are a fixed, flat layout. A future schema change must pick new
// field names rather than reinterpret these.
const (
	fieldToken    = "token"
	fieldIsSeller = "isSeller"
	fieldIsAdmin  = "isAdmin"
	fieldName     = "name"
)

// RedisStore implements Store on a Redis hash per session id.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

// Get reads the session hash. A missing key yields a zero session, not an
// error; a non-boolean flag value reads as false.
func (r *RedisStore) Get(ctx context.Context, sid string) (Session, error) {
	fields, err := r.client.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return Session{}, fmt.Errorf("session get: %w", err)
	}
	return Session{
		Token:    fields[fieldToken],
		IsSeller: fields[fieldIsSeller] == "true",
		IsAdmin:  fields[fieldIsAdmin] == "true",
		Name:     fields[fieldName],
	}, nil
}

// Set writes all four fields in a single HSET so readers never observe a
// partial session, then refreshes the TTL.
func (r *RedisStore) Set(ctx context.Context, sid string, s Session) error {
	key := sessionKey(sid)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		fieldToken:    s.Token,
		fieldIsSeller: boolField(s.IsSeller),
		fieldIsAdmin:  boolField(s.IsAdmin),
		fieldName:     s.Name,
	})
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Clear deletes the whole session key, leaving no stale flag behind for a
// subsequent guest session. Deleting an absent key succeeds.
func (r *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := r.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func boolField(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
