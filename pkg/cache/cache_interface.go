package cache

import (
	"context"
	"time"
)

// Cache is the key/value contract shared by session storage and anything
// else that keeps short-lived JSON values in redis.
type Cache interface {
	// Get unmarshals the stored value into dest.
	// found is false on a miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value as JSON. ttl <= 0 keeps the key forever.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	Exists(ctx context.Context, key string) (bool, error)

	Ping(ctx context.Context) error
}
