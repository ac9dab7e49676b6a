package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisRepository keeps each cart as one JSON string value.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository stores snapshots with ttl; 0 keeps them forever.
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

func (r *RedisRepository) Load(ctx context.Context, key string) (*model.Cart, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart %s: %w", key, err)
	}

	cart, err := Decode(raw)
	if err != nil {
		logger.Warn("Discarding unreadable cart snapshot", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return model.NewCart(), nil
	}
	return cart, nil
}

func (r *RedisRepository) Save(ctx context.Context, key string, cart *model.Cart) error {
	raw, err := Encode(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cart %s: %w", key, err)
	}
	return nil
}
