package repository

import (
	"context"
	"fmt"
	"time"

	"bakery-storefront/internal/domains/recommendation/model"
	"bakery-storefront/pkg/cache"
)

const snapshotKeyPrefix = "suggestion:"

type RepositoryInterface interface {
	// Load returns nil when the session has no suggestion yet.
	Load(ctx context.Context, sessionID string) (*model.Snapshot, error)
	Save(ctx context.Context, sessionID string, snapshot model.Snapshot) error
}

type snapshotRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSnapshotRepository(c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &snapshotRepository{cache: c, ttl: ttl}
}

func (r *snapshotRepository) Load(ctx context.Context, sessionID string) (*model.Snapshot, error) {
	var s model.Snapshot
	found, err := r.cache.Get(ctx, snapshotKeyPrefix+sessionID, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestion: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func (r *snapshotRepository) Save(ctx context.Context, sessionID string, snapshot model.Snapshot) error {
	if err := r.cache.Set(ctx, snapshotKeyPrefix+sessionID, snapshot, r.ttl); err != nil {
		return fmt.Errorf("failed to save suggestion: %w", err)
	}
	return nil
}
