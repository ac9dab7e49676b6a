package repository

import (
	"context"
	"fmt"
	"time"

	"bakery-storefront/internal/domains/identity/model"
	"bakery-storefront/pkg/cache"
)

type RepositoryInterface interface {
	// Get returns nil when the session is not signed in.
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &sessionRepository{cache: c, ttl: ttl}
}

func (r *sessionRepository) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	var s model.Session
	found, err := r.cache.Get(ctx, model.SessionKey(sessionID), &s)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !found || s.UserID == "" {
		return nil, nil
	}
	return &s, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *model.Session) error {
	if err := r.cache.Set(ctx, model.SessionKey(session.SessionID), session, r.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, model.SessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
