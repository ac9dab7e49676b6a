package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bakery-storefront/internal/domains/identity/model"
	"bakery-storefront/internal/domains/identity/repository"
	"bakery-storefront/internal/shared"
	"bakery-storefront/pkg/logger"
)

type IdentityService struct {
	repo repository.RepositoryInterface
	now  func() time.Time

	mu        sync.RWMutex
	onSignIn  []Hook
	onSignOut []Hook
}

func NewIdentityService(repo repository.RepositoryInterface) *IdentityService {
	return &IdentityService{repo: repo, now: time.Now}
}

func (s *IdentityService) OnSignIn(hook Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSignIn = append(s.onSignIn, hook)
}

func (s *IdentityService) OnSignOut(hook Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSignOut = append(s.onSignOut, hook)
}

func (s *IdentityService) hooks(signIn bool) []Hook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if signIn {
		return s.onSignIn
	}
	return s.onSignOut
}

func notify(ctx context.Context, hooks []Hook, sessionID, userID string) {
	for _, h := range hooks {
		h(ctx, sessionID, userID)
	}
}

// ===================================
// SIGN IN / SIGN OUT
// ===================================

// SignIn records the session as signed in and runs the sign-in hooks once.
// Repeating the call for the same user changes nothing.
func (s *IdentityService) SignIn(ctx context.Context, sessionID, userID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, model.ErrInvalidSession
	}
	userID, err := model.NormalizeUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidUserID, err)
	}

	existing, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.UserID == userID {
			return existing, nil
		}
		return nil, model.ErrAlreadySignedIn
	}

	session := &model.Session{
		SessionID:  sessionID,
		UserID:     userID,
		SignedInAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("User signed in", map[string]interface{}{
		"session_id": sessionID,
		"user_id":    userID,
	})

	notify(ctx, s.hooks(true), sessionID, userID)

	return session, nil
}

// SignOut runs the sign-out hooks while the user is still known, then
// forgets the session.
func (s *IdentityService) SignOut(ctx context.Context, sessionID string) error {
	existing, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return model.ErrNotSignedIn
	}

	notify(ctx, s.hooks(false), sessionID, existing.UserID)

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return err
	}

	logger.Info("User signed out", map[string]interface{}{
		"session_id": sessionID,
		"user_id":    existing.UserID,
	})
	return nil
}

// Current resolves the identity for a request. Store failures fall back to
// anonymous so browsing keeps working.
func (s *IdentityService) Current(ctx context.Context, sessionID string) shared.Identity {
	identity := shared.Identity{SessionID: sessionID}
	if sessionID == "" {
		return identity
	}

	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Warn("Session lookup failed, treating as anonymous", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
		return identity
	}
	if session != nil {
		identity.UserID = session.UserID
	}
	return identity
}
