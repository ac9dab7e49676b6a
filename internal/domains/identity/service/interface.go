package service

import (
	"context"

	"bakery-storefront/internal/domains/identity/model"
	"bakery-storefront/internal/shared"
)

// ServiceInterface manages simulated sign-in state per browser session.
type ServiceInterface interface {
	SignIn(ctx context.Context, sessionID, userID string) (*model.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) shared.Identity

	OnSignIn(hook Hook)
	OnSignOut(hook Hook)
}

// Hook is called synchronously with the session and user involved.
type Hook func(ctx context.Context, sessionID, userID string)
