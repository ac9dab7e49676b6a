package service

import (
	"context"
	"time"

	"bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/shared"
)

// ServiceInterface is the cart engine as seen by handlers, jobs and the
// identity provider.
type ServiceInterface interface {
	GetCart(ctx context.Context, identity shared.Identity) model.Summary
	AddItem(ctx context.Context, identity shared.Identity, productID int) (model.Summary, error)
	RemoveItem(ctx context.Context, identity shared.Identity, productID int) model.Summary
	ChangeQuantity(ctx context.Context, identity shared.Identity, productID, delta int) (model.Summary, error)
	Clear(ctx context.Context, identity shared.Identity) model.Summary

	// MergeOnSignIn folds the session's anonymous cart into the user's cart.
	MergeOnSignIn(ctx context.Context, sessionID, userID string) model.Summary
	// KeepOnSignOut copies the user's cart back to the session's anonymous scope.
	KeepOnSignOut(ctx context.Context, sessionID, userID string)

	Checkout(ctx context.Context, identity shared.Identity) (*model.CheckoutResponse, error)
	CompleteCheckout(ctx context.Context, payload model.CompleteCheckoutPayload) error
}

// Catalog is the read-only menu the cart prices against.
type Catalog interface {
	model.PriceLookup
	model.ProductLookup
}

// CheckoutScheduler runs the checkout completion after delay.
type CheckoutScheduler interface {
	ScheduleCheckoutCompletion(ctx context.Context, payload model.CompleteCheckoutPayload, delay time.Duration) error
}

// ActivityPublisher forwards cart activity to other systems.
type ActivityPublisher interface {
	Publish(ctx context.Context, activity model.Activity) error
}
