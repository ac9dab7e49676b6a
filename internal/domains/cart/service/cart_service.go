package service

import (
	"context"
	"fmt"
	"time"

	"bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/domains/cart/repository"
	"bakery-storefront/internal/shared"
	"bakery-storefront/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Config struct {
	ShippingFee   decimal.Decimal
	CheckoutDelay time.Duration
}

// CartService is stateless: every operation loads the snapshot for the
// identity's storage key, mutates it and saves it back. Concurrent writers
// to the same key are not coordinated and the last save wins.
type CartService struct {
	repo      repository.RepositoryInterface
	catalog   Catalog
	scheduler CheckoutScheduler
	publisher ActivityPublisher
	cfg       Config
	now       func() time.Time
}

func NewCartService(
	repo repository.RepositoryInterface,
	catalog Catalog,
	scheduler CheckoutScheduler,
	publisher ActivityPublisher,
	cfg Config,
) *CartService {
	return &CartService{
		repo:      repo,
		catalog:   catalog,
		scheduler: scheduler,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// ===================================
// STORAGE HELPERS
// ===================================

// load never fails: unreadable storage degrades to an empty cart, and lines
// for products that left the menu are dropped.
func (s *CartService) load(ctx context.Context, key string) *model.Cart {
	cart, err := s.repo.Load(ctx, key)
	if err != nil {
		logger.Warn("Cart storage read failed, using empty cart", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return model.NewCart()
	}
	if cart == nil {
		return model.NewCart()
	}

	for _, l := range cart.Clone().Lines {
		if _, ok := s.catalog.Price(l.ProductID); !ok {
			cart.Remove(l.ProductID)
		}
	}
	return cart
}

// save is fire-and-forget; the in-memory result is still returned to the caller.
func (s *CartService) save(ctx context.Context, key string, cart *model.Cart) {
	if err := s.repo.Save(ctx, key, cart); err != nil {
		logger.Warn("Cart storage write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *CartService) publish(ctx context.Context, activity model.Activity) {
	if s.publisher == nil {
		return
	}
	activity.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(ctx, activity); err != nil {
		logger.Warn("Failed to publish cart activity", map[string]interface{}{
			"type":  string(activity.Type),
			"key":   activity.StorageKey,
			"error": err.Error(),
		})
	}
}

func (s *CartService) summarize(cart *model.Cart) model.Summary {
	return cart.Summarize(s.catalog, s.catalog, s.cfg.ShippingFee)
}

// ===================================
// CART OPERATIONS
// ===================================

func (s *CartService) GetCart(ctx context.Context, identity shared.Identity) model.Summary {
	return s.summarize(s.load(ctx, model.StorageKey(identity)))
}

func (s *CartService) AddItem(ctx context.Context, identity shared.Identity, productID int) (model.Summary, error) {
	if _, ok := s.catalog.Price(productID); !ok {
		return model.Summary{}, fmt.Errorf("%w: %d", model.ErrUnknownProduct, productID)
	}

	key := model.StorageKey(identity)
	cart := s.load(ctx, key)
	cart.Add(productID)
	s.save(ctx, key, cart)

	s.publish(ctx, model.Activity{
		Type:       model.ActivityItemAdded,
		StorageKey: key,
		UserID:     identity.UserID,
		ProductID:  productID,
		Quantity:   cart.Quantity(productID),
		ItemCount:  cart.ItemCount(),
	})

	return s.summarize(cart), nil
}

// RemoveItem is a no-op when the product is not in the cart.
func (s *CartService) RemoveItem(ctx context.Context, identity shared.Identity, productID int) model.Summary {
	key := model.StorageKey(identity)
	cart := s.load(ctx, key)

	if cart.Remove(productID) {
		s.save(ctx, key, cart)
		s.publish(ctx, model.Activity{
			Type:       model.ActivityItemRemoved,
			StorageKey: key,
			UserID:     identity.UserID,
			ProductID:  productID,
			ItemCount:  cart.ItemCount(),
		})
	}

	return s.summarize(cart)
}

func (s *CartService) ChangeQuantity(ctx context.Context, identity shared.Identity, productID, delta int) (model.Summary, error) {
	key := model.StorageKey(identity)
	cart := s.load(ctx, key)

	if err := cart.ChangeQuantity(productID, delta); err != nil {
		return s.summarize(cart), fmt.Errorf("%w: %d", err, productID)
	}
	s.save(ctx, key, cart)

	s.publish(ctx, model.Activity{
		Type:       model.ActivityQuantityChanged,
		StorageKey: key,
		UserID:     identity.UserID,
		ProductID:  productID,
		Quantity:   cart.Quantity(productID),
		ItemCount:  cart.ItemCount(),
	})

	return s.summarize(cart), nil
}

func (s *CartService) Clear(ctx context.Context, identity shared.Identity) model.Summary {
	key := model.StorageKey(identity)
	return s.summarize(s.clearKey(ctx, key, identity.UserID, model.ActivityCartCleared))
}

func (s *CartService) clearKey(ctx context.Context, key, userID string, activity model.ActivityType) *model.Cart {
	cart := model.NewCart()
	s.save(ctx, key, cart)
	s.publish(ctx, model.Activity{Type: activity, StorageKey: key, UserID: userID})
	return cart
}

// ===================================
// IDENTITY SWITCHES
// ===================================

// MergeOnSignIn:
// 1. load the anonymous cart of the session (local)
// 2. load the stored cart of the user, empty if none
// 3. merge: user lines first, local quantities added or appended
// 4. persist under the user key, which is now the active cart
// 5. empty the session's anonymous cart, its lines now live in the user cart
func (s *CartService) MergeOnSignIn(ctx context.Context, sessionID, userID string) model.Summary {
	localKey := model.AnonymousKey(sessionID)
	local := s.load(ctx, localKey)
	user := s.load(ctx, model.UserKey(userID))

	merged := model.Merge(user, local)
	key := model.UserKey(userID)
	s.save(ctx, key, merged)
	if !local.IsEmpty() {
		s.save(ctx, localKey, model.NewCart())
	}

	logger.Info("Merged carts on sign-in", map[string]interface{}{
		"user_id":     userID,
		"local_items": local.ItemCount(),
		"user_items":  user.ItemCount(),
		"item_count":  merged.ItemCount(),
	})
	s.publish(ctx, model.Activity{
		Type:       model.ActivityCartsMerged,
		StorageKey: key,
		UserID:     userID,
		ItemCount:  merged.ItemCount(),
	})

	return s.summarize(merged)
}

// KeepOnSignOut leaves the user's last cart retrievable as the session's
// anonymous cart.
func (s *CartService) KeepOnSignOut(ctx context.Context, sessionID, userID string) {
	cart := s.load(ctx, model.UserKey(userID))
	s.save(ctx, model.AnonymousKey(sessionID), cart)
}

// ===================================
// SIMULATED CHECKOUT
// ===================================

// Checkout accepts the current cart as an order and schedules it to be
// cleared after the configured delay. Nothing is charged.
func (s *CartService) Checkout(ctx context.Context, identity shared.Identity) (*model.CheckoutResponse, error) {
	key := model.StorageKey(identity)
	cart := s.load(ctx, key)
	if cart.IsEmpty() {
		return nil, model.ErrEmptyCart
	}

	summary := s.summarize(cart)
	requestedAt := s.now().UTC()
	payload := model.CompleteCheckoutPayload{
		CheckoutID:  uuid.New().String(),
		StorageKey:  key,
		UserID:      identity.UserID,
		ItemCount:   summary.ItemCount,
		Total:       summary.Total.StringFixed(2),
		RequestedAt: requestedAt,
	}

	if err := s.scheduler.ScheduleCheckoutCompletion(ctx, payload, s.cfg.CheckoutDelay); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCheckoutQueue, err)
	}

	s.publish(ctx, model.Activity{
		Type:       model.ActivityCheckoutStarted,
		StorageKey: key,
		UserID:     identity.UserID,
		ItemCount:  summary.ItemCount,
	})

	return &model.CheckoutResponse{
		CheckoutID:  payload.CheckoutID,
		Summary:     summary,
		CompletesAt: requestedAt.Add(s.cfg.CheckoutDelay),
	}, nil
}

// CompleteCheckout empties the cart the checkout was taken from.
func (s *CartService) CompleteCheckout(ctx context.Context, payload model.CompleteCheckoutPayload) error {
	if payload.StorageKey == "" {
		return fmt.Errorf("%w: checkout %s has no storage key", model.ErrInvalidIdentity, payload.CheckoutID)
	}

	s.clearKey(ctx, payload.StorageKey, payload.UserID, model.ActivityCheckoutComplete)
	return nil
}
