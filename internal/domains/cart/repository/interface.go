package repository

import (
	"context"

	"bakery-storefront/internal/domains/cart/model"
)

// RepositoryInterface persists whole-cart snapshots by storage key.
//
// Load returns an empty cart, not an error, when nothing is stored under
// key or the stored payload cannot be decoded. Errors mean the backend
// itself failed. Save overwrites; the last writer wins.
type RepositoryInterface interface {
	Load(ctx context.Context, key string) (*model.Cart, error)
	Save(ctx context.Context, key string, cart *model.Cart) error
}
