package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bakery-storefront/internal/domains/cart/model"
)

type snapshot struct {
	Version int          `json:"version"`
	Lines   []model.Line `json:"lines"`
}

// legacyLine is the shape the browser storefront kept in local storage:
// a bare array of products with their quantity.
type legacyLine struct {
	ID        int `json:"id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Encode serializes cart as a versioned snapshot.
func Encode(cart *model.Cart) ([]byte, error) {
	lines := []model.Line{}
	if cart != nil {
		lines = cart.Lines
	}
	return json.Marshal(snapshot{Version: model.SnapshotVersion, Lines: lines})
}

// Decode parses a stored snapshot. Lines with a non-positive quantity or
// product id are dropped and repeated products are summed, so whatever
// comes back satisfies the cart invariants. An error means the payload is
// not a cart at all.
func Decode(raw []byte) (*model.Cart, error) {
	raw = bytes.TrimSpace(raw)
	cart := model.NewCart()
	if len(raw) == 0 {
		return cart, nil
	}

	if raw[0] == '[' {
		var legacy []legacyLine
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, fmt.Errorf("failed to decode legacy cart: %w", err)
		}
		for _, l := range legacy {
			id := l.ProductID
			if id == 0 {
				id = l.ID
			}
			addLine(cart, id, l.Quantity)
		}
		return cart, nil
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if snap.Version > model.SnapshotVersion {
		return nil, fmt.Errorf("unsupported cart snapshot version %d", snap.Version)
	}
	for _, l := range snap.Lines {
		addLine(cart, l.ProductID, l.Quantity)
	}
	return cart, nil
}

func addLine(cart *model.Cart, productID, quantity int) {
	if productID <= 0 || quantity <= 0 {
		return
	}
	cart.AddQuantity(productID, quantity)
}
