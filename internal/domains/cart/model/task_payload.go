package model

import "time"

// CompleteCheckoutPayload asks the worker to clear StorageKey once the
// simulated order is done.
type CompleteCheckoutPayload struct {
	CheckoutID  string    `json:"checkout_id"`
	StorageKey  string    `json:"storage_key"`
	UserID      string    `json:"user_id,omitempty"`
	ItemCount   int       `json:"item_count"`
	Total       string    `json:"total"`
	RequestedAt time.Time `json:"requested_at"`
}
