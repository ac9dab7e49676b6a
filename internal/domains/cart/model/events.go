package model

import "time"

type ActivityType string

const (
	ActivityItemAdded        ActivityType = "item_added"
	ActivityItemRemoved      ActivityType = "item_removed"
	ActivityQuantityChanged  ActivityType = "quantity_changed"
	ActivityCartCleared      ActivityType = "cart_cleared"
	ActivityCartsMerged      ActivityType = "carts_merged"
	ActivityCheckoutStarted  ActivityType = "checkout_started"
	ActivityCheckoutComplete ActivityType = "checkout_completed"
)

// Activity is published after every cart mutation. Consumers must not
// rely on delivery; publishing never blocks a cart operation.
type Activity struct {
	Type       ActivityType `json:"type"`
	StorageKey string       `json:"storage_key"`
	UserID     string       `json:"user_id,omitempty"`
	ProductID  int          `json:"product_id,omitempty"`
	Quantity   int          `json:"quantity"`
	ItemCount  int          `json:"item_count"`
	OccurredAt time.Time    `json:"occurred_at"`
}
