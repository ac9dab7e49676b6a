package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
}

// ChangeQuantityRequest carries a signed delta, usually +1 or -1. Zero is
// valid; a missing delta is not.
type ChangeQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

type LineView struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Alt       string          `json:"alt"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Summary is the cart as shown to the shopper.
type Summary struct {
	Lines       []LineView      `json:"lines"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
	IsEmpty     bool            `json:"is_empty"`
}

// CheckoutResponse acknowledges a simulated order. The cart is emptied
// once CompletesAt has passed.
type CheckoutResponse struct {
	CheckoutID  string    `json:"checkout_id"`
	Summary     Summary   `json:"summary"`
	CompletesAt time.Time `json:"completes_at"`
}
