package model

import "errors"

var (
	// ErrUnknownProduct rejects adds of ids that are not on the menu.
	ErrUnknownProduct = errors.New("unknown product")
	ErrItemNotInCart  = errors.New("item not in cart")
	ErrEmptyCart      = errors.New("cart is empty")
	// ErrInvalidQuantity rejects a change that would overflow a line.
	ErrInvalidQuantity = errors.New("invalid quantity")

	ErrInvalidIdentity = errors.New("invalid identity")
	ErrCheckoutQueue   = errors.New("failed to schedule checkout")
)

// Error codes returned in API responses
const (
	ErrCodeUnknownProduct  = "UNKNOWN_PRODUCT"
	ErrCodeItemNotInCart   = "ITEM_NOT_IN_CART"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
)
