package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Product is one cake on the menu. The menu is static and priced in BRL.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Rating      int             `json:"rating"`
	Image       string          `json:"image"`
	Alt         string          `json:"alt"`
}

func (p Product) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Min(1)),
		validation.Field(&p.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&p.Price, validation.By(nonNegative)),
		validation.Field(&p.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

func nonNegative(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_invalid_price", "must be a decimal")
	}
	if d.IsNegative() {
		return validation.NewError("validation_negative_price", "must not be negative")
	}
	return nil
}
