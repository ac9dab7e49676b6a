package model

import (
	catalogModel "bakery-storefront/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
)

// PriceLookup resolves the current menu price of a product.
type PriceLookup interface {
	Price(productID int) (decimal.Decimal, bool)
}

// ProductLookup resolves menu entries for rendering.
type ProductLookup interface {
	Get(id int) (catalogModel.Product, error)
}

// Subtotal is sum(price * quantity). Lines whose product is no longer on
// the menu contribute nothing.
func (c *Cart) Subtotal(prices PriceLookup) decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		price, ok := prices.Price(l.ProductID)
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// ShippingFee charges the flat fee only when there is something to ship.
func (c *Cart) ShippingFee(flat decimal.Decimal) decimal.Decimal {
	if c.IsEmpty() {
		return decimal.Zero
	}
	return flat
}

func (c *Cart) Total(prices PriceLookup, flat decimal.Decimal) decimal.Decimal {
	return c.Subtotal(prices).Add(c.ShippingFee(flat))
}

// Summarize renders the cart with product details and totals.
func (c *Cart) Summarize(products ProductLookup, prices PriceLookup, flat decimal.Decimal) Summary {
	lines := make([]LineView, 0, len(c.Lines))
	for _, l := range c.Lines {
		p, err := products.Get(l.ProductID)
		if err != nil {
			continue
		}
		lines = append(lines, LineView{
			ProductID: l.ProductID,
			Name:      p.Name,
			Image:     p.Image,
			Alt:       p.Alt,
			UnitPrice: p.Price,
			Quantity:  l.Quantity,
			LineTotal: p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}

	return Summary{
		Lines:       lines,
		ItemCount:   c.ItemCount(),
		Subtotal:    c.Subtotal(prices),
		ShippingFee: c.ShippingFee(flat),
		Total:       c.Total(prices, flat),
		IsEmpty:     c.IsEmpty(),
	}
}
