package model

import "math"

// Line is one product in the cart. Quantity is always >= 1 while the line exists.
type Line struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Cart is an ordered list of lines, at most one per product. Order is
// insertion order and is kept across saves and merges.
type Cart struct {
	Lines []Line `json:"lines"`
}

func NewCart() *Cart {
	return &Cart{Lines: []Line{}}
}

func (c *Cart) indexOf(productID int) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of productID in the cart, appending a new line when absent.
func (c *Cart) Add(productID int) {
	c.AddQuantity(productID, 1)
}

// AddQuantity is Add for n units. n <= 0 is ignored and the line saturates
// at math.MaxInt instead of wrapping.
func (c *Cart) AddQuantity(productID, n int) {
	if n <= 0 {
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.Lines[i].Quantity = saturatingAdd(c.Lines[i].Quantity, n)
		return
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Quantity: n})
}

// Remove drops the line for productID. Reports whether a line was removed.
func (c *Cart) Remove(productID int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// ChangeQuantity adjusts an existing line by delta and removes it when the
// result drops to zero or below. A delta that would overflow the line is
// rejected with ErrInvalidQuantity and leaves the cart untouched.
func (c *Cart) ChangeQuantity(productID, delta int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return ErrItemNotInCart
	}
	if delta > 0 && c.Lines[i].Quantity > math.MaxInt-delta {
		return ErrInvalidQuantity
	}

	next := c.Lines[i].Quantity + delta
	if next <= 0 {
		c.Remove(productID)
		return nil
	}
	c.Lines[i].Quantity = next
	return nil
}

// Quantity returns 0 when productID is not in the cart.
func (c *Cart) Quantity(productID int) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n = saturatingAdd(n, l.Quantity)
	}
	return n
}

// saturatingAdd adds two non-negative quantities, clamping at math.MaxInt.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = []Line{}
}

func (c *Cart) Clone() *Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return &Cart{Lines: lines}
}

// Merge combines the stored user cart with the cart built while anonymous.
// The result starts as a copy of user; every local line then either adds
// its quantity to the matching line or is appended, in local order.
// Neither argument is modified and either may be nil.
func Merge(user, local *Cart) *Cart {
	merged := NewCart()
	if user != nil {
		merged = user.Clone()
	}
	if local == nil {
		return merged
	}
	for _, l := range local.Lines {
		merged.AddQuantity(l.ProductID, l.Quantity)
	}
	return merged
}
