// Package cart holds the working basket. It is purely client-local: nothing
// here talks to the backend, checkout converts the lines into an order
// request elsewhere.
package cart

import "cafe-delights/internal/domain"

// Line is one product in the basket plus the denormalized fields needed to
// render and price it without another catalog fetch.
type Line struct {
	ProductID string
	Name      string
	Price     float64
	ImageURL  string
	Quantity  int
}

// Cart keeps lines in insertion order with at most one line per product.
// All methods are synchronous and run on the UI event loop.
type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add merges qty into an existing line for the product or appends a new one.
// qty values below 1 count as 1.
func (c *Cart) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  qty,
	})
}

// Remove deletes the line for productID; unknown ids are a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the absolute quantity for productID. A quantity of zero
// or less removes the line, never leaving a zero-quantity entry behind.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy so callers cannot mutate the basket behind our back.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalPrice is recomputed on demand; there is no cached total to keep
// consistent.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Snapshot freezes the basket into order lines with name and price captured
// at call time.
func (c *Cart) Snapshot() []domain.OrderLine {
	items := make([]domain.OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, domain.OrderLine{
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			Price:       l.Price,
			ProductName: l.Name,
		})
	}
	return items
}
