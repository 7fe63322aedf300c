package cart

import (
	"errors"

	"neushop/internal/core/domain/model/kernel"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart factory method.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the aggregate holding a shopper's pending, unpurchased line items
// and their derived total.
//
// Cart follows these invariants:
//   - Lines keep insertion order.
//   - At most one line exists per (product ID, variant) identity.
//   - Every quantity is at least 1.
//   - The total equals the sum of line subtotals and is recomputed on every
//     mutation; an empty cart has a zero total.
//
// All mutations are local and synchronous. The aggregate has no remote side
// effects; mirroring to a remote cart store is owned by a background job and
// is never authoritative.
type Cart struct {
	// lines holds the cart entries in insertion order
	lines []Line

	// totalAmount is derived from lines on every mutation
	totalAmount kernel.Money

	// isConstructed ensures the cart was created via NewCart
	isConstructed bool
}

// NewCart creates an empty cart with a zero total.
func NewCart() *Cart {
	return &Cart{
		isConstructed: true,
	}
}

// RestoreCart reconstructs a cart from previously captured lines, merging
// duplicates defensively and recomputing the total. Used when reloading a
// session snapshot.
func RestoreCart(lines []Line) *Cart {
	c := NewCart()
	for _, line := range lines {
		c.AddItem(line)
	}
	return c
}

// Validate ensures the Cart instance was properly constructed through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// AddItem adds a line to the cart. If a line with the same
// (product ID, variant) identity already exists its quantity is incremented
// by the incoming quantity; otherwise the line is appended. There is no
// error path: quantity was clamped to at least 1 at line construction.
func (c *Cart) AddItem(line Line) {
	if i := c.indexOf(line.ProductID, line.Variant); i >= 0 {
		c.lines[i].Quantity += line.Quantity
	} else {
		c.lines = append(c.lines, line)
	}

	c.recomputeTotal()
}

// ChangeQuantity sets the quantity of the matching line. A quantity of zero
// or below removes the line instead of leaving a zero-quantity entry.
// Changing a line that is not present is a no-op.
func (c *Cart) ChangeQuantity(productID string, variant Variant, quantity int) {
	i := c.indexOf(productID, variant)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	} else {
		c.lines[i].Quantity = quantity
	}

	c.recomputeTotal()
}

// RemoveItem removes the matching line if present. Removing an absent line
// is a no-op, not an error.
func (c *Cart) RemoveItem(productID string, variant Variant) {
	c.ChangeQuantity(productID, variant, 0)
}

// Clear empties the cart and resets the total to zero. Called after a
// successful order submission.
func (c *Cart) Clear() {
	c.lines = nil
	c.recomputeTotal()
}

// Lines returns a copy of the cart's lines in insertion order. The copy is a
// snapshot: callers may hand it to an order submission without later cart
// mutations leaking into it.
func (c *Cart) Lines() []Line {
	snapshot := make([]Line, len(c.lines))
	copy(snapshot, c.lines)
	return snapshot
}

// TotalAmount returns the derived cart total.
func (c *Cart) TotalAmount() kernel.Money {
	return c.totalAmount
}

// Size returns the number of distinct lines in the cart.
func (c *Cart) Size() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// indexOf returns the index of the line with the given identity, or -1.
func (c *Cart) indexOf(productID string, variant Variant) int {
	for i, line := range c.lines {
		if line.ProductID == productID && line.Variant == variant {
			return i
		}
	}
	return -1
}

// recomputeTotal derives the total from the current lines. It is a pure
// function of the lines and idempotent: repeated calls for unchanged lines
// yield the same amount.
func (c *Cart) recomputeTotal() {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	c.totalAmount = total
}
