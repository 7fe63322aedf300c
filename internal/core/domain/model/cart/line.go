package cart

import (
	"fmt"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/pkg/errs"
)

// Variant is the (color, size) pair distinguishing otherwise-identical
// catalog items within the cart. Both fields are optional; the zero value
// means "no variant". Variant is comparable and forms part of line identity.
type Variant struct {
	Color string
	Size  string
}

// NewVariant creates a variant from its optional color and size.
func NewVariant(color, size string) Variant {
	return Variant{Color: color, Size: size}
}

// IsZero reports whether the variant carries no distinguishing attributes.
func (v Variant) IsZero() bool {
	return v == Variant{}
}

// String returns a compact "color/size" form for logs and error messages.
func (v Variant) String() string {
	return fmt.Sprintf("%s/%s", v.Color, v.Size)
}

// Line is an immutable snapshot of one cart entry. Lines are value objects:
// the cart copies them on read, and submitted orders keep their own copies so
// later cart mutations cannot affect a placed order.
//
// Identity for merge purposes is the (ProductID, Variant) pair; two lines
// with the same product but different variants stay separate.
type Line struct {
	ProductID string
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Variant   Variant
	ImageURL  string
}

// NewLine creates a cart line. Product ID and name are required; the
// quantity is clamped to a minimum of 1 rather than rejected, matching the
// cart's no-error add semantics.
func NewLine(productID, name string, unitPrice kernel.Money, quantity int, variant Variant, imageURL string) (Line, error) {
	if productID == "" {
		return Line{}, errs.NewValueIsRequiredError("productID")
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 {
		quantity = 1
	}

	return Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Variant:   variant,
		ImageURL:  imageURL,
	}, nil
}

// Subtotal returns unit price times quantity for this line.
func (l Line) Subtotal() kernel.Money {
	return l.UnitPrice.MulQuantity(l.Quantity)
}

// SameIdentity reports whether two lines refer to the same catalog item,
// that is, the same (product ID, variant) pair.
func (l Line) SameIdentity(other Line) bool {
	return l.ProductID == other.ProductID && l.Variant == other.Variant
}
