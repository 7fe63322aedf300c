// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are owned by the aggregate, so GORM's automatic time tracking is
// disabled. Status columns store the canonical lower-case enum strings.
type OrderDTO struct {
	ID    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Shipping ShippingDTO `gorm:"embedded"`

	PaymentMethod string
	CardHolder    string
	CardNumber    string
	ExpMonth      int
	ExpYear       int

	Subtotal decimal.Decimal `gorm:"type:numeric"`
	Tax      decimal.Decimal `gorm:"type:numeric"`
	Total    decimal.Decimal `gorm:"type:numeric"`

	Status        string `gorm:"index"`
	PaymentStatus string

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ShippingDTO represents the embedded delivery address within the order table.
type ShippingDTO struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	Region       string
	PostalCode   string
	Country      string
}

// OrderLineDTO represents one item line of a persisted order. Position keeps
// the submission-time line order stable across reads.
type OrderLineDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`

	ProductID string
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	Quantity  int
	Color     string
	Size      string
	ImageURL  string
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()
	shipping := aggregate.ShippingInfo()
	payment := aggregate.PaymentDetails()

	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:   id,
			Position:  i,
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.Decimal(),
			Quantity:  line.Quantity,
			Color:     line.Variant.Color,
			Size:      line.Variant.Size,
			ImageURL:  line.ImageURL,
		})
	}

	return OrderDTO{
		ID:    id,
		Lines: lineDTOs,
		Shipping: ShippingDTO{
			AddressLine1: shipping.AddressLine1,
			AddressLine2: shipping.AddressLine2,
			City:         shipping.City,
			Region:       shipping.Region,
			PostalCode:   shipping.PostalCode,
			Country:      shipping.Country,
		},
		PaymentMethod: payment.Method,
		CardHolder:    payment.CardHolder,
		CardNumber:    payment.CardNumber,
		ExpMonth:      payment.ExpMonth,
		ExpYear:       payment.ExpYear,
		Subtotal:      aggregate.Subtotal().Decimal(),
		Tax:           aggregate.Tax().Decimal(),
		Total:         aggregate.Total().Decimal(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its line snapshot using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		unitPrice, priceErr := kernel.NewMoney(lineDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := cart.NewLine(
			lineDTO.ProductID,
			lineDTO.Name,
			unitPrice,
			lineDTO.Quantity,
			cart.NewVariant(lineDTO.Color, lineDTO.Size),
			lineDTO.ImageURL,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		lines,
		checkout.ShippingInfo{
			AddressLine1: dto.Shipping.AddressLine1,
			AddressLine2: dto.Shipping.AddressLine2,
			City:         dto.Shipping.City,
			Region:       dto.Shipping.Region,
			PostalCode:   dto.Shipping.PostalCode,
			Country:      dto.Shipping.Country,
		},
		checkout.PaymentDetails{
			Method:     dto.PaymentMethod,
			CardHolder: dto.CardHolder,
			CardNumber: dto.CardNumber,
			ExpMonth:   dto.ExpMonth,
			ExpYear:    dto.ExpYear,
		},
		subtotal, tax, total,
		status,
		paymentStatus,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
