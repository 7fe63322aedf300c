package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order is reported with an
// ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id            uuid.UUID
		status        string
		paymentStatus string
		subtotal      decimal.Decimal
		tax           decimal.Decimal
		total         decimal.Decimal
		createdAt     time.Time
		updatedAt     time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_status,
			subtotal,
			tax,
			total,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &status, &paymentStatus, &subtotal, &tax, &total, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := buildOrderResponse(id, status, paymentStatus, subtotal, tax, total, createdAt, updatedAt)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Lines, err = h.readLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			unit_price,
			quantity,
			color,
			size,
			image_url
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var (
			line      OrderLineResponse
			unitPrice decimal.Decimal
		)
		if err = rows.Scan(
			&line.ProductID,
			&line.Name,
			&unitPrice,
			&line.Quantity,
			&line.Color,
			&line.Size,
			&line.ImageURL,
		); err != nil {
			return nil, err
		}

		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// buildOrderResponse converts raw column values into the projection,
// validating enum members and amounts on the way out of storage.
func buildOrderResponse(
	id uuid.UUID,
	status, paymentStatus string,
	subtotal, tax, total decimal.Decimal,
	createdAt, updatedAt time.Time,
) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	parsedPayment, err := order.PaymentStatusFromString(paymentStatus)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:            orderID,
		Status:        parsedStatus,
		PaymentStatus: parsedPayment,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}

	if response.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.Tax, err = kernel.NewMoney(tax); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.Total, err = kernel.NewMoney(total); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
