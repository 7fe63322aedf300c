package queries

import (
	"context"
	"time"

	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists non-terminal orders from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Cancelled and returned orders are excluded;
// results are sorted oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_status,
			total,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.Cancelled.String(), order.Returned.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			status        string
			paymentStatus string
			total         decimal.Decimal
			createdAt     time.Time
		)
		if err = rows.Scan(&id, &status, &paymentStatus, &total, &createdAt); err != nil {
			return nil, err
		}

		response := GetActiveOrdersQueryResponse{CreatedAt: createdAt}
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		if response.PaymentStatus, err = order.PaymentStatusFromString(paymentStatus); err != nil {
			return nil, err
		}
		if response.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}

		orders = append(orders, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
