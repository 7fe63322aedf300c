package queries

import (
	"context"

	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"
)

// GetCartQueryHandler reads a session's cart. Unlike the order queries this
// one does not touch the database: carts live in the session store until
// submission.
type GetCartQueryHandler struct {
	sessions ports.SessionStore
}

// NewGetCartQueryHandler creates a query handler backed by the session store.
func NewGetCartQueryHandler(sessions ports.SessionStore) GetCartQueryHandler {
	return GetCartQueryHandler{sessions: sessions}
}

// Handle returns the cart snapshot for the session named by the query.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var response GetCartQueryResponse
	err := h.sessions.Do(ctx, query.SessionID(), func(s *session.Session) error {
		lines := s.Cart().Lines()
		response = GetCartQueryResponse{
			SessionID: s.ID(),
			Lines:     make([]CartLineResponse, 0, len(lines)),
			Total:     s.Cart().TotalAmount(),
		}
		for _, line := range lines {
			response.Lines = append(response.Lines, CartLineResponse{
				ProductID: line.ProductID,
				Name:      line.Name,
				UnitPrice: line.UnitPrice,
				Quantity:  line.Quantity,
				Color:     line.Variant.Color,
				Size:      line.Variant.Size,
				ImageURL:  line.ImageURL,
				Subtotal:  line.Subtotal(),
			})
		}
		return nil
	})
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
