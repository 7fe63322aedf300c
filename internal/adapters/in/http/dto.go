package http

import (
	"neushop/internal/core/application/usecases/commands"
	"neushop/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error envelope returned by every handler.
// Fields is populated for validation failures only.
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// AddItemRequest is the body of POST /carts/{sessionId}/items.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	ImageURL  string `json:"imageUrl"`
}

// ChangeQuantityRequest is the body of PUT /carts/{sessionId}/items/{productId}.
// Quantity zero removes the line.
type ChangeQuantityRequest struct {
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

// CartLine is one line of the cart view.
type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Subtotal  string `json:"subtotal"`
}

// CartView is the response of GET /carts/{sessionId} and of every cart
// mutation.
type CartView struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
	Total     string     `json:"total"`
}

func newCartView(response queries.GetCartQueryResponse) CartView {
	view := CartView{
		SessionID: response.SessionID.String(),
		Lines:     make([]CartLine, 0, len(response.Lines)),
		Total:     response.Total.String(),
	}
	for _, line := range response.Lines {
		view.Lines = append(view.Lines, CartLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			Color:     line.Color,
			Size:      line.Size,
			ImageURL:  line.ImageURL,
			Subtotal:  line.Subtotal.String(),
		})
	}
	return view
}

// CustomerInfoRequest mirrors checkout.CustomerInfo.
type CustomerInfoRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ShippingInfoRequest mirrors checkout.ShippingInfo.
type ShippingInfoRequest struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// PaymentDetailsRequest mirrors checkout.PaymentDetails. The CVV is accepted
// here and never stored.
type PaymentDetailsRequest struct {
	Method     string `json:"method"`
	CardHolder string `json:"cardHolder"`
	CardNumber string `json:"cardNumber"`
	ExpMonth   int    `json:"expMonth"`
	ExpYear    int    `json:"expYear"`
	CVV        string `json:"cvv"`
}

// AdvanceCheckoutRequest is the body of POST /carts/{sessionId}/checkout/advance.
// Only the section for the current step needs to be present.
type AdvanceCheckoutRequest struct {
	Customer *CustomerInfoRequest   `json:"customer,omitempty"`
	Shipping *ShippingInfoRequest   `json:"shipping,omitempty"`
	Payment  *PaymentDetailsRequest `json:"payment,omitempty"`
}

// CheckoutStepResponse reports the step the checkout sits at after an
// operation.
type CheckoutStepResponse struct {
	Step string `json:"step"`
}

// SubmitOrderResponse is the response of a successful order submission.
type SubmitOrderResponse struct {
	OrderID string `json:"orderId"`
}

// OrderLine is one item line of an order view.
type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// OrderView is the response of GET /orders/{orderId}.
type OrderView struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	Subtotal      string      `json:"subtotal"`
	Tax           string      `json:"tax"`
	Total         string      `json:"total"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
	Lines         []OrderLine `json:"lines"`
}

// ActiveOrderView is one row of the active-orders listing.
type ActiveOrderView struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	Total         string `json:"total"`
	CreatedAt     string `json:"createdAt"`
}

// ChangeStatusRequest is the body of PUT /orders/{orderId}/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

// BulkChangeStatusRequest is the body of PUT /orders/status.
type BulkChangeStatusRequest struct {
	OrderIDs []string `json:"orderIds"`
	Status   string   `json:"status"`
	Actor    string   `json:"actor"`
	Reason   string   `json:"reason"`
}

// BulkChangeStatusOutcome reports one order's result within a bulk change.
type BulkChangeStatusOutcome struct {
	OrderID string `json:"orderId"`
	Error   string `json:"error,omitempty"`
}

func newBulkOutcomes(outcomes []commands.StatusChangeOutcome) []BulkChangeStatusOutcome {
	result := make([]BulkChangeStatusOutcome, 0, len(outcomes))
	for _, outcome := range outcomes {
		row := BulkChangeStatusOutcome{OrderID: outcome.OrderID.String()}
		if outcome.Err != nil {
			row.Error = outcome.Err.Error()
		}
		result = append(result, row)
	}
	return result
}
