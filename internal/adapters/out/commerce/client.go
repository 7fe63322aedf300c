// Package commerce provides the HTTP client for the upstream commerce
// backend: cart pricing, order status mirroring, and best-effort cart
// mirroring. All calls are JSON over HTTP and honor the request context.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client talks to the commerce backend's REST API. It implements the
// PricingOracle, OrderStatusGateway, and CartMirror ports.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a commerce client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type quoteLineDTO struct {
	ProductID string `json:"productId"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type quoteRequestDTO struct {
	Lines []quoteLineDTO `json:"lines"`
}

type quoteResponseDTO struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
}

// PriceCart requests a quote for the given lines from the pricing endpoint.
func (c *Client) PriceCart(ctx context.Context, lines []cart.Line) (ports.Quote, error) {
	request := quoteRequestDTO{Lines: make([]quoteLineDTO, 0, len(lines))}
	for _, line := range lines {
		request.Lines = append(request.Lines, quoteLineDTO{
			ProductID: line.ProductID,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			Color:     line.Variant.Color,
			Size:      line.Variant.Size,
		})
	}

	var response quoteResponseDTO
	if err := c.postJSON(ctx, "/quotes", request, &response); err != nil {
		return ports.Quote{}, err
	}

	subtotal, err := kernel.NewMoneyFromString(response.Subtotal)
	if err != nil {
		return ports.Quote{}, fmt.Errorf("quote subtotal: %w", err)
	}
	tax, err := kernel.NewMoneyFromString(response.Tax)
	if err != nil {
		return ports.Quote{}, fmt.Errorf("quote tax: %w", err)
	}

	return ports.Quote{Subtotal: subtotal, Tax: tax}, nil
}

type statusUpdateDTO struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// SetOrderStatus records the order's new status on the backend.
func (c *Client) SetOrderStatus(ctx context.Context, id kernel.UUID, status order.Status, reason string) error {
	path := fmt.Sprintf("/orders/%s/status", id)
	return c.putJSON(ctx, path, statusUpdateDTO{Status: status.String(), Reason: reason})
}

type mirrorLineDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type mirrorCartDTO struct {
	Lines []mirrorLineDTO `json:"lines"`
}

// MirrorCart pushes the session's cart snapshot to the backend cart store.
func (c *Client) MirrorCart(ctx context.Context, sessionID kernel.UUID, lines []cart.Line) error {
	request := mirrorCartDTO{Lines: make([]mirrorLineDTO, 0, len(lines))}
	for _, line := range lines {
		request.Lines = append(request.Lines, mirrorLineDTO{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			Color:     line.Variant.Color,
			Size:      line.Variant.Size,
		})
	}

	return c.putJSON(ctx, fmt.Sprintf("/carts/%s", sessionID), request)
}

func (c *Client) postJSON(ctx context.Context, path string, request, response any) error {
	return c.doJSON(ctx, http.MethodPost, path, request, response)
}

func (c *Client) putJSON(ctx context.Context, path string, request any) error {
	return c.doJSON(ctx, http.MethodPut, path, request, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, request, response any) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, payload)
	}

	if response == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(response)
}
