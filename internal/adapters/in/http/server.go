package http

import (
	"errors"
	"net/http"
	"time"

	"neushop/internal/core/application/usecases/commands"
	"neushop/internal/core/application/usecases/queries"
	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/core/domain/model/session"
	"neushop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server hosts the storefront API. It coordinates between HTTP handlers and
// application use cases: shopper endpoints (cart, checkout, submission) and
// staff endpoints (order listing, status changes).
type Server struct {
	// Command handlers
	addCartItemHandler        commands.AddCartItemCommandHandler
	changeItemQuantityHandler commands.ChangeItemQuantityCommandHandler
	removeCartItemHandler     commands.RemoveCartItemCommandHandler
	beginCheckoutHandler      commands.BeginCheckoutCommandHandler
	advanceCheckoutHandler    commands.AdvanceCheckoutCommandHandler
	retreatCheckoutHandler    commands.RetreatCheckoutCommandHandler
	submitOrderHandler        commands.SubmitOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	bulkChangeStatusHandler   commands.BulkChangeOrderStatusCommandHandler

	// Query handlers
	getCartHandler         queries.GetCartQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	changeItemQuantityHandler commands.ChangeItemQuantityCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	beginCheckoutHandler commands.BeginCheckoutCommandHandler,
	advanceCheckoutHandler commands.AdvanceCheckoutCommandHandler,
	retreatCheckoutHandler commands.RetreatCheckoutCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	bulkChangeStatusHandler commands.BulkChangeOrderStatusCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:        addCartItemHandler,
		changeItemQuantityHandler: changeItemQuantityHandler,
		removeCartItemHandler:     removeCartItemHandler,
		beginCheckoutHandler:      beginCheckoutHandler,
		advanceCheckoutHandler:    advanceCheckoutHandler,
		retreatCheckoutHandler:    retreatCheckoutHandler,
		submitOrderHandler:        submitOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		bulkChangeStatusHandler:   bulkChangeStatusHandler,
		getCartHandler:            getCartHandler,
		getOrderHandler:           getOrderHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/carts/:sessionId", s.GetCart)
	api.POST("/carts/:sessionId/items", s.AddCartItem)
	api.PUT("/carts/:sessionId/items/:productId", s.ChangeItemQuantity)
	api.DELETE("/carts/:sessionId/items/:productId", s.RemoveCartItem)

	api.POST("/carts/:sessionId/checkout", s.BeginCheckout)
	api.POST("/carts/:sessionId/checkout/advance", s.AdvanceCheckout)
	api.POST("/carts/:sessionId/checkout/retreat", s.RetreatCheckout)
	api.POST("/carts/:sessionId/checkout/submit", s.SubmitOrder)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId/status", s.ChangeOrderStatus)
	api.PUT("/orders/status", s.BulkChangeOrderStatus)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetCart handles GET /api/v1/carts/{sessionId} - returns the cart view.
func (s *Server) GetCart(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCartView(response))
}

// AddCartItem handles POST /api/v1/carts/{sessionId}/items - adds an item to
// the cart, merging with an existing line of the same product and variant.
func (s *Server) AddCartItem(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request AddItemRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	unitPrice, err := kernel.NewMoneyFromString(request.UnitPrice)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("unitPrice", err))
	}

	cmd, err := commands.NewAddCartItemCommand(
		sessionID,
		request.ProductID,
		request.Name,
		unitPrice,
		request.Quantity,
		cart.NewVariant(request.Color, request.Size),
		request.ImageURL,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionID)
}

// ChangeItemQuantity handles PUT /api/v1/carts/{sessionId}/items/{productId}.
// A quantity of zero removes the line.
func (s *Server) ChangeItemQuantity(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewChangeItemQuantityCommand(
		sessionID,
		ctx.Param("productId"),
		cart.NewVariant(request.Color, request.Size),
		request.Quantity,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeItemQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionID)
}

// RemoveCartItem handles DELETE /api/v1/carts/{sessionId}/items/{productId}.
// The variant is selected through the color and size query parameters.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	variant := cart.NewVariant(ctx.QueryParam("color"), ctx.QueryParam("size"))
	cmd, err := commands.NewRemoveCartItemCommand(sessionID, ctx.Param("productId"), variant)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionID)
}

// BeginCheckout handles POST /api/v1/carts/{sessionId}/checkout - starts (or
// resumes) a checkout over the session's cart.
func (s *Server) BeginCheckout(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewBeginCheckoutCommand(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	step, err := s.beginCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutStepResponse{Step: step.String()})
}

// AdvanceCheckout handles POST /api/v1/carts/{sessionId}/checkout/advance -
// records the submitted step data and moves the checkout forward.
func (s *Server) AdvanceCheckout(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request AdvanceCheckoutRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewAdvanceCheckoutCommand(
		sessionID,
		toCustomerInfo(request.Customer),
		toShippingInfo(request.Shipping),
		toPaymentDetails(request.Payment),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	step, err := s.advanceCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutStepResponse{Step: step.String()})
}

// RetreatCheckout handles POST /api/v1/carts/{sessionId}/checkout/retreat -
// moves the checkout one step back, keeping entered data.
func (s *Server) RetreatCheckout(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRetreatCheckoutCommand(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	step, err := s.retreatCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutStepResponse{Step: step.String()})
}

// SubmitOrder handles POST /api/v1/carts/{sessionId}/checkout/submit -
// places the order with the backend and returns its identifier.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId} - returns one order with its
// item lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderView(response))
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders whose
// status is not terminal.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderView, 0, len(orders))
	for _, row := range orders {
		response = append(response, ActiveOrderView{
			ID:            row.ID.String(),
			Status:        row.Status.String(),
			PaymentStatus: row.PaymentStatus.String(),
			Total:         row.Total.String(),
			CreatedAt:     row.CreatedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status - requests a
// status transition on one order.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	target, actor, err := parseStatusAndActor(request.Status, request.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, actor, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BulkChangeOrderStatus handles PUT /api/v1/orders/status - applies one
// transition to a batch of orders, reporting per-order outcomes.
func (s *Server) BulkChangeOrderStatus(ctx echo.Context) error {
	var request BulkChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	target, actor, err := parseStatusAndActor(request.Status, request.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	orderIDs := make([]kernel.UUID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewBulkChangeOrderStatusCommand(orderIDs, target, actor, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	outcomes, err := s.bulkChangeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newBulkOutcomes(outcomes))
}

// respondWithCart returns the session's cart view after a mutation.
func (s *Server) respondWithCart(ctx echo.Context, sessionID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCartView(response))
}

func newOrderView(response queries.GetOrderQueryResponse) OrderView {
	view := OrderView{
		ID:            response.ID.String(),
		Status:        response.Status.String(),
		PaymentStatus: response.PaymentStatus.String(),
		Subtotal:      response.Subtotal.String(),
		Tax:           response.Tax.String(),
		Total:         response.Total.String(),
		CreatedAt:     response.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     response.UpdatedAt.Format(time.RFC3339),
		Lines:         make([]OrderLine, 0, len(response.Lines)),
	}
	for _, line := range response.Lines {
		view.Lines = append(view.Lines, OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			Color:     line.Color,
			Size:      line.Size,
			ImageURL:  line.ImageURL,
		})
	}
	return view
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func parseStatusAndActor(rawStatus, rawActor string) (order.Status, order.Actor, error) {
	target, err := order.StatusFromString(rawStatus)
	if err != nil {
		return order.Unknown, order.ActorUnknown, err
	}
	actor, err := order.ActorFromString(rawActor)
	if err != nil {
		return order.Unknown, order.ActorUnknown, err
	}
	return target, actor, nil
}

func toCustomerInfo(request *CustomerInfoRequest) *checkout.CustomerInfo {
	if request == nil {
		return nil
	}
	return &checkout.CustomerInfo{
		FullName: request.FullName,
		Email:    request.Email,
		Phone:    request.Phone,
	}
}

func toShippingInfo(request *ShippingInfoRequest) *checkout.ShippingInfo {
	if request == nil {
		return nil
	}
	return &checkout.ShippingInfo{
		AddressLine1: request.AddressLine1,
		AddressLine2: request.AddressLine2,
		City:         request.City,
		Region:       request.Region,
		PostalCode:   request.PostalCode,
		Country:      request.Country,
	}
}

func toPaymentDetails(request *PaymentDetailsRequest) *checkout.PaymentDetails {
	if request == nil {
		return nil
	}
	return &checkout.PaymentDetails{
		Method:     request.Method,
		CardHolder: request.CardHolder,
		CardNumber: request.CardNumber,
		ExpMonth:   request.ExpMonth,
		ExpYear:    request.ExpYear,
		CVV:        request.CVV,
	}
}

func writeBindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// writeError maps application errors onto HTTP status codes. Validation
// failures carry their field map so clients can highlight inputs.
func writeError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Fields:  validationErr.Fields,
		})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrSubmissionConflict),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, checkout.ErrCartIsEmpty),
		errors.Is(err, checkout.ErrSubmitRequired),
		errors.Is(err, checkout.ErrNotAtPaymentStep),
		errors.Is(err, session.ErrCheckoutNotStarted):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrRemoteFailure):
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
