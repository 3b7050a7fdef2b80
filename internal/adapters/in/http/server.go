// Package http exposes the order management operations over an echo HTTP API.
// Handlers translate between JSON DTOs and application commands/queries; all
// business rules stay behind the use-case layer.
package http

import (
	"errors"
	"net/http"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/payment"
	"ordersvc/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler              commands.CreateOrderCommandHandler
	cancelOrderHandler              commands.CancelOrderCommandHandler
	updateOrderHandler              commands.UpdateOrderCommandHandler
	updateOrderStatusHandler        commands.UpdateOrderStatusCommandHandler
	updateOrderPaymentStatusHandler commands.UpdateOrderPaymentStatusCommandHandler
	rescheduleDeliveryHandler       commands.RescheduleDeliveryCommandHandler

	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	countOrdersHandler         queries.CountOrdersQueryHandler
	sumPaymentsHandler         queries.SumPaymentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateOrderPaymentStatusHandler commands.UpdateOrderPaymentStatusCommandHandler,
	rescheduleDeliveryHandler commands.RescheduleDeliveryCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	countOrdersHandler queries.CountOrdersQueryHandler,
	sumPaymentsHandler queries.SumPaymentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		cancelOrderHandler:              cancelOrderHandler,
		updateOrderHandler:              updateOrderHandler,
		updateOrderStatusHandler:        updateOrderStatusHandler,
		updateOrderPaymentStatusHandler: updateOrderPaymentStatusHandler,
		rescheduleDeliveryHandler:       rescheduleDeliveryHandler,
		getAllOrdersHandler:             getAllOrdersHandler,
		getOrdersByCustomerHandler:      getOrdersByCustomerHandler,
		countOrdersHandler:              countOrdersHandler,
		sumPaymentsHandler:              sumPaymentsHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/count", s.CountOrders)
	api.GET("/orders/customer/:customerId", s.GetOrdersByCustomer)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PUT("/orders/:orderId/payment-status", s.UpdateOrderPaymentStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.PUT("/deliveries/:deliveryId/schedule", s.RescheduleDelivery)
	api.GET("/payments/total", s.GetPaymentsTotal)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	total, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		return badRequest(ctx, "invalid total amount: "+req.TotalAmount)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		domainItem, itemErr := order.NewItem(item.Name, item.Quantity)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, domainItem)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerID, items, total, req.PaymentDetails, req.Address, req.ScheduledDate)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Order:    orderResponse(result.Order),
		Payment:  paymentResponse(result.Payment),
		Delivery: deliveryResponse(result.Delivery),
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsResponse(views))
}

// CountOrders handles GET /api/v1/orders/count.
func (s *Server) CountOrders(ctx echo.Context) error {
	count, err := s.countOrdersHandler.Handle(ctx.Request().Context(), queries.NewCountOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetOrdersByCustomer handles GET /api/v1/orders/customer/:customerId.
// A customer with no orders gets an empty list.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByCustomerQuery(ctx.Param("customerId"))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsResponse(views))
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var items []order.Item
	if req.Items != nil {
		items = make([]order.Item, 0, len(req.Items))
		for _, item := range req.Items {
			domainItem, itemErr := order.NewItem(item.Name, item.Quantity)
			if itemErr != nil {
				return writeError(ctx, itemErr)
			}
			items = append(items, domainItem)
		}
	}

	var total *decimal.Decimal
	if req.TotalAmount != nil {
		parsed, totalErr := decimal.NewFromString(*req.TotalAmount)
		if totalErr != nil {
			return badRequest(ctx, "invalid total amount: "+*req.TotalAmount)
		}
		total = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items, total)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// UpdateOrderPaymentStatus handles PUT /api/v1/orders/:orderId/payment-status.
func (s *Server) UpdateOrderPaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderPaymentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderStatus, err := order.ParseStatus(req.OrderStatus)
	if err != nil {
		return badRequest(ctx, "invalid order status: "+req.OrderStatus)
	}

	paymentStatus, err := payment.ParseStatus(req.PaymentStatus)
	if err != nil {
		return badRequest(ctx, "invalid payment status: "+req.PaymentStatus)
	}

	cmd, err := commands.NewUpdateOrderPaymentStatusCommand(orderID, orderStatus, paymentStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderPaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := CancelOrderResponse{Order: orderResponse(result.Order)}
	if result.Delivery != nil {
		d := deliveryResponse(result.Delivery)
		response.Delivery = &d
	}

	return ctx.JSON(http.StatusOK, response)
}

// RescheduleDelivery handles PUT /api/v1/deliveries/:deliveryId/schedule.
func (s *Server) RescheduleDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req RescheduleDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRescheduleDeliveryCommand(deliveryID, req.ScheduledDate)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.rescheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponse(updated))
}

// GetPaymentsTotal handles GET /api/v1/payments/total.
func (s *Server) GetPaymentsTotal(ctx echo.Context) error {
	response, err := s.sumPaymentsHandler.Handle(ctx.Request().Context(), queries.NewSumPaymentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentTotalResponse{
		TotalAmount: response.Total.String(),
		Count:       response.Count,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func viewsResponse(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, len(views))
	for i, view := range views {
		out[i] = orderViewResponse(view)
	}
	return out
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain and infrastructure errors onto HTTP statuses:
// missing or malformed values are 400, unknown objects are 404, state-machine
// and uniqueness violations are 409, everything else is 500. A mid-protocol
// AggregateError stays 500 regardless of what its cause unwraps to.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrAggregateFailed):
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectInvalidState), errors.Is(err, gorm.ErrDuplicatedKey):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
