package http

import (
	"time"

	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/delivery"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/payment"
)

// ErrorResponse is the JSON error body returned on every failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one line item in an order request.
type ItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID     string        `json:"customerId"`
	Items          []ItemRequest `json:"items"`
	TotalAmount    string        `json:"totalAmount"`
	PaymentDetails string        `json:"paymentDetails,omitempty"`
	Address        string        `json:"address"`
	ScheduledDate  *time.Time    `json:"scheduledDate,omitempty"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:orderId.
// Nil fields are left unchanged.
type UpdateOrderRequest struct {
	Items       []ItemRequest `json:"items,omitempty"`
	TotalAmount *string       `json:"totalAmount,omitempty"`
}

// UpdateOrderStatusRequest is the body of PUT /api/v1/orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderPaymentStatusRequest is the body of
// PUT /api/v1/orders/:orderId/payment-status.
type UpdateOrderPaymentStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

// RescheduleDeliveryRequest is the body of
// PUT /api/v1/deliveries/:deliveryId/schedule.
type RescheduleDeliveryRequest struct {
	ScheduledDate time.Time `json:"scheduledDate"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customerId"`
	OrderNumber string        `json:"orderNumber"`
	Items       []ItemRequest `json:"items"`
	TotalAmount string        `json:"totalAmount"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// PaymentResponse is the JSON representation of a payment.
type PaymentResponse struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	Amount  string `json:"amount"`
	Status  string `json:"status"`
}

// DeliveryResponse is the JSON representation of a delivery.
type DeliveryResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerID    string    `json:"customerId"`
	Address       string    `json:"address"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
}

// CreateOrderResponse is the body returned by POST /api/v1/orders.
type CreateOrderResponse struct {
	Order    OrderResponse    `json:"order"`
	Payment  PaymentResponse  `json:"payment"`
	Delivery DeliveryResponse `json:"delivery"`
}

// CancelOrderResponse is the body returned by POST /api/v1/orders/:orderId/cancel.
// Delivery is null when the order had no delivery record.
type CancelOrderResponse struct {
	Order    OrderResponse     `json:"order"`
	Delivery *DeliveryResponse `json:"delivery"`
}

// CountResponse is the body of GET /api/v1/orders/count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// PaymentTotalResponse is the body of GET /api/v1/payments/total.
type PaymentTotalResponse struct {
	TotalAmount string `json:"totalAmount"`
	Count       int64  `json:"count"`
}

func itemsResponse(items []order.Item) []ItemRequest {
	out := make([]ItemRequest, len(items))
	for i, item := range items {
		out[i] = ItemRequest{Name: item.Name, Quantity: item.Quantity}
	}
	return out
}

func orderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:          aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID(),
		OrderNumber: aggregate.OrderNumber().String(),
		Items:       itemsResponse(aggregate.Items()),
		TotalAmount: aggregate.TotalAmount().String(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func orderViewResponse(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:          view.ID.String(),
		CustomerID:  view.CustomerID,
		OrderNumber: view.OrderNumber,
		Items:       itemsResponse(view.Items),
		TotalAmount: view.TotalAmount.String(),
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func paymentResponse(aggregate *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      aggregate.ID().String(),
		OrderID: aggregate.OrderID().String(),
		Amount:  aggregate.Amount().String(),
		Status:  aggregate.Status().String(),
	}
}

func deliveryResponse(aggregate *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:            aggregate.ID().String(),
		OrderID:       aggregate.OrderID().String(),
		OrderNumber:   aggregate.OrderNumber().String(),
		CustomerID:    aggregate.CustomerID(),
		Address:       aggregate.Address(),
		ScheduledDate: aggregate.ScheduledDate(),
		Status:        aggregate.Status().String(),
	}
}
