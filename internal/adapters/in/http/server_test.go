package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordersvc/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "should map missing value to 400",
			err:        errs.NewValueIsRequiredError("customerID"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "should map invalid value to 400",
			err:        errs.NewValueIsInvalidError("totalAmount"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "should map missing object to 404",
			err:        errs.NewObjectNotFoundError("order", "id"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "should map invalid state to 409",
			err:        errs.NewObjectInvalidStateError("status", "cancelled order"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "should map duplicate key to 409",
			err:        gorm.ErrDuplicatedKey,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "should map aggregate failure to 500",
			err:        errs.NewAggregateError("cancel order", "payment", errors.New("db down")),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "should keep aggregate failure at 500 when the cause is not found",
			err:        errs.NewAggregateError("cancel order", "delivery", errs.NewObjectNotFoundError("delivery", "id")),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "should keep aggregate failure at 500 when the cause is a validation error",
			err:        errs.NewAggregateError("cancel order", "order", errs.NewValueIsInvalidError("status")),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "should map unknown error to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(http.MethodGet, "/", "")

			err := writeError(ctx, tt.err)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders", `{"customer_id":`)

	err := server.CreateOrder(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderRejectsUnparsableAmount(t *testing.T) {
	server := &Server{}
	body := `{"customer_id":"cust-1","items":[{"name":"apple","quantity":1}],` +
		`"total_amount":"not-a-number","address":"1 Farm Rd"}`
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders", body)

	err := server.CreateOrder(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "total amount")
}

func TestCreateOrderRejectsInvalidItem(t *testing.T) {
	server := &Server{}
	body := `{"customer_id":"cust-1","items":[{"name":"","quantity":1}],` +
		`"total_amount":"10.00","address":"1 Farm Rd"}`
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders", body)

	err := server.CreateOrder(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrderRejectsInvalidID(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders/not-a-uuid/cancel", "")
	ctx.SetParamNames("orderId")
	ctx.SetParamValues("not-a-uuid")

	err := server.CancelOrder(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid order id")
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(
		http.MethodPut,
		"/api/v1/orders/7f3f44c5-7c2c-4a96-9f0a-3f6a1d2b4c5d/status",
		`{"status":"teleported"}`,
	)
	ctx.SetParamNames("orderId")
	ctx.SetParamValues("7f3f44c5-7c2c-4a96-9f0a-3f6a1d2b4c5d")

	err := server.UpdateOrderStatus(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid status")
}

func TestRescheduleDeliveryRejectsInvalidID(t *testing.T) {
	server := &Server{}
	ctx, rec := newTestContext(
		http.MethodPut,
		"/api/v1/deliveries/xyz/schedule",
		`{"scheduled_date":"2026-09-01T10:00:00Z"}`,
	)
	ctx.SetParamNames("deliveryId")
	ctx.SetParamValues("xyz")

	err := server.RescheduleDelivery(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid delivery id")
}
