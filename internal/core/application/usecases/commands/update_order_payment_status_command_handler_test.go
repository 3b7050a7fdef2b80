package commands_test

import (
	"testing"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/payment"
	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderPaymentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t)
	existingPayment := testPaymentFor(t, existing)
	cmd, err := commands.NewUpdateOrderPaymentStatusCommand(existing.ID(), order.Completed, payment.Completed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrderID", mock.Anything, existing.ID()).Return(existingPayment, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Update", mock.Anything, existingPayment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderPaymentStatusCommandHandler(factory, testLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
	assert.Equal(t, payment.Completed, existingPayment.Status())

	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderPaymentStatusCommandHandler_Handle_ToleratesMissingPayment(t *testing.T) {
	ctx := t.Context()
	existing := testOrder(t)
	cmd, err := commands.NewUpdateOrderPaymentStatusCommand(existing.ID(), order.Completed, payment.Completed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrderID", mock.Anything, existing.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", existing.ID().String())).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderPaymentStatusCommandHandler(factory, testLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())

	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
