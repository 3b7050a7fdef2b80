package commands_test

import (
	"testing"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchDeliveriesCommandHandler_Handle_StartsDueDeliveries(t *testing.T) {
	ctx := t.Context()
	first := testDeliveryFor(t, testOrder(t))
	second := testDeliveryFor(t, testOrder(t))
	cmd, err := commands.NewDispatchDeliveriesCommand()
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetAllPendingDueBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*delivery.Delivery{first, second}, nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchDeliveriesCommandHandler(factory)
	started, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, started)
	assert.Equal(t, delivery.InTransit, first.Status())
	assert.Equal(t, delivery.InTransit, second.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchDeliveriesCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchDeliveriesCommand()
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetAllPendingDueBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*delivery.Delivery{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchDeliveriesCommandHandler(factory)
	started, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, started)
}
