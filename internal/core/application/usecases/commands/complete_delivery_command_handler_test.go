package commands_test

import (
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_WithEndDate(t *testing.T) {
	ctx := t.Context()
	startDate := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	aggregate := newPickedUpDelivery(kernel.NewUUID(), kernel.NewUUID(), startDate)
	endDate := startDate.Add(3 * time.Hour)
	cmd, _ := commands.NewCompleteDeliveryCommand(aggregate.ID(), &endDate, nil)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, got.EndDate())
	assert.True(t, got.EndDate().Equal(endDate))
	assert.Equal(t, delivery.Delivered, got.Status())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_SignatureOnly(t *testing.T) {
	ctx := t.Context()
	startDate := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	aggregate := newPickedUpDelivery(kernel.NewUUID(), kernel.NewUUID(), startDate)
	signatureID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(aggregate.ID(), nil, &signatureID)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, got.SignatureID())
	assert.True(t, got.SignatureID().IsEqual(signatureID))
	assert.Nil(t, got.EndDate())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_EndDateBeforeStart(t *testing.T) {
	ctx := t.Context()
	startDate := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	aggregate := newPickedUpDelivery(kernel.NewUUID(), kernel.NewUUID(), startDate)
	endDate := startDate.Add(-time.Hour)
	cmd, _ := commands.NewCompleteDeliveryCommand(aggregate.ID(), &endDate, nil)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_NotPickedUp(t *testing.T) {
	ctx := t.Context()
	aggregate := newRegisteredDelivery(kernel.NewUUID(), kernel.NewUUID())
	endDate := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)
	cmd, _ := commands.NewCompleteDeliveryCommand(aggregate.ID(), &endDate, nil)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteDeliveryCommand{} // not constructed properly
	factory := new(MockDeliveryUoWFactory)
	h := commands.NewCompleteDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteDeliveryCommandIsNotConstructed)
}
