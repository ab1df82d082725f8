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

func TestReportProblemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newRegisteredDelivery(kernel.NewUUID(), kernel.NewUUID())
	cmd, _ := commands.NewReportProblemCommand(aggregate.ID(), "package damaged in transit")

	deliveryRepo := new(MockDeliveryRepository)
	problemRepo := new(MockProblemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Add", mock.Anything, mock.AnythingOfType("*problem.Problem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReportProblemCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, got.DeliveryID().IsEqual(aggregate.ID()))
	assert.Equal(t, "package damaged in transit", got.Description())
	problemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReportProblemCommandHandler_Handle_DeliveryFinished(t *testing.T) {
	ctx := t.Context()
	startDate := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	endDate := startDate.Add(2 * time.Hour)
	aggregate, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Mechanical keyboard",
		nil,
		&startDate, &endDate, nil,
		startDate.Add(-time.Hour),
	)
	require.NoError(t, err)
	cmd, _ := commands.NewReportProblemCommand(aggregate.ID(), "recipient not at home")

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReportProblemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	uow.AssertNotCalled(t, "ProblemRepository")
	uow.AssertExpectations(t)
}

func TestReportProblemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReportProblemCommand{} // not constructed properly
	factory := new(MockProblemUoWFactory)
	h := commands.NewReportProblemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReportProblemCommandIsNotConstructed)
}
