package commands

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/problem"
	"parcel/internal/pkg/errs"
)

// ReportProblemCommandHandler handles the business logic for recording a
// problem against a delivery. Problems can only be attached while the
// delivery is still open: finished or canceled deliveries reject new reports.
type ReportProblemCommandHandler struct {
	uowFactory ProblemUoWFactory
}

// NewReportProblemCommandHandler creates a handler for problem reporting.
func NewReportProblemCommandHandler(uowFactory ProblemUoWFactory) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report command and returns the recorded problem.
func (h *ReportProblemCommandHandler) Handle(
	ctx context.Context,
	cmd ReportProblemCommand,
) (*problem.Problem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsOpen() {
		return nil, errs.NewBusinessRuleViolationError("problems can only be reported on open deliveries")
	}

	report, err := problem.NewProblem(kernel.NewUUID(), cmd.DeliveryID(), cmd.Description())
	if err != nil {
		return nil, err
	}

	if err = uow.ProblemRepository().Add(ctx, report); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return report, nil
}
