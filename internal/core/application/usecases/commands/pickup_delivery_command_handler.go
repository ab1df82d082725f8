package commands

import (
	"context"

	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/pkg/errs"
)

// PickupDeliveryCommandHandler handles the business logic for marking a
// delivery as picked up: the service window check and the per-courier daily
// quota, both enforced before any write.
//
// Both checks are check-then-write, so they are raced by concurrent pickups.
// The handler serializes them with row locks held for the duration of the
// transaction: the delivery row lock makes the "already picked up" check see
// the winner's committed start date, and the courier row lock makes the quota
// count see the winner's committed row.
type PickupDeliveryCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewPickupDeliveryCommandHandler creates a handler for pickup operations.
func NewPickupDeliveryCommandHandler(uowFactory PickupUoWFactory) PickupDeliveryCommandHandler {
	return PickupDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command and returns the updated delivery.
func (h *PickupDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd PickupDeliveryCommand,
) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Pickup(cmd.StartDate()); err != nil {
		return nil, err
	}

	// Serialization point for the daily quota.
	if _, err = uow.CourierRepository().GetForUpdate(ctx, aggregate.CourierID()); err != nil {
		return nil, err
	}

	count, err := deliveryRepo.CountPickupsBetween(
		ctx,
		aggregate.CourierID(),
		delivery.StartOfDay(cmd.StartDate()),
		delivery.EndOfDay(cmd.StartDate()),
	)
	if err != nil {
		return nil, err
	}

	if count >= delivery.MaxDailyPickups {
		return nil, errs.NewBusinessRuleViolationError("courier reached the daily pickup quota")
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
