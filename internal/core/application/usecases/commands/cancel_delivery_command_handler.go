package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/notifications"
)

// CancelDeliveryCommandHandler handles the business logic for canceling a
// delivery because of a reported problem. The problem row is consumed by the
// cancellation, and the courier is notified by mail once the transaction
// committed.
//
// Cancellation can race a concurrent completion of the same delivery, so the
// handler locks the delivery row and lets the aggregate re-check its state
// under the lock: whichever transaction commits first wins, the other fails.
type CancelDeliveryCommandHandler struct {
	uowFactory UoWFactory
	enqueuer   NotificationEnqueuer
}

// NewCancelDeliveryCommandHandler creates a handler for cancellation operations.
func NewCancelDeliveryCommandHandler(
	uowFactory UoWFactory,
	enqueuer NotificationEnqueuer,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		enqueuer:   enqueuer,
	}
}

// Handle processes the cancellation command and returns the canceled delivery.
func (h *CancelDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CancelDeliveryCommand,
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

	report, err := uow.ProblemRepository().Get(ctx, cmd.ProblemID())
	if err != nil {
		return nil, err
	}

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.GetForUpdate(ctx, report.DeliveryID())
	if err != nil {
		return nil, err
	}

	courierAgg, err := uow.CourierRepository().Get(ctx, aggregate.CourierID())
	if err != nil {
		return nil, err
	}

	recipientAgg, err := uow.RecipientRepository().Get(ctx, aggregate.RecipientID())
	if err != nil {
		return nil, err
	}

	canceledAt := time.Now().UTC()
	if err = aggregate.Cancel(canceledAt); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.ProblemRepository().Delete(ctx, report.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	address := recipientAgg.Address()
	h.enqueuer.Enqueue(notifications.Job{
		Kind:           notifications.CancellationNotification,
		IdempotencyKey: notifications.JobKey(aggregate.ID(), notifications.CancellationNotification),
		Payload: notifications.Payload{
			CourierName:  courierAgg.Name(),
			CourierEmail: courierAgg.Email(),
			Product:      aggregate.Product(),

			RecipientName:  recipientAgg.Name(),
			RecipientPhone: recipientAgg.Phone(),
			Street:         address.Street,
			Number:         address.Number,
			Complement:     address.Complement,
			City:           address.City,
			State:          address.State,
			Zipcode:        address.Zipcode,

			CanceledAt:         aggregate.CanceledAt(),
			ProblemDescription: report.Description(),
		},
	})

	return aggregate, nil
}
