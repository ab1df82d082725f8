package commands

import (
	"context"

	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/notifications"
)

// CreateDeliveryCommandHandler handles the business logic for registering a
// new delivery. The courier and recipient must already exist; the courier is
// told about the new package by mail once the transaction committed.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	enqueuer   NotificationEnqueuer
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory,
	enqueuer NotificationEnqueuer,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		enqueuer:   enqueuer,
	}
}

// Handle processes the registration command and returns the new delivery.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryCommand,
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

	courierAgg, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	recipientAgg, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID())
	if err != nil {
		return nil, err
	}

	aggregate, err := delivery.NewDelivery(
		kernel.NewUUID(),
		recipientAgg.ID(),
		courierAgg.ID(),
		cmd.Product(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	address := recipientAgg.Address()
	h.enqueuer.Enqueue(notifications.Job{
		Kind:           notifications.NewDeliveryNotification,
		IdempotencyKey: notifications.JobKey(aggregate.ID(), notifications.NewDeliveryNotification),
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
		},
	})

	return aggregate, nil
}
