package commands

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrPickupDeliveryCommandIsNotConstructed = errors.New(
		"PickupDeliveryCommand must be created via NewPickupDeliveryCommand constructor",
	)
	ErrStartDateIsRequired = errors.New("start date is required")
)

// PickupDeliveryCommand represents a courier's request to mark a package as
// collected at the given moment.
type PickupDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	startDate  time.Time

	guard guard.ConstructorGuard
}

// NewPickupDeliveryCommand creates a command to record a pickup.
// Validates that the delivery ID is valid and the start date is present.
func NewPickupDeliveryCommand(deliveryID kernel.UUID, startDate time.Time) (PickupDeliveryCommand, error) {
	cmd := PickupDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStartDate(startDate),
	); err != nil {
		return PickupDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickupDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being picked up.
func (c PickupDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// StartDate returns the pickup moment.
func (c PickupDeliveryCommand) StartDate() time.Time {
	return c.startDate
}

func (c *PickupDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *PickupDeliveryCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return ErrStartDateIsRequired
	}

	c.startDate = startDate
	return nil
}
