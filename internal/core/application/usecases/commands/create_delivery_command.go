package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrProductIsRequired = errors.New("product is required")
)

// CreateDeliveryCommand represents a request to register a new delivery
// assigning a product to a courier and a recipient.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	courierID   kernel.UUID
	product     string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a delivery.
func NewCreateDeliveryCommand(
	recipientID, courierID kernel.UUID,
	product string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setCourierID(courierID),
		cmd.setProduct(product),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// RecipientID returns the identifier of the recipient.
func (c CreateDeliveryCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// CourierID returns the identifier of the assigned courier.
func (c CreateDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Product returns the product description.
func (c CreateDeliveryCommand) Product() string {
	return c.product
}

func (c *CreateDeliveryCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateDeliveryCommand) setProduct(product string) error {
	if product == "" {
		return ErrProductIsRequired
	}

	c.product = product
	return nil
}
