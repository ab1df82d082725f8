package commands

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
	ErrEndDateOrSignatureIsRequired = errors.New("either an end date or a signature is required")
)

// CompleteDeliveryCommand represents a request to record the handover of a
// package: the end date, the completion signature, or both.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	endDate     *time.Time
	signatureID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to record a completion.
// Both endDate and signatureID are optional individually, but at least one of
// them must be present; the signature rule itself lives in the domain model.
func NewCompleteDeliveryCommand(
	deliveryID kernel.UUID,
	endDate *time.Time,
	signatureID *kernel.UUID,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		endDate:     endDate,
		signatureID: signatureID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	if endDate == nil && signatureID == nil {
		return CompleteDeliveryCommand{}, ErrEndDateOrSignatureIsRequired
	}

	if signatureID != nil {
		if err := signatureID.Validate(); err != nil {
			return CompleteDeliveryCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being completed.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// EndDate returns the handover moment, or nil when only a signature is recorded.
func (c CompleteDeliveryCommand) EndDate() *time.Time {
	return c.endDate
}

// SignatureID returns the completion signature identifier, or nil.
func (c CompleteDeliveryCommand) SignatureID() *kernel.UUID {
	return c.signatureID
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
