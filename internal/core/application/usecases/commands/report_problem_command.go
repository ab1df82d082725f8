package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrReportProblemCommandIsNotConstructed = errors.New(
		"ReportProblemCommand must be created via NewReportProblemCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
)

// ReportProblemCommand attaches a free-form problem description to a delivery
// that is still in transit.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a command to record a delivery problem.
func NewReportProblemCommand(deliveryID kernel.UUID, description string) (ReportProblemCommand, error) {
	cmd := ReportProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDescription(description),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the troubled delivery.
func (c ReportProblemCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Description returns the problem description text.
func (c ReportProblemCommand) Description() string {
	return c.description
}

func (c *ReportProblemCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ReportProblemCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}
