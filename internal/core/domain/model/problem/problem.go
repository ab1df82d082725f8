// Package problem provides the DeliveryProblem entity: an incident reported by
// a courier against a delivery that is still in transit. A problem lives until
// it is resolved by cancelling the delivery, at which point the record is
// removed from storage.
package problem

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrProblemIsNotConstructed is returned when a Problem instance was not created
// through the NewProblem or RestoreProblem factory methods.
var ErrProblemIsNotConstructed = errors.New("Problem must be created via NewProblem constructor")

// Problem is an incident recorded against an open delivery.
// It may only be created while the referenced delivery is open; the Report
// command enforces that against current storage state.
type Problem struct {
	id          kernel.UUID
	deliveryID  kernel.UUID
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewProblem creates a problem report for the given delivery.
func NewProblem(id, deliveryID kernel.UUID, description string) (*Problem, error) {
	p := &Problem{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDeliveryID(deliveryID),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProblem reconstructs a problem report from persistence.
func RestoreProblem(id, deliveryID kernel.UUID, description string, createdAt time.Time) (*Problem, error) {
	p, err := NewProblem(id, deliveryID, description)
	if err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Problem instance was properly constructed through a factory.
func (p *Problem) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProblemIsNotConstructed
	}
	return nil
}

// IsEqual compares two problems by their unique identifiers.
func (p *Problem) IsEqual(other *Problem) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the problem's unique identifier.
func (p *Problem) ID() kernel.UUID {
	return p.id
}

// DeliveryID returns the identifier of the delivery the incident was reported against.
func (p *Problem) DeliveryID() kernel.UUID {
	return p.deliveryID
}

// Description returns the incident description.
func (p *Problem) Description() string {
	return p.description
}

// CreatedAt returns when the incident was reported.
func (p *Problem) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Problem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Problem) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.deliveryID = id
	return nil
}

func (p *Problem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}
