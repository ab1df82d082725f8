package delivery

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
// through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// MaxDailyPickups is the maximum number of deliveries one courier may pick up
// within a single calendar day.
const MaxDailyPickups = 5

// Delivery represents one package in transit. It is the aggregate root that
// manages the shipment lifecycle from registration through pickup to completion
// or cancellation.
//
// Delivery maintains these invariants:
//   - The start date is set at most once, only via Pickup, only while not canceled
//   - The end date is set at most once, only via Complete, only after pickup,
//     and is never earlier than the start date
//   - Cancellation is terminal: no date or signature changes afterwards
//   - A delivery is open iff it has no end date and has not been canceled
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated transition methods.
type Delivery struct {
	id          kernel.UUID
	recipientID kernel.UUID
	courierID   kernel.UUID
	signatureID *kernel.UUID
	product     string

	startDate  *time.Time
	endDate    *time.Time
	canceledAt *time.Time
	createdAt  time.Time

	isConstructed bool
}

// NewDelivery creates a registered Delivery awaiting pickup.
// Validates that the identifiers are valid and the product description is not empty.
func NewDelivery(id, recipientID, courierID kernel.UUID, product string) (*Delivery, error) {
	d := &Delivery{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRecipientID(recipientID),
		d.setCourierID(courierID),
		d.setProduct(product),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, preserving its
// recorded dates and signature. It applies the same field validation as
// NewDelivery but accepts any lifecycle state the storage holds.
func RestoreDelivery(
	id, recipientID, courierID kernel.UUID,
	product string,
	signatureID *kernel.UUID,
	startDate, endDate, canceledAt *time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		signatureID:   signatureID,
		startDate:     startDate,
		endDate:       endDate,
		canceledAt:    canceledAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRecipientID(recipientID),
		d.setCourierID(courierID),
		d.setProduct(product),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through a factory.
// It should be called when reconstructing deliveries from persistence.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// RecipientID returns the identifier of the person receiving the package.
func (d *Delivery) RecipientID() kernel.UUID {
	return d.recipientID
}

// CourierID returns the identifier of the courier handling the package.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// SignatureID returns the identifier of the completion signature, if recorded.
func (d *Delivery) SignatureID() *kernel.UUID {
	return d.signatureID
}

// Product returns the package description.
func (d *Delivery) Product() string {
	return d.product
}

// StartDate returns when the package was picked up, or nil.
func (d *Delivery) StartDate() *time.Time {
	return d.startDate
}

// EndDate returns when the package was delivered, or nil.
func (d *Delivery) EndDate() *time.Time {
	return d.endDate
}

// CanceledAt returns when the delivery was canceled, or nil.
func (d *Delivery) CanceledAt() *time.Time {
	return d.canceledAt
}

// CreatedAt returns when the delivery was registered.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Status derives the lifecycle state from the recorded timestamps.
func (d *Delivery) Status() Status {
	switch {
	case d.canceledAt != nil:
		return Canceled
	case d.endDate != nil:
		return Delivered
	case d.startDate != nil:
		return PickedUp
	default:
		return Registered
	}
}

// IsOpen reports whether the delivery is still in progress:
// it has no end date and has not been canceled.
func (d *Delivery) IsOpen() bool {
	return d.endDate == nil && d.canceledAt == nil
}

// Pickup records the courier collecting the package.
//
// Business rules enforced:
//   - The delivery must not be canceled or already picked up
//   - The start date must fall within the 08:00-18:00 service window,
//     boundaries inclusive, in the start date's own location and day
//
// The per-courier daily quota is checked by the pickup command handler,
// which has access to the courier's other deliveries.
func (d *Delivery) Pickup(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}

	if d.canceledAt != nil {
		return errs.NewBusinessRuleViolationError("delivery is canceled")
	}

	if d.startDate != nil {
		return errs.NewBusinessRuleViolationError("delivery is already picked up")
	}

	if !WithinPickupWindow(startDate) {
		return errs.NewBusinessRuleViolationError("pickups are accepted between 08:00 and 18:00 only")
	}

	d.startDate = &startDate
	return nil
}

// Complete records the package handover.
//
// When an end date is supplied, the delivery must have been picked up and the
// end date must not be earlier than the start date. When no end date is
// supplied, a signature is mandatory and only the signature is recorded.
//
// TODO: confirm with product whether the signature should instead be required
// exactly when an end date is supplied; the current conditional mirrors the
// admin panel's historical behavior.
func (d *Delivery) Complete(endDate *time.Time, signatureID *kernel.UUID) error {
	if d.canceledAt != nil {
		return errs.NewBusinessRuleViolationError("delivery is canceled")
	}

	if endDate == nil {
		if signatureID == nil {
			return errs.NewValueIsRequiredError("signatureId")
		}
		if err := signatureID.Validate(); err != nil {
			return err
		}
		d.signatureID = signatureID
		return nil
	}

	if d.endDate != nil {
		return errs.NewBusinessRuleViolationError("delivery is already completed")
	}

	if d.startDate == nil {
		return errs.NewBusinessRuleViolationError("delivery has not been picked up")
	}

	if endDate.Before(*d.startDate) {
		return errs.NewBusinessRuleViolationError("end date is earlier than start date")
	}

	if signatureID != nil {
		if err := signatureID.Validate(); err != nil {
			return err
		}
		d.signatureID = signatureID
	}

	d.endDate = endDate
	return nil
}

// Cancel terminates the delivery as a result of a resolved problem report.
//
// Business rules enforced:
//   - A finished delivery (end date set) cannot be canceled
//   - A second cancel attempt is rejected
func (d *Delivery) Cancel(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("canceledAt")
	}

	if d.endDate != nil {
		return errs.NewBusinessRuleViolationError("delivery is finished")
	}

	if d.canceledAt != nil {
		return errs.NewBusinessRuleViolationError("delivery is already canceled")
	}

	d.canceledAt = &at
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.recipientID = id
	return nil
}

func (d *Delivery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.courierID = id
	return nil
}

func (d *Delivery) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	d.product = product
	return nil
}
