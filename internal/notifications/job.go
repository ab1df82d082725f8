package notifications

import (
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
)

// JobKind identifies which lifecycle event a job notifies about.
// The set is closed: handler dispatch switches over it exhaustively.
type JobKind int

const (
	// UnknownJob represents an invalid or undefined job kind.
	UnknownJob JobKind = iota

	// NewDeliveryNotification tells the courier a package awaits pickup.
	NewDeliveryNotification

	// CancellationNotification tells the courier a delivery was canceled
	// because of a problem report.
	CancellationNotification
)

// String returns the job kind's name. Implements fmt.Stringer.
func (k JobKind) String() string {
	switch k {
	case NewDeliveryNotification:
		return "NewDeliveryNotification"
	case CancellationNotification:
		return "CancellationNotification"
	default:
		return "UnknownJob"
	}
}

// Payload carries everything a handler needs to render a message without
// reading storage again: the job owns its data from enqueue to completion.
type Payload struct {
	CourierName  string
	CourierEmail string
	Product      string

	RecipientName  string
	RecipientPhone string
	Street         string
	Number         string
	Complement     string
	City           string
	State          string
	Zipcode        string

	// Cancellation only.
	CanceledAt         *time.Time
	ProblemDescription string
}

// Job is one enqueued unit of notification work.
type Job struct {
	Kind           JobKind
	IdempotencyKey string
	Payload        Payload
}

// JobKey builds the idempotency key for a delivery transition.
// A delivery produces at most one job per kind, so retries and redeliveries
// of the same transition collapse onto one key.
func JobKey(deliveryID kernel.UUID, kind JobKind) string {
	return fmt.Sprintf("%s/%s", deliveryID.String(), kind)
}
