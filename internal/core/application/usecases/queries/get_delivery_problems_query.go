// Package queries contains read operations that bypass the domain model and
// read storage directly. Query handlers run raw SQL over the gorm connection
// and map rows into response structs, never into aggregates.
package queries

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetDeliveryProblemsQueryIsNotConstructed = errors.New(
	"GetDeliveryProblemsQuery must be created via NewGetDeliveryProblemsQuery constructor",
)

// GetDeliveryProblemsQuery retrieves every problem reported against one delivery.
type GetDeliveryProblemsQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryProblemsQuery creates a query for one delivery's problem reports.
func NewGetDeliveryProblemsQuery(deliveryID kernel.UUID) (GetDeliveryProblemsQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryProblemsQuery{}, err
	}

	return GetDeliveryProblemsQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryProblemsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryProblemsQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery whose problems are listed.
func (q GetDeliveryProblemsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryProblemsQueryResponse represents one problem report row.
type GetDeliveryProblemsQueryResponse struct {
	ID          kernel.UUID
	DeliveryID  kernel.UUID
	Description string
	CreatedAt   time.Time
}
