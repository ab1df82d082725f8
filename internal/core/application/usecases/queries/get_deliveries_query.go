package queries

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves a page of registered deliveries, newest first.
type GetDeliveriesQuery struct {
	page  int
	limit int

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a paginated delivery listing query.
// Pages are numbered from 1.
func NewGetDeliveriesQuery(page, limit int) (GetDeliveriesQuery, error) {
	if page < 1 {
		return GetDeliveriesQuery{}, ErrPageIsInvalid
	}
	if limit < 1 || limit > MaxPageLimit {
		return GetDeliveriesQuery{}, ErrLimitIsInvalid
	}

	return GetDeliveriesQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetDeliveriesQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetDeliveriesQuery) Limit() int {
	return q.limit
}

// GetDeliveriesQueryResponse represents one delivery row with its derived status.
type GetDeliveriesQueryResponse struct {
	ID          kernel.UUID
	RecipientID kernel.UUID
	CourierID   kernel.UUID
	Product     string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	CanceledAt  *time.Time
	CreatedAt   time.Time
}
