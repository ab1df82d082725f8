package queries

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrGetOpenDeliveryProblemsQueryIsNotConstructed = errors.New(
		"GetOpenDeliveryProblemsQuery must be created via NewGetOpenDeliveryProblemsQuery constructor",
	)
	ErrPageIsInvalid  = errors.New("page must be greater than zero")
	ErrLimitIsInvalid = errors.New("limit must be between 1 and 100")
)

// MaxPageLimit caps how many rows one page may request.
const MaxPageLimit = 100

// GetOpenDeliveryProblemsQuery retrieves problem reports whose deliveries are
// still awaiting an end date, paginated for the admin dashboard.
type GetOpenDeliveryProblemsQuery struct {
	page  int
	limit int

	guard guard.ConstructorGuard
}

// NewGetOpenDeliveryProblemsQuery creates a paginated query for problems on
// undelivered packages. Pages are numbered from 1.
func NewGetOpenDeliveryProblemsQuery(page, limit int) (GetOpenDeliveryProblemsQuery, error) {
	if page < 1 {
		return GetOpenDeliveryProblemsQuery{}, ErrPageIsInvalid
	}
	if limit < 1 || limit > MaxPageLimit {
		return GetOpenDeliveryProblemsQuery{}, ErrLimitIsInvalid
	}

	return GetOpenDeliveryProblemsQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenDeliveryProblemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenDeliveryProblemsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetOpenDeliveryProblemsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOpenDeliveryProblemsQuery) Limit() int {
	return q.limit
}

// OpenDeliveryProblemResponse represents one problem row joined with its delivery.
type OpenDeliveryProblemResponse struct {
	ID          kernel.UUID
	DeliveryID  kernel.UUID
	Product     string
	Description string
	CreatedAt   time.Time
}

// GetOpenDeliveryProblemsQueryResponse carries one page of open problems plus
// the total row count for pagination controls.
type GetOpenDeliveryProblemsQueryResponse struct {
	Total    int64
	Problems []OpenDeliveryProblemResponse
}
