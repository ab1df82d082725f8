package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/problem"
)

// ProblemRepository defines the persistence contract for problem reports.
// Problems are deleted, not archived, when the report is resolved by
// cancelling its delivery.
type ProblemRepository interface {
	// Add persists a new problem report.
	Add(ctx context.Context, aggregate *problem.Problem) error

	// Get retrieves a problem report by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error)

	// Delete removes a problem report from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
