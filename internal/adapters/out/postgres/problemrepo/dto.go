// Package problemrepo provides data transfer objects and mapping functions
// for problem report persistence.
package problemrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/problem"

	"github.com/google/uuid"
)

// ProblemDTO represents the database structure for persisting problem reports.
type ProblemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;index"`
	Description string
	CreatedAt   time.Time
}

// TableName specifies the database table name for problem entities.
func (ProblemDTO) TableName() string {
	return "problems"
}

// fromDomain converts a problem domain aggregate to its database representation.
func fromDomain(aggregate *problem.Problem) ProblemDTO {
	return ProblemDTO{
		ID:          aggregate.ID().Bytes(),
		DeliveryID:  aggregate.DeliveryID().Bytes(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a problem domain aggregate.
func toDomain(dto ProblemDTO) (*problem.Problem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return problem.RestoreProblem(id, deliveryID, dto.Description, dto.CreatedAt)
}
