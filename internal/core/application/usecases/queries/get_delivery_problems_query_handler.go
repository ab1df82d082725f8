package queries

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryProblemsQueryHandler lists the problem reports of one delivery,
// oldest first.
type GetDeliveryProblemsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryProblemsQueryHandler creates a handler for per-delivery problem queries.
func NewGetDeliveryProblemsQueryHandler(db *gorm.DB) GetDeliveryProblemsQueryHandler {
	return GetDeliveryProblemsQueryHandler{db: db}
}

// Handle executes the query and returns the delivery's problem reports.
func (h GetDeliveryProblemsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryProblemsQuery,
) ([]GetDeliveryProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	problems := make([]GetDeliveryProblemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_id,
			description,
			created_at
		FROM problems
		WHERE delivery_id = ?
		ORDER BY created_at, id
	`, query.DeliveryID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, deliveryID uuid.UUID
		var description string
		var createdAt time.Time

		if err = rows.Scan(&id, &deliveryID, &description, &createdAt); err != nil {
			return nil, err
		}

		problemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parentID, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return nil, idErr
		}

		problems = append(problems, GetDeliveryProblemsQueryResponse{
			ID:          problemID,
			DeliveryID:  parentID,
			Description: description,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}
