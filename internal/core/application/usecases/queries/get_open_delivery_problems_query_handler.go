package queries

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenDeliveryProblemsQueryHandler pages through problems whose deliveries
// have no end date yet. Canceled deliveries keep their problems listed until
// the cancellation consumes the report.
type GetOpenDeliveryProblemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenDeliveryProblemsQueryHandler creates a handler for open problem queries.
func NewGetOpenDeliveryProblemsQueryHandler(db *gorm.DB) GetOpenDeliveryProblemsQueryHandler {
	return GetOpenDeliveryProblemsQueryHandler{db: db}
}

// Handle executes the query and returns one page of open problems with the
// total count.
func (h GetOpenDeliveryProblemsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenDeliveryProblemsQuery,
) (GetOpenDeliveryProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOpenDeliveryProblemsQueryResponse{}, err
	}

	response := GetOpenDeliveryProblemsQueryResponse{
		Problems: make([]OpenDeliveryProblemResponse, 0),
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM problems p
		JOIN deliveries d ON d.id = p.delivery_id
		WHERE d.end_date IS NULL
	`).Scan(&response.Total).Error
	if err != nil {
		return GetOpenDeliveryProblemsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.delivery_id,
			d.product,
			p.description,
			p.created_at
		FROM problems p
		JOIN deliveries d ON d.id = p.delivery_id
		WHERE d.end_date IS NULL
		ORDER BY p.created_at, p.id
		LIMIT ? OFFSET ?
	`, query.Limit(), offset).Rows()
	if err != nil {
		return GetOpenDeliveryProblemsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, deliveryID uuid.UUID
		var product, description string
		var createdAt time.Time

		if err = rows.Scan(&id, &deliveryID, &product, &description, &createdAt); err != nil {
			return GetOpenDeliveryProblemsQueryResponse{}, err
		}

		problemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetOpenDeliveryProblemsQueryResponse{}, idErr
		}

		parentID, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return GetOpenDeliveryProblemsQueryResponse{}, idErr
		}

		response.Problems = append(response.Problems, OpenDeliveryProblemResponse{
			ID:          problemID,
			DeliveryID:  parentID,
			Product:     product,
			Description: description,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetOpenDeliveryProblemsQueryResponse{}, err
	}

	return response, nil
}
