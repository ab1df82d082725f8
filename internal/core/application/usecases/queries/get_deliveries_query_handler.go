package queries

import (
	"context"
	"database/sql"
	"time"

	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler pages through registered deliveries.
// The status column does not exist in storage; it is derived from the
// delivery's timestamps the same way the aggregate derives it.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery listing queries.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns one page of deliveries, newest first.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetDeliveriesQueryResponse, 0)
	offset := (query.Page() - 1) * query.Limit()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			recipient_id,
			courier_id,
			product,
			start_date,
			end_date,
			canceled_at,
			created_at
		FROM deliveries
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, query.Limit(), offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, recipientID, courierID uuid.UUID
		var product string
		var startDate, endDate, canceledAt sql.NullTime
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&recipientID,
			&courierID,
			&product,
			&startDate,
			&endDate,
			&canceledAt,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp := GetDeliveriesQueryResponse{
			Product:    product,
			StartDate:  nullTimePtr(startDate),
			EndDate:    nullTimePtr(endDate),
			CanceledAt: nullTimePtr(canceledAt),
			CreatedAt:  createdAt,
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
			return nil, err
		}
		if resp.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}

		resp.Status = deriveStatus(resp.StartDate, resp.EndDate, resp.CanceledAt).String()
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func deriveStatus(startDate, endDate, canceledAt *time.Time) delivery.Status {
	switch {
	case canceledAt != nil:
		return delivery.Canceled
	case endDate != nil:
		return delivery.Delivered
	case startDate != nil:
		return delivery.PickedUp
	default:
		return delivery.Registered
	}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
