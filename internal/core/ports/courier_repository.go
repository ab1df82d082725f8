package ports

import (
	"context"

	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier and locks its row for the duration of
	// the surrounding transaction. The courier row serves as the serialization
	// point for the per-courier daily pickup quota: concurrent pickups for the
	// same courier queue up on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
