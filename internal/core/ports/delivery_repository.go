package ports

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery and locks its row for the duration of
	// the surrounding transaction. Used by transitions that must re-check the
	// delivery state immediately before writing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// CountPickupsBetween returns how many deliveries the courier picked up
	// with a start date inside [from, to]. Used by the daily quota rule.
	CountPickupsBetween(ctx context.Context, courierID kernel.UUID, from, to time.Time) (int64, error)
}
