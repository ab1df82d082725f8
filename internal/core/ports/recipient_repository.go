package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipients.
type RecipientRepository interface {
	// Add persists a new recipient.
	Add(ctx context.Context, aggregate *recipient.Recipient) error

	// Get retrieves a recipient by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)
}
