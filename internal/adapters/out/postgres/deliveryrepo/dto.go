// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, converting between domain entities and database rows.
package deliveryrepo

import (
	"time"

	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Lifecycle state is stored as nullable timestamps, not a status
// column; the aggregate derives its status from them on restore.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;index"`
	CourierID   uuid.UUID  `gorm:"type:uuid;index"`
	SignatureID *uuid.UUID `gorm:"type:uuid"`
	Product     string

	StartDate  *time.Time `gorm:"index"`
	EndDate    *time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var signatureID *uuid.UUID
	if id := aggregate.SignatureID(); id != nil {
		raw := id.Bytes()
		signatureID = &raw
	}

	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		CourierID:   aggregate.CourierID().Bytes(),
		SignatureID: signatureID,
		Product:     aggregate.Product(),

		StartDate:  aggregate.StartDate(),
		EndDate:    aggregate.EndDate(),
		CanceledAt: aggregate.CanceledAt(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	var signatureID *kernel.UUID
	if dto.SignatureID != nil {
		sID, sigErr := kernel.UUIDFromBytes((*dto.SignatureID)[:])
		if sigErr != nil {
			return nil, sigErr
		}

		signatureID = &sID
	}

	return delivery.RestoreDelivery(
		id, recipientID, courierID,
		dto.Product,
		signatureID,
		dto.StartDate, dto.EndDate, dto.CanceledAt,
		dto.CreatedAt,
	)
}
