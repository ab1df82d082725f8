// Package recipientrepo provides data transfer objects and mapping functions
// for recipient persistence.
package recipientrepo

import (
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// RecipientDTO represents the database structure for persisting recipients.
// The address block is embedded into the recipients table.
type RecipientDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string
	Address AddressDTO `gorm:"embedded"`
}

// TableName specifies the database table name for recipient entities.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// AddressDTO represents the embedded postal address columns.
type AddressDTO struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	Zipcode    string
}

// fromDomain converts a recipient domain aggregate to its database representation.
func fromDomain(aggregate *recipient.Recipient) RecipientDTO {
	address := aggregate.Address()
	return RecipientDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
		Address: AddressDTO{
			Street:     address.Street,
			Number:     address.Number,
			Complement: address.Complement,
			City:       address.City,
			State:      address.State,
			Zipcode:    address.Zipcode,
		},
	}
}

// toDomain converts a database DTO to a recipient domain aggregate.
func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipient.NewRecipient(id, dto.Name, dto.Phone, recipient.Address{
		Street:     dto.Address.Street,
		Number:     dto.Address.Number,
		Complement: dto.Address.Complement,
		City:       dto.Address.City,
		State:      dto.Address.State,
		Zipcode:    dto.Address.Zipcode,
	})
}
