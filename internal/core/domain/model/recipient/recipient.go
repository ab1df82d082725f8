// Package recipient provides the Recipient entity: the person a package is
// addressed to, including the postal address block that notification
// templates render. Recipient administration lives outside the lifecycle
// core; the core only reads recipients.
package recipient

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrRecipientIsNotConstructed is returned when a Recipient instance was not
// created through the NewRecipient factory method.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Address is the postal address block of a recipient.
// Complement is free-form ("apt 12", "back entrance") and may be empty.
type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	Zipcode    string
}

// Recipient is the person receiving a package.
type Recipient struct {
	id      kernel.UUID
	name    string
	phone   string
	address Address

	isConstructed bool
}

// NewRecipient creates a Recipient with a validated name and address.
func NewRecipient(id kernel.UUID, name, phone string, address Address) (*Recipient, error) {
	r := &Recipient{
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Recipient instance was properly constructed through the factory.
func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}
	return nil
}

// IsEqual compares two recipients by their unique identifiers.
func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID {
	return r.id
}

// Name returns the recipient's display name.
func (r *Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's contact phone, possibly empty.
func (r *Recipient) Phone() string {
	return r.phone
}

// Address returns the recipient's postal address block.
func (r *Recipient) Address() Address {
	return r.address
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setAddress(address Address) error {
	if address.Street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if address.City == "" {
		return errs.NewValueIsRequiredError("city")
	}
	r.address = address
	return nil
}
