package recipient_test

import (
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/recipient"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() recipient.Address {
	return recipient.Address{
		Street:  "Baker Street",
		Number:  "221B",
		City:    "London",
		State:   "LDN",
		Zipcode: "NW1 6XE",
	}
}

func TestNewRecipient(t *testing.T) {
	t.Run("creates recipient", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := recipient.NewRecipient(id, "John", "555-0100", validAddress())
		require.NoError(t, err)

		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "John", r.Name())
		assert.Equal(t, "555-0100", r.Phone())
		assert.Equal(t, "Baker Street", r.Address().Street)
		require.NoError(t, r.Validate())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := recipient.NewRecipient(kernel.NewUUID(), "", "", validAddress())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires street and city", func(t *testing.T) {
		addr := validAddress()
		addr.Street = ""
		_, err := recipient.NewRecipient(kernel.NewUUID(), "John", "", addr)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		addr = validAddress()
		addr.City = ""
		_, err = recipient.NewRecipient(kernel.NewUUID(), "John", "", addr)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r recipient.Recipient
		require.ErrorIs(t, r.Validate(), recipient.ErrRecipientIsNotConstructed)
	})
}
