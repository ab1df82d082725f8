package courier_test

import (
	"testing"

	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("creates courier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "Ana", "a@x.com")
		require.NoError(t, err)

		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Ana", c.Name())
		assert.Equal(t, "a@x.com", c.Email())
		require.NoError(t, c.Validate())
	})

	t.Run("requires valid id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := courier.NewCourier(zero, "Ana", "a@x.com")
		require.Error(t, err)
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "a@x.com")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires plausible email", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "Ana", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = courier.NewCourier(kernel.NewUUID(), "Ana", "not-an-email")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c courier.Courier
		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}
