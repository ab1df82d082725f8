package commands_test

import (
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDeliveryCommand_ValidInput(t *testing.T) {
	recipientID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(recipientID, courierID, "Mechanical keyboard")
	require.NoError(t, err)
	assert.Equal(t, recipientID, cmd.RecipientID())
	assert.Equal(t, courierID, cmd.CourierID())
	assert.Equal(t, "Mechanical keyboard", cmd.Product())
}

func TestNewCreateDeliveryCommand_InvalidRecipientID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateDeliveryCommand(invalidID, kernel.NewUUID(), "Mechanical keyboard")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateDeliveryCommand_EmptyProduct(t *testing.T) {
	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductIsRequired)
}

func TestCreateDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateDeliveryCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
}
