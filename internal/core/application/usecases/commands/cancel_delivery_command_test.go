package commands_test

import (
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelDeliveryCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelDeliveryCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProblemID())
}

func TestNewCancelDeliveryCommand_InvalidProblemID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCancelDeliveryCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CancelDeliveryCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelDeliveryCommandIsNotConstructed)
}
