package commands_test

import (
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteDeliveryCommand_WithEndDate(t *testing.T) {
	id := kernel.NewUUID()
	endDate := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCompleteDeliveryCommand(id, &endDate, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.DeliveryID())
	require.NotNil(t, cmd.EndDate())
	assert.True(t, cmd.EndDate().Equal(endDate))
	assert.Nil(t, cmd.SignatureID())
}

func TestNewCompleteDeliveryCommand_WithSignatureOnly(t *testing.T) {
	id := kernel.NewUUID()
	signatureID := kernel.NewUUID()
	cmd, err := commands.NewCompleteDeliveryCommand(id, nil, &signatureID)
	require.NoError(t, err)
	assert.Nil(t, cmd.EndDate())
	require.NotNil(t, cmd.SignatureID())
	assert.True(t, cmd.SignatureID().IsEqual(signatureID))
}

func TestNewCompleteDeliveryCommand_NeitherEndDateNorSignature(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCompleteDeliveryCommand(id, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEndDateOrSignatureIsRequired)
}

func TestNewCompleteDeliveryCommand_InvalidSignatureID(t *testing.T) {
	id := kernel.NewUUID()
	invalidSignature := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCompleteDeliveryCommand(id, nil, &invalidSignature)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCompleteDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CompleteDeliveryCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteDeliveryCommandIsNotConstructed)
}
