package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd := validCreateShipmentCommand(t, orderID)

	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, shipment.UPS, cmd.Carrier())
	assert.InDelta(t, 12.50, cmd.Cost(), 0.001)
}

func TestNewCreateShipmentCommand_NegativeCost(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipment.UPS, kernel.NewUUID(), -1,
		testSnapshot(t, "1 Warehouse Way"), testSnapshot(t, "221B Baker Street"),
		nil, "", nil, kernel.NewUUID(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateShipmentCommand_UnknownCarrier(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipment.UnknownCarrier, kernel.NewUUID(), 5,
		testSnapshot(t, "1 Warehouse Way"), testSnapshot(t, "221B Baker Street"),
		nil, "", nil, kernel.NewUUID(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateShipmentStatusCommand_RequiresUpdatedBy(t *testing.T) {
	_, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), shipment.Shipped,
		shipment.StatusUpdate{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateShipmentStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), shipment.UnknownStatus,
		shipment.StatusUpdate{UpdatedBy: kernel.NewUUID()})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
