package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment through
// its lifecycle. Optional extras (tracking number, location, notes) are merged
// into the shipment only when non-empty, and re-applying the current status is
// accepted as a no-op.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	newStatus  shipment.Status
	update     shipment.StatusUpdate

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to change a shipment's status.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	newStatus shipment.Status,
	update shipment.StatusUpdate,
) (UpdateShipmentStatusCommand, error) {
	command := UpdateShipmentStatusCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setNewStatus(newStatus),
		command.setUpdatedBy(update.UpdatedBy),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// NewStatus returns the requested status.
func (c UpdateShipmentStatusCommand) NewStatus() shipment.Status { return c.newStatus }

// Update returns the optional extras accompanying the status change.
func (c UpdateShipmentStatusCommand) Update() shipment.StatusUpdate { return c.update }

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setNewStatus(newStatus shipment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateShipmentStatusCommand) setUpdatedBy(updatedBy kernel.UUID) error {
	if err := updatedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("updatedBy", err)
	}

	return nil
}
