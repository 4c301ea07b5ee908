package commands

import (
	"context"
)

// RemoveShipmentCommandHandler handles shipment deletion.
// Tracking events are removed together with the shipment.
type RemoveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRemoveShipmentCommandHandler creates a handler for shipment deletion operations.
func NewRemoveShipmentCommandHandler(uowFactory ShipmentUoWFactory) RemoveShipmentCommandHandler {
	return RemoveShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment deletion command.
// Returns errs.ObjectNotFoundError when the shipment is absent.
func (h RemoveShipmentCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Remove(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
