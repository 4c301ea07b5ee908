package commands

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/notification"
	"shipping/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler handles shipment lifecycle transitions.
// A real transition appends a tracking event and enqueues a "status changed"
// outbox notification in the same transaction; re-applying the current status
// persists merged extras but emits neither. Concurrent writers are detected
// by the repository's version check and surface as errs.VersionIsInvalidError.
//
// Example:
//
//	cmd, _ := NewUpdateShipmentStatusCommand(id, shipment.Shipped, shipment.StatusUpdate{
//	    TrackingNumber: "1Z999AA10123456784",
//	    UpdatedBy:      adminID,
//	})
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrVersionIsInvalid) {
//	    // lost a race with another update, client should retry
//	}
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	orders     ports.OrderProvider
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status update operations.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	orders ports.OrderProvider,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
	}
}

// Handle processes the status update command.
// Returns errs.ObjectNotFoundError when the shipment is absent.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) error {
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

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	now := time.Now()
	changed, err := aggregate.UpdateStatus(cmd.NewStatus(), cmd.Update(), now)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if changed {
		if err = h.enqueueStatusNotification(ctx, uow, aggregate.OrderID(),
			aggregate.Number(), cmd, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// enqueueStatusNotification writes the "status changed" outbox row for the
// order's owner.
func (h UpdateShipmentStatusCommandHandler) enqueueStatusNotification(
	ctx context.Context,
	uow ShipmentUoW,
	orderID kernel.UUID,
	shipmentNumber string,
	cmd UpdateShipmentStatusCommand,
	now time.Time,
) error {
	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	statusChanged, err := notification.NewNotification(
		kernel.NewUUID(), order.UserID,
		"Shipment Status Updated",
		fmt.Sprintf("Shipment %s is now %s", shipmentNumber, cmd.NewStatus()),
		notification.ShipmentStatus,
		cmd.Update().UpdatedBy, now,
	)
	if err != nil {
		return err
	}

	return uow.NotificationRepository().Add(ctx, statusChanged)
}
