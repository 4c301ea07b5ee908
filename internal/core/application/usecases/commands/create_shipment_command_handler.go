package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/notification"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// shipmentNumberAttempts bounds how often a colliding shipment number is
// regenerated before the command gives up.
const shipmentNumberAttempts = 5

// ErrShipmentNumberExhausted is returned when no free shipment number could
// be found within the attempt budget.
var ErrShipmentNumberExhausted = errors.New("could not allocate a unique shipment number")

// CreateShipmentCommandHandler handles shipment creation.
// The shipment number is checked against existing shipments and regenerated
// on collision, so a duplicate number cannot be persisted. A "shipment
// created" notification for the order's owner is written to the outbox in
// the same transaction; delivery happens asynchronously.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	orders     ports.OrderProvider
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	orders ports.OrderProvider,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
	}
}

// Handle processes the shipment creation command.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	order, err := h.orders.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	number, err := h.allocateNumber(ctx, shipmentRepo)
	if err != nil {
		return err
	}

	now := time.Now()
	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), number, cmd.OrderID(),
		cmd.Carrier(), cmd.MethodID(), cmd.Cost(),
		cmd.Origin(), cmd.Destination(),
		cmd.WeightKG(), cmd.Dimensions(), cmd.Metadata(),
		cmd.CreatedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	created, err := notification.NewNotification(
		kernel.NewUUID(), order.UserID,
		"Shipment Created",
		fmt.Sprintf("Shipment %s has been created for your order %s", number, order.OrderNumber),
		notification.ShipmentCreated,
		cmd.CreatedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// allocateNumber generates shipment numbers until one is unused.
func (h CreateShipmentCommandHandler) allocateNumber(
	ctx context.Context,
	repo ports.ShipmentRepository,
) (string, error) {
	for range shipmentNumberAttempts {
		candidate := shipment.NewShipmentNumber(time.Now())

		_, err := repo.GetByNumber(ctx, candidate)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		// Taken, try a fresh random suffix.
	}

	return "", ErrShipmentNumberExhausted
}
