package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentStatusCommandHandler_Handle_Transition(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := testShipment(t, orderID)

	cmd, err := commands.NewUpdateShipmentStatusCommand(aggregate.ID(), shipment.Shipped,
		shipment.StatusUpdate{TrackingNumber: "1Z999AA10123456784", UpdatedBy: kernel.NewUUID()})
	require.NoError(t, err)

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, orderID).
		Return(ports.Order{ID: orderID, OrderNumber: "ORD-1001", UserID: kernel.NewUUID()}, nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	outbox := new(MockNotificationRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("NotificationRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory, orders)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, shipment.Shipped, aggregate.Status())
	require.Equal(t, "1Z999AA10123456784", aggregate.TrackingNumber())
	require.NotNil(t, aggregate.ShippedAt())
	shipmentRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_SameStatusEmitsNothing(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := testShipment(t, orderID)
	eventsBefore := len(aggregate.TrackingHistory())

	cmd, err := commands.NewUpdateShipmentStatusCommand(aggregate.ID(), shipment.Pending,
		shipment.StatusUpdate{UpdatedBy: kernel.NewUUID()})
	require.NoError(t, err)

	orders := new(MockOrderProvider)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory, orders)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, aggregate.TrackingHistory(), eventsBefore)
	orders.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "NotificationRepository")
}

func TestUpdateShipmentStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := testShipment(t, kernel.NewUUID())

	cmd, err := commands.NewUpdateShipmentStatusCommand(aggregate.ID(), shipment.Delivered,
		shipment.StatusUpdate{UpdatedBy: kernel.NewUUID()})
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory, new(MockOrderProvider))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, shipment.Pending, aggregate.Status())
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateShipmentStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := testShipment(t, kernel.NewUUID())

	cmd, err := commands.NewUpdateShipmentStatusCommand(aggregate.ID(), shipment.Shipped,
		shipment.StatusUpdate{UpdatedBy: kernel.NewUUID()})
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, aggregate).
			Return(errs.NewVersionIsInvalidErrorWithCause("shipmentVersion")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory, new(MockOrderProvider))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
