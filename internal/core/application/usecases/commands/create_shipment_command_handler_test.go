package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/notification"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetAllPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockOrderProvider struct{ mock.Mock }

func (m *MockOrderProvider) GetOrder(ctx context.Context, id kernel.UUID) (ports.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Order), args.Error(1)
}

func testSnapshot(t *testing.T, line1 string) shipment.AddressSnapshot {
	t.Helper()

	snapshot, err := shipment.NewAddressSnapshot(line1, "", "London", "", "NW1 6XE", "GB", "")
	require.NoError(t, err)
	return snapshot
}

func testShipment(t *testing.T, orderID kernel.UUID) *shipment.Shipment {
	t.Helper()

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), shipment.NewShipmentNumber(time.Now()), orderID,
		shipment.UPS, kernel.NewUUID(), 12.50,
		testSnapshot(t, "1 Warehouse Way"), testSnapshot(t, "221B Baker Street"),
		nil, "", nil, kernel.NewUUID(), time.Now(),
	)
	require.NoError(t, err)
	return aggregate
}

func validCreateShipmentCommand(t *testing.T, orderID kernel.UUID) commands.CreateShipmentCommand {
	t.Helper()

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), orderID, shipment.UPS, kernel.NewUUID(), 12.50,
		testSnapshot(t, "1 Warehouse Way"), testSnapshot(t, "221B Baker Street"),
		nil, "", nil, kernel.NewUUID(),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd := validCreateShipmentCommand(t, orderID)

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, orderID).
		Return(ports.Order{ID: orderID, OrderNumber: "ORD-1001", TotalAmount: 99.90, UserID: userID}, nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	outbox := new(MockNotificationRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByNumber", ctx, mock.AnythingOfType("string")).
			Return(nil, errs.NewObjectNotFoundError("shipmentNumber", "n/a")).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, orders)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	shipmentRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnNumberCollision(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := validCreateShipmentCommand(t, orderID)

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, orderID).
		Return(ports.Order{ID: orderID, OrderNumber: "ORD-1001", UserID: kernel.NewUUID()}, nil).Once()

	taken := testShipment(t, orderID)
	shipmentRepo := new(MockShipmentRepository)
	outbox := new(MockNotificationRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByNumber", ctx, mock.AnythingOfType("string")).
			Return(taken, nil).Once(),
		shipmentRepo.On("GetByNumber", ctx, mock.AnythingOfType("string")).
			Return(nil, errs.NewObjectNotFoundError("shipmentNumber", "n/a")).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, orders)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	shipmentRepo.AssertNumberOfCalls(t, "GetByNumber", 2)
}

func TestCreateShipmentCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := validCreateShipmentCommand(t, orderID)

	orders := new(MockOrderProvider)
	orders.On("GetOrder", ctx, orderID).
		Return(ports.Order{}, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	factory := new(MockShipmentUoWFactory)

	h := commands.NewCreateShipmentCommandHandler(factory, orders)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateShipmentCommandHandler(new(MockShipmentUoWFactory), new(MockOrderProvider))
	err := h.Handle(t.Context(), commands.CreateShipmentCommand{})
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}
