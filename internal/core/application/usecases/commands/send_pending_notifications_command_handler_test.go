package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/notification"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, recipient, title, message string) error {
	args := m.Called(ctx, recipient, title, message)
	return args.Error(0)
}

func pendingNotification(t *testing.T, userID kernel.UUID, title string) *notification.Notification {
	t.Helper()

	n, err := notification.NewNotification(kernel.NewUUID(), userID, title,
		"Shipment SHP-1756709000000-0042 is now SHIPPED",
		notification.ShipmentStatus, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return n
}

func TestSendPendingNotificationsCommandHandler_Handle_MixedOutcomes(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	deliverable := pendingNotification(t, userID, "First")
	undeliverable := pendingNotification(t, userID, "Second")

	cmd, err := commands.NewSendPendingNotificationsCommand(50)
	require.NoError(t, err)

	users := new(MockUserProvider)
	users.On("GetUser", ctx, userID).
		Return(ports.User{ID: userID, Name: "Ada", Email: "ada@example.com"}, nil).Twice()

	sender := new(MockNotificationSender)
	sender.On("Send", ctx, "ada@example.com", "First", deliverable.Message()).Return(nil).Once()
	sender.On("Send", ctx, "ada@example.com", "Second", undeliverable.Message()).
		Return(errors.New("smtp unavailable")).Once()

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("GetAllPending", ctx, 50).
			Return([]*notification.Notification{deliverable, undeliverable}, nil).Once(),
		repo.On("Update", mock.Anything, deliverable).Return(nil).Once(),
		repo.On("Update", mock.Anything, undeliverable).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendPendingNotificationsCommandHandler(factory, users, sender, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, notification.DeliverySent, deliverable.Status())
	require.NotNil(t, deliverable.SentAt())
	require.Equal(t, notification.DeliveryFailed, undeliverable.Status())
	require.Nil(t, undeliverable.SentAt())
	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestSendPendingNotificationsCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSendPendingNotificationsCommand(50)
	require.NoError(t, err)

	sender := new(MockNotificationSender)
	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("GetAllPending", ctx, 50).Return([]*notification.Notification{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendPendingNotificationsCommandHandler(factory, new(MockUserProvider), sender, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewSendPendingNotificationsCommand_InvalidBatchSize(t *testing.T) {
	_, err := commands.NewSendPendingNotificationsCommand(0)
	require.Error(t, err)

	_, err = commands.NewSendPendingNotificationsCommand(100000)
	require.Error(t, err)
}
