package commands

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/notification"
	"shipping/internal/core/ports"
)

// SendPendingNotificationsCommandHandler drains the notification outbox.
// Each pending row is pushed through the NotificationSender and marked SENT
// or FAILED. A failed delivery is logged and the row stays FAILED; it is not
// retried and never affects the shipment flow that enqueued it.
type SendPendingNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	users      ports.UserProvider
	sender     ports.NotificationSender
	log        *slog.Logger
}

// NewSendPendingNotificationsCommandHandler creates a handler for outbox dispatch runs.
func NewSendPendingNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	users ports.UserProvider,
	sender ports.NotificationSender,
	log *slog.Logger,
) SendPendingNotificationsCommandHandler {
	return SendPendingNotificationsCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		sender:     sender,
		log:        log,
	}
}

// Handle processes one dispatch run.
// Individual delivery failures do not abort the run; the remaining rows are
// still dispatched and the run commits whatever state it reached.
func (h SendPendingNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd SendPendingNotificationsCommand,
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

	notificationRepo := uow.NotificationRepository()

	pending, err := notificationRepo.GetAllPending(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, row := range pending {
		h.dispatch(ctx, row)

		if err = notificationRepo.Update(ctx, row); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// dispatch delivers one outbox row and records the outcome on the aggregate.
func (h SendPendingNotificationsCommandHandler) dispatch(
	ctx context.Context,
	row *notification.Notification,
) {
	user, err := h.users.GetUser(ctx, row.UserID())
	if err != nil {
		h.log.Warn("notification recipient lookup failed",
			"notificationId", row.ID().String(), "userId", row.UserID().String(), "error", err)
		row.MarkFailed()
		return
	}

	if err = h.sender.Send(ctx, user.Email, row.Title(), row.Message()); err != nil {
		h.log.Warn("notification delivery failed",
			"notificationId", row.ID().String(), "recipient", user.Email, "error", err)
		row.MarkFailed()
		return
	}

	row.MarkSent(time.Now())
}
