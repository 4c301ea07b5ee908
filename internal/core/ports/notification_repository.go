package ports

import (
	"context"

	"shipping/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// notification outbox.
type NotificationRepository interface {
	// Add persists a new outbox notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists delivery-state changes to an outbox notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetAllPending retrieves outbox rows waiting for dispatch,
	// oldest first, capped at limit rows.
	GetAllPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}
