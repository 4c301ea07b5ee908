package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// User is the subset of account data the shipping context needs.
type User struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// Order is the subset of order data the shipping context needs.
type Order struct {
	ID          kernel.UUID
	OrderNumber string
	TotalAmount float64
	UserID      kernel.UUID
}

// UserProvider exposes read-only access to user accounts owned by another
// bounded context.
type UserProvider interface {
	// GetUser retrieves a user by id.
	// Returns errs.ObjectNotFoundError when the user does not exist.
	GetUser(ctx context.Context, id kernel.UUID) (User, error)
}

// OrderProvider exposes read-only access to orders owned by another bounded
// context. Shipments reference orders but never mutate them.
type OrderProvider interface {
	// GetOrder retrieves an order by id.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	GetOrder(ctx context.Context, id kernel.UUID) (Order, error)
}

// NotificationSender delivers a notification to a recipient address.
// Implementations must be safe for concurrent use.
type NotificationSender interface {
	Send(ctx context.Context, recipient, title, message string) error
}
