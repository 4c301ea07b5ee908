package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate with its tracking events.
	// Returns errs.ValueIsInvalidError wrapping a uniqueness violation when
	// the shipment number is already taken.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The write is conditional on the aggregate's version: when the stored
	// row has moved on, Update returns errs.VersionIsInvalidError and writes
	// nothing.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate with its full tracking history.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByNumber retrieves a shipment by its human-facing shipment number.
	// Returns errs.ObjectNotFoundError when the number is unknown.
	GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error)

	// Remove hard-deletes a shipment and its tracking events.
	// Returns errs.ObjectNotFoundError when no row was deleted.
	Remove(ctx context.Context, id kernel.UUID) error
}
