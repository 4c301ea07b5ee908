// Package ports defines repository and gateway interfaces for the shipping
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for address aggregates.
type AddressRepository interface {
	// Add persists a new address aggregate to storage.
	// The address must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing address aggregate.
	// The address must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an address aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no active address has that id.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// GetAllForUser retrieves all active addresses belonging to a user,
	// default address first, then newest first.
	GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*address.Address, error)

	// GetDefaultForUser retrieves the user's current default address.
	// Returns errs.ObjectNotFoundError when the user has no default.
	GetDefaultForUser(ctx context.Context, userID kernel.UUID) (*address.Address, error)

	// Remove hard-deletes an address.
	// Returns errs.ObjectNotFoundError when no row was deleted.
	Remove(ctx context.Context, id kernel.UUID) error
}
