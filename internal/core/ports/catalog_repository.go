package ports

import (
	"context"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
)

// MethodRepository defines the persistence contract for shipping methods.
type MethodRepository interface {
	// Add persists a new shipping method.
	Add(ctx context.Context, aggregate *catalog.Method) error

	// Update persists changes to an existing shipping method.
	Update(ctx context.Context, aggregate *catalog.Method) error

	// Get retrieves a shipping method by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Method, error)

	// GetAllActive retrieves all active shipping methods.
	GetAllActive(ctx context.Context) ([]*catalog.Method, error)
}

// ZoneRepository defines the persistence contract for shipping zones.
type ZoneRepository interface {
	// Add persists a new shipping zone.
	Add(ctx context.Context, aggregate *catalog.Zone) error

	// Update persists changes to an existing shipping zone.
	Update(ctx context.Context, aggregate *catalog.Zone) error

	// Get retrieves a shipping zone by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Zone, error)

	// GetAllActive retrieves all active shipping zones.
	GetAllActive(ctx context.Context) ([]*catalog.Zone, error)
}
