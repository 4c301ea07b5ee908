// Package orderrepo provides read-only access to the orders table owned by
// the order management context. Shipments reference orders but never mutate
// them, so rows map straight to the ports.Order read model.
package orderrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure of an order row.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex"`
	TotalAmount float64
	UserID      uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// GormOrderProvider implements OrderProvider using GORM.
type GormOrderProvider struct {
	db *gorm.DB
}

// NewGormOrderProvider creates a new GORM order provider.
func NewGormOrderProvider(db *gorm.DB) *GormOrderProvider {
	return &GormOrderProvider{db: db}
}

// GetOrder retrieves an order by ID.
func (p *GormOrderProvider) GetOrder(ctx context.Context, id kernel.UUID) (ports.Order, error) {
	if err := id.Validate(); err != nil {
		return ports.Order{}, err
	}

	var dto OrderDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Order{}, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return ports.Order{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Order{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return ports.Order{}, err
	}

	return ports.Order{
		ID:          orderID,
		OrderNumber: dto.OrderNumber,
		TotalAmount: dto.TotalAmount,
		UserID:      userID,
	}, nil
}
