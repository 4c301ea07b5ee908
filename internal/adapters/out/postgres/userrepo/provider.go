// Package userrepo provides read-only access to the users table owned by the
// accounts context. No aggregate exists on this side; rows map straight to the
// ports.User read model.
package userrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure of a user row.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserProvider implements UserProvider using GORM.
type GormUserProvider struct {
	db *gorm.DB
}

// NewGormUserProvider creates a new GORM user provider.
func NewGormUserProvider(db *gorm.DB) *GormUserProvider {
	return &GormUserProvider{db: db}
}

// GetUser retrieves a user by ID.
func (p *GormUserProvider) GetUser(ctx context.Context, id kernel.UUID) (ports.User, error) {
	if err := id.Validate(); err != nil {
		return ports.User{}, err
	}

	var dto UserDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, errs.NewObjectNotFoundError("userId", id.String())
		}
		return ports.User{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.User{}, err
	}

	return ports.User{
		ID:    userID,
		Name:  dto.Name,
		Email: dto.Email,
	}, nil
}
