// Package addressrepo provides data transfer objects and mapping functions
// for address persistence. Handles the conversion between the address domain
// aggregate and its database representation.
package addressrepo

import (
	"time"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting addresses.
// Optional fields map to nullable columns.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	Line1      string
	Line2      *string
	City       string
	State      *string
	PostalCode string
	Country    string
	Phone      *string
	IsDefault  bool `gorm:"index"`
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming convention.
func (AddressDTO) TableName() string {
	return "addresses"
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func fromNullable(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// fromDomain converts an address aggregate to its database representation.
func fromDomain(aggregate *address.Address) AddressDTO {
	return AddressDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     aggregate.UserID().Bytes(),
		Line1:      aggregate.Line1(),
		Line2:      nullable(aggregate.Line2()),
		City:       aggregate.City(),
		State:      nullable(aggregate.State()),
		PostalCode: aggregate.PostalCode(),
		Country:    aggregate.Country(),
		Phone:      nullable(aggregate.Phone()),
		IsDefault:  aggregate.IsDefault(),
		IsActive:   aggregate.IsActive(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back into the address aggregate.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(id, userID,
		dto.Line1, fromNullable(dto.Line2), dto.City, fromNullable(dto.State),
		dto.PostalCode, dto.Country, fromNullable(dto.Phone),
		dto.IsDefault, dto.IsActive, dto.CreatedAt, dto.UpdatedAt)
}
