// Package catalogrepo provides data transfer objects and mapping functions
// for the shipping method and zone catalog. Zone match lists are stored as
// native postgres text arrays.
package catalogrepo

import (
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MethodDTO represents the database structure for persisting shipping methods.
// The method type is stored as its wire string (for example "EXPRESS") so raw
// read queries stay legible.
type MethodDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string
	MethodType          string `gorm:"index"`
	BasePrice           float64
	AdditionalItemPrice float64
	MinDeliveryDays     int
	MaxDeliveryDays     int
	MaxWeightKG         *float64
	Regions             pq.StringArray `gorm:"type:text[]"`
	IsActive            bool           `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (MethodDTO) TableName() string {
	return "shipping_methods"
}

// ZoneDTO represents the database structure for persisting shipping zones.
type ZoneDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	Countries          pq.StringArray `gorm:"type:text[]"`
	States             pq.StringArray `gorm:"type:text[]"`
	PostalCodes        pq.StringArray `gorm:"type:text[]"`
	BaseCost           float64
	AdditionalItemCost float64
	IsActive           bool `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (ZoneDTO) TableName() string {
	return "shipping_zones"
}

// methodFromDomain converts a method aggregate to its database representation.
func methodFromDomain(aggregate *catalog.Method) MethodDTO {
	return MethodDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		MethodType:          aggregate.MethodType().String(),
		BasePrice:           aggregate.BasePrice(),
		AdditionalItemPrice: aggregate.AdditionalItemPrice(),
		MinDeliveryDays:     aggregate.MinDeliveryDays(),
		MaxDeliveryDays:     aggregate.MaxDeliveryDays(),
		MaxWeightKG:         aggregate.MaxWeightKG(),
		Regions:             aggregate.Regions(),
		IsActive:            aggregate.IsActive(),
	}
}

// methodToDomain converts a database DTO back into the method aggregate.
func methodToDomain(dto MethodDTO) (*catalog.Method, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	methodType, err := catalog.MethodTypeFromString(dto.MethodType)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMethod(id, dto.Name, methodType,
		dto.BasePrice, dto.AdditionalItemPrice,
		dto.MinDeliveryDays, dto.MaxDeliveryDays,
		dto.MaxWeightKG, dto.Regions, dto.IsActive)
}

// zoneFromDomain converts a zone aggregate to its database representation.
func zoneFromDomain(aggregate *catalog.Zone) ZoneDTO {
	return ZoneDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		Countries:          aggregate.Countries(),
		States:             aggregate.States(),
		PostalCodes:        aggregate.PostalCodes(),
		BaseCost:           aggregate.BaseCost(),
		AdditionalItemCost: aggregate.AdditionalItemCost(),
		IsActive:           aggregate.IsActive(),
	}
}

// zoneToDomain converts a database DTO back into the zone aggregate.
func zoneToDomain(dto ZoneDTO) (*catalog.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreZone(id, dto.Name,
		dto.Countries, dto.States, dto.PostalCodes,
		dto.BaseCost, dto.AdditionalItemCost, dto.IsActive)
}
