package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment with its tracking events to the database.
// A shipment number collision surfaces as errs.ValueIsInvalidError so the
// caller can regenerate the number and retry.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("shipmentNumber", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment conditionally on its version.
// The row is only written when the stored version still matches the one the
// aggregate was loaded with; the write bumps the version in the same
// statement. Zero affected rows means a concurrent writer got there first.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("Events", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("shipmentVersion")
	}

	if err = r.replaceTrackingEvents(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceTrackingEvents rewrites the tracking history rows for a shipment.
// History is append-only in the aggregate, so a full rewrite keeps the rows
// in insertion order without diffing against what is already stored.
func (r *GormShipmentRepository) replaceTrackingEvents(ctx context.Context, dto ShipmentDTO) error {
	err := r.db.WithContext(ctx).
		Delete(&TrackingEventDTO{}, "shipment_id = ?", dto.ID).Error
	if err != nil {
		return err
	}

	if len(dto.Events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&dto.Events).Error
}

// Get retrieves a shipment by ID with its full tracking history.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Events", eventOrder).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a shipment by its human-facing shipment number.
func (r *GormShipmentRepository) GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("shipmentNumber")
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Events", eventOrder).
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentNumber", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove hard-deletes a shipment and its tracking events.
func (r *GormShipmentRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Delete(&TrackingEventDTO{}, "shipment_id = ?", id.Bytes()).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", id.String())
	}

	return nil
}

func eventOrder(db *gorm.DB) *gorm.DB {
	return db.Order("occurred_at, id")
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
