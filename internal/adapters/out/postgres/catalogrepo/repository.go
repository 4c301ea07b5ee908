package catalogrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMethodRepository implements MethodRepository using GORM.
type GormMethodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMethodRepository creates a new GORM shipping method repository.
func NewGormMethodRepository(db *gorm.DB, tracker aggregateTracker) *GormMethodRepository {
	return &GormMethodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipping method to the database.
func (r *GormMethodRepository) Add(ctx context.Context, aggregate *catalog.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := methodFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipping method to the database.
func (r *GormMethodRepository) Update(ctx context.Context, aggregate *catalog.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := methodFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MethodDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("methodId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipping method by ID.
func (r *GormMethodRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Method, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("methodId", id.String())
		}
		return nil, err
	}

	return methodToDomain(dto)
}

// GetAllActive retrieves all active shipping methods.
func (r *GormMethodRepository) GetAllActive(ctx context.Context) ([]*catalog.Method, error) {
	var dtos []MethodDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active").Error; err != nil {
		return nil, err
	}

	methods := make([]*catalog.Method, 0, len(dtos))
	for _, dto := range dtos {
		method, err := methodToDomain(dto)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	return methods, nil
}

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormZoneRepository creates a new GORM shipping zone repository.
func NewGormZoneRepository(db *gorm.DB, tracker aggregateTracker) *GormZoneRepository {
	return &GormZoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipping zone to the database.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *catalog.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := zoneFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipping zone to the database.
func (r *GormZoneRepository) Update(ctx context.Context, aggregate *catalog.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := zoneFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ZoneDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("zoneId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipping zone by ID.
func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zoneId", id.String())
		}
		return nil, err
	}

	return zoneToDomain(dto)
}

// GetAllActive retrieves all active shipping zones.
func (r *GormZoneRepository) GetAllActive(ctx context.Context) ([]*catalog.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active").Error; err != nil {
		return nil, err
	}

	zones := make([]*catalog.Zone, 0, len(dtos))
	for _, dto := range dtos {
		zone, err := zoneToDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}
