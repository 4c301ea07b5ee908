// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. A shipment row embeds both address snapshots and
// owns its tracking event rows; the version column backs optimistic locking.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number         string    `gorm:"uniqueIndex"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Status         string    `gorm:"index"`
	Carrier        string    `gorm:"index"`
	TrackingNumber *string   `gorm:"index"`
	TrackingURL    *string
	MethodID       uuid.UUID `gorm:"type:uuid;index"`
	Cost           float64
	Origin         SnapshotDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination    SnapshotDTO `gorm:"embedded;embeddedPrefix:dest_"`
	WeightKG       *float64
	Dimensions     *string
	DeliveryNotes  *string
	FailureReason  *string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	Metadata       []byte `gorm:"type:jsonb"`
	Version        int
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	UpdatedBy      uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	Events []TrackingEventDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// SnapshotDTO represents an embedded address copy within the shipment table.
type SnapshotDTO struct {
	Line1      string
	Line2      *string
	City       string
	State      *string
	PostalCode string
	Country    string
	Phone      *string
}

// TrackingEventDTO represents one tracking history row.
type TrackingEventDTO struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	OccurredAt  time.Time
	Status      string
	Location    *string
	Description string
}

// TableName overrides GORM's default naming convention.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
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

func snapshotFromDomain(snapshot shipment.AddressSnapshot) SnapshotDTO {
	return SnapshotDTO{
		Line1:      snapshot.Line1(),
		Line2:      nullable(snapshot.Line2()),
		City:       snapshot.City(),
		State:      nullable(snapshot.State()),
		PostalCode: snapshot.PostalCode(),
		Country:    snapshot.Country(),
		Phone:      nullable(snapshot.Phone()),
	}
}

func snapshotToDomain(dto SnapshotDTO) (shipment.AddressSnapshot, error) {
	return shipment.NewAddressSnapshot(
		dto.Line1, fromNullable(dto.Line2), dto.City, fromNullable(dto.State),
		dto.PostalCode, dto.Country, fromNullable(dto.Phone))
}

// fromDomain converts a shipment aggregate to its database representation,
// tracking events included.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	var metadata []byte
	if len(aggregate.Metadata()) > 0 {
		raw, err := json.Marshal(aggregate.Metadata())
		if err != nil {
			return ShipmentDTO{}, err
		}
		metadata = raw
	}

	events := make([]TrackingEventDTO, 0, len(aggregate.TrackingHistory()))
	for _, event := range aggregate.TrackingHistory() {
		events = append(events, TrackingEventDTO{
			ShipmentID:  aggregate.ID().Bytes(),
			OccurredAt:  event.OccurredAt(),
			Status:      event.Status().String(),
			Location:    nullable(event.Location()),
			Description: event.Description(),
		})
	}

	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		Number:         aggregate.Number(),
		OrderID:        aggregate.OrderID().Bytes(),
		Status:         aggregate.Status().String(),
		Carrier:        aggregate.Carrier().String(),
		TrackingNumber: nullable(aggregate.TrackingNumber()),
		TrackingURL:    nullable(aggregate.TrackingURL()),
		MethodID:       aggregate.MethodID().Bytes(),
		Cost:           aggregate.Cost(),
		Origin:         snapshotFromDomain(aggregate.Origin()),
		Destination:    snapshotFromDomain(aggregate.Destination()),
		WeightKG:       aggregate.WeightKG(),
		Dimensions:     nullable(aggregate.Dimensions()),
		DeliveryNotes:  nullable(aggregate.DeliveryNotes()),
		FailureReason:  nullable(aggregate.FailureReason()),
		ShippedAt:      aggregate.ShippedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		Metadata:       metadata,
		Version:        aggregate.Version(),
		CreatedBy:      aggregate.CreatedBy().Bytes(),
		UpdatedBy:      aggregate.UpdatedBy().Bytes(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Events:         events,
	}, nil
}

// toDomain converts a database DTO back into the shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	methodID, err := kernel.UUIDFromBytes(dto.MethodID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	// A shipment that was never status-updated has no updater yet.
	var updatedBy kernel.UUID
	if dto.UpdatedBy != uuid.Nil {
		if updatedBy, err = kernel.UUIDFromBytes(dto.UpdatedBy[:]); err != nil {
			return nil, err
		}
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	carrier, err := shipment.CarrierFromString(dto.Carrier)
	if err != nil {
		return nil, err
	}

	origin, err := snapshotToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := snapshotToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	var metadata map[string]string
	if len(dto.Metadata) > 0 {
		if err = json.Unmarshal(dto.Metadata, &metadata); err != nil {
			return nil, err
		}
	}

	history := make([]shipment.TrackingEvent, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		eventStatus, statusErr := shipment.StatusFromString(eventDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		event, eventErr := shipment.NewTrackingEvent(eventDTO.OccurredAt, eventStatus,
			fromNullable(eventDTO.Location), eventDTO.Description)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, event)
	}

	return shipment.RestoreShipment(shipment.Record{
		ID:             id,
		Number:         dto.Number,
		OrderID:        orderID,
		Status:         status,
		Carrier:        carrier,
		TrackingNumber: fromNullable(dto.TrackingNumber),
		TrackingURL:    fromNullable(dto.TrackingURL),
		MethodID:       methodID,
		Cost:           dto.Cost,
		Origin:         origin,
		Destination:    destination,
		WeightKG:       dto.WeightKG,
		Dimensions:     fromNullable(dto.Dimensions),
		DeliveryNotes:  fromNullable(dto.DeliveryNotes),
		FailureReason:  fromNullable(dto.FailureReason),
		Metadata:       metadata,
		ShippedAt:      dto.ShippedAt,
		DeliveredAt:    dto.DeliveredAt,
		Version:        dto.Version,
		CreatedBy:      createdBy,
		UpdatedBy:      updatedBy,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
		History:        history,
	})
}
