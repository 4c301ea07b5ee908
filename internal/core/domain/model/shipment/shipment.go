package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root of the lifecycle manager. It is created once
// per dispatch event against exactly one order and mutates only through
// UpdateStatus until it reaches a terminal state.
//
// Invariants:
//   - Shipment number follows the SHP-<unix-ms>-<suffix> format
//   - Status transitions follow the Status state machine
//   - shippedAt/deliveredAt are stamped exactly once, on first entry into
//     SHIPPED/DELIVERED
//   - Tracking history is append-only
//   - The version counter backs conditional updates so concurrent status
//     races surface instead of being silently lost
type Shipment struct {
	id             kernel.UUID
	number         string
	orderID        kernel.UUID
	status         Status
	carrier        Carrier
	trackingNumber string
	trackingURL    string
	methodID       kernel.UUID
	cost           float64
	origin         AddressSnapshot
	destination    AddressSnapshot
	weightKG       *float64
	dimensions     string
	deliveryNotes  string
	failureReason  string
	metadata       map[string]string
	shippedAt      *time.Time
	deliveredAt    *time.Time
	version        int
	createdBy      kernel.UUID
	updatedBy      kernel.UUID
	createdAt      time.Time
	updatedAt      time.Time
	history        []TrackingEvent

	isConstructed bool
}

// StatusUpdate carries the optional extras of a status-update call. Empty
// string fields leave the stored values untouched.
type StatusUpdate struct {
	TrackingNumber string
	TrackingURL    string
	Location       string
	Description    string
	DeliveryNotes  string
	FailureReason  string
	UpdatedBy      kernel.UUID
}

// Record is the raw persisted state of a shipment, used by RestoreShipment
// when reconstructing the aggregate from storage.
type Record struct {
	ID             kernel.UUID
	Number         string
	OrderID        kernel.UUID
	Status         Status
	Carrier        Carrier
	TrackingNumber string
	TrackingURL    string
	MethodID       kernel.UUID
	Cost           float64
	Origin         AddressSnapshot
	Destination    AddressSnapshot
	WeightKG       *float64
	Dimensions     string
	DeliveryNotes  string
	FailureReason  string
	Metadata       map[string]string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	Version        int
	CreatedBy      kernel.UUID
	UpdatedBy      kernel.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	History        []TrackingEvent
}

// NewShipment creates a shipment in PENDING status with version 1 and an
// initial tracking event. The number must already be collision-checked by the
// caller.
func NewShipment(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	carrier Carrier,
	methodID kernel.UUID,
	cost float64,
	origin, destination AddressSnapshot,
	weightKG *float64,
	dimensions string,
	metadata map[string]string,
	createdBy kernel.UUID,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		weightKG:      weightKG,
		dimensions:    dimensions,
		metadata:      metadata,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setOrderID(orderID),
		s.setCarrier(carrier),
		s.setMethodID(methodID),
		s.setCost(cost),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	created, err := NewTrackingEvent(now, Pending, "", "Shipment created")
	if err != nil {
		return nil, err
	}
	s.history = append(s.history, created)

	return s, nil
}

// RestoreShipment reconstructs a Shipment from its persisted record,
// including status, version, timestamps, and tracking history.
func RestoreShipment(rec Record) (*Shipment, error) {
	s := &Shipment{
		trackingNumber: rec.TrackingNumber,
		trackingURL:    rec.TrackingURL,
		weightKG:       rec.WeightKG,
		dimensions:     rec.Dimensions,
		deliveryNotes:  rec.DeliveryNotes,
		failureReason:  rec.FailureReason,
		metadata:       rec.Metadata,
		shippedAt:      rec.ShippedAt,
		deliveredAt:    rec.DeliveredAt,
		updatedBy:      rec.UpdatedBy,
		createdAt:      rec.CreatedAt,
		updatedAt:      rec.UpdatedAt,
		history:        rec.History,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setID(rec.ID),
		s.setNumber(rec.Number),
		s.setOrderID(rec.OrderID),
		s.setStatus(rec.Status),
		s.setCarrier(rec.Carrier),
		s.setMethodID(rec.MethodID),
		s.setCost(rec.Cost),
		s.setOrigin(rec.Origin),
		s.setDestination(rec.Destination),
		s.setCreatedBy(rec.CreatedBy),
		s.setVersion(rec.Version),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// UpdateStatus drives the state machine. It merges the supplied extras,
// and on a real transition stamps the lifecycle timestamps and appends a
// tracking event. Re-applying the current status merges extras but reports
// no change, so callers skip notification for it.
//
// Returns true when the status actually changed.
func (s *Shipment) UpdateStatus(newStatus Status, update StatusUpdate, now time.Time) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, err
	}

	if newStatus == s.status {
		s.mergeExtras(update, now)
		return false, nil
	}

	if err := s.status.CanTransitionTo(newStatus); err != nil {
		return false, err
	}

	s.status = newStatus
	s.mergeExtras(update, now)

	switch newStatus {
	case Shipped:
		if s.shippedAt == nil {
			shippedAt := now
			s.shippedAt = &shippedAt
		}
	case Delivered:
		if s.deliveredAt == nil {
			deliveredAt := now
			s.deliveredAt = &deliveredAt
		}
	}

	description := update.Description
	if description == "" {
		description = fmt.Sprintf("Status changed to %s", newStatus)
	}

	event, err := NewTrackingEvent(now, newStatus, update.Location, description)
	if err != nil {
		return false, err
	}
	s.history = append(s.history, event)

	return true, nil
}

func (s *Shipment) mergeExtras(update StatusUpdate, now time.Time) {
	if update.TrackingNumber != "" {
		s.trackingNumber = update.TrackingNumber
	}
	if update.TrackingURL != "" {
		s.trackingURL = update.TrackingURL
	}
	if update.DeliveryNotes != "" {
		s.deliveryNotes = update.DeliveryNotes
	}
	if update.FailureReason != "" {
		s.failureReason = update.FailureReason
	}
	if update.UpdatedBy.Validate() == nil {
		s.updatedBy = update.UpdatedBy
	}
	s.updatedAt = now
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// Number returns the human-trackable shipment number.
func (s *Shipment) Number() string { return s.number }

// OrderID returns the owning order's identifier.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// Carrier returns the shipping carrier.
func (s *Shipment) Carrier() Carrier { return s.carrier }

// TrackingNumber returns the carrier tracking number, if any.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// TrackingURL returns the carrier tracking URL, if any.
func (s *Shipment) TrackingURL() string { return s.trackingURL }

// MethodID returns the identifier of the chosen shipping method.
func (s *Shipment) MethodID() kernel.UUID { return s.methodID }

// Cost returns the shipping cost charged for this shipment.
func (s *Shipment) Cost() float64 { return s.cost }

// Origin returns the origin address snapshot.
func (s *Shipment) Origin() AddressSnapshot { return s.origin }

// Destination returns the destination address snapshot.
func (s *Shipment) Destination() AddressSnapshot { return s.destination }

// WeightKG returns the parcel weight, or nil when unknown.
func (s *Shipment) WeightKG() *float64 { return s.weightKG }

// Dimensions returns the free-form parcel dimensions text.
func (s *Shipment) Dimensions() string { return s.dimensions }

// DeliveryNotes returns notes recorded at delivery time.
func (s *Shipment) DeliveryNotes() string { return s.deliveryNotes }

// FailureReason returns the reason recorded when the shipment failed.
func (s *Shipment) FailureReason() string { return s.failureReason }

// Metadata returns the free-form metadata map.
func (s *Shipment) Metadata() map[string]string { return s.metadata }

// ShippedAt returns when the shipment entered SHIPPED, or nil.
func (s *Shipment) ShippedAt() *time.Time { return s.shippedAt }

// DeliveredAt returns when the shipment entered DELIVERED, or nil.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }

// Version returns the optimistic-lock counter as loaded from storage.
func (s *Shipment) Version() int { return s.version }

// CreatedBy returns who created the shipment.
func (s *Shipment) CreatedBy() kernel.UUID { return s.createdBy }

// UpdatedBy returns who last modified the shipment.
func (s *Shipment) UpdatedBy() kernel.UUID { return s.updatedBy }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last modification timestamp.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// TrackingHistory returns the append-only tracking events, oldest first.
func (s *Shipment) TrackingHistory() []TrackingEvent { return s.history }

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setNumber(number string) error {
	if err := ValidateShipmentNumber(number); err != nil {
		return err
	}
	s.number = number
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setCarrier(carrier Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	s.carrier = carrier
	return nil
}

func (s *Shipment) setMethodID(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("methodId", err)
	}
	s.methodID = methodID
	return nil
}

func (s *Shipment) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%f is negative", cost))
	}
	s.cost = cost
	return nil
}

func (s *Shipment) setOrigin(origin AddressSnapshot) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination AddressSnapshot) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	s.createdBy = createdBy
	return nil
}

func (s *Shipment) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is less than 1", version))
	}
	s.version = version
	return nil
}
