package shipment

import (
	"time"

	"shipping/internal/pkg/errs"
)

// TrackingEvent is one append-only entry in a shipment's tracking history.
// Events are owned by the shipment and never modified after creation.
type TrackingEvent struct {
	occurredAt  time.Time
	status      Status
	location    string
	description string

	isConstructed bool
}

// NewTrackingEvent creates a validated tracking event. The description is
// required; the location may be empty.
func NewTrackingEvent(occurredAt time.Time, status Status, location, description string) (TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if description == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("description")
	}

	return TrackingEvent{
		occurredAt:    occurredAt,
		status:        status,
		location:      location,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created via NewTrackingEvent.
func (e TrackingEvent) Validate() error {
	if !e.isConstructed {
		return errs.NewValueIsRequiredError("tracking event must be created via NewTrackingEvent")
	}
	return nil
}

// OccurredAt returns when the event happened.
func (e TrackingEvent) OccurredAt() time.Time { return e.occurredAt }

// Status returns the shipment status at the time of the event.
func (e TrackingEvent) Status() Status { return e.status }

// Location returns the optional location text.
func (e TrackingEvent) Location() string { return e.location }

// Description returns the event description.
func (e TrackingEvent) Description() string { return e.description }
