// Package notification contains the outbox entity for user notifications.
// Lifecycle commands write notification rows inside the same transaction as
// the shipment change; a background job delivers pending rows afterwards, so
// a delivery failure can never roll back or block a shipment write.
package notification

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Type classifies what a notification is about.
type Type int

const (
	// UnknownType represents an invalid or undefined type.
	UnknownType Type = iota

	// ShipmentCreated informs the user a shipment was created for their order.
	ShipmentCreated

	// ShipmentStatus informs the user a shipment changed status.
	ShipmentStatus
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:     "UNKNOWN",
		ShipmentCreated: "SHIPMENT_CREATED",
		ShipmentStatus:  "SHIPMENT_STATUS",
	}
}

// TypeFromString parses the wire representation of a notification type.
func TypeFromString(s string) (Type, error) {
	for notificationType, str := range getTypeStrings() {
		if notificationType != UnknownType && str == s {
			return notificationType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"notificationType", fmt.Errorf("%q is not a valid notification type", s))
}

// Validate checks that the Type is one of the defined kinds.
func (t Type) Validate() error {
	if t != ShipmentCreated && t != ShipmentStatus {
		return errs.NewValueIsInvalidErrorWithCause(
			"notificationType", fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// String returns the wire representation, e.g. "SHIPMENT_CREATED".
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// DeliveryStatus tracks an outbox row through dispatch.
type DeliveryStatus int

const (
	// UnknownDeliveryStatus represents an invalid or undefined delivery status.
	UnknownDeliveryStatus DeliveryStatus = iota

	// DeliveryPending marks a row waiting for the dispatch job.
	DeliveryPending

	// DeliverySent marks a successfully delivered row.
	DeliverySent

	// DeliveryFailed marks a row whose delivery failed. Failed rows are not
	// retried.
	DeliveryFailed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownDeliveryStatus: "UNKNOWN",
		DeliveryPending:       "PENDING",
		DeliverySent:          "SENT",
		DeliveryFailed:        "FAILED",
	}
}

// DeliveryStatusFromString parses the wire representation of a delivery status.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getDeliveryStatusStrings() {
		if status != UnknownDeliveryStatus && str == s {
			return status, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the DeliveryStatus is one of the defined states.
func (s DeliveryStatus) Validate() error {
	if s != DeliveryPending && s != DeliverySent && s != DeliveryFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire representation, e.g. "PENDING".
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Notification is one outbox row addressed to a user.
type Notification struct {
	id               kernel.UUID
	userID           kernel.UUID
	title            string
	message          string
	notificationType Type
	status           DeliveryStatus
	createdBy        kernel.UUID
	createdAt        time.Time
	sentAt           *time.Time

	isConstructed bool
}

// NewNotification creates a pending outbox notification for the given user.
func NewNotification(
	id, userID kernel.UUID,
	title, message string,
	notificationType Type,
	createdBy kernel.UUID,
	now time.Time,
) (*Notification, error) {
	n := &Notification{
		status:        DeliveryPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setTitle(title),
		n.setMessage(message),
		n.setType(notificationType),
		n.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id, userID kernel.UUID,
	title, message string,
	notificationType Type,
	status DeliveryStatus,
	createdBy kernel.UUID,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, title, message, notificationType, createdBy, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	n.status = status
	n.sentAt = sentAt
	return n, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// UserID returns the recipient user's identifier.
func (n *Notification) UserID() kernel.UUID { return n.userID }

// Title returns the notification title.
func (n *Notification) Title() string { return n.title }

// Message returns the notification body.
func (n *Notification) Message() string { return n.message }

// NotificationType returns the kind of notification.
func (n *Notification) NotificationType() Type { return n.notificationType }

// Status returns the delivery status.
func (n *Notification) Status() DeliveryStatus { return n.status }

// CreatedBy returns who triggered the notification.
func (n *Notification) CreatedBy() kernel.UUID { return n.createdBy }

// CreatedAt returns when the outbox row was written.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// SentAt returns when the notification was delivered, or nil.
func (n *Notification) SentAt() *time.Time { return n.sentAt }

// MarkSent records successful delivery.
func (n *Notification) MarkSent(now time.Time) {
	n.status = DeliverySent
	n.sentAt = &now
}

// MarkFailed records a delivery failure. Failed rows stay failed.
func (n *Notification) MarkFailed() {
	n.status = DeliveryFailed
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	n.userID = userID
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setType(notificationType Type) error {
	if err := notificationType.Validate(); err != nil {
		return err
	}
	n.notificationType = notificationType
	return nil
}

func (n *Notification) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	n.createdBy = createdBy
	return nil
}
