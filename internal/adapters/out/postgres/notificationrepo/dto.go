// Package notificationrepo provides data transfer objects and mapping
// functions for the notification outbox.
package notificationrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting outbox
// notifications. Type and status are stored as their wire strings.
type NotificationDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;index"`
	Title            string
	Message          string
	NotificationType string
	Status           string    `gorm:"index"`
	CreatedBy        uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time `gorm:"index"`
	SentAt           *time.Time
}

// TableName overrides GORM's default naming convention.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:               aggregate.ID().Bytes(),
		UserID:           aggregate.UserID().Bytes(),
		Title:            aggregate.Title(),
		Message:          aggregate.Message(),
		NotificationType: aggregate.NotificationType().String(),
		Status:           aggregate.Status().String(),
		CreatedBy:        aggregate.CreatedBy().Bytes(),
		CreatedAt:        aggregate.CreatedAt(),
		SentAt:           aggregate.SentAt(),
	}
}

// toDomain converts a database DTO back into the notification entity.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	notificationType, err := notification.TypeFromString(dto.NotificationType)
	if err != nil {
		return nil, err
	}
	status, err := notification.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, userID,
		dto.Title, dto.Message, notificationType, status,
		createdBy, dto.CreatedAt, dto.SentAt)
}
