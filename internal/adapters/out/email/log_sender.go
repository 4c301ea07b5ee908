package email

import (
	"context"
	"log/slog"

	"shipping/internal/core/ports"
)

var _ ports.NotificationSender = (*LogSender)(nil)

// LogSender writes notifications to the log instead of delivering them.
// Used when no SES identity is configured.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a log-backed notification sender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the notification and reports success.
func (s *LogSender) Send(_ context.Context, recipient, title, message string) error {
	s.log.Info("notification delivered to log",
		"recipient", recipient,
		"title", title,
		"message", message)
	return nil
}
