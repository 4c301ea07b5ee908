package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrSendPendingNotificationsCommandIsNotConstructed = errors.New(
	"SendPendingNotificationsCommand must be created via NewSendPendingNotificationsCommand constructor",
)

// maxDispatchBatchSize caps how many outbox rows a single dispatch run may
// pick up.
const maxDispatchBatchSize = 1000

// SendPendingNotificationsCommand represents one dispatch run over the
// notification outbox.
type SendPendingNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewSendPendingNotificationsCommand creates a command to dispatch up to
// batchSize pending notifications.
func NewSendPendingNotificationsCommand(batchSize int) (SendPendingNotificationsCommand, error) {
	command := SendPendingNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBatchSize(batchSize); err != nil {
		return SendPendingNotificationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SendPendingNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrSendPendingNotificationsCommandIsNotConstructed)
}

// BatchSize returns how many pending rows the run may load.
func (c SendPendingNotificationsCommand) BatchSize() int { return c.batchSize }

func (c *SendPendingNotificationsCommand) setBatchSize(batchSize int) error {
	if batchSize < 1 || batchSize > maxDispatchBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxDispatchBatchSize)
	}

	c.batchSize = batchSize
	return nil
}
