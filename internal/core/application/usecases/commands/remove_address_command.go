package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRemoveAddressCommandIsNotConstructed = errors.New(
	"RemoveAddressCommand must be created via NewRemoveAddressCommand constructor",
)

// RemoveAddressCommand represents a request to delete a shipping address.
type RemoveAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAddressCommand creates a command to delete an address owned by the
// given user.
func NewRemoveAddressCommand(addressID, userID kernel.UUID) (RemoveAddressCommand, error) {
	command := RemoveAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAddressID(addressID),
		command.setUserID(userID),
	); err != nil {
		return RemoveAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAddressCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAddressCommandIsNotConstructed)
}

// AddressID returns the identifier of the address to delete.
func (c RemoveAddressCommand) AddressID() kernel.UUID { return c.addressID }

// UserID returns the identifier of the requesting user.
func (c RemoveAddressCommand) UserID() kernel.UUID { return c.userID }

func (c *RemoveAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *RemoveAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}
