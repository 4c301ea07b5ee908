package commands

import (
	"errors"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a partial update of a shipping address.
// Only the fields set on the patch are changed; everything else is kept.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID
	patch     address.Patch

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to partially update an address.
// The patch may be empty; ownership is still verified by the handler.
func NewUpdateAddressCommand(
	addressID, userID kernel.UUID,
	patch address.Patch,
) (UpdateAddressCommand, error) {
	command := UpdateAddressCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAddressID(addressID),
		command.setUserID(userID),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// AddressID returns the identifier of the address to update.
func (c UpdateAddressCommand) AddressID() kernel.UUID { return c.addressID }

// UserID returns the identifier of the requesting user.
func (c UpdateAddressCommand) UserID() kernel.UUID { return c.userID }

// Patch returns the field changes to apply.
func (c UpdateAddressCommand) Patch() address.Patch { return c.patch }

func (c *UpdateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *UpdateAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}
