package commands

import (
	"context"

	"shipping/internal/pkg/errs"
)

// RemoveAddressCommandHandler handles address deletion.
// The address is removed permanently; shipments keep their own embedded
// address snapshots, so history is unaffected.
type RemoveAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewRemoveAddressCommandHandler creates a handler for address deletion operations.
func NewRemoveAddressCommandHandler(uowFactory AddressUoWFactory) RemoveAddressCommandHandler {
	return RemoveAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address deletion command.
// Returns errs.ObjectNotFoundError when the address is absent or belongs to
// another user.
func (h RemoveAddressCommandHandler) Handle(ctx context.Context, cmd RemoveAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()

	aggregate, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return errs.NewObjectNotFoundError("addressId", cmd.AddressID())
	}

	if err = addressRepo.Remove(ctx, cmd.AddressID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
