package commands

import (
	"context"
	"time"

	"shipping/internal/pkg/errs"
)

// UpdateAddressCommandHandler handles partial address updates.
// An address that does not belong to the requesting user is reported as not
// found rather than forbidden, so address ids cannot be probed.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address update operations.
func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address update command. When the patch promotes the
// address to default, the previous default is cleared in the same transaction.
func (h UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
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

	patch := cmd.Patch()
	becomesDefault := patch.IsDefault != nil && *patch.IsDefault && !aggregate.IsDefault()
	if becomesDefault {
		if err = clearCurrentDefault(ctx, addressRepo, cmd.UserID()); err != nil {
			return err
		}
	}

	if err = aggregate.ApplyPatch(patch, time.Now()); err != nil {
		return err
	}

	if err = addressRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
