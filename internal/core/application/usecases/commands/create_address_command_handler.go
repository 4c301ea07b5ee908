package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// CreateAddressCommandHandler handles the business logic for address creation.
// Verifies the owning user exists and keeps the single-default invariant:
// when the new address is the default, any previous default is cleared in the
// same transaction.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	users      ports.UserProvider
}

// NewCreateAddressCommandHandler creates a handler for address creation operations.
func NewCreateAddressCommandHandler(
	uowFactory AddressUoWFactory,
	users ports.UserProvider,
) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle processes the address creation command.
func (h CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.users.GetUser(ctx, cmd.UserID()); err != nil {
		return err
	}

	newAddress, err := address.NewAddress(
		cmd.AddressID(), cmd.UserID(),
		cmd.Line1(), cmd.Line2(), cmd.City(), cmd.State(),
		cmd.PostalCode(), cmd.Country(), cmd.Phone(),
		cmd.IsDefault(), time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()

	if cmd.IsDefault() {
		if err = clearCurrentDefault(ctx, addressRepo, cmd.UserID()); err != nil {
			return err
		}
	}

	if err = addressRepo.Add(ctx, newAddress); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// clearCurrentDefault demotes the user's existing default address, if any.
func clearCurrentDefault(ctx context.Context, repo ports.AddressRepository, userID kernel.UUID) error {
	current, err := repo.GetDefaultForUser(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	current.ClearDefault(time.Now())
	return repo.Update(ctx, current)
}
