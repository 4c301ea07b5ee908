package commands

import (
	"context"

	"shipping/internal/core/domain/model/catalog"
)

// CreateMethodCommandHandler handles shipping method creation.
type CreateMethodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateMethodCommandHandler creates a handler for method creation operations.
func NewCreateMethodCommandHandler(uowFactory CatalogUoWFactory) CreateMethodCommandHandler {
	return CreateMethodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the method creation command.
func (h CreateMethodCommandHandler) Handle(ctx context.Context, cmd CreateMethodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	method, err := catalog.NewMethod(
		cmd.MethodID(), cmd.Name(), cmd.MethodType(),
		cmd.BasePrice(), cmd.AdditionalItemPrice(),
		cmd.MinDeliveryDays(), cmd.MaxDeliveryDays(),
		cmd.MaxWeightKG(), cmd.Regions(),
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

	if err = uow.MethodRepository().Add(ctx, method); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
