package commands

import (
	"context"

	"shipping/internal/core/domain/model/catalog"
)

// CreateZoneCommandHandler handles shipping zone creation.
type CreateZoneCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone creation operations.
func NewCreateZoneCommandHandler(uowFactory CatalogUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone creation command.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	zone, err := catalog.NewZone(
		cmd.ZoneID(), cmd.Name(),
		cmd.Countries(), cmd.States(), cmd.PostalCodes(),
		cmd.BaseCost(), cmd.AdditionalItemCost(),
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

	if err = uow.ZoneRepository().Add(ctx, zone); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
