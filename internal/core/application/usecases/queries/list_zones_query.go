package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrListZonesQueryIsNotConstructed = errors.New(
	"ListZonesQuery must be created via NewListZonesQuery constructor",
)

// ListZonesQuery retrieves the active shipping zones.
type ListZonesQuery struct {
	guard guard.ConstructorGuard
}

// NewListZonesQuery creates a query for the active zone catalog.
// This is a parameterless query.
func NewListZonesQuery() ListZonesQuery {
	return ListZonesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListZonesQuery) Validate() error {
	return q.guard.Validate(ErrListZonesQueryIsNotConstructed)
}

// ZoneResponse represents one shipping zone in the read model.
type ZoneResponse struct {
	ID                 kernel.UUID
	Name               string
	Countries          []string
	States             []string
	PostalCodes        []string
	BaseCost           float64
	AdditionalItemCost float64
}
