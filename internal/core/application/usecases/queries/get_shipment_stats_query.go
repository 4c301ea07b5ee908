package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentStatsQueryIsNotConstructed = errors.New(
	"GetShipmentStatsQuery must be created via NewGetShipmentStatsQuery constructor",
)

// GetShipmentStatsQuery retrieves aggregate shipment statistics.
type GetShipmentStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentStatsQuery creates a statistics query.
// This is a parameterless query over all shipments.
func NewGetShipmentStatsQuery() GetShipmentStatsQuery {
	return GetShipmentStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatsQueryIsNotConstructed)
}

// CarrierStatsResponse aggregates shipments of one carrier.
type CarrierStatsResponse struct {
	Carrier   string
	Count     int
	TotalCost float64
}

// MethodStatsResponse aggregates shipments of one shipping method.
type MethodStatsResponse struct {
	MethodID  kernel.UUID
	Count     int
	TotalCost float64
}

// ShipmentStatsResponse is the full statistics read model.
type ShipmentStatsResponse struct {
	TotalShipments    int
	TotalShippingCost float64
	CountsByStatus    map[string]int
	ByCarrier         []CarrierStatsResponse
	ByMethod          []MethodStatsResponse
}
