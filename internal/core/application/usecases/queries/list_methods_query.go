package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrListMethodsQueryIsNotConstructed = errors.New(
	"ListMethodsQuery must be created via NewListMethodsQuery constructor",
)

// ListMethodsQuery retrieves the active shipping methods.
type ListMethodsQuery struct {
	guard guard.ConstructorGuard
}

// NewListMethodsQuery creates a query for the active method catalog.
// This is a parameterless query.
func NewListMethodsQuery() ListMethodsQuery {
	return ListMethodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMethodsQuery) Validate() error {
	return q.guard.Validate(ErrListMethodsQueryIsNotConstructed)
}

// MethodResponse represents one shipping method in the read model.
type MethodResponse struct {
	ID                  kernel.UUID
	Name                string
	MethodType          string
	BasePrice           float64
	AdditionalItemPrice float64
	MinDeliveryDays     int
	MaxDeliveryDays     int
	MaxWeightKG         *float64
	Regions             []string
}
