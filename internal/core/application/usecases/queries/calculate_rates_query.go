package queries

import (
	"errors"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCalculateRatesQueryIsNotConstructed = errors.New(
	"CalculateRatesQuery must be created via NewCalculateRatesQuery constructor",
)

// CalculateRatesQuery requests shipping rates for a destination and cart
// size. The preferred method type is optional and validated when present.
//
// Example:
//
//	query, err := NewCalculateRatesQuery("US", "CA", "94103", 1.2, 3, "")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCalculateRatesQueryHandler(db)
//	quote, err := handler.Handle(ctx, query)
type CalculateRatesQuery struct {
	destination         kernel.Destination
	weightKG            float64
	itemCount           int
	preferredMethodType *catalog.MethodType

	guard guard.ConstructorGuard
}

// NewCalculateRatesQuery creates a rate calculation query.
// preferredMethodType may be empty; any other value must name a known method
// type such as "EXPRESS".
func NewCalculateRatesQuery(
	country, state, postalCode string,
	weightKG float64,
	itemCount int,
	preferredMethodType string,
) (CalculateRatesQuery, error) {
	destination, err := kernel.NewDestination(country, state, postalCode)
	if err != nil {
		return CalculateRatesQuery{}, err
	}
	if itemCount < 1 {
		return CalculateRatesQuery{}, errs.NewValueIsOutOfRangeError("itemCount", itemCount, 1, 10000)
	}

	query := CalculateRatesQuery{
		destination: destination,
		weightKG:    weightKG,
		itemCount:   itemCount,
		guard:       guard.NewConstructorGuard(),
	}

	if preferredMethodType != "" {
		methodType, typeErr := catalog.MethodTypeFromString(preferredMethodType)
		if typeErr != nil {
			return CalculateRatesQuery{}, typeErr
		}
		query.preferredMethodType = &methodType
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateRatesQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRatesQueryIsNotConstructed)
}

// Destination returns where the items would ship.
func (q CalculateRatesQuery) Destination() kernel.Destination { return q.destination }

// WeightKG returns the total cart weight.
func (q CalculateRatesQuery) WeightKG() float64 { return q.weightKG }

// ItemCount returns the number of items in the cart.
func (q CalculateRatesQuery) ItemCount() int { return q.itemCount }

// PreferredMethodType returns the optional preferred method type.
func (q CalculateRatesQuery) PreferredMethodType() *catalog.MethodType {
	return q.preferredMethodType
}

// RateOptionResponse represents one priced shipping option in the read model.
type RateOptionResponse struct {
	MethodID      kernel.UUID
	MethodName    string
	MethodType    string
	Cost          float64
	EstimatedDays int
	Description   string
}

// RateQuoteResponse is the full rate calculation result.
type RateQuoteResponse struct {
	Options           []RateOptionResponse
	Recommended       RateOptionResponse
	TotalShippingCost float64
	MatchedZoneID     *kernel.UUID
}
