package services

import (
	"errors"
	"fmt"
	"sort"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrNoActiveMethods is returned when rate calculation finds no active
// shipping method to price.
var ErrNoActiveMethods = errors.New("no active shipping methods")

// RateRequest carries the input of a rate calculation. The preferred method
// type is accepted for API compatibility and validated, but it does not
// influence the recommendation: the recommended method is always the first
// entry of the base-price-ordered option list.
type RateRequest struct {
	Destination         kernel.Destination
	WeightKG            float64
	ItemCount           int
	PreferredMethodType *catalog.MethodType
}

// RateOption is one priced shipping option.
type RateOption struct {
	MethodID      kernel.UUID
	MethodName    string
	MethodType    catalog.MethodType
	Cost          float64
	EstimatedDays int
	Description   string
}

// RateQuote is the result of a rate calculation: all options in ascending
// base-price order, the recommended option, and the zone that matched, if any.
type RateQuote struct {
	Options           []RateOption
	Recommended       RateOption
	TotalShippingCost float64
	MatchedZoneID     *kernel.UUID
}

// RateCalculator prices shipping options for a destination.
//
// Pricing rules:
//   - When an active zone matches the destination, every method costs
//     zone.baseCost + (itemCount-1)*zone.additionalItemCost
//   - Otherwise each method falls back to its own base/additional prices
//   - Weight is informational and never changes the cost
//   - When several zones match, the most specific wins (postal-code zones
//     beat state zones beat country-only zones), ties broken by name
type RateCalculator struct{}

// NewRateCalculator creates a new RateCalculator instance.
func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

// Calculate prices all active methods for the request. Options are returned
// in ascending base-price order; the recommended option is the first entry of
// that list, deliberately independent of any zone-adjusted cost ordering.
func (rc RateCalculator) Calculate(
	request RateRequest,
	methods []*catalog.Method,
	zones []*catalog.Zone,
) (RateQuote, error) {
	if err := request.Destination.Validate(); err != nil {
		return RateQuote{}, err
	}
	if request.ItemCount < 1 {
		return RateQuote{}, errs.NewValueIsOutOfRangeError("itemCount", request.ItemCount, 1, 10000)
	}
	if request.WeightKG < 0 {
		return RateQuote{}, errs.NewValueIsInvalidErrorWithCause("weightKG",
			fmt.Errorf("%f is negative", request.WeightKG))
	}
	if request.PreferredMethodType != nil {
		if err := request.PreferredMethodType.Validate(); err != nil {
			return RateQuote{}, err
		}
	}

	active := make([]*catalog.Method, 0, len(methods))
	for _, m := range methods {
		if err := m.Validate(); err != nil {
			return RateQuote{}, err
		}
		if m.IsActive() {
			active = append(active, m)
		}
	}
	if len(active) == 0 {
		return RateQuote{}, ErrNoActiveMethods
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].BasePrice() != active[j].BasePrice() {
			return active[i].BasePrice() < active[j].BasePrice()
		}
		return active[i].Name() < active[j].Name()
	})

	matched, err := rc.selectZone(request.Destination, zones)
	if err != nil {
		return RateQuote{}, err
	}

	options := make([]RateOption, 0, len(active))
	for _, m := range active {
		cost := m.CostFor(request.ItemCount)
		if matched != nil {
			cost = matched.CostFor(request.ItemCount)
		}

		options = append(options, RateOption{
			MethodID:      m.ID(),
			MethodName:    m.Name(),
			MethodType:    m.MethodType(),
			Cost:          cost,
			EstimatedDays: m.EstimatedDeliveryDays(),
			Description: fmt.Sprintf("%s: delivery in %d-%d days",
				m.Name(), m.MinDeliveryDays(), m.MaxDeliveryDays()),
		})
	}

	quote := RateQuote{
		Options:           options,
		Recommended:       options[0],
		TotalShippingCost: options[0].Cost,
	}
	if matched != nil {
		zoneID := matched.ID()
		quote.MatchedZoneID = &zoneID
	}

	return quote, nil
}

// selectZone picks the most specific active zone matching the destination.
func (rc RateCalculator) selectZone(dest kernel.Destination, zones []*catalog.Zone) (*catalog.Zone, error) {
	var best *catalog.Zone
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, err
		}
		if !z.IsActive() || !z.Matches(dest) {
			continue
		}

		if best == nil ||
			z.Specificity() > best.Specificity() ||
			(z.Specificity() == best.Specificity() && z.Name() < best.Name()) {
			best = z
		}
	}

	return best, nil
}
