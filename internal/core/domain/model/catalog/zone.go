package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrZoneIsNotConstructed is returned when a Zone instance was not created
// through NewZone or RestoreZone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone")

// Zone specificity levels, ordered so that a higher value wins when several
// zones match the same destination.
const (
	SpecificityCountry = 1
	SpecificityState   = 2
	SpecificityPostal  = 3
)

// Zone is a geographic matching rule with its own cost parameters. A zone
// matches a destination when the country is listed AND (no state list exists
// OR the state is listed) AND (no postal-code list exists OR the postal code
// is listed).
type Zone struct {
	id                 kernel.UUID
	name               string
	countries          []string
	states             []string
	postalCodes        []string
	baseCost           float64
	additionalItemCost float64
	isActive           bool

	isConstructed bool
}

// NewZone creates a validated, active zone. At least one country is required;
// states and postal codes are optional refinements.
func NewZone(
	id kernel.UUID,
	name string,
	countries, states, postalCodes []string,
	baseCost, additionalItemCost float64,
) (*Zone, error) {
	z := &Zone{
		states:        states,
		postalCodes:   postalCodes,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCountries(countries),
		z.setCosts(baseCost, additionalItemCost),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a Zone from persistence.
func RestoreZone(
	id kernel.UUID,
	name string,
	countries, states, postalCodes []string,
	baseCost, additionalItemCost float64,
	isActive bool,
) (*Zone, error) {
	z, err := NewZone(id, name, countries, states, postalCodes, baseCost, additionalItemCost)
	if err != nil {
		return nil, err
	}

	z.isActive = isActive
	return z, nil
}

// Validate ensures the Zone was created through a constructor.
func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

// ID returns the zone identifier.
func (z *Zone) ID() kernel.UUID { return z.id }

// Name returns the zone name.
func (z *Zone) Name() string { return z.name }

// Countries returns the normalized country list.
func (z *Zone) Countries() []string { return z.countries }

// States returns the optional state list.
func (z *Zone) States() []string { return z.states }

// PostalCodes returns the optional postal-code list.
func (z *Zone) PostalCodes() []string { return z.postalCodes }

// BaseCost returns the shipping cost of the first item within the zone.
func (z *Zone) BaseCost() float64 { return z.baseCost }

// AdditionalItemCost returns the cost of each item after the first.
func (z *Zone) AdditionalItemCost() float64 { return z.additionalItemCost }

// IsActive reports whether the zone participates in rate calculation.
func (z *Zone) IsActive() bool { return z.isActive }

// Matches reports whether the destination falls inside the zone.
func (z *Zone) Matches(dest kernel.Destination) bool {
	if !slices.Contains(z.countries, dest.Country()) {
		return false
	}
	if len(z.states) > 0 && !slices.Contains(z.states, dest.State()) {
		return false
	}
	if len(z.postalCodes) > 0 && !slices.Contains(z.postalCodes, dest.PostalCode()) {
		return false
	}
	return true
}

// Specificity ranks how narrowly the zone is scoped. Zones with postal codes
// beat zones with states, which beat country-only zones; the rate calculator
// uses this to pick deterministically among multiple matches.
func (z *Zone) Specificity() int {
	switch {
	case len(z.postalCodes) > 0:
		return SpecificityPostal
	case len(z.states) > 0:
		return SpecificityState
	default:
		return SpecificityCountry
	}
}

// CostFor computes the zone cost for the given item count.
func (z *Zone) CostFor(itemCount int) float64 {
	if itemCount < 1 {
		itemCount = 1
	}
	return z.baseCost + float64(itemCount-1)*z.additionalItemCost
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	z.name = name
	return nil
}

func (z *Zone) setCountries(countries []string) error {
	if len(countries) == 0 {
		return errs.NewValueIsRequiredError("countries")
	}

	normalized := make([]string, 0, len(countries))
	for _, country := range countries {
		country = strings.ToUpper(strings.TrimSpace(country))
		if country == "" {
			return errs.NewValueIsInvalidError("countries")
		}
		normalized = append(normalized, country)
	}

	z.countries = normalized
	return nil
}

func (z *Zone) setCosts(baseCost, additionalItemCost float64) error {
	if baseCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("baseCost",
			fmt.Errorf("%f is negative", baseCost))
	}
	if additionalItemCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("additionalItemCost",
			fmt.Errorf("%f is negative", additionalItemCost))
	}
	z.baseCost = baseCost
	z.additionalItemCost = additionalItemCost
	return nil
}
