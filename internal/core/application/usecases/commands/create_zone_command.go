package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand represents a request to add a shipping zone to the
// catalog.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID             kernel.UUID
	name               string
	countries          []string
	states             []string
	postalCodes        []string
	baseCost           float64
	additionalItemCost float64

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to add a shipping zone.
// At least one country is required; states and postal codes narrow the match.
func NewCreateZoneCommand(
	zoneID kernel.UUID,
	name string,
	countries, states, postalCodes []string,
	baseCost, additionalItemCost float64,
) (CreateZoneCommand, error) {
	command := CreateZoneCommand{
		states:             states,
		postalCodes:        postalCodes,
		baseCost:           baseCost,
		additionalItemCost: additionalItemCost,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setZoneID(zoneID),
		command.setName(name),
		command.setCountries(countries),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the identifier for the new zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID { return c.zoneID }

// Name returns the display name.
func (c CreateZoneCommand) Name() string { return c.name }

// Countries returns the country codes the zone covers.
func (c CreateZoneCommand) Countries() []string { return c.countries }

// States returns the optional state filter.
func (c CreateZoneCommand) States() []string { return c.states }

// PostalCodes returns the optional postal code filter.
func (c CreateZoneCommand) PostalCodes() []string { return c.postalCodes }

// BaseCost returns the zone cost of the first item.
func (c CreateZoneCommand) BaseCost() float64 { return c.baseCost }

// AdditionalItemCost returns the zone cost of each further item.
func (c CreateZoneCommand) AdditionalItemCost() float64 { return c.additionalItemCost }

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setCountries(countries []string) error {
	if len(countries) == 0 {
		return errs.NewValueIsRequiredError("countries")
	}

	c.countries = countries
	return nil
}
