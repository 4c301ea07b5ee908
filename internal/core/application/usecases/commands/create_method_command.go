package commands

import (
	"errors"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateMethodCommandIsNotConstructed = errors.New(
	"CreateMethodCommand must be created via NewCreateMethodCommand constructor",
)

// CreateMethodCommand represents a request to add a shipping method to the
// catalog.
type CreateMethodCommand struct { //nolint:recvcheck //using for validation
	methodID            kernel.UUID
	name                string
	methodType          catalog.MethodType
	basePrice           float64
	additionalItemPrice float64
	minDeliveryDays     int
	maxDeliveryDays     int
	maxWeightKG         *float64
	regions             []string

	guard guard.ConstructorGuard
}

// NewCreateMethodCommand creates a command to add a shipping method.
// Numeric ranges are checked again by the catalog aggregate; the command only
// rejects input that can never form a valid method.
func NewCreateMethodCommand(
	methodID kernel.UUID,
	name string,
	methodType catalog.MethodType,
	basePrice, additionalItemPrice float64,
	minDeliveryDays, maxDeliveryDays int,
	maxWeightKG *float64,
	regions []string,
) (CreateMethodCommand, error) {
	command := CreateMethodCommand{
		basePrice:           basePrice,
		additionalItemPrice: additionalItemPrice,
		minDeliveryDays:     minDeliveryDays,
		maxDeliveryDays:     maxDeliveryDays,
		maxWeightKG:         maxWeightKG,
		regions:             regions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMethodID(methodID),
		command.setName(name),
		command.setMethodType(methodType),
	); err != nil {
		return CreateMethodCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMethodCommand) Validate() error {
	return c.guard.Validate(ErrCreateMethodCommandIsNotConstructed)
}

// MethodID returns the identifier for the new method.
func (c CreateMethodCommand) MethodID() kernel.UUID { return c.methodID }

// Name returns the display name.
func (c CreateMethodCommand) Name() string { return c.name }

// MethodType returns the method classification.
func (c CreateMethodCommand) MethodType() catalog.MethodType { return c.methodType }

// BasePrice returns the price of the first item.
func (c CreateMethodCommand) BasePrice() float64 { return c.basePrice }

// AdditionalItemPrice returns the price of each further item.
func (c CreateMethodCommand) AdditionalItemPrice() float64 { return c.additionalItemPrice }

// MinDeliveryDays returns the lower delivery estimate.
func (c CreateMethodCommand) MinDeliveryDays() int { return c.minDeliveryDays }

// MaxDeliveryDays returns the upper delivery estimate.
func (c CreateMethodCommand) MaxDeliveryDays() int { return c.maxDeliveryDays }

// MaxWeightKG returns the optional weight cap.
func (c CreateMethodCommand) MaxWeightKG() *float64 { return c.maxWeightKG }

// Regions returns the optional region labels.
func (c CreateMethodCommand) Regions() []string { return c.regions }

func (c *CreateMethodCommand) setMethodID(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return err
	}

	c.methodID = methodID
	return nil
}

func (c *CreateMethodCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateMethodCommand) setMethodType(methodType catalog.MethodType) error {
	if err := methodType.Validate(); err != nil {
		return err
	}

	c.methodType = methodType
	return nil
}
