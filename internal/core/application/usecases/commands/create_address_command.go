package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand represents a request to register a shipping address
// for a user.
//
// Example:
//
//	cmd, err := NewCreateAddressCommand(kernel.NewUUID(), userID,
//	    "221B Baker Street", "", "London", "", "NW1 6XE", "GB", "", true)
//	if err != nil {
//	    return fmt.Errorf("invalid address data: %w", err)
//	}
//
//	handler := NewCreateAddressCommandHandler(uowFactory, users)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create address: %w", err)
//	}
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID  kernel.UUID
	userID     kernel.UUID
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	phone      string
	isDefault  bool

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates a command to register a shipping address.
// Validates identifiers and the required address fields.
func NewCreateAddressCommand(
	addressID, userID kernel.UUID,
	line1, line2, city, state, postalCode, country, phone string,
	isDefault bool,
) (CreateAddressCommand, error) {
	command := CreateAddressCommand{
		line2:     line2,
		state:     state,
		phone:     phone,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAddressID(addressID),
		command.setUserID(userID),
		command.setLine1(line1),
		command.setCity(city),
		command.setPostalCode(postalCode),
		command.setCountry(country),
	); err != nil {
		return CreateAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// AddressID returns the identifier for the new address.
func (c CreateAddressCommand) AddressID() kernel.UUID { return c.addressID }

// UserID returns the owning user's identifier.
func (c CreateAddressCommand) UserID() kernel.UUID { return c.userID }

// Line1 returns the first address line.
func (c CreateAddressCommand) Line1() string { return c.line1 }

// Line2 returns the optional second address line.
func (c CreateAddressCommand) Line2() string { return c.line2 }

// City returns the city.
func (c CreateAddressCommand) City() string { return c.city }

// State returns the optional state or province.
func (c CreateAddressCommand) State() string { return c.state }

// PostalCode returns the postal code.
func (c CreateAddressCommand) PostalCode() string { return c.postalCode }

// Country returns the country code.
func (c CreateAddressCommand) Country() string { return c.country }

// Phone returns the optional contact phone.
func (c CreateAddressCommand) Phone() string { return c.phone }

// IsDefault reports whether the address should become the user's default.
func (c CreateAddressCommand) IsDefault() bool { return c.isDefault }

func (c *CreateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateAddressCommand) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("line1")
	}

	c.line1 = line1
	return nil
}

func (c *CreateAddressCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *CreateAddressCommand) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}

	c.postalCode = postalCode
	return nil
}

func (c *CreateAddressCommand) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}

	c.country = country
	return nil
}
