package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// AddressSnapshot is a value copy of an address taken when the shipment is
// created. Shipments never reference live address rows, so later edits to a
// user's address book cannot rewrite where a parcel was actually sent.
type AddressSnapshot struct {
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	phone      string

	isConstructed bool
}

// NewAddressSnapshot creates a validated snapshot. Line1, city, and country
// are required; the rest may be empty.
func NewAddressSnapshot(line1, line2, city, state, postalCode, country, phone string) (AddressSnapshot, error) {
	if err := errors.Join(
		requireField("line1", line1),
		requireField("city", city),
		requireField("country", country),
	); err != nil {
		return AddressSnapshot{}, err
	}

	return AddressSnapshot{
		line1:         line1,
		line2:         line2,
		city:          city,
		state:         state,
		postalCode:    postalCode,
		country:       country,
		phone:         phone,
		isConstructed: true,
	}, nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Validate ensures the snapshot was created via NewAddressSnapshot.
func (s AddressSnapshot) Validate() error {
	if !s.isConstructed {
		return errs.NewValueIsRequiredError("address snapshot must be created via NewAddressSnapshot")
	}
	return nil
}

// Line1 returns the first address line.
func (s AddressSnapshot) Line1() string { return s.line1 }

// Line2 returns the optional second address line.
func (s AddressSnapshot) Line2() string { return s.line2 }

// City returns the city.
func (s AddressSnapshot) City() string { return s.city }

// State returns the optional state or province.
func (s AddressSnapshot) State() string { return s.state }

// PostalCode returns the postal code.
func (s AddressSnapshot) PostalCode() string { return s.postalCode }

// Country returns the country code.
func (s AddressSnapshot) Country() string { return s.country }

// Phone returns the optional contact phone.
func (s AddressSnapshot) Phone() string { return s.phone }
