package kernel

import (
	"strings"

	"shipping/internal/pkg/errs"
)

// ErrDestinationIsNotConstructed is returned when validating a Destination
// that was not created via NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"Destination must be created via NewDestination")

// Destination is the geographic target of a shipment: the country is
// mandatory, state and postal code are optional refinements. Zones match
// against a Destination, and the rate calculator receives one per request.
//
// Country codes are normalized to upper case so that zone matching is
// case-insensitive.
type Destination struct {
	country       string
	state         string
	postalCode    string
	isConstructed bool
}

// NewDestination creates a Destination. The country is required; state and
// postal code may be empty.
func NewDestination(country, state, postalCode string) (Destination, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return Destination{}, errs.NewValueIsRequiredError("country")
	}

	return Destination{
		country:       country,
		state:         strings.TrimSpace(state),
		postalCode:    strings.TrimSpace(postalCode),
		isConstructed: true,
	}, nil
}

// Validate ensures the Destination was created via NewDestination.
func (d Destination) Validate() error {
	if !d.isConstructed {
		return ErrDestinationIsNotConstructed
	}
	return nil
}

// Country returns the normalized destination country code.
func (d Destination) Country() string {
	return d.country
}

// State returns the destination state, or an empty string when not supplied.
func (d Destination) State() string {
	return d.state
}

// PostalCode returns the destination postal code, or an empty string when not supplied.
func (d Destination) PostalCode() string {
	return d.postalCode
}
