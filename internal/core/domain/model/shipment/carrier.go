package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Carrier identifies the shipping company moving the parcel.
type Carrier int

const (
	// UnknownCarrier represents an invalid or undefined carrier.
	UnknownCarrier Carrier = iota

	// FedEx carrier.
	FedEx

	// UPS carrier.
	UPS

	// DHL carrier.
	DHL

	// USPS carrier.
	USPS

	// Aramex carrier.
	Aramex

	// OtherCarrier covers carriers without a dedicated value.
	OtherCarrier
)

func getCarrierStrings() map[Carrier]string {
	return map[Carrier]string{
		UnknownCarrier: "UNKNOWN",
		FedEx:          "FEDEX",
		UPS:            "UPS",
		DHL:            "DHL",
		USPS:           "USPS",
		Aramex:         "ARAMEX",
		OtherCarrier:   "OTHER",
	}
}

func getValidCarrierStrings() map[Carrier]string {
	//nolint:exhaustive // UnknownCarrier is intentionally excluded
	return map[Carrier]string{
		FedEx:        "FEDEX",
		UPS:          "UPS",
		DHL:          "DHL",
		USPS:         "USPS",
		Aramex:       "ARAMEX",
		OtherCarrier: "OTHER",
	}
}

// CarrierFromString parses the wire representation of a carrier.
func CarrierFromString(s string) (Carrier, error) {
	for carrier, str := range getValidCarrierStrings() {
		if str == s {
			return carrier, nil
		}
	}
	return UnknownCarrier, errs.NewValueIsInvalidErrorWithCause(
		"carrier", fmt.Errorf("%q is not a valid carrier", s))
}

// Validate checks that the Carrier is one of the defined carriers.
func (c Carrier) Validate() error {
	if _, ok := getValidCarrierStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier", fmt.Errorf("%d is not a valid carrier", c))
	}
	return nil
}

// String returns the wire representation, e.g. "FEDEX".
func (c Carrier) String() string {
	if str, ok := getCarrierStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
