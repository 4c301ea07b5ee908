package catalog

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// MethodType classifies a shipping method by its service tier.
type MethodType int

const (
	// UnknownMethodType represents an invalid or undefined method type.
	UnknownMethodType MethodType = iota

	// Standard is the regular ground service.
	Standard

	// Express is an accelerated service.
	Express

	// Overnight delivers on the next day.
	Overnight

	// SameDay delivers on the day of dispatch.
	SameDay

	// Economy is the slowest, cheapest tier.
	Economy
)

func getMethodTypeStrings() map[MethodType]string {
	return map[MethodType]string{
		UnknownMethodType: "UNKNOWN",
		Standard:          "STANDARD",
		Express:           "EXPRESS",
		Overnight:         "OVERNIGHT",
		SameDay:           "SAME_DAY",
		Economy:           "ECONOMY",
	}
}

func getValidMethodTypeStrings() map[MethodType]string {
	//nolint:exhaustive // UnknownMethodType is intentionally excluded
	return map[MethodType]string{
		Standard:  "STANDARD",
		Express:   "EXPRESS",
		Overnight: "OVERNIGHT",
		SameDay:   "SAME_DAY",
		Economy:   "ECONOMY",
	}
}

// MethodTypeFromString parses the wire representation of a method type.
func MethodTypeFromString(s string) (MethodType, error) {
	for methodType, str := range getValidMethodTypeStrings() {
		if str == s {
			return methodType, nil
		}
	}
	return UnknownMethodType, errs.NewValueIsInvalidErrorWithCause(
		"methodType", fmt.Errorf("%q is not a valid method type", s))
}

// Validate checks that the MethodType is one of the defined tiers.
func (m MethodType) Validate() error {
	if _, ok := getValidMethodTypeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"methodType", fmt.Errorf("%d is not a valid method type", m))
	}
	return nil
}

// String returns the wire representation, e.g. "STANDARD".
func (m MethodType) String() string {
	if str, ok := getMethodTypeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
