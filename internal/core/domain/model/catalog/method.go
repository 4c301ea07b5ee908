package catalog

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrMethodIsNotConstructed is returned when a Method instance was not
// created through NewMethod or RestoreMethod.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod or RestoreMethod")

// Method is a shipping service tier with static pricing that applies when no
// zone matches the destination.
//
// Invariants:
//   - Name is required
//   - Prices are non-negative
//   - 0 <= minDeliveryDays <= maxDeliveryDays
type Method struct {
	id                  kernel.UUID
	name                string
	methodType          MethodType
	basePrice           float64
	additionalItemPrice float64
	minDeliveryDays     int
	maxDeliveryDays     int
	maxWeightKG         *float64
	regions             []string
	isActive            bool

	isConstructed bool
}

// NewMethod creates a validated, active shipping method.
func NewMethod(
	id kernel.UUID,
	name string,
	methodType MethodType,
	basePrice, additionalItemPrice float64,
	minDeliveryDays, maxDeliveryDays int,
	maxWeightKG *float64,
	regions []string,
) (*Method, error) {
	m := &Method{
		maxWeightKG:   maxWeightKG,
		regions:       regions,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setMethodType(methodType),
		m.setPrices(basePrice, additionalItemPrice),
		m.setDeliveryDays(minDeliveryDays, maxDeliveryDays),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMethod reconstructs a Method from persistence.
func RestoreMethod(
	id kernel.UUID,
	name string,
	methodType MethodType,
	basePrice, additionalItemPrice float64,
	minDeliveryDays, maxDeliveryDays int,
	maxWeightKG *float64,
	regions []string,
	isActive bool,
) (*Method, error) {
	m, err := NewMethod(id, name, methodType, basePrice, additionalItemPrice,
		minDeliveryDays, maxDeliveryDays, maxWeightKG, regions)
	if err != nil {
		return nil, err
	}

	m.isActive = isActive
	return m, nil
}

// Validate ensures the Method was created through a constructor.
func (m *Method) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMethodIsNotConstructed
	}
	return nil
}

// ID returns the method identifier.
func (m *Method) ID() kernel.UUID { return m.id }

// Name returns the display name of the method.
func (m *Method) Name() string { return m.name }

// MethodType returns the service tier.
func (m *Method) MethodType() MethodType { return m.methodType }

// BasePrice returns the price of shipping the first item.
func (m *Method) BasePrice() float64 { return m.basePrice }

// AdditionalItemPrice returns the price of each item after the first.
func (m *Method) AdditionalItemPrice() float64 { return m.additionalItemPrice }

// MinDeliveryDays returns the lower bound of the delivery window.
func (m *Method) MinDeliveryDays() int { return m.minDeliveryDays }

// MaxDeliveryDays returns the upper bound of the delivery window.
func (m *Method) MaxDeliveryDays() int { return m.maxDeliveryDays }

// MaxWeightKG returns the optional weight restriction, or nil.
func (m *Method) MaxWeightKG() *float64 { return m.maxWeightKG }

// Regions returns the optional region restriction list.
func (m *Method) Regions() []string { return m.regions }

// IsActive reports whether the method is offered to customers.
func (m *Method) IsActive() bool { return m.isActive }

// CostFor computes the method's own fallback cost for the given item count.
// Used when no zone matches the destination.
func (m *Method) CostFor(itemCount int) float64 {
	if itemCount < 1 {
		itemCount = 1
	}
	return m.basePrice + float64(itemCount-1)*m.additionalItemPrice
}

// EstimatedDeliveryDays returns the midpoint of the delivery window,
// rounded down.
func (m *Method) EstimatedDeliveryDays() int {
	return (m.minDeliveryDays + m.maxDeliveryDays) / 2
}

func (m *Method) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Method) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Method) setMethodType(methodType MethodType) error {
	if err := methodType.Validate(); err != nil {
		return err
	}
	m.methodType = methodType
	return nil
}

func (m *Method) setPrices(basePrice, additionalItemPrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("basePrice",
			fmt.Errorf("%f is negative", basePrice))
	}
	if additionalItemPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("additionalItemPrice",
			fmt.Errorf("%f is negative", additionalItemPrice))
	}
	m.basePrice = basePrice
	m.additionalItemPrice = additionalItemPrice
	return nil
}

func (m *Method) setDeliveryDays(minDays, maxDays int) error {
	if minDays < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minDeliveryDays",
			fmt.Errorf("%d is negative", minDays))
	}
	if maxDays < minDays {
		return errs.NewValueIsInvalidErrorWithCause("maxDeliveryDays",
			fmt.Errorf("%d is less than minDeliveryDays %d", maxDays, minDays))
	}
	m.minDeliveryDays = minDays
	m.maxDeliveryDays = maxDays
	return nil
}
