package address

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

// Address is a user's shipping address aggregate.
//
// Invariants:
//   - Must have valid identifiers for the address and its owning user
//   - Line1, city, and country are required
//   - At most one active address per user carries the default flag; the
//     registry rebalances other rows before persisting a default write
//
// The struct uses private fields so state changes flow through validated
// methods only.
type Address struct {
	id         kernel.UUID
	userID     kernel.UUID
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	phone      string
	isDefault  bool
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// Patch carries a partial update for an address. Nil fields leave the
// existing value untouched; IsDefault is a pointer so that clearing the
// default flag is distinguishable from not supplying it.
type Patch struct {
	Line1      *string
	Line2      *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
	Phone      *string
	IsDefault  *bool
}

// NewAddress creates a validated Address owned by the given user. The address
// starts active; the default flag is taken as requested and the registry is
// responsible for rebalancing siblings.
func NewAddress(
	id kernel.UUID,
	userID kernel.UUID,
	line1, line2, city, state, postalCode, country, phone string,
	isDefault bool,
	now time.Time,
) (*Address, error) {
	a := &Address{
		line2:         line2,
		state:         state,
		phone:         phone,
		isDefault:     isDefault,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setLine1(line1),
		a.setCity(city),
		a.setPostalCode(postalCode),
		a.setCountry(country),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an Address from persistence, including the
// flags and audit timestamps exactly as stored.
func RestoreAddress(
	id kernel.UUID,
	userID kernel.UUID,
	line1, line2, city, state, postalCode, country, phone string,
	isDefault, isActive bool,
	createdAt, updatedAt time.Time,
) (*Address, error) {
	a, err := NewAddress(id, userID, line1, line2, city, state, postalCode, country, phone, isDefault, createdAt)
	if err != nil {
		return nil, err
	}

	a.isActive = isActive
	a.updatedAt = updatedAt
	return a, nil
}

// Validate ensures the Address was created through a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// IsEqual compares two addresses by identifier.
func (a *Address) IsEqual(other *Address) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID { return a.id }

// UserID returns the owning user's identifier.
func (a *Address) UserID() kernel.UUID { return a.userID }

// Line1 returns the first address line.
func (a *Address) Line1() string { return a.line1 }

// Line2 returns the optional second address line.
func (a *Address) Line2() string { return a.line2 }

// City returns the city.
func (a *Address) City() string { return a.city }

// State returns the optional state or province.
func (a *Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a *Address) PostalCode() string { return a.postalCode }

// Country returns the country code.
func (a *Address) Country() string { return a.country }

// Phone returns the optional contact phone.
func (a *Address) Phone() string { return a.phone }

// IsDefault reports whether this is the user's checkout default.
func (a *Address) IsDefault() bool { return a.isDefault }

// IsActive reports whether the address is active.
func (a *Address) IsActive() bool { return a.isActive }

// CreatedAt returns the creation timestamp.
func (a *Address) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last modification timestamp.
func (a *Address) UpdatedAt() time.Time { return a.updatedAt }

// IsOwnedBy reports whether the address belongs to the given user.
func (a *Address) IsOwnedBy(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}

// ApplyPatch merges the supplied partial update into the address. Required
// fields cannot be patched to empty values.
func (a *Address) ApplyPatch(patch Patch, now time.Time) error {
	if patch.Line1 != nil {
		if err := a.setLine1(*patch.Line1); err != nil {
			return err
		}
	}
	if patch.Line2 != nil {
		a.line2 = *patch.Line2
	}
	if patch.City != nil {
		if err := a.setCity(*patch.City); err != nil {
			return err
		}
	}
	if patch.State != nil {
		a.state = *patch.State
	}
	if patch.PostalCode != nil {
		if err := a.setPostalCode(*patch.PostalCode); err != nil {
			return err
		}
	}
	if patch.Country != nil {
		if err := a.setCountry(*patch.Country); err != nil {
			return err
		}
	}
	if patch.Phone != nil {
		a.phone = *patch.Phone
	}
	if patch.IsDefault != nil {
		a.isDefault = *patch.IsDefault
	}

	a.updatedAt = now
	return nil
}

// ClearDefault removes the default flag. Used by the registry when another
// address of the same user becomes the default.
func (a *Address) ClearDefault(now time.Time) {
	if !a.isDefault {
		return
	}
	a.isDefault = false
	a.updatedAt = now
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	a.userID = userID
	return nil
}

func (a *Address) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
