package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetAddressQueryIsNotConstructed = errors.New(
	"GetAddressQuery must be created via NewGetAddressQuery constructor",
)

// GetAddressQuery retrieves a single address owned by a user. An address
// belonging to someone else is reported as not found.
type GetAddressQuery struct {
	addressID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAddressQuery creates a query for one address.
func NewGetAddressQuery(addressID, userID kernel.UUID) (GetAddressQuery, error) {
	if err := addressID.Validate(); err != nil {
		return GetAddressQuery{}, err
	}
	if err := userID.Validate(); err != nil {
		return GetAddressQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return GetAddressQuery{
		addressID: addressID,
		userID:    userID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

// AddressID returns the requested address identifier.
func (q GetAddressQuery) AddressID() kernel.UUID { return q.addressID }

// UserID returns the requesting user.
func (q GetAddressQuery) UserID() kernel.UUID { return q.userID }
