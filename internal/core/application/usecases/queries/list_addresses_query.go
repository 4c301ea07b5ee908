// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery constructor",
)

// ListAddressesQuery retrieves a user's active shipping addresses.
//
// Example:
//
//	query, err := NewListAddressesQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListAddressesQueryHandler(db)
//	addresses, err := handler.Handle(ctx, query)
type ListAddressesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAddressesQuery creates a query for a user's address book.
func NewListAddressesQuery(userID kernel.UUID) (ListAddressesQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListAddressesQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return ListAddressesQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

// UserID returns the address book owner.
func (q ListAddressesQuery) UserID() kernel.UUID { return q.userID }

// AddressResponse represents one shipping address in the read model.
type AddressResponse struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
