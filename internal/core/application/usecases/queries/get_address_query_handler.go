package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAddressQueryHandler retrieves one address from the database.
type GetAddressQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressQueryHandler creates a handler for single-address queries.
func NewGetAddressQueryHandler(db *gorm.DB) GetAddressQueryHandler {
	return GetAddressQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the address is absent, inactive, or
// owned by another user.
func (h GetAddressQueryHandler) Handle(
	ctx context.Context,
	query GetAddressQuery,
) (AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return AddressResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			line1,
			line2,
			city,
			state,
			postal_code,
			country,
			phone,
			is_default,
			created_at,
			updated_at
		FROM addresses
		WHERE id = ? AND user_id = ? AND is_active
	`, query.AddressID().Bytes(), query.UserID().Bytes()).Row()

	var addr AddressResponse
	var id, userID uuid.UUID
	var line2, state, phone sql.NullString

	err := row.Scan(
		&id,
		&userID,
		&addr.Line1,
		&line2,
		&addr.City,
		&state,
		&addr.PostalCode,
		&addr.Country,
		&phone,
		&addr.IsDefault,
		&addr.CreatedAt,
		&addr.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AddressResponse{}, errs.NewObjectNotFoundError("addressId", query.AddressID())
	}
	if err != nil {
		return AddressResponse{}, err
	}

	addr.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AddressResponse{}, err
	}
	addr.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return AddressResponse{}, err
	}
	addr.Line2 = line2.String
	addr.State = state.String
	addr.Phone = phone.String

	return addr, nil
}
