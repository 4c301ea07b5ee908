package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAddressesQueryHandler retrieves a user's address book from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListAddressesQueryHandler struct {
	db *gorm.DB
}

// NewListAddressesQueryHandler creates a handler for address book queries.
// Requires a GORM database connection for query execution.
func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

// Handle executes the query to retrieve a user's active addresses.
// The default address comes first, the rest newest first.
func (h ListAddressesQueryHandler) Handle(
	ctx context.Context,
	query ListAddressesQuery,
) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]AddressResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE user_id = ? AND is_active
		ORDER BY is_default DESC, created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var addr AddressResponse
		var id, userID uuid.UUID
		var line2, state, phone sql.NullString

		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}

		addr.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		addr.UserID, err = kernel.UUIDFromBytes(userID[:])
		if err != nil {
			return nil, err
		}
		addr.Line2 = line2.String
		addr.State = state.String
		addr.Phone = phone.String

		addresses = append(addresses, addr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
