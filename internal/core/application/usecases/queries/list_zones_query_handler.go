package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListZonesQueryHandler retrieves the active zone catalog from the database.
type ListZonesQueryHandler struct {
	db *gorm.DB
}

// NewListZonesQueryHandler creates a handler for zone catalog queries.
func NewListZonesQueryHandler(db *gorm.DB) ListZonesQueryHandler {
	return ListZonesQueryHandler{db: db}
}

// Handle executes the query to retrieve active zones, ordered by name.
func (h ListZonesQueryHandler) Handle(
	ctx context.Context,
	query ListZonesQuery,
) ([]ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]ZoneResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			countries,
			states,
			postal_codes,
			base_cost,
			additional_item_cost
		FROM shipping_zones
		WHERE is_active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var zone ZoneResponse
		var id uuid.UUID
		var countries, states, postalCodes pq.StringArray

		err = rows.Scan(
			&id,
			&zone.Name,
			&countries,
			&states,
			&postalCodes,
			&zone.BaseCost,
			&zone.AdditionalItemCost,
		)
		if err != nil {
			return nil, err
		}

		zone.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		zone.Countries = countries
		zone.States = states
		zone.PostalCodes = postalCodes

		zones = append(zones, zone)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
