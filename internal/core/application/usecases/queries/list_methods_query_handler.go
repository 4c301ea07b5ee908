package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListMethodsQueryHandler retrieves the active method catalog from the database.
type ListMethodsQueryHandler struct {
	db *gorm.DB
}

// NewListMethodsQueryHandler creates a handler for method catalog queries.
func NewListMethodsQueryHandler(db *gorm.DB) ListMethodsQueryHandler {
	return ListMethodsQueryHandler{db: db}
}

// Handle executes the query to retrieve active methods, cheapest base price
// first.
func (h ListMethodsQueryHandler) Handle(
	ctx context.Context,
	query ListMethodsQuery,
) ([]MethodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	methods := make([]MethodResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			method_type,
			base_price,
			additional_item_price,
			min_delivery_days,
			max_delivery_days,
			max_weight_kg,
			regions
		FROM shipping_methods
		WHERE is_active
		ORDER BY base_price, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var method MethodResponse
		var id uuid.UUID
		var maxWeight sql.NullFloat64
		var regions pq.StringArray

		err = rows.Scan(
			&id,
			&method.Name,
			&method.MethodType,
			&method.BasePrice,
			&method.AdditionalItemPrice,
			&method.MinDeliveryDays,
			&method.MaxDeliveryDays,
			&maxWeight,
			&regions,
		)
		if err != nil {
			return nil, err
		}

		method.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		if maxWeight.Valid {
			method.MaxWeightKG = &maxWeight.Float64
		}
		method.Regions = regions

		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
