package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentStatsQueryHandler computes shipment statistics in the database.
// A single grouping-sets aggregate produces the grand total and the per
// status, carrier, and method breakdowns in one pass over the table.
type GetShipmentStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatsQueryHandler creates a handler for statistics queries.
func NewGetShipmentStatsQueryHandler(db *gorm.DB) GetShipmentStatsQueryHandler {
	return GetShipmentStatsQueryHandler{db: db}
}

// Handle executes the statistics aggregation.
func (h GetShipmentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatsQuery,
) (ShipmentStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentStatsResponse{}, err
	}

	stats := ShipmentStatsResponse{
		CountsByStatus: make(map[string]int),
		ByCarrier:      make([]CarrierStatsResponse, 0),
		ByMethod:       make([]MethodStatsResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			carrier,
			method_id,
			COUNT(*),
			COALESCE(SUM(cost), 0)
		FROM shipments
		GROUP BY GROUPING SETS ((status), (carrier), (method_id), ())
		ORDER BY status, carrier, method_id
	`).Rows()
	if err != nil {
		return ShipmentStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, carrier sql.NullString
		var methodID uuid.NullUUID
		var count int
		var totalCost float64

		if err = rows.Scan(&status, &carrier, &methodID, &count, &totalCost); err != nil {
			return ShipmentStatsResponse{}, err
		}

		switch {
		case status.Valid:
			stats.CountsByStatus[status.String] = count
		case carrier.Valid:
			stats.ByCarrier = append(stats.ByCarrier, CarrierStatsResponse{
				Carrier:   carrier.String,
				Count:     count,
				TotalCost: totalCost,
			})
		case methodID.Valid:
			id, idErr := kernel.UUIDFromBytes(methodID.UUID[:])
			if idErr != nil {
				return ShipmentStatsResponse{}, idErr
			}
			stats.ByMethod = append(stats.ByMethod, MethodStatsResponse{
				MethodID:  id,
				Count:     count,
				TotalCost: totalCost,
			})
		default:
			// The empty grouping set: the grand total.
			stats.TotalShipments = count
			stats.TotalShippingCost = totalCost
		}
	}

	if err = rows.Err(); err != nil {
		return ShipmentStatsResponse{}, err
	}

	return stats, nil
}
