package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one shipment from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the shipment is absent.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	db := h.db.WithContext(ctx)
	row := db.Raw(`
		SELECT`+selectShipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	resp, err := scanShipmentRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}
	if err != nil {
		return ShipmentResponse{}, err
	}

	resp.TrackingHistory, err = loadTrackingHistory(db, resp.ID)
	if err != nil {
		return ShipmentResponse{}, err
	}

	return resp, nil
}
