package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackShipmentQueryHandler resolves a public tracking handle to a shipment.
// The shipment number is tried first, then the carrier tracking number.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for tracking queries.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns errs.ObjectNotFoundError when neither number matches.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	db := h.db.WithContext(ctx)
	row := db.Raw(`
		SELECT`+selectShipmentColumns+`
		FROM shipments
		WHERE number = @number OR tracking_number = @number
	`, sql.Named("number", query.Number())).Row()

	resp, err := scanShipmentRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipmentResponse{}, errs.NewObjectNotFoundError("number", query.Number())
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
