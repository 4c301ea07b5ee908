package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressSnapshotResponse is an embedded address copy in the read model.
type AddressSnapshotResponse struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// TrackingEventResponse is one tracking history entry in the read model.
type TrackingEventResponse struct {
	OccurredAt  time.Time
	Status      string
	Location    string
	Description string
}

// ShipmentResponse represents a shipment with its tracking history in the
// read model.
type ShipmentResponse struct {
	ID              kernel.UUID
	Number          string
	OrderID         kernel.UUID
	Status          string
	Carrier         string
	TrackingNumber  string
	TrackingURL     string
	MethodID        kernel.UUID
	Cost            float64
	Origin          AddressSnapshotResponse
	Destination     AddressSnapshotResponse
	WeightKG        *float64
	Dimensions      string
	DeliveryNotes   string
	FailureReason   string
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	Metadata        map[string]string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	TrackingHistory []TrackingEventResponse
}

// selectShipmentColumns is the column list every shipment read shares.
const selectShipmentColumns = `
		id,
		number,
		order_id,
		status,
		carrier,
		tracking_number,
		tracking_url,
		method_id,
		cost,
		origin_line1, origin_line2, origin_city, origin_state,
		origin_postal_code, origin_country, origin_phone,
		dest_line1, dest_line2, dest_city, dest_state,
		dest_postal_code, dest_country, dest_phone,
		weight_kg,
		dimensions,
		delivery_notes,
		failure_reason,
		shipped_at,
		delivered_at,
		metadata,
		version,
		created_at,
		updated_at`

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanShipmentRow reads one shipment row in selectShipmentColumns order.
func scanShipmentRow(row rowScanner) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, orderID, methodID uuid.UUID
	var trackingNumber, trackingURL sql.NullString
	var originLine2, originState, originPhone sql.NullString
	var destLine2, destState, destPhone sql.NullString
	var weightKG sql.NullFloat64
	var dimensions, deliveryNotes, failureReason sql.NullString
	var shippedAt, deliveredAt sql.NullTime
	var metadata []byte

	err := row.Scan(
		&id,
		&resp.Number,
		&orderID,
		&resp.Status,
		&resp.Carrier,
		&trackingNumber,
		&trackingURL,
		&methodID,
		&resp.Cost,
		&resp.Origin.Line1, &originLine2, &resp.Origin.City, &originState,
		&resp.Origin.PostalCode, &resp.Origin.Country, &originPhone,
		&resp.Destination.Line1, &destLine2, &resp.Destination.City, &destState,
		&resp.Destination.PostalCode, &resp.Destination.Country, &destPhone,
		&weightKG,
		&dimensions,
		&deliveryNotes,
		&failureReason,
		&shippedAt,
		&deliveredAt,
		&metadata,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.MethodID, err = kernel.UUIDFromBytes(methodID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}

	resp.TrackingNumber = trackingNumber.String
	resp.TrackingURL = trackingURL.String
	resp.Origin.Line2 = originLine2.String
	resp.Origin.State = originState.String
	resp.Origin.Phone = originPhone.String
	resp.Destination.Line2 = destLine2.String
	resp.Destination.State = destState.String
	resp.Destination.Phone = destPhone.String
	resp.Dimensions = dimensions.String
	resp.DeliveryNotes = deliveryNotes.String
	resp.FailureReason = failureReason.String

	if weightKG.Valid {
		resp.WeightKG = &weightKG.Float64
	}
	if shippedAt.Valid {
		resp.ShippedAt = &shippedAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}
	if len(metadata) > 0 {
		if err = json.Unmarshal(metadata, &resp.Metadata); err != nil {
			return ShipmentResponse{}, err
		}
	}

	return resp, nil
}

// loadTrackingHistory reads the tracking events of one shipment, oldest first.
func loadTrackingHistory(db *gorm.DB, shipmentID kernel.UUID) ([]TrackingEventResponse, error) {
	events := make([]TrackingEventResponse, 0)

	rows, err := db.Raw(`
		SELECT
			occurred_at,
			status,
			location,
			description
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY occurred_at, id
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse
		var location sql.NullString

		if err = rows.Scan(&event.OccurredAt, &event.Status, &location, &event.Description); err != nil {
			return nil, err
		}
		event.Location = location.String
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
