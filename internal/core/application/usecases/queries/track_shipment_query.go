package queries

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves a shipment by its public tracking handle,
// either the shipment number or the carrier tracking number.
//
// Example:
//
//	query, err := NewTrackShipmentQuery("SHP-1756709000000-0042")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTrackShipmentQueryHandler(db)
//	tracked, err := handler.Handle(ctx, query)
type TrackShipmentQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query for the given number.
func NewTrackShipmentQuery(number string) (TrackShipmentQuery, error) {
	if number == "" {
		return TrackShipmentQuery{}, errs.NewValueIsRequiredError("number")
	}

	return TrackShipmentQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// Number returns the shipment or tracking number to look up.
func (q TrackShipmentQuery) Number() string { return q.number }
