package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// maxShipmentPageSize caps a single shipment listing page.
const maxShipmentPageSize = 200

// ListShipmentsQuery retrieves a page of shipments. All filters are optional
// and AND-combined; empty strings mean "no filter".
//
// Example:
//
//	query, err := NewListShipmentsQuery(nil, "SHIPPED", "UPS", 50, 0)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListShipmentsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListShipmentsQuery struct {
	orderID *kernel.UUID
	status  *shipment.Status
	carrier *shipment.Carrier
	limit   int
	offset  int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a shipment listing query.
func NewListShipmentsQuery(
	orderID *kernel.UUID,
	status, carrier string,
	limit, offset int,
) (ListShipmentsQuery, error) {
	if limit < 1 || limit > maxShipmentPageSize {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxShipmentPageSize)
	}
	if offset < 0 {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	query := ListShipmentsQuery{
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
		query.orderID = orderID
	}
	if status != "" {
		parsed, err := shipment.StatusFromString(status)
		if err != nil {
			return ListShipmentsQuery{}, err
		}
		query.status = &parsed
	}
	if carrier != "" {
		parsed, err := shipment.CarrierFromString(carrier)
		if err != nil {
			return ListShipmentsQuery{}, err
		}
		query.carrier = &parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// OrderID returns the optional order filter.
func (q ListShipmentsQuery) OrderID() *kernel.UUID { return q.orderID }

// Status returns the optional status filter.
func (q ListShipmentsQuery) Status() *shipment.Status { return q.status }

// Carrier returns the optional carrier filter.
func (q ListShipmentsQuery) Carrier() *shipment.Carrier { return q.carrier }

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int { return q.limit }

// Offset returns how many rows to skip.
func (q ListShipmentsQuery) Offset() int { return q.offset }
