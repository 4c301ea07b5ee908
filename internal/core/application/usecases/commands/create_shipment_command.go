package commands

import (
	"errors"
	"math"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create a shipment for an
// order. Origin and destination are embedded snapshots: the shipment keeps
// the addresses as they were at creation time, regardless of later edits to
// the address book.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), orderID,
//	    shipment.UPS, methodID, 12.50, origin, destination, nil, "", nil, adminID)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, orders)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	orderID     kernel.UUID
	carrier     shipment.Carrier
	methodID    kernel.UUID
	cost        float64
	origin      shipment.AddressSnapshot
	destination shipment.AddressSnapshot
	weightKG    *float64
	dimensions  string
	metadata    map[string]string
	createdBy   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
func NewCreateShipmentCommand(
	shipmentID, orderID kernel.UUID,
	carrier shipment.Carrier,
	methodID kernel.UUID,
	cost float64,
	origin, destination shipment.AddressSnapshot,
	weightKG *float64,
	dimensions string,
	metadata map[string]string,
	createdBy kernel.UUID,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		origin:      origin,
		destination: destination,
		weightKG:    weightKG,
		dimensions:  dimensions,
		metadata:    metadata,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setOrderID(orderID),
		command.setCarrier(carrier),
		command.setMethodID(methodID),
		command.setCost(cost),
		command.setCreatedBy(createdBy),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OrderID returns the order the shipment fulfils.
func (c CreateShipmentCommand) OrderID() kernel.UUID { return c.orderID }

// Carrier returns the carrier that will move the shipment.
func (c CreateShipmentCommand) Carrier() shipment.Carrier { return c.carrier }

// MethodID returns the shipping method used for pricing.
func (c CreateShipmentCommand) MethodID() kernel.UUID { return c.methodID }

// Cost returns the shipping cost charged to the order.
func (c CreateShipmentCommand) Cost() float64 { return c.cost }

// Origin returns the sender address snapshot.
func (c CreateShipmentCommand) Origin() shipment.AddressSnapshot { return c.origin }

// Destination returns the recipient address snapshot.
func (c CreateShipmentCommand) Destination() shipment.AddressSnapshot { return c.destination }

// WeightKG returns the optional package weight.
func (c CreateShipmentCommand) WeightKG() *float64 { return c.weightKG }

// Dimensions returns the optional package dimensions label.
func (c CreateShipmentCommand) Dimensions() string { return c.dimensions }

// Metadata returns optional free-form shipment attributes.
func (c CreateShipmentCommand) Metadata() map[string]string { return c.metadata }

// CreatedBy returns who requested the shipment.
func (c CreateShipmentCommand) CreatedBy() kernel.UUID { return c.createdBy }

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setCarrier(carrier shipment.Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	c.carrier = carrier
	return nil
}

func (c *CreateShipmentCommand) setMethodID(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("methodId", err)
	}

	c.methodID = methodID
	return nil
}

func (c *CreateShipmentCommand) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsOutOfRangeError("cost", cost, 0, math.MaxFloat64)
	}

	c.cost = cost
	return nil
}

func (c *CreateShipmentCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}

	c.createdBy = createdBy
	return nil
}
