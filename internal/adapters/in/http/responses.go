package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
)

// CreatedResponse carries the server-generated ID of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AddressJSON is the wire form of an address.
type AddressJSON struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toAddressJSON(r queries.AddressResponse) AddressJSON {
	return AddressJSON{
		ID:         r.ID.String(),
		UserID:     r.UserID.String(),
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
		IsDefault:  r.IsDefault,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// MethodJSON is the wire form of a shipping method.
type MethodJSON struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	MethodType          string   `json:"methodType"`
	BasePrice           float64  `json:"basePrice"`
	AdditionalItemPrice float64  `json:"additionalItemPrice"`
	MinDeliveryDays     int      `json:"minDeliveryDays"`
	MaxDeliveryDays     int      `json:"maxDeliveryDays"`
	MaxWeightKG         *float64 `json:"maxWeightKg,omitempty"`
	Regions             []string `json:"regions,omitempty"`
}

func toMethodJSON(r queries.MethodResponse) MethodJSON {
	return MethodJSON{
		ID:                  r.ID.String(),
		Name:                r.Name,
		MethodType:          r.MethodType,
		BasePrice:           r.BasePrice,
		AdditionalItemPrice: r.AdditionalItemPrice,
		MinDeliveryDays:     r.MinDeliveryDays,
		MaxDeliveryDays:     r.MaxDeliveryDays,
		MaxWeightKG:         r.MaxWeightKG,
		Regions:             r.Regions,
	}
}

// ZoneJSON is the wire form of a shipping zone.
type ZoneJSON struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Countries          []string `json:"countries"`
	States             []string `json:"states,omitempty"`
	PostalCodes        []string `json:"postalCodes,omitempty"`
	BaseCost           float64  `json:"baseCost"`
	AdditionalItemCost float64  `json:"additionalItemCost"`
}

func toZoneJSON(r queries.ZoneResponse) ZoneJSON {
	return ZoneJSON{
		ID:                 r.ID.String(),
		Name:               r.Name,
		Countries:          r.Countries,
		States:             r.States,
		PostalCodes:        r.PostalCodes,
		BaseCost:           r.BaseCost,
		AdditionalItemCost: r.AdditionalItemCost,
	}
}

// RateOptionJSON is one priced delivery option in a rate quote.
type RateOptionJSON struct {
	MethodID      string  `json:"methodId"`
	MethodName    string  `json:"methodName"`
	MethodType    string  `json:"methodType"`
	Cost          float64 `json:"cost"`
	EstimatedDays int     `json:"estimatedDays"`
	Description   string  `json:"description"`
}

// RateQuoteJSON is the wire form of a rate calculation.
type RateQuoteJSON struct {
	Options           []RateOptionJSON `json:"options"`
	Recommended       RateOptionJSON   `json:"recommended"`
	TotalShippingCost float64          `json:"totalShippingCost"`
	MatchedZoneID     *string          `json:"matchedZoneId,omitempty"`
}

func toRateOptionJSON(r queries.RateOptionResponse) RateOptionJSON {
	return RateOptionJSON{
		MethodID:      r.MethodID.String(),
		MethodName:    r.MethodName,
		MethodType:    r.MethodType,
		Cost:          r.Cost,
		EstimatedDays: r.EstimatedDays,
		Description:   r.Description,
	}
}

func toRateQuoteJSON(r queries.RateQuoteResponse) RateQuoteJSON {
	options := make([]RateOptionJSON, len(r.Options))
	for i, option := range r.Options {
		options[i] = toRateOptionJSON(option)
	}

	var matchedZoneID *string
	if r.MatchedZoneID != nil {
		id := r.MatchedZoneID.String()
		matchedZoneID = &id
	}

	return RateQuoteJSON{
		Options:           options,
		Recommended:       toRateOptionJSON(r.Recommended),
		TotalShippingCost: r.TotalShippingCost,
		MatchedZoneID:     matchedZoneID,
	}
}

// AddressSnapshotJSON is the wire form of a shipment's address copy.
type AddressSnapshotJSON struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// TrackingEventJSON is one tracking history entry on the wire.
type TrackingEventJSON struct {
	OccurredAt  time.Time `json:"occurredAt"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
}

// ShipmentJSON is the wire form of a shipment.
type ShipmentJSON struct {
	ID              string              `json:"id"`
	Number          string              `json:"number"`
	OrderID         string              `json:"orderId"`
	Status          string              `json:"status"`
	Carrier         string              `json:"carrier"`
	TrackingNumber  string              `json:"trackingNumber,omitempty"`
	TrackingURL     string              `json:"trackingUrl,omitempty"`
	MethodID        string              `json:"methodId"`
	Cost            float64             `json:"cost"`
	Origin          AddressSnapshotJSON `json:"origin"`
	Destination     AddressSnapshotJSON `json:"destination"`
	WeightKG        *float64            `json:"weightKg,omitempty"`
	Dimensions      string              `json:"dimensions,omitempty"`
	DeliveryNotes   string              `json:"deliveryNotes,omitempty"`
	FailureReason   string              `json:"failureReason,omitempty"`
	ShippedAt       *time.Time          `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
	Metadata        map[string]string   `json:"metadata,omitempty"`
	Version         int                 `json:"version"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	TrackingHistory []TrackingEventJSON `json:"trackingHistory,omitempty"`
}

func toSnapshotJSON(r queries.AddressSnapshotResponse) AddressSnapshotJSON {
	return AddressSnapshotJSON{
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
	}
}

func toShipmentJSON(r queries.ShipmentResponse) ShipmentJSON {
	history := make([]TrackingEventJSON, len(r.TrackingHistory))
	for i, event := range r.TrackingHistory {
		history[i] = TrackingEventJSON{
			OccurredAt:  event.OccurredAt,
			Status:      event.Status,
			Location:    event.Location,
			Description: event.Description,
		}
	}

	return ShipmentJSON{
		ID:              r.ID.String(),
		Number:          r.Number,
		OrderID:         r.OrderID.String(),
		Status:          r.Status,
		Carrier:         r.Carrier,
		TrackingNumber:  r.TrackingNumber,
		TrackingURL:     r.TrackingURL,
		MethodID:        r.MethodID.String(),
		Cost:            r.Cost,
		Origin:          toSnapshotJSON(r.Origin),
		Destination:     toSnapshotJSON(r.Destination),
		WeightKG:        r.WeightKG,
		Dimensions:      r.Dimensions,
		DeliveryNotes:   r.DeliveryNotes,
		FailureReason:   r.FailureReason,
		ShippedAt:       r.ShippedAt,
		DeliveredAt:     r.DeliveredAt,
		Metadata:        r.Metadata,
		Version:         r.Version,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		TrackingHistory: history,
	}
}

// CarrierStatsJSON aggregates shipments of one carrier on the wire.
type CarrierStatsJSON struct {
	Carrier   string  `json:"carrier"`
	Count     int     `json:"count"`
	TotalCost float64 `json:"totalCost"`
}

// MethodStatsJSON aggregates shipments of one shipping method on the wire.
type MethodStatsJSON struct {
	MethodID  string  `json:"methodId"`
	Count     int     `json:"count"`
	TotalCost float64 `json:"totalCost"`
}

// ShipmentStatsJSON is the wire form of the statistics read model.
type ShipmentStatsJSON struct {
	TotalShipments    int                `json:"totalShipments"`
	TotalShippingCost float64            `json:"totalShippingCost"`
	CountsByStatus    map[string]int     `json:"countsByStatus"`
	ByCarrier         []CarrierStatsJSON `json:"byCarrier"`
	ByMethod          []MethodStatsJSON  `json:"byMethod"`
}

func toStatsJSON(r queries.ShipmentStatsResponse) ShipmentStatsJSON {
	byCarrier := make([]CarrierStatsJSON, len(r.ByCarrier))
	for i, c := range r.ByCarrier {
		byCarrier[i] = CarrierStatsJSON{Carrier: c.Carrier, Count: c.Count, TotalCost: c.TotalCost}
	}

	byMethod := make([]MethodStatsJSON, len(r.ByMethod))
	for i, m := range r.ByMethod {
		byMethod[i] = MethodStatsJSON{MethodID: m.MethodID.String(), Count: m.Count, TotalCost: m.TotalCost}
	}

	return ShipmentStatsJSON{
		TotalShipments:    r.TotalShipments,
		TotalShippingCost: r.TotalShippingCost,
		CountsByStatus:    r.CountsByStatus,
		ByCarrier:         byCarrier,
		ByMethod:          byMethod,
	}
}
