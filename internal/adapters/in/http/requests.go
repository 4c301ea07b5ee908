package http

// Request bodies for the shipping API. IDs of new resources are generated
// server-side; the caller identifies itself through explicit user fields
// because the service sits behind a gateway that owns authentication.

// CreateAddressRequest is the body of POST /api/v1/addresses.
type CreateAddressRequest struct {
	UserID     string `json:"userId" validate:"required,uuid"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"isDefault"`
}

// UpdateAddressRequest is the body of PATCH /api/v1/addresses/:addressId.
// Absent fields keep their stored values.
type UpdateAddressRequest struct {
	UserID     string  `json:"userId" validate:"required,uuid"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country" validate:"omitempty,len=2"`
	Phone      *string `json:"phone"`
	IsDefault  *bool   `json:"isDefault"`
}

// CreateMethodRequest is the body of POST /api/v1/shipping-methods.
type CreateMethodRequest struct {
	Name                string   `json:"name" validate:"required"`
	MethodType          string   `json:"methodType" validate:"required"`
	BasePrice           float64  `json:"basePrice" validate:"gte=0"`
	AdditionalItemPrice float64  `json:"additionalItemPrice" validate:"gte=0"`
	MinDeliveryDays     int      `json:"minDeliveryDays" validate:"gte=0"`
	MaxDeliveryDays     int      `json:"maxDeliveryDays" validate:"gte=0"`
	MaxWeightKG         *float64 `json:"maxWeightKg" validate:"omitempty,gt=0"`
	Regions             []string `json:"regions"`
}

// CreateZoneRequest is the body of POST /api/v1/shipping-zones.
type CreateZoneRequest struct {
	Name               string   `json:"name" validate:"required"`
	Countries          []string `json:"countries" validate:"required,min=1"`
	States             []string `json:"states"`
	PostalCodes        []string `json:"postalCodes"`
	BaseCost           float64  `json:"baseCost" validate:"gte=0"`
	AdditionalItemCost float64  `json:"additionalItemCost" validate:"gte=0"`
}

// CalculateRatesRequest is the body of POST /api/v1/rates.
type CalculateRatesRequest struct {
	Country             string  `json:"country" validate:"required,len=2"`
	State               string  `json:"state"`
	PostalCode          string  `json:"postalCode"`
	WeightKG            float64 `json:"weightKg" validate:"gte=0"`
	ItemCount           int     `json:"itemCount" validate:"gte=1"`
	PreferredMethodType string  `json:"preferredMethodType"`
}

// AddressSnapshotRequest is an address copied verbatim into a shipment.
type AddressSnapshotRequest struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
	Phone      string `json:"phone"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	OrderID     string                 `json:"orderId" validate:"required,uuid"`
	Carrier     string                 `json:"carrier" validate:"required"`
	MethodID    string                 `json:"methodId" validate:"required,uuid"`
	Cost        float64                `json:"cost" validate:"gte=0"`
	Origin      AddressSnapshotRequest `json:"origin" validate:"required"`
	Destination AddressSnapshotRequest `json:"destination" validate:"required"`
	WeightKG    *float64               `json:"weightKg" validate:"omitempty,gt=0"`
	Dimensions  string                 `json:"dimensions"`
	Metadata    map[string]string      `json:"metadata"`
	CreatedBy   string                 `json:"createdBy" validate:"required,uuid"`
}

// UpdateShipmentStatusRequest is the body of
// PATCH /api/v1/shipments/:shipmentId/status.
type UpdateShipmentStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl" validate:"omitempty,url"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	DeliveryNotes  string `json:"deliveryNotes"`
	FailureReason  string `json:"failureReason"`
	UpdatedBy      string `json:"updatedBy" validate:"required,uuid"`
}
