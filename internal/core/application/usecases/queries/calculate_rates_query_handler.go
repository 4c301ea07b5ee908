package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CalculateRatesQueryHandler prices shipping options for a destination.
// Loads the active catalog and delegates the pricing rules to the
// RateCalculator domain service.
type CalculateRatesQueryHandler struct {
	db         *gorm.DB
	calculator services.RateCalculator
}

// NewCalculateRatesQueryHandler creates a handler for rate calculation queries.
func NewCalculateRatesQueryHandler(db *gorm.DB) CalculateRatesQueryHandler {
	return CalculateRatesQueryHandler{
		db:         db,
		calculator: services.NewRateCalculator(),
	}
}

// Handle executes the rate calculation.
// Returns services.ErrNoActiveMethods when the catalog holds no active method.
func (h CalculateRatesQueryHandler) Handle(
	ctx context.Context,
	query CalculateRatesQuery,
) (RateQuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return RateQuoteResponse{}, err
	}

	methods, err := h.loadActiveMethods(ctx)
	if err != nil {
		return RateQuoteResponse{}, err
	}

	zones, err := h.loadActiveZones(ctx)
	if err != nil {
		return RateQuoteResponse{}, err
	}

	quote, err := h.calculator.Calculate(services.RateRequest{
		Destination:         query.Destination(),
		WeightKG:            query.WeightKG(),
		ItemCount:           query.ItemCount(),
		PreferredMethodType: query.PreferredMethodType(),
	}, methods, zones)
	if err != nil {
		return RateQuoteResponse{}, err
	}

	return toRateQuoteResponse(quote), nil
}

func (h CalculateRatesQueryHandler) loadActiveMethods(ctx context.Context) ([]*catalog.Method, error) {
	methods := make([]*catalog.Method, 0)

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
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, methodTypeStr string
		var basePrice, additionalItemPrice float64
		var minDays, maxDays int
		var maxWeight sql.NullFloat64
		var regions pq.StringArray

		err = rows.Scan(&id, &name, &methodTypeStr, &basePrice, &additionalItemPrice,
			&minDays, &maxDays, &maxWeight, &regions)
		if err != nil {
			return nil, err
		}

		methodID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		methodType, typeErr := catalog.MethodTypeFromString(methodTypeStr)
		if typeErr != nil {
			return nil, typeErr
		}

		var maxWeightKG *float64
		if maxWeight.Valid {
			maxWeightKG = &maxWeight.Float64
		}

		method, restoreErr := catalog.RestoreMethod(methodID, name, methodType,
			basePrice, additionalItemPrice, minDays, maxDays, maxWeightKG, regions, true)
		if restoreErr != nil {
			return nil, restoreErr
		}
		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}

func (h CalculateRatesQueryHandler) loadActiveZones(ctx context.Context) ([]*catalog.Zone, error) {
	zones := make([]*catalog.Zone, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			countries,
			states,
			postal_codes,
			base_cost,
			additional_item_cost
		FROM shipping_zones
		WHERE is_active
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var countries, states, postalCodes pq.StringArray
		var baseCost, additionalItemCost float64

		err = rows.Scan(&id, &name, &countries, &states, &postalCodes,
			&baseCost, &additionalItemCost)
		if err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		zone, restoreErr := catalog.RestoreZone(zoneID, name, countries, states, postalCodes,
			baseCost, additionalItemCost, true)
		if restoreErr != nil {
			return nil, restoreErr
		}
		zones = append(zones, zone)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

func toRateQuoteResponse(quote services.RateQuote) RateQuoteResponse {
	options := make([]RateOptionResponse, 0, len(quote.Options))
	for _, option := range quote.Options {
		options = append(options, RateOptionResponse{
			MethodID:      option.MethodID,
			MethodName:    option.MethodName,
			MethodType:    option.MethodType.String(),
			Cost:          option.Cost,
			EstimatedDays: option.EstimatedDays,
			Description:   option.Description,
		})
	}

	return RateQuoteResponse{
		Options:           options,
		Recommended:       options[0],
		TotalShippingCost: quote.TotalShippingCost,
		MatchedZoneID:     quote.MatchedZoneID,
	}
}
