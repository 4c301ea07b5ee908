package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMethod(t *testing.T, name string, methodType catalog.MethodType,
	basePrice, additionalItemPrice float64, minDays, maxDays int) *catalog.Method {
	t.Helper()

	m, err := catalog.NewMethod(kernel.NewUUID(), name, methodType,
		basePrice, additionalItemPrice, minDays, maxDays, nil, nil)
	require.NoError(t, err)
	return m
}

func buildZone(t *testing.T, name string, countries, states, postalCodes []string,
	baseCost, additionalItemCost float64) *catalog.Zone {
	t.Helper()

	z, err := catalog.NewZone(kernel.NewUUID(), name, countries, states, postalCodes,
		baseCost, additionalItemCost)
	require.NoError(t, err)
	return z
}

func buildRequest(t *testing.T, country, state, postalCode string, itemCount int) services.RateRequest {
	t.Helper()

	dest, err := kernel.NewDestination(country, state, postalCode)
	require.NoError(t, err)
	return services.RateRequest{Destination: dest, ItemCount: itemCount}
}

func TestRateCalculator_Calculate(t *testing.T) {
	calculator := services.NewRateCalculator()

	t.Run("matched_zone_prices_every_method", func(t *testing.T) {
		// US zone at 10 base + 2 per additional item, 3 items: 10 + 2*2 = 14
		methods := []*catalog.Method{
			buildMethod(t, "Ground", catalog.Standard, 5.99, 1.50, 3, 7),
			buildMethod(t, "Express", catalog.Express, 15.99, 3, 1, 3),
		}
		zones := []*catalog.Zone{
			buildZone(t, "United States", []string{"US"}, nil, nil, 10, 2),
		}

		quote, err := calculator.Calculate(buildRequest(t, "US", "", "", 3), methods, zones)

		require.NoError(t, err)
		require.Len(t, quote.Options, 2)
		for _, option := range quote.Options {
			assert.InDelta(t, 14.0, option.Cost, 0.001)
		}
		require.NotNil(t, quote.MatchedZoneID)
		assert.True(t, zones[0].ID().IsEqual(*quote.MatchedZoneID))
	})

	t.Run("no_matching_zone_falls_back_to_method_prices", func(t *testing.T) {
		methods := []*catalog.Method{
			buildMethod(t, "Ground", catalog.Standard, 5, 1, 3, 7),
			buildMethod(t, "Express", catalog.Express, 15, 3, 1, 3),
		}
		zones := []*catalog.Zone{
			buildZone(t, "United States", []string{"US"}, nil, nil, 10, 2),
		}

		quote, err := calculator.Calculate(buildRequest(t, "DE", "", "", 2), methods, zones)

		require.NoError(t, err)
		assert.Nil(t, quote.MatchedZoneID)
		assert.InDelta(t, 6.0, quote.Options[0].Cost, 0.001)  // 5 + 1
		assert.InDelta(t, 18.0, quote.Options[1].Cost, 0.001) // 15 + 3
	})

	t.Run("recommended_is_lowest_base_price_regardless_of_zone_costs", func(t *testing.T) {
		methods := []*catalog.Method{
			buildMethod(t, "Express", catalog.Express, 15, 3, 1, 3),
			buildMethod(t, "Ground", catalog.Standard, 5, 1, 3, 7),
		}
		zones := []*catalog.Zone{
			buildZone(t, "United States", []string{"US"}, nil, nil, 10, 2),
		}

		quote, err := calculator.Calculate(buildRequest(t, "US", "", "", 1), methods, zones)

		require.NoError(t, err)
		assert.Equal(t, "Ground", quote.Recommended.MethodName)
		assert.InDelta(t, quote.Recommended.Cost, quote.TotalShippingCost, 0.001)
	})

	t.Run("most_specific_zone_wins", func(t *testing.T) {
		methods := []*catalog.Method{
			buildMethod(t, "Ground", catalog.Standard, 5, 1, 3, 7),
		}
		zones := []*catalog.Zone{
			buildZone(t, "US wide", []string{"US"}, nil, nil, 10, 2),
			buildZone(t, "California", []string{"US"}, []string{"CA"}, nil, 8, 1),
			buildZone(t, "SF downtown", []string{"US"}, []string{"CA"}, []string{"94103"}, 6, 1),
		}

		quote, err := calculator.Calculate(buildRequest(t, "US", "CA", "94103", 1), methods, zones)

		require.NoError(t, err)
		assert.InDelta(t, 6.0, quote.Options[0].Cost, 0.001)

		quote, err = calculator.Calculate(buildRequest(t, "US", "CA", "90210", 1), methods, zones)

		require.NoError(t, err)
		assert.InDelta(t, 8.0, quote.Options[0].Cost, 0.001)
	})

	t.Run("equal_specificity_resolved_by_name", func(t *testing.T) {
		methods := []*catalog.Method{
			buildMethod(t, "Ground", catalog.Standard, 5, 1, 3, 7),
		}
		zones := []*catalog.Zone{
			buildZone(t, "Zone B", []string{"US"}, nil, nil, 20, 2),
			buildZone(t, "Zone A", []string{"US"}, nil, nil, 10, 2),
		}

		quote, err := calculator.Calculate(buildRequest(t, "US", "", "", 1), methods, zones)

		require.NoError(t, err)
		assert.InDelta(t, 10.0, quote.Options[0].Cost, 0.001)
	})

	t.Run("inactive_methods_and_zones_are_ignored", func(t *testing.T) {
		activeMethod := buildMethod(t, "Ground", catalog.Standard, 5, 1, 3, 7)
		inactiveMethod, err := catalog.RestoreMethod(kernel.NewUUID(), "Retired", catalog.Economy,
			1, 0, 5, 9, nil, nil, false)
		require.NoError(t, err)
		inactiveZone, err := catalog.RestoreZone(kernel.NewUUID(), "Retired zone",
			[]string{"US"}, nil, nil, 1, 0, false)
		require.NoError(t, err)

		quote, err := calculator.Calculate(
			buildRequest(t, "US", "", "", 1),
			[]*catalog.Method{activeMethod, inactiveMethod},
			[]*catalog.Zone{inactiveZone},
		)

		require.NoError(t, err)
		require.Len(t, quote.Options, 1)
		assert.Equal(t, "Ground", quote.Options[0].MethodName)
		assert.Nil(t, quote.MatchedZoneID)
	})

	t.Run("estimated_days_is_floored_midpoint", func(t *testing.T) {
		methods := []*catalog.Method{
			buildMethod(t, "Ground", catalog.Standard, 5, 1, 3, 8),
		}

		quote, err := calculator.Calculate(buildRequest(t, "US", "", "", 1), methods, nil)

		require.NoError(t, err)
		assert.Equal(t, 5, quote.Options[0].EstimatedDays)
	})

	t.Run("rejects_item_count_below_one", func(t *testing.T) {
		methods := []*catalog.Method{
			buildMethod(t, "Ground", catalog.Standard, 5, 1, 3, 7),
		}

		_, err := calculator.Calculate(buildRequest(t, "US", "", "", 0), methods, nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("fails_without_active_methods", func(t *testing.T) {
		_, err := calculator.Calculate(buildRequest(t, "US", "", "", 1), nil, nil)
		require.ErrorIs(t, err, services.ErrNoActiveMethods)
	})
}
