package catalog_test

import (
	"testing"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMethod(t *testing.T, name string, basePrice, additionalItemPrice float64, minDays, maxDays int) *catalog.Method {
	t.Helper()

	m, err := catalog.NewMethod(
		kernel.NewUUID(), name, catalog.Standard,
		basePrice, additionalItemPrice, minDays, maxDays, nil, nil,
	)
	require.NoError(t, err)
	return m
}

func TestNewMethod(t *testing.T) {
	t.Run("creates_active_method", func(t *testing.T) {
		m := newTestMethod(t, "Ground", 5.99, 1.50, 3, 7)

		require.NoError(t, m.Validate())
		assert.True(t, m.IsActive())
		assert.Equal(t, catalog.Standard, m.MethodType())
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		id := kernel.NewUUID()

		testCases := []struct {
			name string
			run  func() error
		}{
			{"empty name", func() error {
				_, err := catalog.NewMethod(id, "", catalog.Standard, 5, 1, 1, 3, nil, nil)
				return err
			}},
			{"negative base price", func() error {
				_, err := catalog.NewMethod(id, "Ground", catalog.Standard, -1, 1, 1, 3, nil, nil)
				return err
			}},
			{"negative additional item price", func() error {
				_, err := catalog.NewMethod(id, "Ground", catalog.Standard, 5, -1, 1, 3, nil, nil)
				return err
			}},
			{"max days below min days", func() error {
				_, err := catalog.NewMethod(id, "Ground", catalog.Standard, 5, 1, 5, 3, nil, nil)
				return err
			}},
			{"unknown method type", func() error {
				_, err := catalog.NewMethod(id, "Ground", catalog.UnknownMethodType, 5, 1, 1, 3, nil, nil)
				return err
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Error(t, tc.run())
			})
		}
	})
}

func TestMethod_CostFor(t *testing.T) {
	m := newTestMethod(t, "Ground", 5.0, 2.0, 3, 7)

	assert.InDelta(t, 5.0, m.CostFor(1), 0.001)
	assert.InDelta(t, 9.0, m.CostFor(3), 0.001)
	// item counts below one are treated as a single item
	assert.InDelta(t, 5.0, m.CostFor(0), 0.001)
}

func TestMethod_EstimatedDeliveryDays(t *testing.T) {
	// midpoint is floored
	assert.Equal(t, 5, newTestMethod(t, "Ground", 5, 1, 3, 7).EstimatedDeliveryDays())
	assert.Equal(t, 2, newTestMethod(t, "Express", 10, 2, 1, 4).EstimatedDeliveryDays())
}

func TestMethodTypeFromString(t *testing.T) {
	t.Run("parses_all_valid_tiers", func(t *testing.T) {
		for _, s := range []string{"STANDARD", "EXPRESS", "OVERNIGHT", "SAME_DAY", "ECONOMY"} {
			methodType, err := catalog.MethodTypeFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, methodType.String())
		}
	})

	t.Run("rejects_unknown_tier", func(t *testing.T) {
		_, err := catalog.MethodTypeFromString("TELEPORT")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
