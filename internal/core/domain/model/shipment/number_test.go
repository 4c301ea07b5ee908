package shipment_test

import (
	"strings"
	"testing"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipmentNumber(t *testing.T) {
	now := time.Now()

	number := shipment.NewShipmentNumber(now)

	require.NoError(t, shipment.ValidateShipmentNumber(number))
	assert.True(t, strings.HasPrefix(number, "SHP-"))
	assert.Contains(t, number, "-")
}

func TestValidateShipmentNumber(t *testing.T) {
	t.Run("accepts_generated_format", func(t *testing.T) {
		require.NoError(t, shipment.ValidateShipmentNumber("SHP-1735689600000-0042"))
	})

	t.Run("rejects_malformed_numbers", func(t *testing.T) {
		for _, number := range []string{"", "SHP-", "SHIP-1735689600000-0042", "SHP-1735689600000-42", "SHP-abc-0042"} {
			require.ErrorIs(t, shipment.ValidateShipmentNumber(number), errs.ErrValueIsInvalid, number)
		}
	})
}
