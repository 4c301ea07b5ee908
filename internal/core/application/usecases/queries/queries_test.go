package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListAddressesQuery(t *testing.T) {
	userID := kernel.NewUUID()
	query, err := queries.NewListAddressesQuery(userID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, userID, query.UserID())

	_, err = queries.NewListAddressesQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestListAddressesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListAddressesQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrListAddressesQueryIsNotConstructed)
}

func TestNewGetAddressQuery_RequiresBothIDs(t *testing.T) {
	_, err := queries.NewGetAddressQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetAddressQuery(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCalculateRatesQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewCalculateRatesQuery("us", "CA", "94103", 1.5, 3, "EXPRESS")
		require.NoError(t, err)
		assert.Equal(t, "US", query.Destination().Country())
		assert.Equal(t, 3, query.ItemCount())
		require.NotNil(t, query.PreferredMethodType())
		assert.Equal(t, catalog.Express, *query.PreferredMethodType())
	})

	t.Run("preferred_method_is_optional", func(t *testing.T) {
		query, err := queries.NewCalculateRatesQuery("US", "", "", 0, 1, "")
		require.NoError(t, err)
		assert.Nil(t, query.PreferredMethodType())
	})

	t.Run("rejects_unknown_preferred_method", func(t *testing.T) {
		_, err := queries.NewCalculateRatesQuery("US", "", "", 0, 1, "TELEPORT")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_country", func(t *testing.T) {
		_, err := queries.NewCalculateRatesQuery("", "", "", 0, 1, "")
		require.Error(t, err)
	})

	t.Run("rejects_zero_items", func(t *testing.T) {
		_, err := queries.NewCalculateRatesQuery("US", "", "", 0, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewTrackShipmentQuery_RequiresNumber(t *testing.T) {
	_, err := queries.NewTrackShipmentQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewTrackShipmentQuery("SHP-1756709000000-0042")
	require.NoError(t, err)
	assert.Equal(t, "SHP-1756709000000-0042", query.Number())
}

func TestNewListShipmentsQuery(t *testing.T) {
	t.Run("parses_filters", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewListShipmentsQuery(&orderID, "SHIPPED", "UPS", 50, 10)
		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, shipment.Shipped, *query.Status())
		require.NotNil(t, query.Carrier())
		assert.Equal(t, shipment.UPS, *query.Carrier())
		assert.Equal(t, 50, query.Limit())
		assert.Equal(t, 10, query.Offset())
	})

	t.Run("empty_filters_mean_no_filter", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(nil, "", "", 20, 0)
		require.NoError(t, err)
		assert.Nil(t, query.OrderID())
		assert.Nil(t, query.Status())
		assert.Nil(t, query.Carrier())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(nil, "LOST", "", 20, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_bad_paging", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(nil, "", "", 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = queries.NewListShipmentsQuery(nil, "", "", 20, -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewGetShipmentStatsQuery(t *testing.T) {
	query := queries.NewGetShipmentStatsQuery()
	require.NoError(t, query.Validate())

	empty := queries.GetShipmentStatsQuery{}
	require.ErrorIs(t, empty.Validate(), queries.ErrGetShipmentStatsQueryIsNotConstructed)
}
