package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAddressCommand_ValidInput(t *testing.T) {
	addressID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewCreateAddressCommand(addressID, userID,
		"221B Baker Street", "Flat B", "London", "", "NW1 6XE", "GB", "+44 20 7946 0958", true)

	require.NoError(t, err)
	assert.Equal(t, addressID, cmd.AddressID())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "221B Baker Street", cmd.Line1())
	assert.Equal(t, "Flat B", cmd.Line2())
	assert.Equal(t, "London", cmd.City())
	assert.Equal(t, "NW1 6XE", cmd.PostalCode())
	assert.Equal(t, "GB", cmd.Country())
	assert.True(t, cmd.IsDefault())
}

func TestNewCreateAddressCommand_InvalidAddressID(t *testing.T) {
	_, err := commands.NewCreateAddressCommand(kernel.UUID{}, kernel.NewUUID(),
		"221B Baker Street", "", "London", "", "NW1 6XE", "GB", "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateAddressCommand_MissingRequiredFields(t *testing.T) {
	addressID := kernel.NewUUID()
	userID := kernel.NewUUID()

	tests := []struct {
		name                string
		line1               string
		city                string
		postalCode, country string
	}{
		{"empty_line1", "", "London", "NW1 6XE", "GB"},
		{"empty_city", "221B Baker Street", "", "NW1 6XE", "GB"},
		{"empty_postal_code", "221B Baker Street", "London", "", "GB"},
		{"empty_country", "221B Baker Street", "London", "NW1 6XE", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateAddressCommand(addressID, userID,
				tt.line1, "", tt.city, "", tt.postalCode, tt.country, "", false)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestCreateAddressCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateAddressCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateAddressCommandIsNotConstructed)
}
