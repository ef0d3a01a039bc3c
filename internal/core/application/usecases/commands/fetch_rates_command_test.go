package commands_test

import (
	"testing"

	"rateshop/internal/core/application/usecases/commands"
	"rateshop/internal/core/domain/model/dimensions"
	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetchRatesCommand(t *testing.T) {
	dest := ports.Destination{Zip: "30301", State: "GA", City: "Atlanta", Country: "US"}

	t.Run("creates command with complete dimensions", func(t *testing.T) {
		dims := dimensions.NewDimensionSet(10, 8, 6, 2.5)

		cmd, err := commands.NewFetchRatesCommand(
			kernel.NewUUID(), kernel.RateTypeDeclared, dims, dest)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, dims, cmd.Dims())
		assert.Equal(t, dest, cmd.Destination())
	})

	t.Run("rejects incomplete dimensions", func(t *testing.T) {
		dims := dimensions.NewDimensionSet(10, 8, 6, 0)

		_, err := commands.NewFetchRatesCommand(
			kernel.NewUUID(), kernel.RateTypeDeclared, dims, dest)

		require.ErrorIs(t, err, dimensions.ErrIncompleteDimensions)
	})

	t.Run("rejects missing side even when weight is set", func(t *testing.T) {
		dims := dimensions.NewDimensionSet(0, 8, 6, 2.5)

		_, err := commands.NewFetchRatesCommand(
			kernel.NewUUID(), kernel.RateTypeMeasured, dims, dest)

		require.ErrorIs(t, err, dimensions.ErrIncompleteDimensions)
	})

	t.Run("rejects invalid shipment id", func(t *testing.T) {
		dims := dimensions.NewDimensionSet(10, 8, 6, 2.5)

		_, err := commands.NewFetchRatesCommand(
			kernel.UUID{}, kernel.RateTypeDeclared, dims, dest)

		require.Error(t, err)
	})

	t.Run("rejects unknown rate type", func(t *testing.T) {
		dims := dimensions.NewDimensionSet(10, 8, 6, 2.5)

		_, err := commands.NewFetchRatesCommand(
			kernel.NewUUID(), kernel.RateTypeUnknown, dims, dest)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.FetchRatesCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrFetchRatesCommandIsNotConstructed)
	})
}
