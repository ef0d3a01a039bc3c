package kernel_test

import (
	"testing"

	"rateshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price from decimal", func(t *testing.T) {
		p, err := kernel.NewPrice(decimal.RequireFromString("10.5"))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "10.50", p.Key())
	})

	t.Run("should accept zero", func(t *testing.T) {
		p, err := kernel.NewPrice(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", p.Key())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(decimal.RequireFromString("-0.01"))
		require.Error(t, err)
	})
}

func TestNewPriceFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		p, err := kernel.NewPriceFromString("25.00")

		require.NoError(t, err)
		assert.Equal(t, "25.00", p.Key())
	})

	t.Run("should reject malformed string", func(t *testing.T) {
		_, err := kernel.NewPriceFromString("not-a-price")
		require.Error(t, err)
	})

	t.Run("should reject negative string", func(t *testing.T) {
		_, err := kernel.NewPriceFromString("-3.50")
		require.Error(t, err)
	})
}

func TestPrice_Key(t *testing.T) {
	t.Run("rounds to two decimal places", func(t *testing.T) {
		p, err := kernel.NewPriceFromString("10.005")
		require.NoError(t, err)

		// Bankers-free half-up rounding per decimal.StringFixed.
		assert.Equal(t, "10.01", p.Key())
	})

	t.Run("equal keys identify the same offer amount", func(t *testing.T) {
		a, _ := kernel.NewPriceFromString("10")
		b, _ := kernel.NewPriceFromString("10.00")

		assert.Equal(t, a.Key(), b.Key())
		assert.True(t, a.IsEqual(b))
	})
}

func TestPrice_Comparison(t *testing.T) {
	cheap, _ := kernel.NewPriceFromString("9.99")
	dear, _ := kernel.NewPriceFromString("25.00")

	assert.True(t, cheap.LessThan(dear))
	assert.False(t, dear.LessThan(cheap))
	assert.Equal(t, -1, cheap.Cmp(dear))
	assert.Equal(t, 1, dear.Cmp(cheap))
	assert.Equal(t, 0, cheap.Cmp(cheap))
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.Price
		require.Error(t, p.Validate())
	})
}
