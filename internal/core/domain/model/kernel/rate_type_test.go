package kernel_test

import (
	"testing"

	"rateshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTypeFromString(t *testing.T) {
	t.Run("parses declared code", func(t *testing.T) {
		rt, err := kernel.RateTypeFromString("D")

		require.NoError(t, err)
		assert.Equal(t, kernel.RateTypeDeclared, rt)
	})

	t.Run("parses measured code", func(t *testing.T) {
		rt, err := kernel.RateTypeFromString("O")

		require.NoError(t, err)
		assert.Equal(t, kernel.RateTypeMeasured, rt)
	})

	t.Run("rejects unknown codes", func(t *testing.T) {
		for _, input := range []string{"", "d", "o", "X", "declared"} {
			_, err := kernel.RateTypeFromString(input)
			require.Error(t, err, "input %q", input)
		}
	})
}

func TestRateType_Validate(t *testing.T) {
	require.NoError(t, kernel.RateTypeDeclared.Validate())
	require.NoError(t, kernel.RateTypeMeasured.Validate())
	require.Error(t, kernel.RateTypeUnknown.Validate())
	require.Error(t, kernel.RateType(99).Validate())
}

func TestRateType_String(t *testing.T) {
	assert.Equal(t, "D", kernel.RateTypeDeclared.String())
	assert.Equal(t, "O", kernel.RateTypeMeasured.String())
	assert.Equal(t, "Unknown", kernel.RateTypeUnknown.String())
	assert.Equal(t, "Unknown", kernel.RateType(42).String())
}
