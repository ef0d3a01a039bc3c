package dimensions_test

import (
	"testing"

	"rateshop/internal/core/domain/model/dimensions"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("10x10x10 at 10lb exceeds the 691 tier", func(t *testing.T) {
		result := dimensions.Classify(dimensions.NewDimensionSet(10, 10, 10, 10.5))

		assert.Equal(t, 1000.0, result.CubicSize)
		assert.True(t, result.OverLimit)
		assert.True(t, result.Applicable())
	})

	t.Run("5x5x5 at 3lb is within the 172 tier", func(t *testing.T) {
		result := dimensions.Classify(dimensions.NewDimensionSet(5, 5, 5, 3))

		assert.Equal(t, 125.0, result.CubicSize)
		assert.False(t, result.OverLimit)
		assert.True(t, result.Applicable())
	})

	t.Run("zero cubic size is not applicable, not within limit", func(t *testing.T) {
		result := dimensions.Classify(dimensions.NewDimensionSet(0, 0, 0, 5))

		assert.Equal(t, 0.0, result.CubicSize)
		assert.False(t, result.OverLimit)
		assert.False(t, result.Applicable())
	})

	t.Run("tier boundaries are inclusive upper bounds", func(t *testing.T) {
		cases := []struct {
			weight float64
			cubic  float64 // side^3 chosen just above the tier limit
			over   bool
		}{
			{weight: 5, cubic: 172, over: false},    // at limit, not over
			{weight: 5, cubic: 172.1, over: true},   // just above
			{weight: 5.01, cubic: 173, over: false}, // next tier, higher limit
			{weight: 8, cubic: 346, over: true},
			{weight: 10, cubic: 519, over: true},
			{weight: 15, cubic: 692, over: true},
			{weight: 20, cubic: 865, over: true},
			{weight: 20, cubic: 864, over: false},
		}

		for _, tc := range cases {
			// A 1x1xN box gives an exact cubic size.
			result := dimensions.Classify(dimensions.NewDimensionSet(1, 1, tc.cubic, tc.weight))
			assert.Equal(t, tc.over, result.OverLimit,
				"weight %g cubic %g", tc.weight, tc.cubic)
		}
	})

	t.Run("heavy packages are always over regardless of cubic size", func(t *testing.T) {
		result := dimensions.Classify(dimensions.NewDimensionSet(1, 1, 1, 30))

		assert.Equal(t, 1.0, result.CubicSize)
		assert.True(t, result.OverLimit)
	})

	t.Run("weights in the dead zone above the last tier stay unflagged", func(t *testing.T) {
		result := dimensions.Classify(dimensions.NewDimensionSet(20, 20, 20, 20.005))

		assert.True(t, result.Applicable())
		assert.False(t, result.OverLimit)
	})

	t.Run("just past the heavy cutoff flips to over", func(t *testing.T) {
		result := dimensions.Classify(dimensions.NewDimensionSet(1, 1, 1, 20.02))

		assert.True(t, result.OverLimit)
	})
}
