package rate_test

import (
	"testing"

	"rateshop/internal/core/domain/model/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalSource = "ShipStation"

func TestNormalize_DropsMalformedQuotes(t *testing.T) {
	batch := []rate.RawQuote{
		{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00"},
		{ID: "r-2", Carrier: "", Service: "Ground", Price: "9.00"},       // missing carrier
		{ID: "r-3", Carrier: "UPS", Service: "", Price: "8.00"},          // missing service
		{ID: "r-4", Carrier: "UPS", Service: "Express", Price: ""},      // missing price
		{ID: "r-5", Carrier: "UPS", Service: "Express", Price: "oops"},  // malformed price
		{ID: "r-6", Carrier: "UPS", Service: "Express", Price: "-1.00"}, // negative price
		{ID: "r-7", Carrier: "FedEx", Service: "2Day", Price: "18.40"},
	}

	g := rate.Normalize(batch, canonicalSource)

	assert.Equal(t, []string{"UPS", "FedEx"}, g.Carriers())
	assert.Equal(t, 2, g.Size())
	require.Len(t, g.Quotes("UPS"), 1)
	assert.Equal(t, "r-1", g.Quotes("UPS")[0].ID())
}

func TestNormalize_DeduplicatesSameOffer(t *testing.T) {
	t.Run("collapses duplicates preferring the canonical source", func(t *testing.T) {
		batch := []rate.RawQuote{
			{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "karrio"},
			{ID: "r-2", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "ShipStation"},
			{ID: "r-3", Carrier: "FedEx", Service: "Express", Price: "25.00", Source: "karrio"},
		}

		g := rate.Normalize(batch, canonicalSource)

		ups := g.Quotes("UPS")
		require.Len(t, ups, 1)
		assert.Equal(t, "r-2", ups[0].ID(), "canonical-source duplicate wins")
	})

	t.Run("canonical source comparison is case-insensitive", func(t *testing.T) {
		batch := []rate.RawQuote{
			{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "other"},
			{ID: "r-2", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "SHIPSTATION"},
		}

		g := rate.Normalize(batch, canonicalSource)

		require.Len(t, g.Quotes("UPS"), 1)
		assert.Equal(t, "r-2", g.Quotes("UPS")[0].ID())
	})

	t.Run("keeps the first encountered when neither matches", func(t *testing.T) {
		batch := []rate.RawQuote{
			{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "a"},
			{ID: "r-2", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "b"},
		}

		g := rate.Normalize(batch, canonicalSource)

		require.Len(t, g.Quotes("UPS"), 1)
		assert.Equal(t, "r-1", g.Quotes("UPS")[0].ID())
	})

	t.Run("keeps the first encountered when both match", func(t *testing.T) {
		batch := []rate.RawQuote{
			{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "ShipStation"},
			{ID: "r-2", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "shipstation"},
		}

		g := rate.Normalize(batch, canonicalSource)

		require.Len(t, g.Quotes("UPS"), 1)
		assert.Equal(t, "r-1", g.Quotes("UPS")[0].ID())
	})

	t.Run("replacement preserves the duplicate's position", func(t *testing.T) {
		batch := []rate.RawQuote{
			{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "a"},
			{ID: "r-2", Carrier: "UPS", Service: "Express", Price: "20.00", Source: "a"},
			{ID: "r-3", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "ShipStation"},
		}

		g := rate.Normalize(batch, canonicalSource)

		ups := g.Quotes("UPS")
		require.Len(t, ups, 2)
		assert.Equal(t, "r-3", ups[0].ID())
		assert.Equal(t, "r-2", ups[1].ID())
	})

	t.Run("prices equal after rounding are duplicates", func(t *testing.T) {
		batch := []rate.RawQuote{
			{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10", Source: "a"},
			{ID: "r-2", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "a"},
		}

		g := rate.Normalize(batch, canonicalSource)

		assert.Len(t, g.Quotes("UPS"), 1)
	})
}

func TestNormalize_Idempotence(t *testing.T) {
	batch := []rate.RawQuote{
		{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "a"},
		{ID: "r-2", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "ShipStation"},
		{ID: "r-3", Carrier: "FedEx", Service: "Express", Price: "25.00", Source: "a"},
		{ID: "r-4", Carrier: "USPS", Service: "Priority", Price: "9.80", Source: "a"},
	}

	first := rate.Normalize(batch, canonicalSource)
	second := rate.Normalize(batch, canonicalSource)

	assert.Equal(t, first.Carriers(), second.Carriers())
	assert.Equal(t, first.Size(), second.Size())
	for _, carrier := range first.Carriers() {
		assert.Equal(t, first.Quotes(carrier), second.Quotes(carrier), "carrier %s", carrier)
	}
}

func TestNewGrouping_MatchesNormalize(t *testing.T) {
	// Rehydrating persisted quotes must regroup identically to the original
	// normalization.
	batch := []rate.RawQuote{
		{ID: "r-1", Carrier: "UPS", Service: "Ground", Price: "10.00", Source: "a"},
		{ID: "r-2", Carrier: "FedEx", Service: "Express", Price: "25.00", Source: "a"},
	}
	normalized := rate.Normalize(batch, canonicalSource)

	var flat []rate.Quote
	for _, carrier := range normalized.Carriers() {
		flat = append(flat, normalized.Quotes(carrier)...)
	}
	rebuilt := rate.NewGrouping(flat, canonicalSource)

	assert.Equal(t, normalized.Carriers(), rebuilt.Carriers())
	for _, carrier := range normalized.Carriers() {
		assert.Equal(t, normalized.Quotes(carrier), rebuilt.Quotes(carrier))
	}
}
