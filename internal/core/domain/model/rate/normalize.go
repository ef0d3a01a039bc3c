package rate

import (
	"strings"

	"rateshop/internal/core/domain/model/kernel"
)

// Grouping holds one shipment's deduplicated quotes grouped by carrier.
// Carriers keep the order in which they were first encountered in the raw
// batch, and quotes within a carrier keep their insertion order, so the same
// input always yields the same grouping. Global ordering across carriers is
// imposed later by Select, not here.
type Grouping struct {
	carriers []string
	byCarrier map[string][]Quote
}

// Carriers returns the carrier names in first-encounter order.
func (g Grouping) Carriers() []string {
	out := make([]string, len(g.carriers))
	copy(out, g.carriers)
	return out
}

// Quotes returns the deduplicated quotes for carrier in insertion order.
// Returns nil for a carrier not present in the grouping.
func (g Grouping) Quotes(carrier string) []Quote {
	quotes, ok := g.byCarrier[carrier]
	if !ok {
		return nil
	}
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}

// Size returns the total number of deduplicated quotes across all carriers.
func (g Grouping) Size() int {
	n := 0
	for _, quotes := range g.byCarrier {
		n += len(quotes)
	}
	return n
}

// IsEmpty reports whether the grouping holds no quotes at all.
func (g Grouping) IsEmpty() bool {
	return g.Size() == 0
}

// NewGrouping builds a Grouping from already-validated quotes, applying the
// same carrier ordering and deduplication rules as Normalize. Used when
// rehydrating a persisted batch.
func NewGrouping(quotes []Quote, canonicalSource string) Grouping {
	g := Grouping{byCarrier: make(map[string][]Quote)}
	for _, q := range quotes {
		g.add(q, canonicalSource)
	}
	return g
}

// Normalize ingests a raw quote batch for one shipment and collapses it into
// a carrier Grouping.
//
// Quotes missing carrier, service or a parseable non-negative price are
// dropped silently: a malformed quote from one source must not block valid
// quotes from another carrier. Within a carrier, duplicates of the same
// service offer (service + price rounded to two decimals) collapse to one
// entry; when duplicates disagree on source, the one from canonicalSource
// (compared case-insensitively) wins, otherwise the first encountered is
// kept. Normalization is idempotent: normalizing the same batch twice yields
// an identical grouping.
func Normalize(batch []RawQuote, canonicalSource string) Grouping {
	g := Grouping{byCarrier: make(map[string][]Quote)}

	for _, raw := range batch {
		price, err := kernel.NewPriceFromString(raw.Price)
		if err != nil {
			continue
		}
		quote, err := NewQuote(raw.ID, raw.Carrier, raw.Service, price, raw.Source)
		if err != nil {
			continue
		}
		g.add(quote, canonicalSource)
	}

	return g
}

// add inserts a quote into the grouping, enforcing the dedup rules.
// The position of a deduplicated entry never changes: a canonical-source
// replacement swaps the quote in place.
func (g *Grouping) add(quote Quote, canonicalSource string) {
	quotes, seen := g.byCarrier[quote.Carrier()]
	if !seen {
		g.carriers = append(g.carriers, quote.Carrier())
	}

	for i, existing := range quotes {
		if existing.dedupKey() != quote.dedupKey() {
			continue
		}
		if isCanonicalSource(quote, canonicalSource) && !isCanonicalSource(existing, canonicalSource) {
			quotes[i] = quote
		}
		return
	}

	g.byCarrier[quote.Carrier()] = append(quotes, quote)
}

func isCanonicalSource(q Quote, canonicalSource string) bool {
	return canonicalSource != "" && strings.EqualFold(q.Source(), canonicalSource)
}
