package rate

import (
	"errors"
	"sort"

	"rateshop/internal/core/domain/model/kernel"
)

// ErrNoRatesAvailable is returned by Select when the grouping holds no
// quotes. Surfaced to the user as an empty-state message; never retried by
// the engine itself.
var ErrNoRatesAvailable = errors.New("no rates available")

// maxServicesPerCarrier caps how many services the carrier-choice UI shows
// per carrier before the cheapest-quote guarantee may extend a group.
const maxServicesPerCarrier = 3

// RankedQuote is a quote decorated with the presentation flags computed by
// Select.
type RankedQuote struct {
	Quote

	// IsCheapestInCarrier marks the first (cheapest) quote of its carrier group.
	IsCheapestInCarrier bool

	// IsGlobalCheapest marks any quote matching the globally cheapest offer:
	// same carrier, service, and two-decimal price.
	IsGlobalCheapest bool
}

// CarrierGroup is one carrier's ranked slice of the selection view.
// Rates are sorted ascending by price; CheapestPrice duplicates the first
// entry's price for convenient group ordering and display.
type CarrierGroup struct {
	Carrier       string
	Rates         []RankedQuote
	CheapestPrice kernel.Price
}

// Selection is the full best-rate view for one shipment: the per-carrier top
// services in presentation order plus the single globally cheapest quote.
// It is derived and transient; callers recompute it from each quote batch.
type Selection struct {
	Groups         []CarrierGroup
	GlobalCheapest RankedQuote
}

// Group returns the group for carrier, or false when absent.
func (s Selection) Group(carrier string) (CarrierGroup, bool) {
	for _, g := range s.Groups {
		if g.Carrier == carrier {
			return g, true
		}
	}
	return CarrierGroup{}, false
}

// Select computes the best-rate view over a deduplicated grouping.
//
// The algorithm:
//
//  1. Find the globally cheapest quote across every carrier, ties broken by
//     first-encounter order.
//  2. Rank each carrier's quotes ascending by price and keep the top
//     maxServicesPerCarrier.
//  3. Guarantee the global cheapest is represented in its own carrier's
//     group: when a dedup id collision left it outside the top slice, the
//     last slot is replaced if more expensive, otherwise the quote is
//     appended, and the group re-sorted.
//  4. Order carrier groups ascending by their cheapest price.
//  5. Flag each quote with IsCheapestInCarrier and IsGlobalCheapest.
//
// Only stable sorts over deterministic input orderings are used, so the same
// grouping always produces a byte-identical Selection.
//
// Returns ErrNoRatesAvailable when the grouping is empty.
func Select(g Grouping) (Selection, error) {
	if g.IsEmpty() {
		return Selection{}, ErrNoRatesAvailable
	}

	global := globalCheapest(g)

	groups := make([]CarrierGroup, 0, len(g.carriers))
	for _, carrier := range g.carriers {
		ranked := rankCarrier(carrier, g.byCarrier[carrier], global)
		if len(ranked.Rates) == 0 {
			continue
		}
		groups = append(groups, ranked)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].CheapestPrice.LessThan(groups[j].CheapestPrice)
	})

	selection := Selection{
		Groups: groups,
		GlobalCheapest: RankedQuote{
			Quote:               global,
			IsCheapestInCarrier: true,
			IsGlobalCheapest:    true,
		},
	}
	return selection, nil
}

// globalCheapest scans the whole grouping in deterministic order and returns
// the quote with the minimum price; the first encountered wins ties.
func globalCheapest(g Grouping) Quote {
	var best Quote
	found := false
	for _, carrier := range g.carriers {
		for _, q := range g.byCarrier[carrier] {
			if !found || q.Price().LessThan(best.Price()) {
				best = q
				found = true
			}
		}
	}
	return best
}

// rankCarrier sorts one carrier's quotes, truncates to the top services, and
// applies the global-cheapest representation guarantee plus the UI flags.
func rankCarrier(carrier string, quotes []Quote, global Quote) CarrierGroup {
	if len(quotes) == 0 {
		return CarrierGroup{Carrier: carrier}
	}

	sorted := make([]Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price().LessThan(sorted[j].Price())
	})

	top := sorted
	if len(top) > maxServicesPerCarrier {
		top = top[:maxServicesPerCarrier]
	}

	// The global cheapest must appear in its own carrier's group. By
	// construction it is already first after the sort, but a dedup collision
	// resolving to a different id with an identical price can leave the
	// matching offer outside the slice; guard that case.
	if global.Carrier() == carrier && !containsOffer(top, global) {
		last := len(top) - 1
		if global.Price().LessThan(top[last].Price()) {
			top[last] = global
		} else {
			top = append(top, global)
		}
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Price().LessThan(top[j].Price())
		})
	}

	rates := make([]RankedQuote, len(top))
	for i, q := range top {
		rates[i] = RankedQuote{
			Quote:               q,
			IsCheapestInCarrier: i == 0,
			IsGlobalCheapest:    q.Carrier() == global.Carrier() && q.SameOffer(global),
		}
	}

	return CarrierGroup{
		Carrier:       carrier,
		Rates:         rates,
		CheapestPrice: top[0].Price(),
	}
}

// containsOffer reports whether any quote in the slice is the same service
// offer as target.
func containsOffer(quotes []Quote, target Quote) bool {
	for _, q := range quotes {
		if q.SameOffer(target) {
			return true
		}
	}
	return false
}
