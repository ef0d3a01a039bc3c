// Package ratesource provides RateSource implementations. The engine never
// talks to carrier APIs directly; real aggregator clients plug in through the
// same port. The static provider generates deterministic pseudo-quotes and is
// the default for development and tests.
package ratesource

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"rateshop/internal/core/domain/model/rate"
	"rateshop/internal/core/ports"
)

// NewByName returns a RateSource by provider name.
// Unknown names fall back to the static provider.
func NewByName(name, canonicalSource string) ports.RateSource {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "static", "":
		return NewStaticProvider(canonicalSource)
	default:
		return NewStaticProvider(canonicalSource)
	}
}

// carrierService is one row of the static provider's rate card.
type carrierService struct {
	Carrier  string
	Service  string
	BaseRate float64
}

func rateCard() []carrierService {
	return []carrierService{
		{"UPS", "Ground", 11.20},
		{"UPS", "2nd Day Air", 24.60},
		{"FedEx", "Home Delivery", 12.50},
		{"FedEx", "2Day", 26.10},
		{"USPS", "Priority", 9.80},
		{"USPS", "Ground Advantage", 8.40},
		{"DHL", "Express Worldwide", 31.00},
	}
}

// StaticProvider generates pseudo-quotes seeded by the request key, so the
// same shipment and rate type always produce the same batch. Prices scale
// with weight and fluctuate within a band around the rate card.
//
// Each batch intentionally carries a duplicate offer from a second source,
// exercising the dedup path the same way a multi-aggregator fetch would.
type StaticProvider struct {
	canonicalSource string
}

// NewStaticProvider creates the deterministic local provider.
// canonicalSource is stamped on the duplicate offers it emits.
func NewStaticProvider(canonicalSource string) *StaticProvider {
	return &StaticProvider{canonicalSource: canonicalSource}
}

// FetchQuotes generates the quote batch for the request.
func (p *StaticProvider) FetchQuotes(
	_ context.Context, request ports.RateFetchRequest,
) ([]rate.RawQuote, error) {
	key := request.ShipmentID.String() + "|" + request.RateType.String()
	rng := rand.New(rand.NewSource(hashSeed(key)))

	weight := request.Dimensions.Weight
	international := request.Destination.Country != "" &&
		!strings.EqualFold(request.Destination.Country, "US")

	card := rateCard()
	quotes := make([]rate.RawQuote, 0, len(card)+1)
	for i, cs := range card {
		amount := cs.BaseRate + weight*0.55
		amount += amount * (rng.Float64() - 0.5) * 0.2
		if international {
			amount += 14.0
		}

		quotes = append(quotes, rate.RawQuote{
			ID:      fmt.Sprintf("%s-%d", request.ShipmentID.String()[:8], i),
			Carrier: cs.Carrier,
			Service: cs.Service,
			Price:   fmt.Sprintf("%.2f", amount),
			Source:  "RateCard",
		})
	}

	// duplicate the first offer under the canonical source
	duplicate := quotes[0]
	duplicate.ID = duplicate.ID + "-c"
	duplicate.Source = p.canonicalSource
	quotes = append(quotes, duplicate)

	return quotes, nil
}

func hashSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
