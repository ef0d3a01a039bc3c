package ports

import (
	"context"

	"rateshop/internal/core/domain/model/dimensions"
	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"
)

// Destination is the delivery address a rate request is quoted against.
type Destination struct {
	Zip     string
	State   string
	City    string
	Country string
}

// RateFetchRequest carries everything a provider needs to quote a shipment.
type RateFetchRequest struct {
	ShipmentID  kernel.UUID
	RateType    kernel.RateType
	Dimensions  dimensions.DimensionSet
	Destination Destination
}

// RateSource is the outbound gateway to an external rate provider.
// Implementations return raw, possibly duplicated quotes; normalization
// happens in the domain layer.
type RateSource interface {
	// FetchQuotes requests quotes for the shipment from the provider.
	// An empty result with a nil error means the provider had no offers.
	FetchQuotes(ctx context.Context, request RateFetchRequest) ([]rate.RawQuote, error)
}
