package ports

import (
	"context"
	"time"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"
)

// QuoteRepository defines the persistence contract for deduplicated quote batches.
// A batch is the normalized output of one rate fetch for a shipment and rate type;
// refetching replaces the previous batch wholesale.
type QuoteRepository interface {
	// ReplaceBatch atomically deletes the stored batch for the shipment and
	// rate type and persists the given quotes in their normalized order.
	ReplaceBatch(ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType, quotes []rate.Quote) error

	// GetBatch retrieves the stored quotes for a shipment and rate type in the
	// order they were persisted. Returns an empty slice when no batch exists.
	GetBatch(ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType) ([]rate.Quote, error)

	// DeleteOlderThan removes quote batches fetched before the cutoff.
	// Returns the number of quotes removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
