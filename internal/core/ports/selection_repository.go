// Package ports defines repository and gateway interfaces for the rate domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/selection"
)

// SelectionRepository defines the persistence contract for active rate selections.
// A shipment carries at most one selection per rate type, so writes are upserts
// keyed by (shipment, rate type).
type SelectionRepository interface {
	// Upsert persists the selection, replacing any existing row for the same
	// shipment and rate type. Re-persisting an identical selection is a no-op
	// at the domain level.
	Upsert(ctx context.Context, aggregate *selection.ActiveRateSelection) error

	// Get retrieves the active selection for a shipment and rate type.
	// Returns errs.ObjectNotFoundError when no selection has been made.
	Get(ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType) (*selection.ActiveRateSelection, error)
}
