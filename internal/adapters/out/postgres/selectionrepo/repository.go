package selectionrepo

import (
	"context"
	"errors"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/selection"
	"rateshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSelectionRepository implements SelectionRepository using GORM.
type GormSelectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSelectionRepository creates a new GORM selection repository.
func NewGormSelectionRepository(db *gorm.DB, tracker aggregateTracker) *GormSelectionRepository {
	return &GormSelectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert writes the selection, replacing any existing row for the same
// shipment and rate type. The conflict target is the composite primary key,
// so concurrent writers converge on a single row with the last write winning.
func (r *GormSelectionRepository) Upsert(ctx context.Context, aggregate *selection.ActiveRateSelection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shipment_id"}, {Name: "rate_type"}},
		DoUpdates: clause.AssignmentColumns(
			[]string{"rate_id", "carrier", "service", "price", "updated_at"},
		),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ShipmentID(), aggregate)
	return nil
}

// Get retrieves the active selection for a shipment and rate type.
func (r *GormSelectionRepository) Get(
	ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType,
) (*selection.ActiveRateSelection, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if err := rateType.Validate(); err != nil {
		return nil, err
	}

	var dto SelectionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND rate_type = ?", shipmentID.Bytes(), rateType.String()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active rate selection", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
