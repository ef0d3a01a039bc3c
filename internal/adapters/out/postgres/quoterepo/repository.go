package quoterepo

import (
	"context"
	"time"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"

	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM.
// Quotes are value rows, not aggregates, so no tracking is involved.
type GormQuoteRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:  db,
		now: time.Now,
	}
}

// ReplaceBatch deletes the stored batch for the key and writes the given
// quotes in order. Caller is expected to run this inside a transaction so a
// concurrent read never observes the gap between delete and insert.
func (r *GormQuoteRepository) ReplaceBatch(
	ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType, quotes []rate.Quote,
) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if err := rateType.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("shipment_id = ? AND rate_type = ?", shipmentID.Bytes(), rateType.String()).
		Delete(&QuoteDTO{}).Error
	if err != nil {
		return err
	}

	if len(quotes) == 0 {
		return nil
	}

	fetchedAt := r.now().UTC()
	dtos := make([]QuoteDTO, 0, len(quotes))
	for i, quote := range quotes {
		if err = quote.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(shipmentID, rateType, i, quote, fetchedAt))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetBatch retrieves the stored quotes for a shipment and rate type in
// normalization order.
func (r *GormQuoteRepository) GetBatch(
	ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType,
) ([]rate.Quote, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if err := rateType.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuoteDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ? AND rate_type = ?", shipmentID.Bytes(), rateType.String()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]rate.Quote, 0, len(dtos))
	for _, dto := range dtos {
		quote, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

// DeleteOlderThan removes quotes fetched before the cutoff and reports the count.
func (r *GormQuoteRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("fetched_at < ?", cutoff).
		Delete(&QuoteDTO{})

	return result.RowsAffected, result.Error
}
