package queries

import (
	"context"
	"database/sql"
	"errors"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetActiveSelectionQueryHandler retrieves the active rate selection from the
// database, bypassing the domain aggregate for a cheap read.
type GetActiveSelectionQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveSelectionQueryHandler creates a handler for active selection queries.
// Requires a GORM database connection for query execution.
func NewGetActiveSelectionQueryHandler(db *gorm.DB) GetActiveSelectionQueryHandler {
	return GetActiveSelectionQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when no selection exists for the key.
func (h GetActiveSelectionQueryHandler) Handle(
	ctx context.Context,
	query GetActiveSelectionQuery,
) (GetActiveSelectionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveSelectionQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			rate_id,
			carrier,
			service,
			price
		FROM active_rate_selections
		WHERE shipment_id = ? AND rate_type = ?
	`, query.ShipmentID().String(), query.RateType().String()).Row()

	var rateID, carrier, service, priceStr string
	err := row.Scan(&rateID, &carrier, &service, &priceStr)
	if errors.Is(err, sql.ErrNoRows) {
		return GetActiveSelectionQueryResponse{},
			errs.NewObjectNotFoundError("active rate selection", query.ShipmentID())
	}
	if err != nil {
		return GetActiveSelectionQueryResponse{}, err
	}

	price, err := kernel.NewPriceFromString(priceStr)
	if err != nil {
		return GetActiveSelectionQueryResponse{}, err
	}

	return GetActiveSelectionQueryResponse{
		ShipmentID: query.ShipmentID(),
		RateType:   query.RateType(),
		RateID:     rateID,
		Carrier:    carrier,
		Service:    service,
		Price:      price.Float64(),
	}, nil
}
