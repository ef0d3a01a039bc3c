package queries

import (
	"context"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"

	"gorm.io/gorm"
)

// GetRateViewQueryHandler reads the persisted quote batch and re-runs the
// best-rate selector over it. The selector is deterministic, so recomputing
// on read always yields the same ranking the fetch produced, without storing
// derived flags.
type GetRateViewQueryHandler struct {
	db              *gorm.DB
	canonicalSource string
}

// NewGetRateViewQueryHandler creates a handler for rate view queries.
// Requires a GORM database connection for query execution.
func NewGetRateViewQueryHandler(db *gorm.DB, canonicalSource string) GetRateViewQueryHandler {
	return GetRateViewQueryHandler{db: db, canonicalSource: canonicalSource}
}

// Handle executes the query and assembles the rate view.
// Returns rate.ErrNoRatesAvailable when no batch is persisted for the key.
func (h GetRateViewQueryHandler) Handle(
	ctx context.Context,
	query GetRateViewQuery,
) (GetRateViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRateViewQueryResponse{}, err
	}

	quotes := make([]rate.Quote, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rate_id,
			carrier,
			service,
			price,
			source
		FROM quotes
		WHERE shipment_id = ? AND rate_type = ?
		ORDER BY position
	`, query.ShipmentID().String(), query.RateType().String()).Rows()
	if err != nil {
		return GetRateViewQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var rateID, carrier, service, priceStr, source string

		if err = rows.Scan(&rateID, &carrier, &service, &priceStr, &source); err != nil {
			return GetRateViewQueryResponse{}, err
		}

		price, priceErr := kernel.NewPriceFromString(priceStr)
		if priceErr != nil {
			return GetRateViewQueryResponse{}, priceErr
		}

		quote, quoteErr := rate.NewQuote(rateID, carrier, service, price, source)
		if quoteErr != nil {
			return GetRateViewQueryResponse{}, quoteErr
		}

		quotes = append(quotes, quote)
	}

	if err = rows.Err(); err != nil {
		return GetRateViewQueryResponse{}, err
	}

	selected, err := rate.Select(rate.NewGrouping(quotes, h.canonicalSource))
	if err != nil {
		return GetRateViewQueryResponse{}, err
	}

	return mapSelectionResponse(selected), nil
}

func mapSelectionResponse(selected rate.Selection) GetRateViewQueryResponse {
	response := GetRateViewQueryResponse{
		GlobalCheapest: mapRateItem(selected.GlobalCheapest),
		Carriers:       make([]CarrierGroupResponse, 0, len(selected.Groups)),
	}

	for _, group := range selected.Groups {
		groupResp := CarrierGroupResponse{
			Carrier:       group.Carrier,
			CheapestPrice: group.CheapestPrice.Float64(),
			Rates:         make([]RateItemResponse, 0, len(group.Rates)),
		}
		for _, ranked := range group.Rates {
			groupResp.Rates = append(groupResp.Rates, mapRateItem(ranked))
		}
		response.Carriers = append(response.Carriers, groupResp)
	}

	return response
}

func mapRateItem(ranked rate.RankedQuote) RateItemResponse {
	return RateItemResponse{
		RateID:              ranked.ID(),
		Carrier:             ranked.Carrier(),
		Service:             ranked.Service(),
		Price:               ranked.Price().Float64(),
		IsCheapestInCarrier: ranked.IsCheapestInCarrier,
		IsGlobalCheapest:    ranked.IsGlobalCheapest,
	}
}
