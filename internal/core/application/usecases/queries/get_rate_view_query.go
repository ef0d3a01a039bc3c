// Package queries contains read-only operations for retrieving rate data.
// Implements the Query side of the CQRS architecture: handlers read persisted
// state directly (raw SQL over GORM) or compute pure domain projections,
// bypassing the unit of work used by commands.
package queries

import (
	"errors"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/pkg/guard"
)

var ErrGetRateViewQueryIsNotConstructed = errors.New(
	"GetRateViewQuery must be created via NewGetRateViewQuery constructor",
)

// GetRateViewQuery retrieves the rate-shopping view for a shipment and rate
// type: the top quotes per carrier plus the global cheapest, recomputed from
// the persisted batch so the view always matches what was fetched.
//
// Example:
//
//	query, err := NewGetRateViewQuery(shipmentID, kernel.RateTypeDeclared)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, rate.ErrNoRatesAvailable) {
//	    // no batch fetched yet, or it expired
//	}
type GetRateViewQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	rateType   kernel.RateType

	guard guard.ConstructorGuard
}

// NewGetRateViewQuery creates a query for a shipment's rate view.
func NewGetRateViewQuery(shipmentID kernel.UUID, rateType kernel.RateType) (GetRateViewQuery, error) {
	query := GetRateViewQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setShipmentID(shipmentID),
		query.setRateType(rateType),
	); err != nil {
		return GetRateViewQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRateViewQueryIsNotConstructed if validation fails.
func (q GetRateViewQuery) Validate() error {
	return q.guard.Validate(ErrGetRateViewQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose rates are requested.
func (q GetRateViewQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// RateType returns the pricing context the view covers.
func (q GetRateViewQuery) RateType() kernel.RateType {
	return q.rateType
}

func (q *GetRateViewQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}

func (q *GetRateViewQuery) setRateType(rateType kernel.RateType) error {
	if err := rateType.Validate(); err != nil {
		return err
	}

	q.rateType = rateType
	return nil
}

// RateItemResponse is one ranked quote in the rate view.
type RateItemResponse struct {
	RateID              string
	Carrier             string
	Service             string
	Price               float64
	IsCheapestInCarrier bool
	IsGlobalCheapest    bool
}

// CarrierGroupResponse is one carrier's ranked quotes, cheapest first.
type CarrierGroupResponse struct {
	Carrier       string
	CheapestPrice float64
	Rates         []RateItemResponse
}

// GetRateViewQueryResponse is the full rate-shopping view: carrier groups
// ordered by their cheapest price, plus the global cheapest quote.
type GetRateViewQueryResponse struct {
	GlobalCheapest RateItemResponse
	Carriers       []CarrierGroupResponse
}
