package queries

import (
	"errors"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/pkg/guard"
)

var ErrGetActiveSelectionQueryIsNotConstructed = errors.New(
	"GetActiveSelectionQuery must be created via NewGetActiveSelectionQuery constructor",
)

// GetActiveSelectionQuery retrieves the currently selected rate for a
// shipment and rate type.
type GetActiveSelectionQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	rateType   kernel.RateType

	guard guard.ConstructorGuard
}

// NewGetActiveSelectionQuery creates a query for a shipment's active selection.
func NewGetActiveSelectionQuery(
	shipmentID kernel.UUID, rateType kernel.RateType,
) (GetActiveSelectionQuery, error) {
	query := GetActiveSelectionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setShipmentID(shipmentID),
		query.setRateType(rateType),
	); err != nil {
		return GetActiveSelectionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveSelectionQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSelectionQueryIsNotConstructed)
}

// ShipmentID returns the shipment the selection belongs to.
func (q GetActiveSelectionQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// RateType returns the pricing context of the selection.
func (q GetActiveSelectionQuery) RateType() kernel.RateType {
	return q.rateType
}

func (q *GetActiveSelectionQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}

func (q *GetActiveSelectionQuery) setRateType(rateType kernel.RateType) error {
	if err := rateType.Validate(); err != nil {
		return err
	}

	q.rateType = rateType
	return nil
}

// GetActiveSelectionQueryResponse is the active rate choice for one
// (shipment, rate type) slot.
type GetActiveSelectionQueryResponse struct {
	ShipmentID kernel.UUID
	RateType   kernel.RateType
	RateID     string
	Carrier    string
	Service    string
	Price      float64
}
