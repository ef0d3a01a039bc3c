package selection

import (
	"errors"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"
)

// ErrActiveRateSelectionIsNotConstructed is returned when an
// ActiveRateSelection was not created through its factory methods.
var ErrActiveRateSelectionIsNotConstructed = errors.New(
	"ActiveRateSelection must be created via NewActiveRateSelection or RestoreActiveRateSelection")

// ActiveRateSelection records which quote is currently active for one
// shipment in one rate-type context. It is the only durable entity the
// engine mutates.
//
// Invariants:
//   - Identity is the (shipment id, rate type) pair; a shipment carries at
//     most one selection per rate type, and the two contexts never affect
//     each other.
//   - Every write overwrites the previous state in full: last write wins,
//     no merge, no history.
//   - The carried quote fields always describe a valid quote.
type ActiveRateSelection struct {
	shipmentID kernel.UUID
	rateType   kernel.RateType

	carrier string
	service string
	rateID  string
	price   kernel.Price

	isConstructed bool
}

// NewActiveRateSelection creates the selection produced by a user picking a
// quote (or by the automatic best-rate pick after a fetch).
func NewActiveRateSelection(
	shipmentID kernel.UUID,
	rateType kernel.RateType,
	quote rate.Quote,
) (*ActiveRateSelection, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		rateType.Validate(),
		quote.Validate(),
	); err != nil {
		return nil, err
	}

	s := &ActiveRateSelection{
		shipmentID:    shipmentID,
		rateType:      rateType,
		isConstructed: true,
	}
	s.apply(quote)
	return s, nil
}

// RestoreActiveRateSelection rehydrates a selection from persistence.
// The stored quote fields are revalidated through the Quote constructor so a
// corrupted row cannot produce an invalid aggregate.
func RestoreActiveRateSelection(
	shipmentID kernel.UUID,
	rateType kernel.RateType,
	carrier, service, rateID string,
	price kernel.Price,
) (*ActiveRateSelection, error) {
	quote, err := rate.NewQuote(rateID, carrier, service, price, "")
	if err != nil {
		return nil, err
	}
	return NewActiveRateSelection(shipmentID, rateType, quote)
}

// Validate ensures the selection was created through a factory method.
func (s *ActiveRateSelection) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrActiveRateSelectionIsNotConstructed
	}
	return nil
}

// ShipmentID returns the owning shipment's identifier.
func (s *ActiveRateSelection) ShipmentID() kernel.UUID {
	return s.shipmentID
}

// RateType returns the pricing context this selection belongs to.
func (s *ActiveRateSelection) RateType() kernel.RateType {
	return s.rateType
}

// Carrier returns the selected quote's carrier.
func (s *ActiveRateSelection) Carrier() string {
	return s.carrier
}

// Service returns the selected quote's service level.
func (s *ActiveRateSelection) Service() string {
	return s.service
}

// RateID returns the upstream id of the selected quote.
func (s *ActiveRateSelection) RateID() string {
	return s.rateID
}

// Price returns the selected quote's price.
func (s *ActiveRateSelection) Price() kernel.Price {
	return s.price
}

// IsEqual compares two selections by identity: shipment id and rate type.
func (s *ActiveRateSelection) IsEqual(other *ActiveRateSelection) bool {
	return other != nil &&
		s.shipmentID.IsEqual(other.shipmentID) &&
		s.rateType == other.rateType
}

// Select replaces the active quote with a new one. The overwrite is
// unconditional: selecting the quote that is already active is a no-op with
// identical resulting state, so repeated selections are idempotent.
func (s *ActiveRateSelection) Select(quote rate.Quote) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := quote.Validate(); err != nil {
		return err
	}

	s.apply(quote)
	return nil
}

// SameQuote reports whether the given quote is the one currently active,
// comparing carrier, service, rate id, and price.
func (s *ActiveRateSelection) SameQuote(quote rate.Quote) bool {
	return s.carrier == quote.Carrier() &&
		s.service == quote.Service() &&
		s.rateID == quote.ID() &&
		s.price.IsEqual(quote.Price())
}

func (s *ActiveRateSelection) apply(quote rate.Quote) {
	s.carrier = quote.Carrier()
	s.service = quote.Service()
	s.rateID = quote.ID()
	s.price = quote.Price()
}
