package commands

import (
	"errors"

	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"
	"rateshop/internal/pkg/guard"
)

var ErrSelectRateCommandIsNotConstructed = errors.New(
	"SelectRateCommand must be created via NewSelectRateCommand constructor",
)

// SelectRateCommand represents a user's explicit choice of a carrier quote
// as the active rate for a shipment and rate type. Selecting again simply
// replaces the previous choice; there is no selection history.
type SelectRateCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	rateType   kernel.RateType
	quote      rate.Quote

	guard guard.ConstructorGuard
}

// NewSelectRateCommand creates a command to set the active rate selection.
// The quote must be a constructed rate.Quote; the shipment id and rate type
// identify which selection slot it lands in.
func NewSelectRateCommand(
	shipmentID kernel.UUID,
	rateType kernel.RateType,
	quote rate.Quote,
) (SelectRateCommand, error) {
	command := SelectRateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setRateType(rateType),
		command.setQuote(quote),
	); err != nil {
		return SelectRateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectRateCommandIsNotConstructed if validation fails.
func (c SelectRateCommand) Validate() error {
	return c.guard.Validate(ErrSelectRateCommandIsNotConstructed)
}

// ShipmentID returns the shipment the selection belongs to.
func (c SelectRateCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// RateType returns the pricing context being selected for.
func (c SelectRateCommand) RateType() kernel.RateType {
	return c.rateType
}

// Quote returns the chosen quote.
func (c SelectRateCommand) Quote() rate.Quote {
	return c.quote
}

func (c *SelectRateCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *SelectRateCommand) setRateType(rateType kernel.RateType) error {
	if err := rateType.Validate(); err != nil {
		return err
	}

	c.rateType = rateType
	return nil
}

func (c *SelectRateCommand) setQuote(quote rate.Quote) error {
	if err := quote.Validate(); err != nil {
		return err
	}

	c.quote = quote
	return nil
}
