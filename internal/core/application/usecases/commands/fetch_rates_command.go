package commands

import (
	"errors"

	"rateshop/internal/core/domain/model/dimensions"
	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/ports"
	"rateshop/internal/pkg/guard"
)

var ErrFetchRatesCommandIsNotConstructed = errors.New(
	"FetchRatesCommand must be created via NewFetchRatesCommand constructor",
)

// FetchRatesCommand represents a request to fetch fresh carrier quotes for a
// shipment under one rate type. The dimensions are validated at construction:
// a shipment with any zero side or weight cannot be rated, so the command
// fails fast instead of burning a provider call.
//
// Example:
//
//	dims := dimensions.NewDimensionSet(10, 10, 10, 2.5)
//	cmd, err := NewFetchRatesCommand(shipmentID, kernel.RateTypeDeclared, dims, dest)
//	if errors.Is(err, dimensions.ErrIncompleteDimensions) {
//	    // shipment not ready to rate yet
//	}
type FetchRatesCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	rateType    kernel.RateType
	dims        dimensions.DimensionSet
	destination ports.Destination

	guard guard.ConstructorGuard
}

// NewFetchRatesCommand creates a command to fetch rates for a shipment.
// Returns dimensions.ErrIncompleteDimensions when any dimension or the weight
// is missing; callers surface that as a client error, not a provider failure.
func NewFetchRatesCommand(
	shipmentID kernel.UUID,
	rateType kernel.RateType,
	dims dimensions.DimensionSet,
	destination ports.Destination,
) (FetchRatesCommand, error) {
	command := FetchRatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setRateType(rateType),
		command.setDims(dims),
	); err != nil {
		return FetchRatesCommand{}, err
	}

	command.destination = destination
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFetchRatesCommandIsNotConstructed if validation fails.
func (c FetchRatesCommand) Validate() error {
	return c.guard.Validate(ErrFetchRatesCommandIsNotConstructed)
}

// ShipmentID returns the shipment being rated.
func (c FetchRatesCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// RateType returns the pricing context the quotes apply to.
func (c FetchRatesCommand) RateType() kernel.RateType {
	return c.rateType
}

// Dims returns the resolved dimensions the provider is quoted against.
func (c FetchRatesCommand) Dims() dimensions.DimensionSet {
	return c.dims
}

// Destination returns the ship-to address.
func (c FetchRatesCommand) Destination() ports.Destination {
	return c.destination
}

func (c *FetchRatesCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *FetchRatesCommand) setRateType(rateType kernel.RateType) error {
	if err := rateType.Validate(); err != nil {
		return err
	}

	c.rateType = rateType
	return nil
}

func (c *FetchRatesCommand) setDims(dims dimensions.DimensionSet) error {
	if !dims.IsComplete() {
		return dimensions.ErrIncompleteDimensions
	}

	c.dims = dims
	return nil
}
