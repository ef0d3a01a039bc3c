package commands

import (
	"context"

	"rateshop/internal/core/domain/model/rate"
	"rateshop/internal/core/domain/model/selection"
	"rateshop/internal/core/ports"
)

// FetchRatesCommandHandler orchestrates a full rate-shopping round:
// fetch raw quotes from the provider, normalize and deduplicate them,
// persist the batch, and upsert the global cheapest as the shipment's
// active selection for that rate type.
//
// The batch replace and the selection upsert share one transaction so a
// reader never sees fresh quotes paired with a stale automatic selection.
type FetchRatesCommandHandler struct {
	uowFactory      UoWFactory
	rateSource      ports.RateSource
	canonicalSource string
}

// NewFetchRatesCommandHandler creates a handler for rate fetch operations.
// canonicalSource names the preferred provenance used to break dedup ties.
func NewFetchRatesCommandHandler(
	uowFactory UoWFactory,
	rateSource ports.RateSource,
	canonicalSource string,
) FetchRatesCommandHandler {
	return FetchRatesCommandHandler{
		uowFactory:      uowFactory,
		rateSource:      rateSource,
		canonicalSource: canonicalSource,
	}
}

// Handle processes the rate fetch command.
// Returns rate.ErrNoRatesAvailable when the provider had no usable offers;
// in that case nothing is persisted and any prior batch stays in place.
func (h FetchRatesCommandHandler) Handle(ctx context.Context, command FetchRatesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	raw, err := h.rateSource.FetchQuotes(ctx, ports.RateFetchRequest{
		ShipmentID:  command.ShipmentID(),
		RateType:    command.RateType(),
		Dimensions:  command.Dims(),
		Destination: command.Destination(),
	})
	if err != nil {
		return err
	}

	grouping := rate.Normalize(raw, h.canonicalSource)
	best, err := rate.Select(grouping)
	if err != nil {
		return err
	}

	aggregate, err := selection.NewActiveRateSelection(
		command.ShipmentID(), command.RateType(), best.GlobalCheapest.Quote)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quotes := make([]rate.Quote, 0, grouping.Size())
	for _, carrier := range grouping.Carriers() {
		quotes = append(quotes, grouping.Quotes(carrier)...)
	}

	if err = uow.QuoteRepository().ReplaceBatch(
		ctx, command.ShipmentID(), command.RateType(), quotes); err != nil {
		return err
	}

	if err = uow.SelectionRepository().Upsert(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
