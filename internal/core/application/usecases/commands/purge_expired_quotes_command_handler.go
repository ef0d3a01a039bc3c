package commands

import (
	"context"
)

// PurgeExpiredQuotesCommandHandler deletes persisted quote batches past their
// TTL. Driven by the quote expiry job rather than user requests.
type PurgeExpiredQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewPurgeExpiredQuotesCommandHandler creates a handler for quote expiry sweeps.
func NewPurgeExpiredQuotesCommandHandler(uowFactory QuoteUoWFactory) PurgeExpiredQuotesCommandHandler {
	return PurgeExpiredQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and reports how many quotes were removed.
func (h PurgeExpiredQuotesCommandHandler) Handle(
	ctx context.Context, command PurgeExpiredQuotesCommand,
) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.QuoteRepository().DeleteOlderThan(ctx, command.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
