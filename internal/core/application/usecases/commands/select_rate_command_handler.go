package commands

import (
	"context"
	"errors"

	"rateshop/internal/core/domain/model/selection"
	"rateshop/internal/pkg/errs"
	"rateshop/internal/pkg/locker"
)

// SelectRateCommandHandler applies a user's rate choice to the shipment's
// active selection. Writes to the same (shipment, rate type) slot are
// serialized through a keyed mutex so two concurrent selections cannot
// interleave their read-modify-write cycles; the survivor is simply the
// last write.
type SelectRateCommandHandler struct {
	uowFactory SelectionUoWFactory
	locks      *locker.KeyedLocker
}

// NewSelectRateCommandHandler creates a handler for rate selection operations.
// The KeyedLocker is shared across handlers so every writer for a slot
// contends on the same mutex.
func NewSelectRateCommandHandler(
	uowFactory SelectionUoWFactory,
	locks *locker.KeyedLocker,
) SelectRateCommandHandler {
	return SelectRateCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the rate selection command.
// Loads the existing selection when present and overwrites it, or creates a
// fresh one; re-selecting the already-active quote is a harmless no-op write.
func (h SelectRateCommandHandler) Handle(ctx context.Context, command SelectRateCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	key := command.ShipmentID().String() + "|" + command.RateType().String()
	h.locks.Lock(key)
	defer h.locks.Unlock(key)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	selectionRepo := uow.SelectionRepository()

	aggregate, err := selectionRepo.Get(ctx, command.ShipmentID(), command.RateType())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		aggregate, err = selection.NewActiveRateSelection(
			command.ShipmentID(), command.RateType(), command.Quote())
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = aggregate.Select(command.Quote()); err != nil {
			return err
		}
	}

	if err = selectionRepo.Upsert(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
