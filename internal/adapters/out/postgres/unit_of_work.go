// Package postgres implements the persistence ports on GORM.
//
// The unit of work is the write-side entry point: it owns one database
// transaction, hands out repositories bound to it, and records which
// aggregates the transaction touched.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.QuoteRepository().ReplaceBatch(ctx, shipmentID, rateType, quotes); err != nil {
//	    return err
//	}
//	if err := uow.SelectionRepository().Upsert(ctx, selection); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// A unit of work is single-use and not goroutine-safe; concurrent operations
// each take their own instance from the factory. Selection writes are
// additionally serialized per key in the application layer.
package postgres

import (
	"context"

	"rateshop/internal/adapters/out/postgres/quoterepo"
	"rateshop/internal/adapters/out/postgres/selectionrepo"
	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is one aggregate modified inside the transaction, kept
// for post-commit processing (outbox, event publishing).
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory produces fresh unit of work instances over one
// shared GORM connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory wraps db; every unit of work the factory creates
// transacts against it.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no open transaction and an empty
// aggregate track list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork on a GORM transaction.
// Repositories obtained from it run inside the transaction once Begin has
// been called; before that they run on the bare connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while one is open is a
// no-op, so handlers may Begin defensively without nesting.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finishes the open transaction; the unit of work cannot be reused
// afterwards. Without an open transaction it fails with
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction; the unit of work cannot be reused
// afterwards. Without an open transaction it fails with
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn is the DB handle repositories should use: the transaction when one
// is open, the bare connection otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// SelectionRepository returns a selection repository bound to this unit of
// work. Upserted aggregates are tracked for post-commit processing.
func (uow *GormUnitOfWork) SelectionRepository() ports.SelectionRepository {
	return selectionrepo.NewGormSelectionRepository(uow.conn(), uow)
}

// QuoteRepository returns a quote batch repository bound to this unit of work.
func (uow *GormUnitOfWork) QuoteRepository() ports.QuoteRepository {
	return quoterepo.NewGormQuoteRepository(uow.conn())
}

// TrackAggregate records an aggregate the transaction modified. Repositories
// call this on every write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
