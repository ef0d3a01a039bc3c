package cmd

import (
	"rateshop/internal/adapters/out/postgres"
	"rateshop/internal/adapters/out/ratesource"
	"rateshop/internal/core/application/usecases/commands"
	"rateshop/internal/core/application/usecases/queries"
	"rateshop/internal/core/ports"
	"rateshop/internal/pkg/locker"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	config         Config
	uowFactory     postgres.GormUnitOfWorkFactory
	rateSource     ports.RateSource
	selectionLocks *locker.KeyedLocker
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		config:         config,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		rateSource:     ratesource.NewByName(config.RateProvider, config.CanonicalSource),
		selectionLocks: locker.NewKeyedLocker(),
	}
}

func (c *CompositionRoot) CreateFetchRatesCommandHandler() commands.FetchRatesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFetchRatesCommandHandler(f, c.rateSource, c.config.CanonicalSource)
}

func (c *CompositionRoot) CreateSelectRateCommandHandler() commands.SelectRateCommandHandler {
	var f commands.SelectionUoWFactory = FuncSelectionUoWFactory(func() commands.SelectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectRateCommandHandler(f, c.selectionLocks)
}

func (c *CompositionRoot) CreatePurgeExpiredQuotesCommandHandler() commands.PurgeExpiredQuotesCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredQuotesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRateViewQueryHandler() queries.GetRateViewQueryHandler {
	return queries.NewGetRateViewQueryHandler(c.gormDB, c.config.CanonicalSource)
}

func (c *CompositionRoot) CreateGetActiveSelectionQueryHandler() queries.GetActiveSelectionQueryHandler {
	return queries.NewGetActiveSelectionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveDimensionsQueryHandler() queries.ResolveDimensionsQueryHandler {
	return queries.NewResolveDimensionsQueryHandler()
}

func (c *CompositionRoot) CreateClassifyVolumeQueryHandler() queries.ClassifyVolumeQueryHandler {
	return queries.NewClassifyVolumeQueryHandler()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncSelectionUoWFactory func() commands.SelectionUoW

func (f FuncSelectionUoWFactory) Create() commands.SelectionUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}
