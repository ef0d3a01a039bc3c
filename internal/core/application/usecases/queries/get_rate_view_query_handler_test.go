package queries_test

import (
	"context"
	"testing"
	"time"

	"rateshop/internal/adapters/out/postgres/quoterepo"
	"rateshop/internal/core/application/usecases/queries"
	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testCanonicalSource = "ShipStation"

type GetRateViewQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRateViewQueryHandler
	quoteRepo *quoterepo.GormQuoteRepository
}

func (suite *GetRateViewQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&quoterepo.QuoteDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetRateViewQueryHandler(db, testCanonicalSource)
	suite.quoteRepo = quoterepo.NewGormQuoteRepository(db)
}

func (suite *GetRateViewQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRateViewQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE quotes").Error
	suite.Require().NoError(err)
}

func (suite *GetRateViewQueryHandlerTestSuite) storedQuote(id, carrier, service, price string) rate.Quote {
	p, err := kernel.NewPriceFromString(price)
	suite.Require().NoError(err)

	quote, err := rate.NewQuote(id, carrier, service, p, "RateCard")
	suite.Require().NoError(err)
	return quote
}

func (suite *GetRateViewQueryHandlerTestSuite) TestHandle_EmptyBatch_ReturnsNoRatesAvailable() {
	query, err := queries.NewGetRateViewQuery(kernel.NewUUID(), kernel.RateTypeDeclared)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, rate.ErrNoRatesAvailable)
}

func (suite *GetRateViewQueryHandlerTestSuite) TestHandle_RanksStoredBatch() {
	ctx := context.Background()
	shipmentID := kernel.NewUUID()

	batch := []rate.Quote{
		suite.storedQuote("r-1", "UPS", "Ground", "11.20"),
		suite.storedQuote("r-2", "UPS", "2nd Day Air", "24.60"),
		suite.storedQuote("r-3", "FedEx", "Home Delivery", "9.80"),
	}
	err := suite.quoteRepo.ReplaceBatch(ctx, shipmentID, kernel.RateTypeDeclared, batch)
	suite.Require().NoError(err)

	query, err := queries.NewGetRateViewQuery(shipmentID, kernel.RateTypeDeclared)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("r-3", result.GlobalCheapest.RateID)
	suite.True(result.GlobalCheapest.IsGlobalCheapest)
	suite.InDelta(9.80, result.GlobalCheapest.Price, 0.001)

	suite.Require().Len(result.Carriers, 2)
	suite.Equal("FedEx", result.Carriers[0].Carrier)
	suite.Equal("UPS", result.Carriers[1].Carrier)
	suite.InDelta(9.80, result.Carriers[0].CheapestPrice, 0.001)

	upsRates := result.Carriers[1].Rates
	suite.Require().Len(upsRates, 2)
	suite.True(upsRates[0].IsCheapestInCarrier)
	suite.False(upsRates[1].IsCheapestInCarrier)
	suite.False(upsRates[0].IsGlobalCheapest)
}

func (suite *GetRateViewQueryHandlerTestSuite) TestHandle_RepeatedReadsAreIdentical() {
	ctx := context.Background()
	shipmentID := kernel.NewUUID()

	batch := []rate.Quote{
		suite.storedQuote("r-1", "UPS", "Ground", "10.00"),
		suite.storedQuote("r-2", "FedEx", "2Day", "10.00"),
		suite.storedQuote("r-3", "USPS", "Priority", "10.00"),
	}
	err := suite.quoteRepo.ReplaceBatch(ctx, shipmentID, kernel.RateTypeMeasured, batch)
	suite.Require().NoError(err)

	query, err := queries.NewGetRateViewQuery(shipmentID, kernel.RateTypeMeasured)
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	for range 5 {
		again, handleErr := suite.handler.Handle(ctx, query)
		suite.Require().NoError(handleErr)
		suite.Equal(first, again)
	}
}

func (suite *GetRateViewQueryHandlerTestSuite) TestHandle_RateTypesAreIndependent() {
	ctx := context.Background()
	shipmentID := kernel.NewUUID()

	err := suite.quoteRepo.ReplaceBatch(ctx, shipmentID, kernel.RateTypeDeclared, []rate.Quote{
		suite.storedQuote("r-d", "UPS", "Ground", "11.20"),
	})
	suite.Require().NoError(err)

	query, err := queries.NewGetRateViewQuery(shipmentID, kernel.RateTypeMeasured)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().ErrorIs(err, rate.ErrNoRatesAvailable)
}

func (suite *GetRateViewQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetRateViewQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
}

func TestGetRateViewQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRateViewQueryHandlerTestSuite))
}
