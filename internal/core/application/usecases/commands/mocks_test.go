package commands_test

import (
	"context"
	"testing"
	"time"

	"rateshop/internal/core/application/usecases/commands"
	"rateshop/internal/core/domain/model/kernel"
	"rateshop/internal/core/domain/model/rate"
	"rateshop/internal/core/domain/model/selection"
	"rateshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSelectionRepository struct{ mock.Mock }

func (m *MockSelectionRepository) Upsert(ctx context.Context, aggregate *selection.ActiveRateSelection) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSelectionRepository) Get(
	ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType,
) (*selection.ActiveRateSelection, error) {
	args := m.Called(ctx, shipmentID, rateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*selection.ActiveRateSelection), args.Error(1)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) ReplaceBatch(
	ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType, quotes []rate.Quote,
) error {
	args := m.Called(ctx, shipmentID, rateType, quotes)
	return args.Error(0)
}

func (m *MockQuoteRepository) GetBatch(
	ctx context.Context, shipmentID kernel.UUID, rateType kernel.RateType,
) ([]rate.Quote, error) {
	args := m.Called(ctx, shipmentID, rateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rate.Quote), args.Error(1)
}

func (m *MockQuoteRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SelectionRepository() ports.SelectionRepository {
	args := m.Called()
	return args.Get(0).(ports.SelectionRepository)
}

func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockSelectionUoWFactory struct{ mock.Mock }

func (m *MockSelectionUoWFactory) Create() commands.SelectionUoW {
	args := m.Called()
	return args.Get(0).(commands.SelectionUoW)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockRateSource struct{ mock.Mock }

func (m *MockRateSource) FetchQuotes(
	ctx context.Context, request ports.RateFetchRequest,
) ([]rate.RawQuote, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rate.RawQuote), args.Error(1)
}

func mustQuote(t *testing.T, id, carrier, service, price, source string) rate.Quote {
	t.Helper()
	p, err := kernel.NewPriceFromString(price)
	require.NoError(t, err)
	q, err := rate.NewQuote(id, carrier, service, p, source)
	require.NoError(t, err)
	return q
}
