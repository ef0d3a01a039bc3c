package commands_test

import (
	"errors"
	"testing"
	"time"

	"rateshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPurgeExpiredQuotesCommand(t *testing.T) {
	t.Run("creates command with a cutoff", func(t *testing.T) {
		cutoff := time.Now().Add(-30 * time.Minute)

		cmd, err := commands.NewPurgeExpiredQuotesCommand(cutoff)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, cutoff, cmd.Cutoff())
	})

	t.Run("rejects zero cutoff", func(t *testing.T) {
		_, err := commands.NewPurgeExpiredQuotesCommand(time.Time{})
		require.ErrorIs(t, err, commands.ErrCutoffIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.PurgeExpiredQuotesCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPurgeExpiredQuotesCommandIsNotConstructed)
	})
}

func TestPurgeExpiredQuotesCommandHandler_Handle(t *testing.T) {
	t.Run("purges and reports the removed count", func(t *testing.T) {
		ctx := t.Context()
		cutoff := time.Now().Add(-30 * time.Minute)
		cmd, err := commands.NewPurgeExpiredQuotesCommand(cutoff)
		require.NoError(t, err)

		repo := new(MockQuoteRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("QuoteRepository").Return(repo).Once(),
			repo.On("DeleteOlderThan", ctx, cutoff).Return(int64(7), nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockQuoteUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPurgeExpiredQuotesCommandHandler(factory)
		removed, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, int64(7), removed)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("rolls back on delete error", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPurgeExpiredQuotesCommand(time.Now())
		require.NoError(t, err)

		repo := new(MockQuoteRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("QuoteRepository").Return(repo).Once(),
			repo.On("DeleteOlderThan", ctx, cmd.Cutoff()).
				Return(int64(0), errors.New("delete error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockQuoteUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPurgeExpiredQuotesCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		require.Error(t, err)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("rejects unconstructed command", func(t *testing.T) {
		h := commands.NewPurgeExpiredQuotesCommandHandler(new(MockQuoteUoWFactory))
		_, err := h.Handle(t.Context(), commands.PurgeExpiredQuotesCommand{})
		require.ErrorIs(t, err, commands.ErrPurgeExpiredQuotesCommandIsNotConstructed)
	})
}
