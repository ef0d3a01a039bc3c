// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"rateshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SelectionRepoFactory provides access to the selection repository within a transaction.
	SelectionRepoFactory interface {
		SelectionRepository() ports.SelectionRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// SelectionUoW manages transactions for selection-only operations.
	// Used when commands only modify the active rate selection.
	SelectionUoW interface {
		TxManager
		SelectionRepoFactory
	}

	// SelectionUoWFactory creates new selection unit of work instances.
	SelectionUoWFactory interface {
		Create() SelectionUoW
	}

	// QuoteUoW manages transactions for quote-batch-only operations.
	// Used by maintenance commands that touch persisted quotes alone.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// UoW manages transactions across quote batches and the active selection.
	// Used by commands that persist a fetched batch and its best rate together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   quoteRepo := uow.QuoteRepository()
	//   selectionRepo := uow.SelectionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		QuoteRepoFactory
		SelectionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
