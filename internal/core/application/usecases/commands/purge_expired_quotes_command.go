package commands

import (
	"errors"
	"time"

	"rateshop/internal/pkg/guard"
)

var (
	ErrPurgeExpiredQuotesCommandIsNotConstructed = errors.New(
		"PurgeExpiredQuotesCommand must be created via NewPurgeExpiredQuotesCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff must be a non-zero time")
)

// PurgeExpiredQuotesCommand requests deletion of quote batches fetched before
// the cutoff. Carrier quotes go stale quickly; expired batches must never be
// re-displayed or re-selected.
type PurgeExpiredQuotesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeExpiredQuotesCommand creates a command to purge quotes older than cutoff.
func NewPurgeExpiredQuotesCommand(cutoff time.Time) (PurgeExpiredQuotesCommand, error) {
	command := PurgeExpiredQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return PurgeExpiredQuotesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredQuotesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredQuotesCommandIsNotConstructed)
}

// Cutoff returns the expiry threshold; batches fetched before it are removed.
func (c PurgeExpiredQuotesCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeExpiredQuotesCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
