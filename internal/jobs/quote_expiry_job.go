package jobs

import (
	"context"
	"log/slog"
	"time"

	"rateshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuoteExpiryJob purges persisted quote batches past their TTL. Carrier
// quotes go stale quickly; expired batches must not be re-displayed or
// re-selected, so the sweep runs every minute.
type QuoteExpiryJob struct {
	handler commands.PurgeExpiredQuotesCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteExpiryJob creates a new job for purging expired quotes.
// ttl is the age past which a fetched batch counts as expired.
func NewQuoteExpiryJob(
	handler commands.PurgeExpiredQuotesCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *QuoteExpiryJob {
	return &QuoteExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "quote_expiry_job"),
	}
}

// Start begins the quote expiry job to run every minute.
func (j *QuoteExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeExpiredQuotesCommand(time.Now().Add(-j.ttl))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Quote expiry job failed to build command", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Quote expiry job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged expired quotes", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiry job started (running every minute)")
	return nil
}

// Stop stops the quote expiry job.
func (j *QuoteExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiry job stopped")
}
