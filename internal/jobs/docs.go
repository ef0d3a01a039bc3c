// Package jobs provides scheduled background tasks for the rate engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the engine needs.
//
// # Available Jobs
//
// 1. QuoteExpiryJob - Runs every minute to purge quote batches past their TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, quoteTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick; a failed sweep
// never blocks request handling.
package jobs
