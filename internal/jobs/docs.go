// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfilment.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - Runs every minute to start pending deliveries whose
// scheduled date has arrived
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchDeliveriesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "0 * * * * *", meaning it runs at
// the top of every minute. Deliveries are scheduled at day granularity, so a
// minute cadence keeps dispatch latency low without hammering the database.
//
// # Error Handling
//
// Dispatch failures are logged and retried on the next tick; the transaction
// in the command handler guarantees no delivery is left half-started.
package jobs
