// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with seconds.
//
// # Available Jobs
//
// StaleSessionJob - reports picking, packing and delivery sessions that have been
// open longer than a configured threshold. It logs a warning per session and
// never changes state.
//
// # Usage
//
//	staleJob := jobs.NewStaleSessionJob(sessionRepo, redisLocker, 2*time.Hour, "0 * * * * *", logger)
//	jobManager := jobs.NewJobManager(staleJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Multiple Instances
//
// With a Locker (github.com/bsm/redislock backed by Redis), each tick first
// obtains a lock keyed by the tick's second so only one instance reports per
// tick. The lock is not released; it expires after its TTL. Instances that fail
// to obtain it skip the tick.
package jobs
