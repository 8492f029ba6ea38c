package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/session"

	"github.com/bsm/redislock"
	"github.com/robfig/cron/v3"
)

const (
	// DefaultStaleSessionSchedule runs the check at the top of every minute.
	DefaultStaleSessionSchedule = "0 * * * * *"
	// DefaultStaleSessionAfter is how long a session may stay open before it is reported.
	DefaultStaleSessionAfter = 2 * time.Hour

	staleSessionLockKey = "fulfillment:jobs:stale-sessions"
	staleSessionLockTTL = 30 * time.Second
)

// StaleSessionLister returns open sessions started before an instant.
type StaleSessionLister interface {
	ListActiveStartedBefore(ctx context.Context, before time.Time) ([]*session.Session, error)
}

// Locker hands out a lock shared by every instance. *redislock.Client satisfies it.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// StaleSessionJob reports sessions that have been open longer than a threshold.
// It only logs: sessions are never closed on a timer, a worker or billing
// closes them explicitly.
type StaleSessionJob struct {
	sessions  StaleSessionLister
	locker    Locker
	threshold time.Duration
	schedule  string
	cron      *cron.Cron
	now       func() time.Time
	logger    *slog.Logger
}

// NewStaleSessionJob creates the stale session monitor. locker may be nil for a
// single-instance deployment; a non-positive threshold or empty schedule fall
// back to the defaults.
func NewStaleSessionJob(
	sessions StaleSessionLister,
	locker Locker,
	threshold time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleSessionJob {
	if threshold <= 0 {
		threshold = DefaultStaleSessionAfter
	}
	if schedule == "" {
		schedule = DefaultStaleSessionSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StaleSessionJob{
		sessions:  sessions,
		locker:    locker,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		now:       time.Now,
		logger:    logger.With("component", "stale_session_job"),
	}
}

// Start schedules the check.
func (j *StaleSessionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale session check failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale session job started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Stop stops scheduling and waits for a running check to finish.
func (j *StaleSessionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale session job stopped")
}

// RunOnce performs one check and returns the number of sessions reported. With
// a Locker, the first instance to claim the tick reports and the others skip it.
// The claim is left to expire so instances whose clocks fire moments apart still
// see it.
func (j *StaleSessionJob) RunOnce(ctx context.Context) (int, error) {
	now := j.now()
	if j.locker != nil {
		_, err := j.locker.Obtain(ctx, tickLockKey(now), staleSessionLockTTL, nil)
		if errors.Is(err, redislock.ErrNotObtained) {
			j.logger.DebugContext(ctx, "Stale session check skipped, tick claimed elsewhere")
			return 0, nil
		}
		if err != nil {
			return 0, fmt.Errorf("obtain lock: %w", err)
		}
	}

	stale, err := j.sessions.ListActiveStartedBefore(ctx, now.Add(-j.threshold))
	if err != nil {
		return 0, fmt.Errorf("list stale sessions: %w", err)
	}

	for _, s := range stale {
		attrs := []any{
			"session_id", s.ID().String(),
			"invoice_no", s.InvoiceNo(),
			"stage", s.Stage().String(),
			"status", s.Status().String(),
			"started_at", s.StartTime(),
			"open_for", now.Sub(s.StartTime()).Truncate(time.Second).String(),
		}
		if w := s.Worker(); w != nil {
			attrs = append(attrs, "worker_email", w.Email.String())
		}
		j.logger.WarnContext(ctx, "Session open longer than expected", attrs...)
	}
	return len(stale), nil
}

// tickLockKey names the lock of the scheduled tick that fired at t.
func tickLockKey(t time.Time) string {
	return fmt.Sprintf("%s:%d", staleSessionLockKey, t.Truncate(time.Second).Unix())
}
