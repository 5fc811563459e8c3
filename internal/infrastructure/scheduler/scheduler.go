// Package scheduler runs the birthday reminder on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // REMINDER_TIMEZONE must resolve in minimal images

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/birthdaybook/birthday-api/internal/api/metrics"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
)

const defaultRunTimeout = 10 * time.Minute

type Config struct {
	Schedule string
	Timezone string
	Timeout  time.Duration
}

// Scheduler triggers ReminderService.Run on its own goroutine. Overlapping
// runs are skipped.
type Scheduler struct {
	cron     *cron.Cron
	reminder ports.ReminderService
	loc      *time.Location
	timeout  time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func New(cfg Config, reminder ports.ReminderService, log zerolog.Logger) (*Scheduler, error) {
	tz := cfg.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("scheduler: timezone %q: %w", tz, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRunTimeout
	}

	s := &Scheduler{
		reminder: reminder,
		loc:      loc,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}

	cl := cronLogger{log: log}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := s.cron.AddFunc(cfg.Schedule, s.runScheduled); err != nil {
		return nil, fmt.Errorf("scheduler: schedule %q: %w", cfg.Schedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.log.Info().Time("next_run", e.Next).Str("timezone", s.loc.String()).Msg("birthday reminder scheduled")
	}
}

// Stop prevents new runs and waits for a running one until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce executes the reminder immediately in the scheduler's time zone.
func (s *Scheduler) RunOnce(ctx context.Context) (ports.RunSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	summary, err := s.reminder.Run(ctx, s.now().In(s.loc))
	metrics.ReminderRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReminderRunsTotal.WithLabelValues("error").Inc()
		return summary, err
	}
	metrics.ReminderRunsTotal.WithLabelValues("ok").Inc()
	return summary, nil
}

func (s *Scheduler) runScheduled() {
	if _, err := s.RunOnce(context.Background()); err != nil {
		s.log.Error().Err(err).Msg("birthday reminder run failed")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
