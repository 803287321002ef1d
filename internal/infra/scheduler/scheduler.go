package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler runs poll cycles one after another, sleeping between them until the
// next activation of its schedule.
type PollScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

// NewPollScheduler builds a fixed-delay schedule from interval, or a cron schedule when
// cronSpec is set (e.g., "*/10 * * * *").
func NewPollScheduler(interval time.Duration, cronSpec string, logger *logrus.Entry) (*PollScheduler, error) {
	var schedule cron.Schedule
	if cronSpec != "" {
		parsed, err := cron.ParseStandard(cronSpec)
		if err != nil {
			return nil, fmt.Errorf("invalid poll cron spec %q: %w", cronSpec, err)
		}
		schedule = parsed
	} else {
		if interval <= 0 {
			return nil, errors.New("poll interval must be positive")
		}
		schedule = cron.Every(interval) // Rounded to whole seconds by cron
	}

	return &PollScheduler{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}, nil
}

// Run executes cycle immediately and then after every wait until ctx is cancelled.
// Cycles never overlap.
func (s *PollScheduler) Run(ctx context.Context, cycle func(ctx context.Context)) {
	s.logger.Info("Starting poll scheduler...")
	for ctx.Err() == nil {
		cycle(ctx)
		if err := s.wait(ctx); err != nil {
			break
		}
	}
	s.logger.Info("Poll scheduler stopped.")
}

func (s *PollScheduler) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := s.now()
	next := s.schedule.Next(now)
	delay := next.Sub(now)
	if delay < 0 {
		delay = 0
	}
	s.logger.WithField("next_poll_at", next.Format(time.RFC3339)).Debug("Sleeping until next poll")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.after(delay):
		return nil
	}
}
