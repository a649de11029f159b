package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	"github.com/omarshaarawi/repowatch/internal/models"
)

type Refresher interface {
	Refresh(ctx context.Context) (*models.Snapshot, error)
}

type Scheduler struct {
	s         gocron.Scheduler
	refresher Refresher
	expr      string
	schedule  cron.Schedule
}

// NewScheduler prepares a refresh job for the standard five-field cron
// expression expr, evaluated in UTC.
func NewScheduler(refresher Refresher, expr string) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", expr, err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:         s,
		refresher: refresher,
		expr:      expr,
		schedule:  schedule,
	}, nil
}

// Start arms the recurring job and runs it once immediately. A failing
// first run does not disarm the schedule.
func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.CronJob(s.expr, false),
		gocron.NewTask(s.refresh),
		gocron.WithName("refresh-repositories"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	s.s.Start()
	slog.Info("Scheduler started", "schedule", s.expr, "nextRun", s.NextRun(time.Now()))
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// NextRun returns the first scheduled boundary strictly after the given time.
func (s *Scheduler) NextRun(after time.Time) time.Time {
	return s.schedule.Next(after.UTC())
}

func (s *Scheduler) refresh() {
	if _, err := s.refresher.Refresh(context.Background()); err != nil {
		slog.Error("Error updating cache", "error", err)
	}
}
