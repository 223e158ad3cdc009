// Package scheduler runs the daily plan seeding job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
)

type daySeeder interface {
	SeedDay(ctx context.Context, day domain.Date) (revision.SeedResult, error)
	Today() domain.Date
}

// Scheduler seeds empty plans for every subject once a day.
type Scheduler struct {
	cron   *gocron.Scheduler
	seeder daySeeder
	at     string
	log    *slog.Logger
}

// New creates a scheduler firing daily at at ("HH:MM") in loc.
func New(log *slog.Logger, seeder daySeeder, loc *time.Location, at string) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	cron := gocron.NewScheduler(loc)
	cron.SingletonModeAll()

	return &Scheduler{
		cron:   cron,
		seeder: seeder,
		at:     at,
		log:    log.With("component", "scheduler"),
	}
}

// Run registers the job and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.cron.Every(1).Day().At(s.at).Do(s.seed, ctx); err != nil {
		return fmt.Errorf("schedule daily seed at %q: %w", s.at, err)
	}

	s.cron.StartAsync()
	s.log.InfoContext(ctx, "scheduler started", slog.String("daily_seed_at", s.at))

	<-ctx.Done()

	s.cron.Stop()
	s.log.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) seed(ctx context.Context) {
	day := s.seeder.Today()
	start := time.Now()

	res, err := s.seeder.SeedDay(ctx, day)
	if err != nil {
		s.log.ErrorContext(ctx, "daily seed failed",
			slog.String("date", day.String()),
			slog.Int("created", res.Created),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.InfoContext(ctx, "daily seed finished",
		slog.String("date", day.String()),
		slog.Int("subjects", res.Subjects),
		slog.Int("created", res.Created),
		slog.Duration("duration", time.Since(start)),
	)
}
