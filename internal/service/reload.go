package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReloadService reloads the question bank on a cron schedule.
type ReloadService struct {
	reloader Reloader
	schedule cron.Schedule
	spec     string
	logger   *zap.Logger
}

// NewReloadService parses spec (standard 5-field or @every/@hourly descriptor).
func NewReloadService(reloader Reloader, spec string, logger *zap.Logger) (*ReloadService, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse reload schedule %q: %w", spec, err)
	}

	return &ReloadService{
		reloader: reloader,
		schedule: schedule,
		spec:     spec,
		logger:   logger,
	}, nil
}

// Next returns the next reload time after t.
func (s *ReloadService) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Start runs the scheduler until ctx is cancelled.
func (s *ReloadService) Start(ctx context.Context) {
	s.logger.Info("reload service started", zap.String("schedule", s.spec))

	c := cron.New(cron.WithLocation(time.UTC))
	c.Schedule(s.schedule, cron.FuncJob(func() {
		s.logger.Info("cron triggered: reloading questions")
		s.reload(ctx)
	}))

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("reload service stopped")
}

func (s *ReloadService) reload(ctx context.Context) {
	if err := s.reloader.Reload(ctx); err != nil {
		s.logger.Error("failed to reload questions", zap.Error(err))
	}
}
