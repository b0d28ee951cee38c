package cron

import (
	log "log/slog"

	"mysonai/internal/api/config"
	"mysonai/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	cfg             *config.Config
	metricRollupJob *job.MetricRollupJob
	usageResetJob   *job.UsageResetJob
	autoBlogJob     *job.AutoBlogJob
}

func NewCronManager(
	cfg *config.Config,
	metricRollupJob *job.MetricRollupJob,
	usageResetJob *job.UsageResetJob,
	autoBlogJob *job.AutoBlogJob,
) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		cfg:             cfg,
		metricRollupJob: metricRollupJob,
		usageResetJob:   usageResetJob,
		autoBlogJob:     autoBlogJob,
	}
}

// RegisterJobs wires the recurring jobs onto the engine.
func (s *Manager) RegisterJobs() error {
	// dirty counters flush every five minutes
	if _, err := s.engine.AddJob("0 */5 * * * *", s.metricRollupJob); err != nil {
		return err
	}

	// the reset job fires daily and no-ops unless it is the 1st
	if _, err := s.engine.AddJob("0 5 0 * * *", s.usageResetJob); err != nil {
		return err
	}

	blogSpec := s.cfg.AutoBlog.Spec
	if blogSpec == "" {
		blogSpec = "0 0 9 * * *"
	}
	if _, err := s.engine.AddJob(blogSpec, s.autoBlogJob); err != nil {
		return err
	}

	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
