package cron

import (
	"Kazuru/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	tagCacheJob *job.TagCacheJob
}

func NewCronManager(tagCacheJob *job.TagCacheJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		tagCacheJob: tagCacheJob,
	}
}

// RegisterJobs wires every recurring task into the engine.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 5m", s.tagCacheJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
