package cron

import (
	"Myfluence/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine    *cron.Cron
	schedule  string
	ingestJob *job.IngestJob
}

func NewCronManager(schedule string, ingestJob *job.IngestJob) *Manager {
	return &Manager{
		engine:    cron.New(cron.WithSeconds()),
		schedule:  schedule,
		ingestJob: ingestJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.schedule, s.ingestJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动", "schedule", s.schedule)
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
