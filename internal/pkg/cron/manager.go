package cron

import (
	"ProductLobby/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine             *cron.Cron
	campaignMetricsJob *job.CampaignMetricsJob
	listeningJob       *job.ListeningJob
}

func NewCronManager(campaignMetricsJob *job.CampaignMetricsJob, listeningJob *job.ListeningJob) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		campaignMetricsJob: campaignMetricsJob,
		listeningJob:       listeningJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.campaignMetricsJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@every 30m", s.listeningJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
