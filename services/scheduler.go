package services

import (
	"context"
	"errors"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SyncScheduler pushes local data to the server on a cron schedule, skipping
// ticks while the server is unreachable or a sync is already in flight.
type SyncScheduler struct {
	cron *cron.Cron
	sync *SyncService
	log  *zap.Logger

	mu      sync.Mutex
	started bool
}

func NewSyncScheduler(sync *SyncService, log *zap.Logger) *SyncScheduler {
	return &SyncScheduler{cron: cron.New(), sync: sync, log: log}
}

// Start registers the schedule (standard cron spec, e.g. "*/15 * * * *") and
// starts the background runner. A scheduler runs at most one schedule;
// calling Start again after a successful start is an error.
func (s *SyncScheduler) Start(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("sync scheduler already started")
	}
	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return err
	}
	s.started = true
	s.cron.Start()
	s.log.Info("auto-sync scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the runner; a tick already in progress finishes.
func (s *SyncScheduler) Stop() {
	s.cron.Stop()
}

// RunOnce performs a single scheduled sync attempt.
func (s *SyncScheduler) RunOnce() {
	ctx := context.Background()

	if s.sync.Status().IsSyncing {
		s.log.Debug("auto-sync skipped: sync already running")
		return
	}
	if !s.sync.CheckServerHealth(ctx) {
		s.log.Debug("auto-sync skipped: server unreachable")
		return
	}
	if err := s.sync.PushToServer(ctx); err != nil {
		s.log.Warn("auto-sync push failed", zap.Error(err))
	}
}
