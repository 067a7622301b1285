package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JSambassador/barber-shop/client"
	"github.com/JSambassador/barber-shop/models"
)

// SyncStatus is the coordinator state exposed to the UI layer.
type SyncStatus struct {
	IsSyncing    bool
	LastSyncTime *time.Time
	Error        string
}

// SyncService orchestrates bulk transfer between the local data service and
// the remote API. The walk-in queue is device-local and excluded from sync.
type SyncService struct {
	data *DataService
	api  *client.Client
	log  *zap.Logger

	mu     sync.Mutex
	status SyncStatus
}

func NewSyncService(data *DataService, api *client.Client, log *zap.Logger) *SyncService {
	return &SyncService{data: data, api: api, log: log}
}

// Status returns a snapshot of the current sync state.
func (s *SyncService) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// PushToServer sends the three synchronizable collections to the remote sync
// endpoint in a single batch.
func (s *SyncService) PushToServer(ctx context.Context) error {
	s.begin()

	var (
		services     []models.Service
		customers    []models.Customer
		appointments []models.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { services = s.data.Services(gctx); return nil })
	g.Go(func() error { customers = s.data.Customers(gctx); return nil })
	g.Go(func() error { appointments = s.data.Appointments(gctx); return nil })
	_ = g.Wait()

	_, err := s.api.SyncData(ctx, services, customers, appointments)
	if err != nil {
		s.log.Warn("push failed", zap.Error(err))
	}
	s.finish(err)
	return err
}

// PullFromServer fetches all three collections concurrently and replaces the
// local ones. Any fetch failure aborts the whole pull before a single local
// collection is touched.
func (s *SyncService) PullFromServer(ctx context.Context) error {
	s.begin()

	var (
		services     []models.Service
		customers    []models.Customer
		appointments []models.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		services, err = s.api.GetServices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.api.GetCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = s.api.GetAppointments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("pull failed", zap.Error(err))
		s.finish(err)
		return err
	}

	save := new(errgroup.Group)
	save.Go(func() error { s.data.SaveServices(ctx, services); return nil })
	save.Go(func() error { s.data.SaveCustomers(ctx, customers); return nil })
	save.Go(func() error { s.data.SaveAppointments(ctx, appointments); return nil })
	_ = save.Wait()

	s.finish(nil)
	return nil
}

// CheckServerHealth reports whether the remote API answers its liveness
// endpoint. Never returns an error.
func (s *SyncService) CheckServerHealth(ctx context.Context) bool {
	return s.api.HealthCheck(ctx) == nil
}

func (s *SyncService) begin() {
	s.mu.Lock()
	s.status.IsSyncing = true
	s.status.Error = ""
	s.mu.Unlock()
}

func (s *SyncService) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.IsSyncing = false
	if err != nil {
		s.status.Error = err.Error()
		return
	}
	now := time.Now()
	s.status.LastSyncTime = &now
}
