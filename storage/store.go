package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/JSambassador/barber-shop/models"
)

// Store persists the four record collections plus the seed flag. It is
// deliberately fail-open: reads degrade to an empty collection and write
// failures are swallowed, so the app stays usable even when local storage
// misbehaves. Every swallowed failure is logged.
type Store struct {
	kv  KV
	log *zap.Logger

	initMu      sync.Mutex
	initialized bool
}

func New(kv KV, log *zap.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Initialize seeds the collections with the bootstrap dataset on the very
// first run, tracked by a persisted flag. Subsequent calls are no-ops, so
// local edits are never overwritten. Safe to call concurrently.
func (s *Store) Initialize(ctx context.Context) {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.initialized {
		return
	}

	_, err := s.kv.Get(ctx, KeyInitialized)
	switch {
	case err == nil:
		s.initialized = true
		return
	case !errors.Is(err, ErrKeyNotFound):
		// Only an absent flag may trigger seeding; an unreadable flag could
		// mean the data is already there.
		s.log.Warn("storage: could not read init flag, skipping seed", zap.Error(err))
		s.initialized = true
		return
	}

	s.SaveServices(ctx, models.SeedServices())
	s.SaveCustomers(ctx, models.SeedCustomers())
	s.SaveAppointments(ctx, models.SeedAppointments())
	s.SaveQueue(ctx, models.SeedQueue())

	if err := s.kv.Set(ctx, KeyInitialized, []byte("true")); err != nil {
		s.log.Warn("storage: failed to persist init flag", zap.Error(err))
	}
	s.initialized = true
}

// Clear removes all collections and the seed flag. Used by resets and tests;
// not reachable from normal app flows.
func (s *Store) Clear(ctx context.Context) {
	keys := []string{KeyServices, KeyCustomers, KeyAppointments, KeyQueue, KeyInitialized}
	if err := s.kv.Delete(ctx, keys...); err != nil {
		s.log.Warn("storage: clear failed", zap.Error(err))
	}
	s.initMu.Lock()
	s.initialized = false
	s.initMu.Unlock()
}

func (s *Store) Services(ctx context.Context) []models.Service {
	return readCollection[models.Service](ctx, s, KeyServices)
}

func (s *Store) SaveServices(ctx context.Context, services []models.Service) {
	writeCollection(ctx, s, KeyServices, services)
}

func (s *Store) Customers(ctx context.Context) []models.Customer {
	return readCollection[models.Customer](ctx, s, KeyCustomers)
}

func (s *Store) SaveCustomers(ctx context.Context, customers []models.Customer) {
	writeCollection(ctx, s, KeyCustomers, customers)
}

func (s *Store) Appointments(ctx context.Context) []models.Appointment {
	return readCollection[models.Appointment](ctx, s, KeyAppointments)
}

func (s *Store) SaveAppointments(ctx context.Context, appointments []models.Appointment) {
	writeCollection(ctx, s, KeyAppointments, appointments)
}

func (s *Store) Queue(ctx context.Context) []models.QueueCustomer {
	return readCollection[models.QueueCustomer](ctx, s, KeyQueue)
}

func (s *Store) SaveQueue(ctx context.Context, queue []models.QueueCustomer) {
	writeCollection(ctx, s, KeyQueue, queue)
}

func readCollection[T any](ctx context.Context, s *Store, key string) []T {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn("storage: read failed", zap.String("collection", key), zap.Error(err))
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("storage: corrupt collection", zap.String("collection", key), zap.Error(err))
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

func writeCollection[T any](ctx context.Context, s *Store, key string, records []T) {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		s.log.Warn("storage: marshal failed", zap.String("collection", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.log.Warn("storage: write failed", zap.String("collection", key), zap.Error(err))
	}
}
