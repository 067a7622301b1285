package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/JSambassador/barber-shop/models"
	"github.com/JSambassador/barber-shop/storage"
)

// DataService is the typed access layer over the persistent store. It owns
// the derived customer visit stats and serializes read-modify-write cycles,
// so two near-simultaneous completions cannot drop a visit increment.
//
// Like the store underneath it, reads never fail (worst case: empty) and
// writes never surface errors to callers.
type DataService struct {
	store *storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewDataService(store *storage.Store, log *zap.Logger) *DataService {
	return &DataService{store: store, log: log}
}

// Store exposes the underlying persistent store for initialization and reset.
func (d *DataService) Store() *storage.Store { return d.store }

// Services

func (d *DataService) Services(ctx context.Context) []models.Service {
	return d.store.Services(ctx)
}

func (d *DataService) GetService(ctx context.Context, id string) (models.Service, bool) {
	for _, svc := range d.store.Services(ctx) {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (d *DataService) AddService(ctx context.Context, svc models.Service) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveServices(ctx, append(d.store.Services(ctx), svc))
}

func (d *DataService) UpdateService(ctx context.Context, svc models.Service) {
	d.mu.Lock()
	defer d.mu.Unlock()
	services := d.store.Services(ctx)
	for i := range services {
		if services[i].ID == svc.ID {
			services[i] = svc
			d.store.SaveServices(ctx, services)
			return
		}
	}
	// Unknown id: deliberate no-op, never an insert.
}

// DeleteService exists for the sync server surface; device flows never
// delete services.
func (d *DataService) DeleteService(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	services := d.store.Services(ctx)
	kept, removed := removeByID(services, id, func(s models.Service) string { return s.ID })
	if removed {
		d.store.SaveServices(ctx, kept)
	}
	return removed
}

func (d *DataService) SaveServices(ctx context.Context, services []models.Service) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveServices(ctx, services)
}

// Customers

func (d *DataService) Customers(ctx context.Context) []models.Customer {
	return d.store.Customers(ctx)
}

func (d *DataService) GetCustomer(ctx context.Context, id string) (models.Customer, bool) {
	for _, c := range d.store.Customers(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (d *DataService) AddCustomer(ctx context.Context, customer models.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveCustomers(ctx, append(d.store.Customers(ctx), customer))
}

func (d *DataService) UpdateCustomer(ctx context.Context, customer models.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.updateCustomerLocked(ctx, customer)
}

func (d *DataService) updateCustomerLocked(ctx context.Context, customer models.Customer) {
	customers := d.store.Customers(ctx)
	for i := range customers {
		if customers[i].ID == customer.ID {
			customers[i] = customer
			d.store.SaveCustomers(ctx, customers)
			return
		}
	}
}

func (d *DataService) DeleteCustomer(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	customers := d.store.Customers(ctx)
	kept, removed := removeByID(customers, id, func(c models.Customer) string { return c.ID })
	if removed {
		d.store.SaveCustomers(ctx, kept)
	}
	return removed
}

func (d *DataService) SaveCustomers(ctx context.Context, customers []models.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveCustomers(ctx, customers)
}

// Appointments

func (d *DataService) Appointments(ctx context.Context) []models.Appointment {
	return d.store.Appointments(ctx)
}

func (d *DataService) AddAppointment(ctx context.Context, appt models.Appointment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveAppointments(ctx, append(d.store.Appointments(ctx), appt))
	d.recordVisitLocked(ctx, appt)
}

// UpdateAppointment replaces the record with the same id. An unknown id is a
// no-op: nothing is inserted and nothing is reported.
func (d *DataService) UpdateAppointment(ctx context.Context, appt models.Appointment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	appointments := d.store.Appointments(ctx)
	for i := range appointments {
		if appointments[i].ID == appt.ID {
			appointments[i] = appt
			d.store.SaveAppointments(ctx, appointments)
			d.recordVisitLocked(ctx, appt)
			return
		}
	}
}

func (d *DataService) DeleteAppointment(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	appointments := d.store.Appointments(ctx)
	kept, removed := removeByID(appointments, id, func(a models.Appointment) string { return a.ID })
	if removed {
		d.store.SaveAppointments(ctx, kept)
	}
	return removed
}

func (d *DataService) SaveAppointments(ctx context.Context, appointments []models.Appointment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveAppointments(ctx, appointments)
}

// Queue

func (d *DataService) Queue(ctx context.Context) []models.QueueCustomer {
	return d.store.Queue(ctx)
}

func (d *DataService) AddToQueue(ctx context.Context, walkIn models.QueueCustomer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveQueue(ctx, append(d.store.Queue(ctx), walkIn))
}

func (d *DataService) RemoveFromQueue(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	queue := d.store.Queue(ctx)
	kept, removed := removeByID(queue, id, func(q models.QueueCustomer) string { return q.ID })
	if removed {
		d.store.SaveQueue(ctx, kept)
	}
	return removed
}

func (d *DataService) SaveQueue(ctx context.Context, queue []models.QueueCustomer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.SaveQueue(ctx, queue)
}

// applyCompletion advances the customer's visit stats for a completed
// appointment. The lastVisit guard makes the transition idempotent: saving
// the same completed appointment twice counts a single visit.
func applyCompletion(customer models.Customer, appt models.Appointment) (models.Customer, bool) {
	if appt.Status != models.StatusCompleted {
		return customer, false
	}
	if customer.LastVisit == appt.Date {
		return customer, false
	}
	customer.LastVisit = appt.Date
	customer.TotalVisits++
	return customer, true
}

// recordVisitLocked applies the completed-appointment side effect. A missing
// customer is tolerated silently; the appointment still stands.
func (d *DataService) recordVisitLocked(ctx context.Context, appt models.Appointment) {
	if appt.Status != models.StatusCompleted {
		return
	}
	for _, customer := range d.store.Customers(ctx) {
		if customer.ID != appt.CustomerID {
			continue
		}
		if updated, changed := applyCompletion(customer, appt); changed {
			d.updateCustomerLocked(ctx, updated)
			d.log.Debug("recorded visit",
				zap.String("customerId", updated.ID),
				zap.Int("totalVisits", updated.TotalVisits))
		}
		return
	}
}

func removeByID[T any](records []T, id string, idOf func(T) string) ([]T, bool) {
	kept := records[:0]
	removed := false
	for _, r := range records {
		if idOf(r) == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	return kept, removed
}
