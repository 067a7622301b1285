package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/JSambassador/barber-shop/models"
	"github.com/JSambassador/barber-shop/storage"
)

func newTestDataService() *DataService {
	store := storage.New(storage.NewMemoryKV(), zap.NewNop())
	return NewDataService(store, zap.NewNop())
}

func TestApplyCompletion(t *testing.T) {
	customer := models.Customer{ID: "c1", TotalVisits: 5}
	appt := models.Appointment{CustomerID: "c1", Date: "2025-01-10", Status: models.StatusCompleted}

	updated, changed := applyCompletion(customer, appt)
	if !changed {
		t.Fatal("expected completion to change the customer")
	}
	if updated.TotalVisits != 6 || updated.LastVisit != "2025-01-10" {
		t.Fatalf("unexpected stats: %+v", updated)
	}

	// Same completed appointment again: idempotent.
	again, changed := applyCompletion(updated, appt)
	if changed {
		t.Fatalf("expected no change on repeat, got %+v", again)
	}

	// Non-completed statuses never touch stats.
	if _, changed := applyCompletion(customer, models.Appointment{Status: models.StatusConfirmed, Date: "2025-01-10"}); changed {
		t.Fatal("confirmed appointment must not change stats")
	}
}

func TestCompletedUpdateIncrementsVisitsOnce(t *testing.T) {
	ctx := context.Background()
	data := newTestDataService()

	data.AddCustomer(ctx, models.Customer{ID: "c1", Name: "Michael", Phone: "+15551234567", TotalVisits: 5})
	appt := models.Appointment{ID: "a1", CustomerID: "c1", ServiceID: "s1", Date: "2025-01-10", Time: "09:00", Status: models.StatusPending}
	data.AddAppointment(ctx, appt)

	if got, _ := data.GetCustomer(ctx, "c1"); got.TotalVisits != 5 {
		t.Fatalf("pending appointment must not count a visit, got %d", got.TotalVisits)
	}

	appt.Status = models.StatusCompleted
	data.UpdateAppointment(ctx, appt)

	customer, _ := data.GetCustomer(ctx, "c1")
	if customer.TotalVisits != 6 {
		t.Fatalf("expected 6 visits, got %d", customer.TotalVisits)
	}
	if customer.LastVisit != "2025-01-10" {
		t.Fatalf("expected lastVisit 2025-01-10, got %q", customer.LastVisit)
	}

	// Re-applying the same completed update must not double-count.
	data.UpdateAppointment(ctx, appt)
	customer, _ = data.GetCustomer(ctx, "c1")
	if customer.TotalVisits != 6 {
		t.Fatalf("repeat update double-counted: %d visits", customer.TotalVisits)
	}
}

func TestAddCompletedAppointmentCountsVisit(t *testing.T) {
	ctx := context.Background()
	data := newTestDataService()

	data.AddCustomer(ctx, models.Customer{ID: "c1", Name: "David", Phone: "+15552345678"})
	data.AddAppointment(ctx, models.Appointment{
		ID: "a1", CustomerID: "c1", ServiceID: "s2",
		Date: "2025-02-01", Time: "10:00", Status: models.StatusCompleted,
	})

	customer, _ := data.GetCustomer(ctx, "c1")
	if customer.TotalVisits != 1 || customer.LastVisit != "2025-02-01" {
		t.Fatalf("unexpected stats after completed add: %+v", customer)
	}
}

func TestConcurrentCompletionsLoseNoVisits(t *testing.T) {
	ctx := context.Background()
	data := newTestDataService()

	data.AddCustomer(ctx, models.Customer{ID: "c1", Name: "Michael", Phone: "+15551234567"})

	// Each goroutine completes its own appointment on a distinct date. Every
	// completion is a read-modify-write of the customers collection; if those
	// cycles interleaved, increments would be lost.
	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data.AddAppointment(ctx, models.Appointment{
				ID:         fmt.Sprintf("a%d", i),
				CustomerID: "c1",
				ServiceID:  "s1",
				Date:       fmt.Sprintf("2025-05-%02d", i+1),
				Time:       "09:00",
				Status:     models.StatusCompleted,
			})
		}(i)
	}
	wg.Wait()

	customer, _ := data.GetCustomer(ctx, "c1")
	if customer.TotalVisits != n {
		t.Fatalf("expected %d visits, got %d (lost updates)", n, customer.TotalVisits)
	}
	if got := len(data.Appointments(ctx)); got != n {
		t.Fatalf("expected %d appointments, got %d", n, got)
	}
}

func TestCompletionWithUnknownCustomerIsSilent(t *testing.T) {
	ctx := context.Background()
	data := newTestDataService()

	data.AddAppointment(ctx, models.Appointment{
		ID: "a1", CustomerID: "ghost", ServiceID: "s1",
		Date: "2025-02-01", Time: "10:00", Status: models.StatusCompleted,
	})

	if got := len(data.Appointments(ctx)); got != 1 {
		t.Fatalf("appointment should still be stored, got %d", got)
	}
}

func TestUpdateUnknownAppointmentIsNoOp(t *testing.T) {
	ctx := context.Background()
	data := newTestDataService()

	data.AddAppointment(ctx, models.Appointment{ID: "a1", CustomerID: "c1", ServiceID: "s1", Date: "2025-02-01", Time: "10:00", Status: models.StatusPending})

	data.UpdateAppointment(ctx, models.Appointment{ID: "missing", Status: models.StatusCancelled})

	appointments := data.Appointments(ctx)
	if len(appointments) != 1 {
		t.Fatalf("no-op update changed collection size: %d", len(appointments))
	}
	if appointments[0].ID != "a1" || appointments[0].Status != models.StatusPending {
		t.Fatalf("no-op update mutated existing record: %+v", appointments[0])
	}
}

func TestQueueOrdering(t *testing.T) {
	ctx := context.Background()
	data := newTestDataService()

	for _, q := range []models.QueueCustomer{
		{ID: "q1", Name: "First", ServiceID: "1"},
		{ID: "q2", Name: "Second", ServiceID: "2"},
		{ID: "q3", Name: "Third", ServiceID: "3"},
	} {
		data.AddToQueue(ctx, q)
	}

	queue := data.Queue(ctx)
	for i, want := range []string{"q1", "q2", "q3"} {
		if queue[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i+1, want, queue[i].ID)
		}
	}

	if !data.RemoveFromQueue(ctx, "q2") {
		t.Fatal("expected q2 to be removed")
	}

	queue = data.Queue(ctx)
	if len(queue) != 2 || queue[0].ID != "q1" || queue[1].ID != "q3" {
		t.Fatalf("unexpected queue after removal: %+v", queue)
	}

	if data.RemoveFromQueue(ctx, "q2") {
		t.Fatal("removing an absent entry should report false")
	}
}

func TestServiceUpdateUnknownIDDoesNotInsert(t *testing.T) {
	ctx := context.Background()
	data := newTestDataService()

	data.UpdateService(ctx, models.Service{ID: "nope", Name: "Ghost"})
	if got := len(data.Services(ctx)); got != 0 {
		t.Fatalf("update inserted a record: %d", got)
	}
}
