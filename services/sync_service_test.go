package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/JSambassador/barber-shop/client"
	"github.com/JSambassador/barber-shop/models"
)

func newSyncFixture(t *testing.T, handler http.Handler) (*DataService, *SyncService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	data := newTestDataService()
	sync := NewSyncService(data, client.New(srv.URL), zap.NewNop())
	return data, sync, srv
}

func TestPullAtomicityOnPartialFailure(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/services", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Service{{ID: "srv-remote", Name: "Remote Cut"}})
	})
	mux.HandleFunc("/customers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Customer{{ID: "cus-remote", Name: "Remote"}})
	})
	mux.HandleFunc("/appointments", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	data, sync, _ := newSyncFixture(t, mux)

	data.SaveServices(ctx, []models.Service{{ID: "s-local", Name: "Local Cut"}})
	data.SaveCustomers(ctx, []models.Customer{{ID: "c-local", Name: "Local"}})
	data.SaveAppointments(ctx, []models.Appointment{{ID: "a-local", CustomerID: "c-local", ServiceID: "s-local", Status: models.StatusPending}})

	if err := sync.PullFromServer(ctx); err == nil {
		t.Fatal("expected pull to fail")
	}

	// No collection may have been replaced, not even the ones that fetched fine.
	if got := data.Services(ctx); len(got) != 1 || got[0].ID != "s-local" {
		t.Fatalf("services were overwritten: %+v", got)
	}
	if got := data.Customers(ctx); len(got) != 1 || got[0].ID != "c-local" {
		t.Fatalf("customers were overwritten: %+v", got)
	}
	if got := data.Appointments(ctx); len(got) != 1 || got[0].ID != "a-local" {
		t.Fatalf("appointments were overwritten: %+v", got)
	}

	status := sync.Status()
	if status.IsSyncing {
		t.Fatal("IsSyncing should be false after a failed pull")
	}
	if status.Error == "" {
		t.Fatal("expected an error message in status")
	}
	if status.LastSyncTime != nil {
		t.Fatal("failed pull must not stamp LastSyncTime")
	}
}

func TestPullReplacesLocalCollections(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/services", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Service{{ID: "s9", Name: "Hot Towel Shave", Price: 30, Duration: 20}})
	})
	mux.HandleFunc("/customers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Customer{})
	})
	mux.HandleFunc("/appointments", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Appointment{})
	})

	data, sync, _ := newSyncFixture(t, mux)
	data.SaveCustomers(ctx, []models.Customer{{ID: "stale", Name: "Stale"}})

	if err := sync.PullFromServer(ctx); err != nil {
		t.Fatalf("pull failed: %v", err)
	}

	if got := data.Services(ctx); len(got) != 1 || got[0].ID != "s9" {
		t.Fatalf("services not replaced: %+v", got)
	}
	if got := data.Customers(ctx); len(got) != 0 {
		t.Fatalf("customers not cleared by empty remote: %+v", got)
	}

	status := sync.Status()
	if status.Error != "" || status.LastSyncTime == nil {
		t.Fatalf("unexpected status after success: %+v", status)
	}
}

func TestPushSendsAllThreeCollections(t *testing.T) {
	ctx := context.Background()

	var received map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("/sync", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	data, sync, _ := newSyncFixture(t, mux)
	data.SaveServices(ctx, []models.Service{{ID: "s1", Name: "Cut"}})
	data.SaveCustomers(ctx, []models.Customer{{ID: "c1", Name: "Michael"}})
	data.SaveAppointments(ctx, []models.Appointment{{ID: "a1", CustomerID: "c1", ServiceID: "s1", Status: models.StatusPending}})
	data.AddToQueue(ctx, models.QueueCustomer{ID: "q1", Name: "Walk-in", ServiceID: "s1"})

	if err := sync.PushToServer(ctx); err != nil {
		t.Fatalf("push failed: %v", err)
	}

	for _, key := range []string{"services", "customers", "appointments"} {
		if _, ok := received[key]; !ok {
			t.Fatalf("push payload missing %q: %v", key, received)
		}
	}
	if _, ok := received["queue"]; ok {
		t.Fatal("the walk-in queue must never be pushed")
	}

	if status := sync.Status(); status.LastSyncTime == nil || status.Error != "" {
		t.Fatalf("unexpected status after push: %+v", status)
	}
}

func TestPushFailureRecordsError(t *testing.T) {
	_, sync, srv := newSyncFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	srv.Close()

	if err := sync.PushToServer(context.Background()); err == nil {
		t.Fatal("expected push against a closed server to fail")
	}
	if status := sync.Status(); status.Error == "" || status.IsSyncing {
		t.Fatalf("unexpected status: %+v", status)
	}

	// A later successful attempt clears the error.
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer ok.Close()

	recovered := NewSyncService(newTestDataService(), client.New(ok.URL), zap.NewNop())
	if err := recovered.PushToServer(context.Background()); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if status := recovered.Status(); status.Error != "" {
		t.Fatalf("error not cleared: %+v", status)
	}
}

func TestCheckServerHealth(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	_, sync, srv := newSyncFixture(t, mux)

	if !sync.CheckServerHealth(ctx) {
		t.Fatal("expected healthy server to report true")
	}

	srv.Close()
	if sync.CheckServerHealth(ctx) {
		t.Fatal("expected unreachable server to report false, not an error")
	}
}
