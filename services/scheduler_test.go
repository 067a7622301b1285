package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/JSambassador/barber-shop/client"
)

func TestSchedulerRunOncePushesWhenHealthy(t *testing.T) {
	var syncCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/sync", func(w http.ResponseWriter, r *http.Request) {
		syncCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sync := NewSyncService(newTestDataService(), client.New(srv.URL), zap.NewNop())
	scheduler := NewSyncScheduler(sync, zap.NewNop())

	scheduler.RunOnce()

	if got := syncCalls.Load(); got != 1 {
		t.Fatalf("expected exactly one push, got %d", got)
	}
}

func TestSchedulerRunOnceSkipsWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	sync := NewSyncService(newTestDataService(), client.New(srv.URL), zap.NewNop())
	scheduler := NewSyncScheduler(sync, zap.NewNop())

	scheduler.RunOnce()

	if status := sync.Status(); status.Error != "" {
		t.Fatalf("skipped run must not record a sync error, got %q", status.Error)
	}
}

func TestSchedulerStartGuards(t *testing.T) {
	sync := NewSyncService(newTestDataService(), client.New("http://localhost:0"), zap.NewNop())
	scheduler := NewSyncScheduler(sync, zap.NewNop())

	if err := scheduler.Start("not a cron spec"); err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}

	if err := scheduler.Start("@every 1h"); err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}
	defer scheduler.Stop()

	// Once running, a second Start must not register another schedule.
	if err := scheduler.Start("@every 1m"); err == nil {
		t.Fatal("expected an error when starting twice")
	}
}
