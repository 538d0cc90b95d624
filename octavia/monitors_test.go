package octavia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateHealthMonitorDefaults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2.0/lbaas/healthmonitors" {
			t.Error("unexpected request:", r.Method, r.URL.Path)
		}
		body := inner(t, decodeBody(t, r), "healthmonitor")
		if got, _ := body["pool_id"].(string); got != "pool-1" {
			t.Error("unexpected pool_id: got:", got)
		}
		if got, _ := body["type"].(string); got != "PING" {
			t.Error("unexpected type: got:", got)
		}
		for field, exp := range map[string]float64{"delay": 20, "timeout": 10, "max_retries": 3} {
			if got, _ := body[field].(float64); got != exp {
				t.Error("unexpected", field, ": exp:", exp, "got:", got)
			}
		}
		writeJSON(t, w, http.StatusCreated, `{"healthmonitor": {"id": "hm-1", "type": "PING"}}`)
	}))
	defer srv.Close()

	svc := newTestService(t, srv)
	monitor, err := svc.CreateHealthMonitor(context.Background(), "pool-1", MonitorCreateOpts{})
	if err != nil {
		t.Fatal("creating healthmonitor: err:", err)
	}
	if monitor.ID != "hm-1" {
		t.Error("unexpected healthmonitor id: got:", monitor.ID)
	}
}

func TestCreateHealthMonitorHonorsCallerOpts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := inner(t, decodeBody(t, r), "healthmonitor")
		if got, _ := body["type"].(string); got != "HTTP" {
			t.Error("unexpected type: got:", got)
		}
		if got, _ := body["delay"].(float64); got != 5 {
			t.Error("unexpected delay: got:", got)
		}
		writeJSON(t, w, http.StatusCreated, `{"healthmonitor": {"id": "hm-1"}}`)
	}))
	defer srv.Close()

	svc := newTestService(t, srv)
	opts := MonitorCreateOpts{Type: "HTTP", Delay: 5}
	if _, err := svc.CreateHealthMonitor(context.Background(), "pool-1", opts); err != nil {
		t.Fatal("creating healthmonitor: err:", err)
	}
}

func TestDeleteHealthMonitor(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v2.0/lbaas/healthmonitors/hm-1" {
			t.Error("unexpected request:", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	svc := newTestService(t, srv)
	if err := svc.DeleteHealthMonitor(context.Background(), "hm-1"); err != nil {
		t.Fatal("deleting healthmonitor: err:", err)
	}
}
