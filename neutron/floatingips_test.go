package neutron

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/perfstack/neutronbench/bench"
)

// fipTestServer answers the external network listing plus floating IP
// creation.
func fipTestServer(t *testing.T, externalNets string, onCreate func(map[string]any)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v2.0/networks":
			writeJSON(t, w, http.StatusOK, `{"networks": `+externalNets+`}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v2.0/floatingips":
			onCreate(inner(t, decodeBody(t, r), "floatingip"))
			writeJSON(t, w, http.StatusCreated, `{"floatingip": {"id": "fip-1", "floating_ip_address": "203.0.113.9"}}`)
		default:
			t.Error("unexpected request:", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
}

func TestCreateFloatingIPDefaults(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := fipTestServer(t, `[{"id": "ext-1", "name": "public"}, {"id": "ext-2", "name": "public2"}]`, func(body map[string]any) {
		got = body
	})
	defer srv.Close()

	svc := newTestService(t, srv)
	fip, err := svc.CreateFloatingIP(context.Background(), "", FloatingIPCreateOpts{})
	if err != nil {
		t.Fatal("creating floating ip: err:", err)
	}
	if fip.ID != "fip-1" {
		t.Error("unexpected floating ip: got:", fip.ID)
	}

	if id, _ := got["floating_network_id"].(string); id != "ext-1" {
		t.Error("expected the first external network: got:", id)
	}
	if desc, _ := got["description"].(string); !strings.HasPrefix(desc, testNamePrefix) {
		t.Error("expected a generated description: got:", desc)
	}
}

func TestCreateFloatingIPByNetworkName(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := fipTestServer(t, `[{"id": "ext-1", "name": "public"}, {"id": "ext-2", "name": "public2"}]`, func(body map[string]any) {
		got = body
	})
	defer srv.Close()

	svc := newTestService(t, srv)
	if _, err := svc.CreateFloatingIP(context.Background(), "public2", FloatingIPCreateOpts{}); err != nil {
		t.Fatal("creating floating ip: err:", err)
	}
	if id, _ := got["floating_network_id"].(string); id != "ext-2" {
		t.Error("expected the named network: got:", id)
	}
}

func TestCreateFloatingIPNoExternalNetwork(t *testing.T) {
	t.Parallel()

	srv := fipTestServer(t, `[]`, func(map[string]any) {
		t.Error("creation must not be attempted without an external network")
	})
	defer srv.Close()

	svc := newTestService(t, srv)
	_, err := svc.CreateFloatingIP(context.Background(), "", FloatingIPCreateOpts{})
	if !bench.IsNotFound(err) {
		t.Error("expected a NotFoundError: got:", err)
	}
}

func TestAssociateFloatingIP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/v2.0/floatingips/fip-1" {
			t.Error("unexpected request:", r.Method, r.URL.Path)
		}
		body := inner(t, decodeBody(t, r), "floatingip")
		if got, _ := body["port_id"].(string); got != "p-1" {
			t.Error("unexpected port_id: got:", got)
		}
		writeJSON(t, w, http.StatusOK, `{"floatingip": {"id": "fip-1", "port_id": "p-1"}}`)
	}))
	defer srv.Close()

	svc := newTestService(t, srv)
	fip, err := svc.AssociateFloatingIP(context.Background(), "fip-1", "p-1")
	if err != nil {
		t.Fatal("associating floating ip: err:", err)
	}
	if fip.PortID != "p-1" {
		t.Error("unexpected port on floating ip: got:", fip.PortID)
	}
}

func TestDissociateFloatingIP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := inner(t, decodeBody(t, r), "floatingip")
		got, present := body["port_id"]
		if !present || got != nil {
			t.Error("expected port_id null: got:", got)
		}
		writeJSON(t, w, http.StatusOK, `{"floatingip": {"id": "fip-1", "port_id": null}}`)
	}))
	defer srv.Close()

	svc := newTestService(t, srv)
	if _, err := svc.DissociateFloatingIP(context.Background(), "fip-1"); err != nil {
		t.Fatal("dissociating floating ip: err:", err)
	}
}

func TestDeleteFloatingIP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v2.0/floatingips/fip-1" {
			t.Error("unexpected request:", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	svc := newTestService(t, srv)
	if err := svc.DeleteFloatingIP(context.Background(), "fip-1"); err != nil {
		t.Fatal("deleting floating ip: err:", err)
	}
}
