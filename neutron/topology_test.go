package neutron

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/perfstack/neutronbench/bench"
)

type topologyRecorder struct {
	subnets int
	routers int
	// wired maps router IDs to the subnet attached to them.
	wired map[string]string
}

func topologyTestServer(t *testing.T, rec *topologyRecorder) *httptest.Server {
	t.Helper()

	if rec.wired == nil {
		rec.wired = map[string]string{}
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2.0/networks":
			writeJSON(t, w, http.StatusCreated, `{"network": {"id": "net-1"}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v2.0/subnets":
			rec.subnets++
			id := "sub-" + strconv.Itoa(rec.subnets)
			writeJSON(t, w, http.StatusCreated, `{"subnet": {"id": "`+id+`", "network_id": "net-1"}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v2.0/routers":
			rec.routers++
			id := "r-" + strconv.Itoa(rec.routers)
			writeJSON(t, w, http.StatusCreated, `{"router": {"id": "`+id+`"}}`)
		case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/add_router_interface"):
			routerID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v2.0/routers/"), "/add_router_interface")
			subnetID, _ := decodeBody(t, r)["subnet_id"].(string)
			rec.wired[routerID] = subnetID
			writeJSON(t, w, http.StatusOK, `{"id": "if-1", "subnet_id": "`+subnetID+`", "port_id": "p-1"}`)
		default:
			t.Error("unexpected request:", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
}

func TestCreateNetworkTopology(t *testing.T) {
	t.Parallel()

	rec := &topologyRecorder{}
	srv := topologyTestServer(t, rec)
	defer srv.Close()

	var log bench.ActionLog
	svc := newTestService(t, srv, WithActionLog(&log))

	topo, err := svc.CreateNetworkTopology(context.Background(), TopologySpec{
		SubnetCount: 2,
		Router:      &RouterTopology{},
	})
	if err != nil {
		t.Fatal("creating topology: err:", err)
	}

	if topo.Network.ID != "net-1" {
		t.Error("unexpected network id: got:", topo.Network.ID)
	}
	if len(topo.Subnets) != 2 || len(topo.Routers) != 2 {
		t.Fatal("unexpected topology size: subnets:", len(topo.Subnets), "routers:", len(topo.Routers))
	}
	if topo.Subnets[0].ID != "sub-1" || topo.Subnets[1].ID != "sub-2" {
		t.Error("unexpected subnet ids: got:", topo.Subnets[0].ID, topo.Subnets[1].ID)
	}

	// Each router is attached to the subnet created in the same round.
	exp := map[string]string{"r-1": "sub-1", "r-2": "sub-2"}
	for router, subnet := range exp {
		if rec.wired[router] != subnet {
			t.Error("router wired to the wrong subnet: router:", router, "exp:", subnet, "got:", rec.wired[router])
		}
	}

	counts := map[string]int{}
	for _, action := range log.Actions() {
		counts[action.Name]++
	}
	for name, exp := range map[string]int{
		"neutron.create_network":       1,
		"neutron.create_subnet":        2,
		"neutron.create_router":        2,
		"neutron.add_interface_router": 2,
	} {
		if counts[name] != exp {
			t.Error("unexpected action count:", name, "exp:", exp, "got:", counts[name])
		}
	}
}

func TestCreateNetworkTopologyDefaults(t *testing.T) {
	t.Parallel()

	rec := &topologyRecorder{}
	srv := topologyTestServer(t, rec)
	defer srv.Close()

	svc := newTestService(t, srv)
	topo, err := svc.CreateNetworkTopology(context.Background(), TopologySpec{})
	if err != nil {
		t.Fatal("creating topology: err:", err)
	}

	if len(topo.Subnets) != 1 {
		t.Error("expected the subnet count to default to 1: got:", len(topo.Subnets))
	}
	if len(topo.Routers) != 0 {
		t.Error("expected no routers without a router spec: got:", len(topo.Routers))
	}
}
