package scenario

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfstack/neutronbench/neutron"
	"github.com/perfstack/neutronbench/octavia"
	"github.com/perfstack/neutronbench/scenario/fakes"
)

// callLog records the order of fake service invocations.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) {
	l.calls = append(l.calls, name)
}

func TestGetPreset(t *testing.T) {
	t.Parallel()

	preset, ok := GetPreset("network-lifecycle")
	require.True(t, ok)
	assert.Equal(t, "network-lifecycle", preset.Name)
	assert.NotEmpty(t, preset.Description)
	assert.NotNil(t, preset.Run)

	_, ok = GetPreset("no-such-preset")
	assert.False(t, ok)
}

func TestListPresets(t *testing.T) {
	t.Parallel()

	exp := []string{
		"network-lifecycle",
		"router-topology",
		"port-lifecycle",
		"security-group-lifecycle",
		"floating-ip-lifecycle",
		"trunk-lifecycle",
		"loadbalancer-lifecycle",
	}
	assert.Equal(t, exp, ListPresets())
}

func TestNetworkLifecyclePreset(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	net := &fakes.NetworkServiceFake{
		CreateNetworkF: func(_ context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error) {
			log.add("CreateNetwork")
			return &neutron.Network{ID: "net-1", Name: opts.Name}, nil
		},
		ListNetworksF: func(context.Context, neutron.NetworkListOpts) ([]neutron.Network, error) {
			log.add("ListNetworks")
			return nil, nil
		},
		GetNetworkF: func(_ context.Context, id string) (*neutron.Network, error) {
			log.add("GetNetwork")
			return &neutron.Network{ID: id}, nil
		},
		UpdateNetworkF: func(_ context.Context, id string, _ neutron.NetworkUpdateOpts) (*neutron.Network, error) {
			log.add("UpdateNetwork")
			return &neutron.Network{ID: id}, nil
		},
		DeleteNetworkF: func(_ context.Context, id string) error {
			log.add("DeleteNetwork")
			assert.Equal(t, "net-1", id)
			return nil
		},
	}
	n := newTestNeutron(t, net)

	preset, ok := GetPreset("network-lifecycle")
	require.True(t, ok)
	require.NoError(t, preset.Run(context.Background(), n))

	assert.Equal(t, []string{"CreateNetwork", "ListNetworks", "GetNetwork", "UpdateNetwork", "DeleteNetwork"}, log.calls)
}

func TestRouterTopologyPreset(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	removed := map[string]string{}
	net := &fakes.NetworkServiceFake{
		CreateNetworkTopologyF: func(_ context.Context, spec neutron.TopologySpec) (*neutron.Topology, error) {
			log.add("CreateNetworkTopology")
			assert.Equal(t, 2, spec.SubnetCount)
			return &neutron.Topology{
				Network: &neutron.Network{ID: "net-1"},
				Subnets: []neutron.Subnet{{ID: "sub-1"}, {ID: "sub-2"}},
				Routers: []neutron.Router{{ID: "r-1"}, {ID: "r-2"}},
			}, nil
		},
		ListRoutersF: func(context.Context, neutron.RouterListOpts) ([]neutron.Router, error) {
			log.add("ListRouters")
			return nil, nil
		},
		RemoveRouterInterfaceF: func(_ context.Context, routerID, subnetID string) error {
			log.add("RemoveRouterInterface")
			removed[routerID] = subnetID
			return nil
		},
		DeleteRouterF: func(_ context.Context, _ string) error {
			log.add("DeleteRouter")
			return nil
		},
		DeleteSubnetF: func(_ context.Context, _ string) error {
			log.add("DeleteSubnet")
			return nil
		},
		DeleteNetworkF: func(_ context.Context, id string) error {
			log.add("DeleteNetwork")
			assert.Equal(t, "net-1", id)
			return nil
		},
	}
	n := newTestNeutron(t, net)

	preset, ok := GetPreset("router-topology")
	require.True(t, ok)
	require.NoError(t, preset.Run(context.Background(), n))

	exp := []string{
		"CreateNetworkTopology", "ListRouters",
		"RemoveRouterInterface", "DeleteRouter",
		"RemoveRouterInterface", "DeleteRouter",
		"DeleteSubnet", "DeleteSubnet",
		"DeleteNetwork",
	}
	assert.Equal(t, exp, log.calls)
	assert.Equal(t, map[string]string{"r-1": "sub-1", "r-2": "sub-2"}, removed, "each router detaches its own subnet")
}

// The port preset must reuse the context network and leave it in place: only
// the port funcs are wired, so any network create or delete panics the test.
func TestPortLifecyclePresetReusesContextNetwork(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	net := &fakes.NetworkServiceFake{
		CreatePortF: func(_ context.Context, networkID string, opts neutron.PortCreateOpts) (*neutron.Port, error) {
			log.add("CreatePort")
			assert.Equal(t, "net-ctx", networkID)
			return &neutron.Port{ID: "port-1", NetworkID: networkID, Name: opts.Name}, nil
		},
		GetPortF: func(_ context.Context, id string) (*neutron.Port, error) {
			log.add("GetPort")
			return &neutron.Port{ID: id}, nil
		},
		UpdatePortF: func(_ context.Context, id string, _ neutron.PortUpdateOpts) (*neutron.Port, error) {
			log.add("UpdatePort")
			return &neutron.Port{ID: id}, nil
		},
		ListPortsF: func(_ context.Context, opts neutron.PortListOpts) ([]neutron.Port, error) {
			log.add("ListPorts")
			assert.Equal(t, "net-ctx", opts.NetworkID)
			return nil, nil
		},
		DeletePortF: func(_ context.Context, id string) error {
			log.add("DeletePort")
			assert.Equal(t, "port-1", id)
			return nil
		},
	}
	runCtx := &Context{Tenant: Tenant{Networks: []neutron.Network{{ID: "net-ctx"}}}}
	n := newTestNeutron(t, net, WithRunContext(runCtx))

	preset, ok := GetPreset("port-lifecycle")
	require.True(t, ok)
	require.NoError(t, preset.Run(context.Background(), n))

	assert.Equal(t, []string{"CreatePort", "GetPort", "UpdatePort", "ListPorts", "DeletePort"}, log.calls)
}

func TestTrunkLifecyclePreset(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	var portSerial int
	var deletedPorts []string
	net := &fakes.NetworkServiceFake{
		CreateNetworkF: func(_ context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error) {
			log.add("CreateNetwork")
			return &neutron.Network{ID: "net-1", Name: opts.Name}, nil
		},
		CreateSubnetF: func(_ context.Context, networkID, _ string, _ neutron.SubnetCreateOpts) (*neutron.Subnet, error) {
			log.add("CreateSubnet")
			return &neutron.Subnet{ID: "sub-1", NetworkID: networkID}, nil
		},
		CreatePortF: func(_ context.Context, networkID string, _ neutron.PortCreateOpts) (*neutron.Port, error) {
			log.add("CreatePort")
			portSerial++
			return &neutron.Port{ID: fmt.Sprintf("port-%d", portSerial), NetworkID: networkID}, nil
		},
		CreateTrunkF: func(_ context.Context, portID string, _ neutron.TrunkCreateOpts) (*neutron.Trunk, error) {
			log.add("CreateTrunk")
			assert.Equal(t, "port-1", portID, "the first port parents the trunk")
			return &neutron.Trunk{ID: "trunk-1"}, nil
		},
		AddTrunkSubportsF: func(_ context.Context, trunkID string, subports []neutron.Subport) (*neutron.Trunk, error) {
			log.add("AddTrunkSubports")
			require.Len(t, subports, 1)
			assert.Equal(t, "port-2", subports[0].PortID)
			assert.Equal(t, 100, subports[0].SegmentationID)
			assert.Equal(t, "vlan", subports[0].SegmentationType)
			return &neutron.Trunk{ID: trunkID}, nil
		},
		ListTrunkSubportsF: func(_ context.Context, trunkID string) ([]neutron.Subport, error) {
			log.add("ListTrunkSubports")
			assert.Equal(t, "trunk-1", trunkID)
			return nil, nil
		},
		DeleteTrunkF: func(_ context.Context, _ string) error {
			log.add("DeleteTrunk")
			return nil
		},
		DeletePortF: func(_ context.Context, id string) error {
			log.add("DeletePort")
			deletedPorts = append(deletedPorts, id)
			return nil
		},
		DeleteSubnetF: func(_ context.Context, _ string) error {
			log.add("DeleteSubnet")
			return nil
		},
		DeleteNetworkF: func(_ context.Context, _ string) error {
			log.add("DeleteNetwork")
			return nil
		},
	}
	n := newTestNeutron(t, net)

	preset, ok := GetPreset("trunk-lifecycle")
	require.True(t, ok)
	require.NoError(t, preset.Run(context.Background(), n))

	exp := []string{
		"CreateNetwork", "CreateSubnet",
		"CreatePort", "CreatePort",
		"CreateTrunk", "AddTrunkSubports", "ListTrunkSubports", "DeleteTrunk",
		"DeletePort", "DeletePort",
		"DeleteSubnet", "DeleteNetwork",
	}
	assert.Equal(t, exp, log.calls)
	assert.Equal(t, []string{"port-2", "port-1"}, deletedPorts, "the child port goes first")
}

func TestLoadBalancerLifecyclePreset(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	net := &fakes.NetworkServiceFake{
		CreateNetworkF: func(_ context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error) {
			log.add("CreateNetwork")
			return &neutron.Network{ID: "net-1", Name: opts.Name}, nil
		},
		CreateSubnetF: func(_ context.Context, networkID, _ string, _ neutron.SubnetCreateOpts) (*neutron.Subnet, error) {
			log.add("CreateSubnet")
			return &neutron.Subnet{ID: "sub-1", NetworkID: networkID}, nil
		},
	}
	var gotCascade bool
	lbs := &fakes.LoadBalancerServiceFake{
		CreateLoadBalancerF: func(_ context.Context, vipSubnetID string, opts octavia.LoadBalancerCreateOpts) (*octavia.LoadBalancer, error) {
			log.add("CreateLoadBalancer")
			assert.Equal(t, "sub-1", vipSubnetID)
			return &octavia.LoadBalancer{ID: "lb-1", Name: opts.Name}, nil
		},
		GetLoadBalancerF: func(_ context.Context, id string) (*octavia.LoadBalancer, error) {
			log.add("GetLoadBalancer")
			return &octavia.LoadBalancer{ID: id}, nil
		},
		ListLoadBalancersF: func(context.Context, octavia.LoadBalancerListOpts) ([]octavia.LoadBalancer, error) {
			log.add("ListLoadBalancers")
			return nil, nil
		},
		DeleteLoadBalancerF: func(_ context.Context, id string, cascade bool) error {
			log.add("DeleteLoadBalancer")
			assert.Equal(t, "lb-1", id)
			gotCascade = cascade
			return nil
		},
	}
	n := newTestNeutron(t, net, WithLoadBalancers(lbs))

	preset, ok := GetPreset("loadbalancer-lifecycle")
	require.True(t, ok)
	require.NoError(t, preset.Run(context.Background(), n))

	exp := []string{
		"CreateNetwork", "CreateSubnet",
		"CreateLoadBalancer", "GetLoadBalancer", "ListLoadBalancers", "DeleteLoadBalancer",
	}
	assert.Equal(t, exp, log.calls)
	assert.True(t, gotCascade, "the delete cascades to child resources")
}

func TestPresetRunStopsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	net := &fakes.NetworkServiceFake{
		CreateNetworkF: func(_ context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error) {
			return &neutron.Network{ID: "net-1", Name: opts.Name}, nil
		},
		// Later lifecycle funcs stay nil: reaching one panics the test.
		ListNetworksF: func(context.Context, neutron.NetworkListOpts) ([]neutron.Network, error) {
			return nil, boom
		},
	}
	n := newTestNeutron(t, net)

	preset, ok := GetPreset("network-lifecycle")
	require.True(t, ok)
	assert.ErrorIs(t, preset.Run(context.Background(), n), boom)
}
