package scenario

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfstack/neutronbench/neutron"
	"github.com/perfstack/neutronbench/octavia"
	"github.com/perfstack/neutronbench/scenario/fakes"
)

func TestLoadBalancerOpsNeedService(t *testing.T) {
	t.Parallel()

	n := newTestNeutron(t, &fakes.NetworkServiceFake{})
	ctx := context.Background()

	_, err := n.CreateLoadBalancer(ctx, neutron.Subnet{ID: "sub-1"}, octavia.LoadBalancerCreateOpts{})
	assert.ErrorIs(t, err, ErrNoLoadBalancerService)

	_, err = n.CreateLoadBalancers(ctx, nil, octavia.LoadBalancerCreateOpts{})
	assert.ErrorIs(t, err, ErrNoLoadBalancerService)

	_, err = n.CreatePool(ctx, "lb-1", octavia.PoolCreateOpts{})
	assert.ErrorIs(t, err, ErrNoLoadBalancerService)

	_, err = n.CreateHealthMonitor(ctx, "pool-1", octavia.MonitorCreateOpts{})
	assert.ErrorIs(t, err, ErrNoLoadBalancerService)

	assert.ErrorIs(t, n.DeleteLoadBalancer(ctx, "lb-1", false), ErrNoLoadBalancerService)
}

func TestCreateLoadBalancerForcesGeneratedName(t *testing.T) {
	t.Parallel()

	var gotSubnet, gotName string
	lbs := &fakes.LoadBalancerServiceFake{
		CreateLoadBalancerF: func(_ context.Context, vipSubnetID string, opts octavia.LoadBalancerCreateOpts) (*octavia.LoadBalancer, error) {
			gotSubnet = vipSubnetID
			gotName = opts.Name
			return &octavia.LoadBalancer{ID: "lb-1", Name: opts.Name}, nil
		},
	}
	n := newTestNeutron(t, &fakes.NetworkServiceFake{}, WithLoadBalancers(lbs))

	lb, err := n.CreateLoadBalancer(context.Background(), neutron.Subnet{ID: "sub-1"}, octavia.LoadBalancerCreateOpts{Name: "caller-picked"})
	require.NoError(t, err)
	assert.Equal(t, "lb-1", lb.ID)
	assert.Equal(t, "sub-1", gotSubnet)
	assert.True(t, strings.HasPrefix(gotName, testNamePrefix), "name %q", gotName)
}

func TestCreateLoadBalancersFansOutOverSubnets(t *testing.T) {
	t.Parallel()

	var gotSubnets []string
	names := map[string]bool{}
	lbs := &fakes.LoadBalancerServiceFake{
		CreateLoadBalancerF: func(_ context.Context, vipSubnetID string, opts octavia.LoadBalancerCreateOpts) (*octavia.LoadBalancer, error) {
			gotSubnets = append(gotSubnets, vipSubnetID)
			names[opts.Name] = true
			return &octavia.LoadBalancer{ID: "lb-" + vipSubnetID, Name: opts.Name}, nil
		},
	}
	n := newTestNeutron(t, &fakes.NetworkServiceFake{}, WithLoadBalancers(lbs))

	networks := []neutron.Network{
		{ID: "net-1", Subnets: []string{"sub-1", "sub-2"}},
		{ID: "net-2", Subnets: []string{"sub-3"}},
	}
	out, err := n.CreateLoadBalancers(context.Background(), networks, octavia.LoadBalancerCreateOpts{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"sub-1", "sub-2", "sub-3"}, gotSubnets)
	assert.Len(t, names, 3, "each load balancer gets its own generated name")
}

func TestUpdatePoolGeneratesFreshName(t *testing.T) {
	t.Parallel()

	var gotName *string
	lbs := &fakes.LoadBalancerServiceFake{
		UpdatePoolF: func(_ context.Context, id string, opts octavia.PoolUpdateOpts) (*octavia.Pool, error) {
			gotName = opts.Name
			return &octavia.Pool{ID: id}, nil
		},
	}
	n := newTestNeutron(t, &fakes.NetworkServiceFake{}, WithLoadBalancers(lbs))

	_, err := n.UpdatePool(context.Background(), "pool-1", octavia.PoolUpdateOpts{})
	require.NoError(t, err)
	require.NotNil(t, gotName)
	assert.True(t, strings.HasPrefix(*gotName, testNamePrefix), "name %q", *gotName)
}

func TestCreateHealthMonitorForwardsOpts(t *testing.T) {
	t.Parallel()

	var got octavia.MonitorCreateOpts
	lbs := &fakes.LoadBalancerServiceFake{
		CreateHealthMonitorF: func(_ context.Context, poolID string, opts octavia.MonitorCreateOpts) (*octavia.Monitor, error) {
			assert.Equal(t, "pool-1", poolID)
			got = opts
			return &octavia.Monitor{ID: "hm-1"}, nil
		},
	}
	n := newTestNeutron(t, &fakes.NetworkServiceFake{}, WithLoadBalancers(lbs))

	_, err := n.CreateHealthMonitor(context.Background(), "pool-1", octavia.MonitorCreateOpts{Delay: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Delay, "monitor opts pass through untouched")
}
