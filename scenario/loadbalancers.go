package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
	"github.com/perfstack/neutronbench/octavia"
)

// CreateLoadBalancer creates a load balancer with its VIP on the given
// subnet and waits for it to provision. A name in opts is discarded.
func (n *Neutron) CreateLoadBalancer(ctx context.Context, subnet neutron.Subnet, opts octavia.LoadBalancerCreateOpts) (*octavia.LoadBalancer, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	opts.Name = n.names.Generate()
	return n.lbs.CreateLoadBalancer(ctx, subnet.ID, opts)
}

// CreateLoadBalancers creates one load balancer per subnet across the given
// networks.
func (n *Neutron) CreateLoadBalancers(ctx context.Context, networks []neutron.Network, opts octavia.LoadBalancerCreateOpts) ([]octavia.LoadBalancer, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}

	var lbs []octavia.LoadBalancer
	for _, network := range networks {
		for _, subnetID := range network.Subnets {
			perSubnet := opts
			perSubnet.Name = n.names.Generate()
			lb, err := n.lbs.CreateLoadBalancer(ctx, subnetID, perSubnet)
			if err != nil {
				return nil, err
			}
			lbs = append(lbs, *lb)
		}
	}
	return lbs, nil
}

// ShowLoadBalancer fetches one load balancer by ID.
func (n *Neutron) ShowLoadBalancer(ctx context.Context, id string) (*octavia.LoadBalancer, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	return n.lbs.GetLoadBalancer(ctx, id)
}

// ListLoadBalancers returns the load balancers matching opts.
func (n *Neutron) ListLoadBalancers(ctx context.Context, opts octavia.LoadBalancerListOpts) ([]octavia.LoadBalancer, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	return n.lbs.ListLoadBalancers(ctx, opts)
}

// DeleteLoadBalancer deletes a load balancer, cascading to its listeners,
// pools, and monitors when asked to.
func (n *Neutron) DeleteLoadBalancer(ctx context.Context, id string, cascade bool) error {
	if n.lbs == nil {
		return ErrNoLoadBalancerService
	}
	return n.lbs.DeleteLoadBalancer(ctx, id, cascade)
}

// CreatePool creates a pool on the given load balancer. A name in opts is
// discarded.
func (n *Neutron) CreatePool(ctx context.Context, loadbalancerID string, opts octavia.PoolCreateOpts) (*octavia.Pool, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	opts.Name = n.names.Generate()
	return n.lbs.CreatePool(ctx, loadbalancerID, opts)
}

// ListPools returns the pools matching opts.
func (n *Neutron) ListPools(ctx context.Context, opts octavia.PoolListOpts) ([]octavia.Pool, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	return n.lbs.ListPools(ctx, opts)
}

// UpdatePool updates a pool under a fresh generated name.
func (n *Neutron) UpdatePool(ctx context.Context, id string, opts octavia.PoolUpdateOpts) (*octavia.Pool, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	name := n.names.Generate()
	opts.Name = &name
	return n.lbs.UpdatePool(ctx, id, opts)
}

// DeletePool deletes a pool by ID.
func (n *Neutron) DeletePool(ctx context.Context, id string) error {
	if n.lbs == nil {
		return ErrNoLoadBalancerService
	}
	return n.lbs.DeletePool(ctx, id)
}

// CreateListener creates a listener on the given load balancer. A name in
// opts is discarded.
func (n *Neutron) CreateListener(ctx context.Context, loadbalancerID string, opts octavia.ListenerCreateOpts) (*octavia.Listener, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	opts.Name = n.names.Generate()
	return n.lbs.CreateListener(ctx, loadbalancerID, opts)
}

// ListListeners returns the listeners matching opts.
func (n *Neutron) ListListeners(ctx context.Context, opts octavia.ListenerListOpts) ([]octavia.Listener, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	return n.lbs.ListListeners(ctx, opts)
}

// UpdateListener updates a listener under a fresh generated name.
func (n *Neutron) UpdateListener(ctx context.Context, id string, opts octavia.ListenerUpdateOpts) (*octavia.Listener, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	name := n.names.Generate()
	opts.Name = &name
	return n.lbs.UpdateListener(ctx, id, opts)
}

// DeleteListener deletes a listener by ID.
func (n *Neutron) DeleteListener(ctx context.Context, id string) error {
	if n.lbs == nil {
		return ErrNoLoadBalancerService
	}
	return n.lbs.DeleteListener(ctx, id)
}

// CreateHealthMonitor creates a health monitor on the given pool.
func (n *Neutron) CreateHealthMonitor(ctx context.Context, poolID string, opts octavia.MonitorCreateOpts) (*octavia.Monitor, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	return n.lbs.CreateHealthMonitor(ctx, poolID, opts)
}

// ListHealthMonitors returns the health monitors matching opts.
func (n *Neutron) ListHealthMonitors(ctx context.Context, opts octavia.MonitorListOpts) ([]octavia.Monitor, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	return n.lbs.ListHealthMonitors(ctx, opts)
}

// UpdateHealthMonitor updates a health monitor by ID.
func (n *Neutron) UpdateHealthMonitor(ctx context.Context, id string, opts octavia.MonitorUpdateOpts) (*octavia.Monitor, error) {
	if n.lbs == nil {
		return nil, ErrNoLoadBalancerService
	}
	return n.lbs.UpdateHealthMonitor(ctx, id, opts)
}

// DeleteHealthMonitor deletes a health monitor by ID.
func (n *Neutron) DeleteHealthMonitor(ctx context.Context, id string) error {
	if n.lbs == nil {
		return ErrNoLoadBalancerService
	}
	return n.lbs.DeleteHealthMonitor(ctx, id)
}
