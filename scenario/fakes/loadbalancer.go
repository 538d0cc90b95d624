package fakes

import (
	"context"

	"github.com/perfstack/neutronbench/octavia"
)

// LoadBalancerServiceFake fakes scenario.LoadBalancerService.
type LoadBalancerServiceFake struct {
	CreateLoadBalancerF func(context.Context, string, octavia.LoadBalancerCreateOpts) (*octavia.LoadBalancer, error)
	GetLoadBalancerF    func(context.Context, string) (*octavia.LoadBalancer, error)
	ListLoadBalancersF  func(context.Context, octavia.LoadBalancerListOpts) ([]octavia.LoadBalancer, error)
	DeleteLoadBalancerF func(context.Context, string, bool) error

	CreatePoolF func(context.Context, string, octavia.PoolCreateOpts) (*octavia.Pool, error)
	ListPoolsF  func(context.Context, octavia.PoolListOpts) ([]octavia.Pool, error)
	UpdatePoolF func(context.Context, string, octavia.PoolUpdateOpts) (*octavia.Pool, error)
	DeletePoolF func(context.Context, string) error

	CreateListenerF func(context.Context, string, octavia.ListenerCreateOpts) (*octavia.Listener, error)
	ListListenersF  func(context.Context, octavia.ListenerListOpts) ([]octavia.Listener, error)
	UpdateListenerF func(context.Context, string, octavia.ListenerUpdateOpts) (*octavia.Listener, error)
	DeleteListenerF func(context.Context, string) error

	CreateHealthMonitorF func(context.Context, string, octavia.MonitorCreateOpts) (*octavia.Monitor, error)
	ListHealthMonitorsF  func(context.Context, octavia.MonitorListOpts) ([]octavia.Monitor, error)
	UpdateHealthMonitorF func(context.Context, string, octavia.MonitorUpdateOpts) (*octavia.Monitor, error)
	DeleteHealthMonitorF func(context.Context, string) error
}

func (f *LoadBalancerServiceFake) CreateLoadBalancer(ctx context.Context, vipSubnetID string, opts octavia.LoadBalancerCreateOpts) (*octavia.LoadBalancer, error) {
	return f.CreateLoadBalancerF(ctx, vipSubnetID, opts)
}

func (f *LoadBalancerServiceFake) GetLoadBalancer(ctx context.Context, id string) (*octavia.LoadBalancer, error) {
	return f.GetLoadBalancerF(ctx, id)
}

func (f *LoadBalancerServiceFake) ListLoadBalancers(ctx context.Context, opts octavia.LoadBalancerListOpts) ([]octavia.LoadBalancer, error) {
	return f.ListLoadBalancersF(ctx, opts)
}

func (f *LoadBalancerServiceFake) DeleteLoadBalancer(ctx context.Context, id string, cascade bool) error {
	return f.DeleteLoadBalancerF(ctx, id, cascade)
}

func (f *LoadBalancerServiceFake) CreatePool(ctx context.Context, loadbalancerID string, opts octavia.PoolCreateOpts) (*octavia.Pool, error) {
	return f.CreatePoolF(ctx, loadbalancerID, opts)
}

func (f *LoadBalancerServiceFake) ListPools(ctx context.Context, opts octavia.PoolListOpts) ([]octavia.Pool, error) {
	return f.ListPoolsF(ctx, opts)
}

func (f *LoadBalancerServiceFake) UpdatePool(ctx context.Context, id string, opts octavia.PoolUpdateOpts) (*octavia.Pool, error) {
	return f.UpdatePoolF(ctx, id, opts)
}

func (f *LoadBalancerServiceFake) DeletePool(ctx context.Context, id string) error {
	return f.DeletePoolF(ctx, id)
}

func (f *LoadBalancerServiceFake) CreateListener(ctx context.Context, loadbalancerID string, opts octavia.ListenerCreateOpts) (*octavia.Listener, error) {
	return f.CreateListenerF(ctx, loadbalancerID, opts)
}

func (f *LoadBalancerServiceFake) ListListeners(ctx context.Context, opts octavia.ListenerListOpts) ([]octavia.Listener, error) {
	return f.ListListenersF(ctx, opts)
}

func (f *LoadBalancerServiceFake) UpdateListener(ctx context.Context, id string, opts octavia.ListenerUpdateOpts) (*octavia.Listener, error) {
	return f.UpdateListenerF(ctx, id, opts)
}

func (f *LoadBalancerServiceFake) DeleteListener(ctx context.Context, id string) error {
	return f.DeleteListenerF(ctx, id)
}

func (f *LoadBalancerServiceFake) CreateHealthMonitor(ctx context.Context, poolID string, opts octavia.MonitorCreateOpts) (*octavia.Monitor, error) {
	return f.CreateHealthMonitorF(ctx, poolID, opts)
}

func (f *LoadBalancerServiceFake) ListHealthMonitors(ctx context.Context, opts octavia.MonitorListOpts) ([]octavia.Monitor, error) {
	return f.ListHealthMonitorsF(ctx, opts)
}

func (f *LoadBalancerServiceFake) UpdateHealthMonitor(ctx context.Context, id string, opts octavia.MonitorUpdateOpts) (*octavia.Monitor, error) {
	return f.UpdateHealthMonitorF(ctx, id, opts)
}

func (f *LoadBalancerServiceFake) DeleteHealthMonitor(ctx context.Context, id string) error {
	return f.DeleteHealthMonitorF(ctx, id)
}
