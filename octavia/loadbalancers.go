package octavia

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/loadbalancer/v2/loadbalancers"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perfstack/neutronbench/bench"
)

type (
	LoadBalancer           = loadbalancers.LoadBalancer
	LoadBalancerCreateOpts = loadbalancers.CreateOpts
	LoadBalancerUpdateOpts = loadbalancers.UpdateOpts
	LoadBalancerListOpts   = loadbalancers.ListOpts
)

// CreateLoadBalancer creates a load balancer on the given VIP subnet,
// injecting a generated name when opts carries none, and blocks until
// provisioning reaches ACTIVE. An ERROR status aborts the wait with a
// StatusError; the timeout yields a WaitTimeoutError.
func (s *Service) CreateLoadBalancer(ctx context.Context, vipSubnetID string, opts LoadBalancerCreateOpts) (*LoadBalancer, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}
	if opts.VipSubnetID == "" {
		opts.VipSubnetID = vipSubnetID
	}

	stop := s.actions.Start("octavia.create_loadbalancer")
	defer stop()

	lb, err := loadbalancers.Create(ctx, s.client, opts).Extract()
	if err != nil {
		return nil, errors.Wrap(err, "creating loadbalancer")
	}

	s.log.Debug("waiting for loadbalancer provisioning",
		zap.String("id", lb.ID),
		zap.Duration("timeout", s.activeTimeout))

	return bench.WaitForStatus(ctx, bench.WaitSpec[*LoadBalancer]{
		Resource: "loadbalancer",
		Refresh: func(ctx context.Context) (*LoadBalancer, error) {
			return loadbalancers.Get(ctx, s.client, lb.ID).Extract()
		},
		Status:   func(lb *LoadBalancer) string { return lb.ProvisioningStatus },
		Ready:    []string{StatusActive},
		Failure:  []string{StatusError},
		Timeout:  s.activeTimeout,
		Interval: s.activeInterval,
	})
}

// GetLoadBalancer fetches one load balancer by ID.
func (s *Service) GetLoadBalancer(ctx context.Context, id string) (*LoadBalancer, error) {
	stop := s.actions.Start("octavia.show_loadbalancer")
	defer stop()

	lb, err := loadbalancers.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "loadbalancer", id)
	}
	return lb, nil
}

// ListLoadBalancers returns the load balancers matching opts.
func (s *Service) ListLoadBalancers(ctx context.Context, opts LoadBalancerListOpts) ([]LoadBalancer, error) {
	stop := s.actions.Start("octavia.list_loadbalancers")
	defer stop()

	pages, err := loadbalancers.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing loadbalancers")
	}
	all, err := loadbalancers.ExtractLoadBalancers(pages)
	return all, errors.Wrap(err, "extracting loadbalancers")
}

// DeleteLoadBalancer deletes a load balancer. Cascade tears down the
// listeners, pools, and monitors hanging off it in the same call.
func (s *Service) DeleteLoadBalancer(ctx context.Context, id string, cascade bool) error {
	stop := s.actions.Start("octavia.delete_loadbalancer")
	defer stop()

	opts := loadbalancers.DeleteOpts{Cascade: cascade}
	return errors.Wrap(loadbalancers.Delete(ctx, s.client, id, opts).ExtractErr(), "deleting loadbalancer")
}
