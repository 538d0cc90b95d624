package octavia

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/loadbalancer/v2/pools"
	"github.com/pkg/errors"
)

type (
	Pool           = pools.Pool
	PoolCreateOpts = pools.CreateOpts
	PoolUpdateOpts = pools.UpdateOpts
	PoolListOpts   = pools.ListOpts
)

// Pool creation defaults.
const (
	DefaultLBMethod     = pools.LBMethodRoundRobin
	DefaultPoolProtocol = pools.ProtocolHTTP
)

// CreatePool creates a pool on the given load balancer. Empty opts fields
// default to a ROUND_ROBIN HTTP pool with a generated name.
func (s *Service) CreatePool(ctx context.Context, loadbalancerID string, opts PoolCreateOpts) (*Pool, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}
	if opts.LBMethod == "" {
		opts.LBMethod = DefaultLBMethod
	}
	if opts.Protocol == "" {
		opts.Protocol = DefaultPoolProtocol
	}
	if opts.LoadbalancerID == "" && opts.ListenerID == "" {
		opts.LoadbalancerID = loadbalancerID
	}

	stop := s.actions.Start("octavia.create_pool")
	defer stop()

	pool, err := pools.Create(ctx, s.client, opts).Extract()
	return pool, errors.Wrap(err, "creating pool")
}

// GetPool fetches one pool by ID.
func (s *Service) GetPool(ctx context.Context, id string) (*Pool, error) {
	stop := s.actions.Start("octavia.show_pool")
	defer stop()

	pool, err := pools.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "pool", id)
	}
	return pool, nil
}

// ListPools returns the pools matching opts.
func (s *Service) ListPools(ctx context.Context, opts PoolListOpts) ([]Pool, error) {
	stop := s.actions.Start("octavia.list_pools")
	defer stop()

	pages, err := pools.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing pools")
	}
	all, err := pools.ExtractPools(pages)
	return all, errors.Wrap(err, "extracting pools")
}

// UpdatePool updates a pool, injecting a fresh generated name when opts
// carries none.
func (s *Service) UpdatePool(ctx context.Context, id string, opts PoolUpdateOpts) (*Pool, error) {
	if opts.Name == nil {
		name := s.names.Generate()
		opts.Name = &name
	}

	stop := s.actions.Start("octavia.update_pool")
	defer stop()

	pool, err := pools.Update(ctx, s.client, id, opts).Extract()
	return pool, errors.Wrap(err, "updating pool")
}

// DeletePool deletes a pool by ID.
func (s *Service) DeletePool(ctx context.Context, id string) error {
	stop := s.actions.Start("octavia.delete_pool")
	defer stop()

	return errors.Wrap(pools.Delete(ctx, s.client, id).ExtractErr(), "deleting pool")
}
