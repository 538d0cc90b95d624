package neutron

import (
	"context"
	"strings"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"
	"github.com/pkg/errors"

	"github.com/perfstack/neutronbench/bench"
)

type (
	Subnet           = subnets.Subnet
	SubnetCreateOpts = subnets.CreateOpts
	SubnetUpdateOpts = subnets.UpdateOpts
	SubnetListOpts   = subnets.ListOpts
)

// CreateSubnet creates a subnet on the given network. When opts carries no
// CIDR one is drawn from the service CIDR pool seeded with startCIDR (or
// bench.DefaultStartCIDR). Name and IP version are defaulted the same way.
func (s *Service) CreateSubnet(ctx context.Context, networkID, startCIDR string, opts SubnetCreateOpts) (*Subnet, error) {
	opts.NetworkID = networkID
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.create_subnet")
	defer stop()

	if opts.CIDR == "" {
		if startCIDR == "" {
			startCIDR = bench.DefaultStartCIDR
		}
		cidr, err := s.cidrs.Next(startCIDR)
		if err != nil {
			return nil, errors.Wrap(err, "allocating subnet cidr")
		}
		opts.CIDR = cidr
	}
	if opts.IPVersion == 0 {
		opts.IPVersion = ipVersionOf(opts.CIDR)
	}

	subnet, err := subnets.Create(ctx, s.client, opts).Extract()
	return subnet, errors.Wrap(err, "creating subnet")
}

// GetSubnet fetches one subnet by ID.
func (s *Service) GetSubnet(ctx context.Context, id string) (*Subnet, error) {
	stop := s.actions.Start("neutron.show_subnet")
	defer stop()

	subnet, err := subnets.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "subnet", id)
	}
	return subnet, nil
}

// ListSubnets returns the subnets matching opts.
func (s *Service) ListSubnets(ctx context.Context, opts SubnetListOpts) ([]Subnet, error) {
	stop := s.actions.Start("neutron.list_subnets")
	defer stop()

	pages, err := subnets.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing subnets")
	}
	all, err := subnets.ExtractSubnets(pages)
	return all, errors.Wrap(err, "extracting subnets")
}

// UpdateSubnet updates a subnet, injecting a fresh generated name when opts
// carries none.
func (s *Service) UpdateSubnet(ctx context.Context, id string, opts SubnetUpdateOpts) (*Subnet, error) {
	if opts.Name == nil {
		name := s.names.Generate()
		opts.Name = &name
	}

	stop := s.actions.Start("neutron.update_subnet")
	defer stop()

	subnet, err := subnets.Update(ctx, s.client, id, opts).Extract()
	return subnet, errors.Wrap(err, "updating subnet")
}

// DeleteSubnet deletes a subnet by ID.
func (s *Service) DeleteSubnet(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_subnet")
	defer stop()

	return errors.Wrap(subnets.Delete(ctx, s.client, id).ExtractErr(), "deleting subnet")
}

func ipVersionOf(cidr string) gophercloud.IPVersion {
	if strings.Contains(cidr, ":") {
		return gophercloud.IPv6
	}
	return gophercloud.IPv4
}
