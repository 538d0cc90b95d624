package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/external"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/pkg/errors"

	"github.com/perfstack/neutronbench/bench"
)

// Aliases so callers work with a single namespace.
type (
	Network           = networks.Network
	NetworkCreateOpts = networks.CreateOpts
	NetworkUpdateOpts = networks.UpdateOpts
	NetworkListOpts   = networks.ListOpts
)

// CreateNetwork creates a network. A generated name is injected when opts
// carries none.
func (s *Service) CreateNetwork(ctx context.Context, opts NetworkCreateOpts) (*Network, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.create_network")
	defer stop()

	network, err := networks.Create(ctx, s.client, opts).Extract()
	return network, errors.Wrap(err, "creating network")
}

// GetNetwork fetches one network by ID.
func (s *Service) GetNetwork(ctx context.Context, id string) (*Network, error) {
	stop := s.actions.Start("neutron.show_network")
	defer stop()

	network, err := networks.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "network", id)
	}
	return network, nil
}

// ListNetworks returns the networks visible to the client's project.
func (s *Service) ListNetworks(ctx context.Context, opts NetworkListOpts) ([]Network, error) {
	stop := s.actions.Start("neutron.list_networks")
	defer stop()

	pages, err := networks.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing networks")
	}
	all, err := networks.ExtractNetworks(pages)
	return all, errors.Wrap(err, "extracting networks")
}

// ListExternalNetworks returns the networks flagged router:external.
func (s *Service) ListExternalNetworks(ctx context.Context) ([]Network, error) {
	stop := s.actions.Start("neutron.list_networks")
	defer stop()

	yes := true
	opts := external.ListOptsExt{
		ListOptsBuilder: NetworkListOpts{},
		External:        &yes,
	}
	pages, err := networks.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing external networks")
	}
	all, err := networks.ExtractNetworks(pages)
	return all, errors.Wrap(err, "extracting networks")
}

// UpdateNetwork updates a network. A fresh generated name is injected when
// opts carries none, keeping updated resources inside the naming convention.
func (s *Service) UpdateNetwork(ctx context.Context, id string, opts NetworkUpdateOpts) (*Network, error) {
	if opts.Name == nil {
		name := s.names.Generate()
		opts.Name = &name
	}

	stop := s.actions.Start("neutron.update_network")
	defer stop()

	network, err := networks.Update(ctx, s.client, id, opts).Extract()
	return network, errors.Wrap(err, "updating network")
}

// DeleteNetwork deletes a network by ID.
func (s *Service) DeleteNetwork(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_network")
	defer stop()

	return errors.Wrap(networks.Delete(ctx, s.client, id).ExtractErr(), "deleting network")
}

// FindNetwork resolves a network by ID or name over the full listing. A miss
// is reported as NotFoundError.
func (s *Service) FindNetwork(ctx context.Context, nameOrID string) (*Network, error) {
	stop := s.actions.Start("neutron.find_network")
	defer stop()

	pages, err := networks.List(s.client, NetworkListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing networks")
	}
	all, err := networks.ExtractNetworks(pages)
	if err != nil {
		return nil, errors.Wrap(err, "extracting networks")
	}

	for i := range all {
		if all[i].ID == nameOrID || all[i].Name == nameOrID {
			return &all[i], nil
		}
	}
	return nil, &bench.NotFoundError{Resource: "network", ID: nameOrID}
}
