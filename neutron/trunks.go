package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/trunks"
	"github.com/pkg/errors"
)

type (
	Trunk           = trunks.Trunk
	TrunkCreateOpts = trunks.CreateOpts
	TrunkListOpts   = trunks.ListOpts
	Subport         = trunks.Subport
)

// CreateTrunk creates a trunk over the given parent port, injecting a
// generated name when opts carries none.
func (s *Service) CreateTrunk(ctx context.Context, portID string, opts TrunkCreateOpts) (*Trunk, error) {
	opts.PortID = portID
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.create_trunk")
	defer stop()

	trunk, err := trunks.Create(ctx, s.client, opts).Extract()
	return trunk, errors.Wrap(err, "creating trunk")
}

// ListTrunks returns the trunks matching opts.
func (s *Service) ListTrunks(ctx context.Context, opts TrunkListOpts) ([]Trunk, error) {
	stop := s.actions.Start("neutron.list_trunks")
	defer stop()

	pages, err := trunks.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing trunks")
	}
	all, err := trunks.ExtractTrunks(pages)
	return all, errors.Wrap(err, "extracting trunks")
}

// DeleteTrunk deletes a trunk by ID.
func (s *Service) DeleteTrunk(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_trunk")
	defer stop()

	return errors.Wrap(trunks.Delete(ctx, s.client, id).ExtractErr(), "deleting trunk")
}

// ListTrunkSubports returns the subports attached to a trunk.
func (s *Service) ListTrunkSubports(ctx context.Context, trunkID string) ([]Subport, error) {
	stop := s.actions.Start("neutron.list_subports_by_trunk")
	defer stop()

	subports, err := trunks.GetSubports(ctx, s.client, trunkID).Extract()
	return subports, errors.Wrap(err, "listing trunk subports")
}

// AddTrunkSubports attaches the given subports to a trunk.
func (s *Service) AddTrunkSubports(ctx context.Context, trunkID string, subports []Subport) (*Trunk, error) {
	stop := s.actions.Start("neutron.add_subports_to_trunk")
	defer stop()

	trunk, err := trunks.AddSubports(ctx, s.client, trunkID, trunks.AddSubportsOpts{Subports: subports}).Extract()
	return trunk, errors.Wrap(err, "adding trunk subports")
}
