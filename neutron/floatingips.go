package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/pkg/errors"

	"github.com/perfstack/neutronbench/bench"
)

type (
	FloatingIP           = floatingips.FloatingIP
	FloatingIPCreateOpts = floatingips.CreateOpts
	FloatingIPListOpts   = floatingips.ListOpts
)

// CreateFloatingIP allocates a floating IP. The floating network is resolved
// in order: opts.FloatingNetworkID, then floatingNetwork matched by ID or
// name among the external networks, then the first external network. Since
// floating IPs carry no name, a generated description is injected instead.
func (s *Service) CreateFloatingIP(ctx context.Context, floatingNetwork string, opts FloatingIPCreateOpts) (*FloatingIP, error) {
	stop := s.actions.Start("neutron.create_floating_ip")
	defer stop()

	if opts.FloatingNetworkID == "" {
		networkID, err := s.floatingNetworkID(ctx, floatingNetwork)
		if err != nil {
			return nil, err
		}
		opts.FloatingNetworkID = networkID
	}
	if opts.Description == "" {
		opts.Description = s.names.Generate()
	}

	fip, err := floatingips.Create(ctx, s.client, opts).Extract()
	return fip, errors.Wrap(err, "creating floating ip")
}

// ListFloatingIPs returns the floating IPs matching opts.
func (s *Service) ListFloatingIPs(ctx context.Context, opts FloatingIPListOpts) ([]FloatingIP, error) {
	stop := s.actions.Start("neutron.list_floating_ips")
	defer stop()

	pages, err := floatingips.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing floating ips")
	}
	all, err := floatingips.ExtractFloatingIPs(pages)
	return all, errors.Wrap(err, "extracting floating ips")
}

// DeleteFloatingIP releases a floating IP by ID.
func (s *Service) DeleteFloatingIP(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_floating_ip")
	defer stop()

	return errors.Wrap(floatingips.Delete(ctx, s.client, id).ExtractErr(), "deleting floating ip")
}

// AssociateFloatingIP points a floating IP at the given port.
func (s *Service) AssociateFloatingIP(ctx context.Context, id, portID string) (*FloatingIP, error) {
	stop := s.actions.Start("neutron.associate_floating_ip")
	defer stop()

	fip, err := floatingips.Update(ctx, s.client, id, floatingips.UpdateOpts{PortID: &portID}).Extract()
	return fip, errors.Wrap(err, "associating floating ip")
}

// DissociateFloatingIP detaches a floating IP from whatever port holds it.
// Dissociating an unassociated IP is left to the server to judge.
func (s *Service) DissociateFloatingIP(ctx context.Context, id string) (*FloatingIP, error) {
	stop := s.actions.Start("neutron.dissociate_floating_ip")
	defer stop()

	fip, err := floatingips.Update(ctx, s.client, id, floatingips.UpdateOpts{PortID: new(string)}).Extract()
	return fip, errors.Wrap(err, "dissociating floating ip")
}

func (s *Service) floatingNetworkID(ctx context.Context, nameOrID string) (string, error) {
	external, err := s.ListExternalNetworks(ctx)
	if err != nil {
		return "", err
	}

	if nameOrID == "" {
		if len(external) == 0 {
			return "", &bench.NotFoundError{Resource: "external network", ID: "router:external"}
		}
		return external[0].ID, nil
	}

	for _, network := range external {
		if network.ID == nameOrID || network.Name == nameOrID {
			return network.ID, nil
		}
	}
	return "", &bench.NotFoundError{Resource: "external network", ID: nameOrID}
}
