package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/bgpvpns"
	"github.com/pkg/errors"
)

type (
	BGPVPN           = bgpvpns.BGPVPN
	BGPVPNCreateOpts = bgpvpns.CreateOpts
	BGPVPNUpdateOpts = bgpvpns.UpdateOpts
	BGPVPNListOpts   = bgpvpns.ListOpts

	BGPVPNNetworkAssociation = bgpvpns.NetworkAssociation
	BGPVPNRouterAssociation  = bgpvpns.RouterAssociation
)

// CreateBGPVPN creates a BGP VPN, injecting a generated name when opts
// carries none. The operation needs an admin-scoped client.
func (s *Service) CreateBGPVPN(ctx context.Context, opts BGPVPNCreateOpts) (*BGPVPN, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.create_bgpvpn")
	defer stop()

	vpn, err := bgpvpns.Create(ctx, s.client, opts).Extract()
	return vpn, errors.Wrap(err, "creating bgpvpn")
}

// GetBGPVPN fetches one BGP VPN by ID.
func (s *Service) GetBGPVPN(ctx context.Context, id string) (*BGPVPN, error) {
	stop := s.actions.Start("neutron.show_bgpvpn")
	defer stop()

	vpn, err := bgpvpns.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "bgpvpn", id)
	}
	return vpn, nil
}

// ListBGPVPNs returns the BGP VPNs matching opts.
func (s *Service) ListBGPVPNs(ctx context.Context, opts BGPVPNListOpts) ([]BGPVPN, error) {
	stop := s.actions.Start("neutron.list_bgpvpns")
	defer stop()

	pages, err := bgpvpns.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing bgpvpns")
	}
	all, err := bgpvpns.ExtractBGPVPNs(pages)
	return all, errors.Wrap(err, "extracting bgpvpns")
}

// UpdateBGPVPN updates a BGP VPN. A fresh generated name is injected when
// regenerateName is set or opts already carries a name, so renames always
// land inside the naming convention.
func (s *Service) UpdateBGPVPN(ctx context.Context, id string, regenerateName bool, opts BGPVPNUpdateOpts) (*BGPVPN, error) {
	if regenerateName || opts.Name != nil {
		name := s.names.Generate()
		opts.Name = &name
	}

	stop := s.actions.Start("neutron.update_bgpvpn")
	defer stop()

	vpn, err := bgpvpns.Update(ctx, s.client, id, opts).Extract()
	return vpn, errors.Wrap(err, "updating bgpvpn")
}

// DeleteBGPVPN deletes a BGP VPN by ID.
func (s *Service) DeleteBGPVPN(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_bgpvpn")
	defer stop()

	return errors.Wrap(bgpvpns.Delete(ctx, s.client, id).ExtractErr(), "deleting bgpvpn")
}

// CreateBGPVPNNetworkAssociation associates a network with a BGP VPN.
func (s *Service) CreateBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, networkID string) (*BGPVPNNetworkAssociation, error) {
	stop := s.actions.Start("neutron.create_bgpvpn_network_assoc")
	defer stop()

	opts := bgpvpns.CreateNetworkAssociationOpts{NetworkID: networkID}
	assoc, err := bgpvpns.CreateNetworkAssociation(ctx, s.client, bgpvpnID, opts).Extract()
	return assoc, errors.Wrap(err, "associating network with bgpvpn")
}

// DeleteBGPVPNNetworkAssociation removes a network association from a BGP
// VPN.
func (s *Service) DeleteBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, associationID string) error {
	stop := s.actions.Start("neutron.delete_bgpvpn_network_assoc")
	defer stop()

	err := bgpvpns.DeleteNetworkAssociation(ctx, s.client, bgpvpnID, associationID).ExtractErr()
	return errors.Wrap(err, "deleting bgpvpn network association")
}

// ListBGPVPNNetworkAssociations returns a BGP VPN's network associations.
func (s *Service) ListBGPVPNNetworkAssociations(ctx context.Context, bgpvpnID string) ([]BGPVPNNetworkAssociation, error) {
	stop := s.actions.Start("neutron.list_bgpvpn_network_assocs")
	defer stop()

	pages, err := bgpvpns.ListNetworkAssociations(s.client, bgpvpnID, bgpvpns.ListNetworkAssociationsOpts{}).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing bgpvpn network associations")
	}
	all, err := bgpvpns.ExtractNetworkAssociations(pages)
	return all, errors.Wrap(err, "extracting bgpvpn network associations")
}

// CreateBGPVPNRouterAssociation associates a router with a BGP VPN.
func (s *Service) CreateBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, routerID string) (*BGPVPNRouterAssociation, error) {
	stop := s.actions.Start("neutron.create_bgpvpn_router_assoc")
	defer stop()

	opts := bgpvpns.CreateRouterAssociationOpts{RouterID: routerID}
	assoc, err := bgpvpns.CreateRouterAssociation(ctx, s.client, bgpvpnID, opts).Extract()
	return assoc, errors.Wrap(err, "associating router with bgpvpn")
}

// DeleteBGPVPNRouterAssociation removes a router association from a BGP VPN.
func (s *Service) DeleteBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, associationID string) error {
	stop := s.actions.Start("neutron.delete_bgpvpn_router_assoc")
	defer stop()

	err := bgpvpns.DeleteRouterAssociation(ctx, s.client, bgpvpnID, associationID).ExtractErr()
	return errors.Wrap(err, "deleting bgpvpn router association")
}

// ListBGPVPNRouterAssociations returns a BGP VPN's router associations.
func (s *Service) ListBGPVPNRouterAssociations(ctx context.Context, bgpvpnID string) ([]BGPVPNRouterAssociation, error) {
	stop := s.actions.Start("neutron.list_bgpvpn_router_assocs")
	defer stop()

	pages, err := bgpvpns.ListRouterAssociations(s.client, bgpvpnID, bgpvpns.ListRouterAssociationsOpts{}).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing bgpvpn router associations")
	}
	all, err := bgpvpns.ExtractRouterAssociations(pages)
	return all, errors.Wrap(err, "extracting bgpvpn router associations")
}
