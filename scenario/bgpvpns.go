package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// CreateBGPVPN creates a BGP VPN named by the run's convention; a name in
// opts is discarded. Needs the admin service.
func (n *Neutron) CreateBGPVPN(ctx context.Context, opts neutron.BGPVPNCreateOpts) (*neutron.BGPVPN, error) {
	if n.admin == nil {
		return nil, ErrNoAdminService
	}
	opts.Name = n.names.Generate()
	return n.admin.CreateBGPVPN(ctx, opts)
}

// ListBGPVPNs returns the BGP VPNs matching opts. Needs the admin service.
func (n *Neutron) ListBGPVPNs(ctx context.Context, opts neutron.BGPVPNListOpts) ([]neutron.BGPVPN, error) {
	if n.admin == nil {
		return nil, ErrNoAdminService
	}
	return n.admin.ListBGPVPNs(ctx, opts)
}

// UpdateBGPVPN updates a BGP VPN. The name is regenerated only when
// updateName is set or opts already carries one. Needs the admin service.
func (n *Neutron) UpdateBGPVPN(ctx context.Context, id string, updateName bool, opts neutron.BGPVPNUpdateOpts) (*neutron.BGPVPN, error) {
	if n.admin == nil {
		return nil, ErrNoAdminService
	}
	return n.admin.UpdateBGPVPN(ctx, id, updateName, opts)
}

// DeleteBGPVPN deletes a BGP VPN by ID. Needs the admin service.
func (n *Neutron) DeleteBGPVPN(ctx context.Context, id string) error {
	if n.admin == nil {
		return ErrNoAdminService
	}
	return n.admin.DeleteBGPVPN(ctx, id)
}

// CreateBGPVPNNetworkAssociation associates a network with a BGP VPN.
func (n *Neutron) CreateBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, networkID string) (*neutron.BGPVPNNetworkAssociation, error) {
	return n.net.CreateBGPVPNNetworkAssociation(ctx, bgpvpnID, networkID)
}

// DeleteBGPVPNNetworkAssociation removes a network association from a BGP
// VPN.
func (n *Neutron) DeleteBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, associationID string) error {
	return n.net.DeleteBGPVPNNetworkAssociation(ctx, bgpvpnID, associationID)
}

// ListBGPVPNNetworkAssociations returns a BGP VPN's network associations.
func (n *Neutron) ListBGPVPNNetworkAssociations(ctx context.Context, bgpvpnID string) ([]neutron.BGPVPNNetworkAssociation, error) {
	return n.net.ListBGPVPNNetworkAssociations(ctx, bgpvpnID)
}

// CreateBGPVPNRouterAssociation associates a router with a BGP VPN.
func (n *Neutron) CreateBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, routerID string) (*neutron.BGPVPNRouterAssociation, error) {
	return n.net.CreateBGPVPNRouterAssociation(ctx, bgpvpnID, routerID)
}

// DeleteBGPVPNRouterAssociation removes a router association from a BGP
// VPN.
func (n *Neutron) DeleteBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, associationID string) error {
	return n.net.DeleteBGPVPNRouterAssociation(ctx, bgpvpnID, associationID)
}

// ListBGPVPNRouterAssociations returns a BGP VPN's router associations.
func (n *Neutron) ListBGPVPNRouterAssociations(ctx context.Context, bgpvpnID string) ([]neutron.BGPVPNRouterAssociation, error) {
	return n.net.ListBGPVPNRouterAssociations(ctx, bgpvpnID)
}
