package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// CreateFloatingIP allocates a floating IP on the named floating network, or
// on the first external network when floatingNetwork is empty.
func (n *Neutron) CreateFloatingIP(ctx context.Context, floatingNetwork string, opts neutron.FloatingIPCreateOpts) (*neutron.FloatingIP, error) {
	return n.net.CreateFloatingIP(ctx, floatingNetwork, opts)
}

// ListFloatingIPs returns the floating IPs matching opts.
func (n *Neutron) ListFloatingIPs(ctx context.Context, opts neutron.FloatingIPListOpts) ([]neutron.FloatingIP, error) {
	return n.net.ListFloatingIPs(ctx, opts)
}

// DeleteFloatingIP releases a floating IP by ID.
func (n *Neutron) DeleteFloatingIP(ctx context.Context, id string) error {
	return n.net.DeleteFloatingIP(ctx, id)
}

// AssociateFloatingIP points a floating IP at the given port.
func (n *Neutron) AssociateFloatingIP(ctx context.Context, id, portID string) (*neutron.FloatingIP, error) {
	return n.net.AssociateFloatingIP(ctx, id, portID)
}

// DissociateFloatingIP detaches a floating IP from its port.
func (n *Neutron) DissociateFloatingIP(ctx context.Context, id string) (*neutron.FloatingIP, error) {
	return n.net.DissociateFloatingIP(ctx, id)
}
