package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// GetOrCreateNetwork returns one of the tenant's pre-provisioned networks,
// cycling through them by iteration. Without a usable run context it falls
// back to creating a network.
func (n *Neutron) GetOrCreateNetwork(ctx context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error) {
	if n.runCtx != nil && len(n.runCtx.Tenant.Networks) > 0 {
		networks := n.runCtx.Tenant.Networks
		network := networks[n.runCtx.Iteration%len(networks)]
		return &network, nil
	}

	n.log.Warn("no tenant networks in the run context, creating a network")
	return n.CreateNetwork(ctx, opts)
}

// CreateNetwork creates a network named by the run's convention. A name in
// opts is discarded.
func (n *Neutron) CreateNetwork(ctx context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error) {
	opts.Name = n.names.Generate()
	return n.net.CreateNetwork(ctx, opts)
}

// ListNetworks returns the networks matching opts.
func (n *Neutron) ListNetworks(ctx context.Context, opts neutron.NetworkListOpts) ([]neutron.Network, error) {
	return n.net.ListNetworks(ctx, opts)
}

// ShowNetwork fetches one network by ID.
func (n *Neutron) ShowNetwork(ctx context.Context, id string) (*neutron.Network, error) {
	return n.net.GetNetwork(ctx, id)
}

// UpdateNetwork updates a network under a fresh generated name.
func (n *Neutron) UpdateNetwork(ctx context.Context, id string, opts neutron.NetworkUpdateOpts) (*neutron.Network, error) {
	name := n.names.Generate()
	opts.Name = &name
	return n.net.UpdateNetwork(ctx, id, opts)
}

// DeleteNetwork deletes a network by ID.
func (n *Neutron) DeleteNetwork(ctx context.Context, id string) error {
	return n.net.DeleteNetwork(ctx, id)
}

// NetworkID resolves a network name or ID to the network's ID.
func (n *Neutron) NetworkID(ctx context.Context, nameOrID string) (string, error) {
	network, err := n.net.FindNetwork(ctx, nameOrID)
	if err != nil {
		return "", err
	}
	return network.ID, nil
}

// ExternalGatewayModeEnabled reports whether the cloud supports SNAT control
// on router gateways.
func (n *Neutron) ExternalGatewayModeEnabled(ctx context.Context) (bool, error) {
	return n.net.SupportsExtension(ctx, neutron.ExtGatewayModeAlias)
}

// ListAgents returns the networking agents matching opts.
func (n *Neutron) ListAgents(ctx context.Context, opts neutron.AgentListOpts) ([]neutron.Agent, error) {
	return n.net.ListAgents(ctx, opts)
}
