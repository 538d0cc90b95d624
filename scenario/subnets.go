package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// DefaultSubnetStartCIDR seeds subnet allocation for the composite creation
// flows when no start CIDR is given.
const DefaultSubnetStartCIDR = "1.0.0.0/24"

// CreateSubnet creates a subnet on the given network named by the run's
// convention. A name in opts is discarded; an empty startCIDR falls back to
// the service's allocation default.
func (n *Neutron) CreateSubnet(ctx context.Context, network neutron.Network, startCIDR string, opts neutron.SubnetCreateOpts) (*neutron.Subnet, error) {
	opts.Name = n.names.Generate()
	return n.net.CreateSubnet(ctx, network.ID, startCIDR, opts)
}

// CreateSubnets creates count subnets on the network. A count of zero or
// less creates nothing.
func (n *Neutron) CreateSubnets(ctx context.Context, network neutron.Network, startCIDR string, count int, opts neutron.SubnetCreateOpts) ([]neutron.Subnet, error) {
	if count <= 0 {
		return []neutron.Subnet{}, nil
	}

	subnets := make([]neutron.Subnet, 0, count)
	for i := 0; i < count; i++ {
		subnet, err := n.CreateSubnet(ctx, network, startCIDR, opts)
		if err != nil {
			return nil, err
		}
		subnets = append(subnets, *subnet)
	}
	return subnets, nil
}

// ListSubnets returns the subnets matching opts.
func (n *Neutron) ListSubnets(ctx context.Context, opts neutron.SubnetListOpts) ([]neutron.Subnet, error) {
	return n.net.ListSubnets(ctx, opts)
}

// ShowSubnet fetches one subnet by ID.
func (n *Neutron) ShowSubnet(ctx context.Context, id string) (*neutron.Subnet, error) {
	return n.net.GetSubnet(ctx, id)
}

// UpdateSubnet updates a subnet under a fresh generated name.
func (n *Neutron) UpdateSubnet(ctx context.Context, id string, opts neutron.SubnetUpdateOpts) (*neutron.Subnet, error) {
	name := n.names.Generate()
	opts.Name = &name
	return n.net.UpdateSubnet(ctx, id, opts)
}

// DeleteSubnet deletes a subnet by ID.
func (n *Neutron) DeleteSubnet(ctx context.Context, id string) error {
	return n.net.DeleteSubnet(ctx, id)
}

// CreateNetworkAndSubnets creates a network carrying count subnets. A count
// of zero or less creates one subnet; an empty startCIDR defaults to
// DefaultSubnetStartCIDR.
func (n *Neutron) CreateNetworkAndSubnets(ctx context.Context, networkOpts neutron.NetworkCreateOpts, subnetOpts neutron.SubnetCreateOpts, count int, startCIDR string) (*neutron.Network, []neutron.Subnet, error) {
	if count <= 0 {
		count = 1
	}
	if startCIDR == "" {
		startCIDR = DefaultSubnetStartCIDR
	}

	network, err := n.CreateNetwork(ctx, networkOpts)
	if err != nil {
		return nil, nil, err
	}
	subnets, err := n.CreateSubnets(ctx, *network, startCIDR, count, subnetOpts)
	if err != nil {
		return nil, nil, err
	}
	return network, subnets, nil
}

// CreateNetworkStructure creates a network with count subnets and a router
// per subnet, interfaces wired. Names in the option templates are discarded
// so each resource lands its own generated name.
func (n *Neutron) CreateNetworkStructure(ctx context.Context, networkOpts neutron.NetworkCreateOpts, subnetOpts neutron.SubnetCreateOpts, routerOpts neutron.RouterCreateOpts, count int, startCIDR string) (*neutron.Topology, error) {
	if startCIDR == "" {
		startCIDR = DefaultSubnetStartCIDR
	}

	networkOpts.Name = n.names.Generate()
	subnetOpts.Name = ""
	routerOpts.Name = ""

	return n.net.CreateNetworkTopology(ctx, neutron.TopologySpec{
		Network:     networkOpts,
		Subnet:      subnetOpts,
		SubnetCount: count,
		StartCIDR:   startCIDR,
		Router:      &neutron.RouterTopology{Opts: routerOpts},
	})
}
