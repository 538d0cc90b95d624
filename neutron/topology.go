package neutron

import "context"

// TopologySpec describes a network carrying one or more subnets and,
// optionally, a router per subnet.
type TopologySpec struct {
	Network     NetworkCreateOpts
	Subnet      SubnetCreateOpts // template applied to every subnet
	SubnetCount int              // default 1
	StartCIDR   string           // default bench.DefaultStartCIDR
	Router      *RouterTopology  // nil leaves the subnets unrouted
}

// RouterTopology wires one router per subnet.
type RouterTopology struct {
	Opts    RouterCreateOpts
	Gateway *GatewaySpec
}

// Topology is the composite CreateNetworkTopology returns.
type Topology struct {
	Network *Network
	Subnets []Subnet
	Routers []Router
}

// CreateNetworkTopology creates a network with spec.SubnetCount subnets and,
// when spec.Router is set, one router per subnet with its interface wired.
// Every nested operation times itself, so the composite shows up as its
// parts.
func (s *Service) CreateNetworkTopology(ctx context.Context, spec TopologySpec) (*Topology, error) {
	if spec.SubnetCount <= 0 {
		spec.SubnetCount = 1
	}

	network, err := s.CreateNetwork(ctx, spec.Network)
	if err != nil {
		return nil, err
	}

	topo := &Topology{Network: network}
	for i := 0; i < spec.SubnetCount; i++ {
		subnet, err := s.CreateSubnet(ctx, network.ID, spec.StartCIDR, spec.Subnet)
		if err != nil {
			return nil, err
		}
		topo.Subnets = append(topo.Subnets, *subnet)

		if spec.Router == nil {
			continue
		}
		router, err := s.CreateRouter(ctx, spec.Router.Opts, spec.Router.Gateway)
		if err != nil {
			return nil, err
		}
		if _, err := s.AddRouterInterface(ctx, router.ID, subnet.ID); err != nil {
			return nil, err
		}
		topo.Routers = append(topo.Routers, *router)
	}
	return topo, nil
}
