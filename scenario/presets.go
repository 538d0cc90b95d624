package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
	"github.com/perfstack/neutronbench/octavia"
)

// Preset is a named smoke flow composed of scenario operations, run once
// per invocation. Presets do no scheduling of their own.
type Preset struct {
	Name        string
	Description string
	Run         func(ctx context.Context, n *Neutron) error
}

// NetworkLifecycle creates, lists, shows, renames, and deletes a network.
func NetworkLifecycle() Preset {
	return Preset{
		Name:        "network-lifecycle",
		Description: "Create, list, show, update, and delete a network",
		Run: func(ctx context.Context, n *Neutron) error {
			network, err := n.CreateNetwork(ctx, neutron.NetworkCreateOpts{})
			if err != nil {
				return err
			}
			if _, err := n.ListNetworks(ctx, neutron.NetworkListOpts{}); err != nil {
				return err
			}
			if _, err := n.ShowNetwork(ctx, network.ID); err != nil {
				return err
			}
			if _, err := n.UpdateNetwork(ctx, network.ID, neutron.NetworkUpdateOpts{}); err != nil {
				return err
			}
			return n.DeleteNetwork(ctx, network.ID)
		},
	}
}

// RouterTopology builds a network with two routed subnets, then tears the
// structure down interface by interface.
func RouterTopology() Preset {
	return Preset{
		Name:        "router-topology",
		Description: "Create a network with two routed subnets and tear it down",
		Run: func(ctx context.Context, n *Neutron) error {
			topo, err := n.CreateNetworkStructure(ctx,
				neutron.NetworkCreateOpts{}, neutron.SubnetCreateOpts{}, neutron.RouterCreateOpts{}, 2, "")
			if err != nil {
				return err
			}
			if _, err := n.ListRouters(ctx, neutron.RouterListOpts{}); err != nil {
				return err
			}
			for i, router := range topo.Routers {
				if err := n.RemoveInterfaceRouter(ctx, router.ID, topo.Subnets[i].ID); err != nil {
					return err
				}
				if err := n.DeleteRouter(ctx, router.ID); err != nil {
					return err
				}
			}
			for _, subnet := range topo.Subnets {
				if err := n.DeleteSubnet(ctx, subnet.ID); err != nil {
					return err
				}
			}
			return n.DeleteNetwork(ctx, topo.Network.ID)
		},
	}
}

// PortLifecycle exercises port CRUD on a tenant network, creating one when
// the run context carries none. The network is left in place since it may
// belong to the context.
func PortLifecycle() Preset {
	return Preset{
		Name:        "port-lifecycle",
		Description: "Create, show, update, and delete a port on a tenant network",
		Run: func(ctx context.Context, n *Neutron) error {
			network, err := n.GetOrCreateNetwork(ctx, neutron.NetworkCreateOpts{})
			if err != nil {
				return err
			}
			port, err := n.CreatePort(ctx, *network, neutron.PortCreateOpts{})
			if err != nil {
				return err
			}
			if _, err := n.ShowPort(ctx, port.ID); err != nil {
				return err
			}
			if _, err := n.UpdatePort(ctx, port.ID, neutron.PortUpdateOpts{}); err != nil {
				return err
			}
			if _, err := n.ListPorts(ctx, neutron.PortListOpts{NetworkID: network.ID}); err != nil {
				return err
			}
			return n.DeletePort(ctx, port.ID)
		},
	}
}

// SecurityGroupLifecycle exercises security group and rule CRUD.
func SecurityGroupLifecycle() Preset {
	return Preset{
		Name:        "security-group-lifecycle",
		Description: "Create a security group with a rule, update it, and delete both",
		Run: func(ctx context.Context, n *Neutron) error {
			group, err := n.CreateSecurityGroup(ctx, neutron.SecurityGroupCreateOpts{})
			if err != nil {
				return err
			}
			rule, err := n.CreateSecurityGroupRule(ctx, group.ID, neutron.SecurityGroupRuleCreateOpts{})
			if err != nil {
				return err
			}
			if _, err := n.ListSecurityGroupRules(ctx, neutron.SecurityGroupRuleListOpts{SecGroupID: group.ID}); err != nil {
				return err
			}
			if _, err := n.ShowSecurityGroupRule(ctx, rule.ID); err != nil {
				return err
			}
			if _, err := n.UpdateSecurityGroup(ctx, group.ID, neutron.SecurityGroupUpdateOpts{}); err != nil {
				return err
			}
			if err := n.DeleteSecurityGroupRule(ctx, rule.ID); err != nil {
				return err
			}
			return n.DeleteSecurityGroup(ctx, group.ID)
		},
	}
}

// FloatingIPLifecycle allocates a floating IP on the first external network,
// lists, and releases it.
func FloatingIPLifecycle() Preset {
	return Preset{
		Name:        "floating-ip-lifecycle",
		Description: "Allocate, list, and release a floating IP",
		Run: func(ctx context.Context, n *Neutron) error {
			fip, err := n.CreateFloatingIP(ctx, "", neutron.FloatingIPCreateOpts{})
			if err != nil {
				return err
			}
			if _, err := n.ListFloatingIPs(ctx, neutron.FloatingIPListOpts{}); err != nil {
				return err
			}
			return n.DeleteFloatingIP(ctx, fip.ID)
		},
	}
}

// TrunkLifecycle builds a trunk over a fresh network, attaches a subport,
// and tears everything down.
func TrunkLifecycle() Preset {
	return Preset{
		Name:        "trunk-lifecycle",
		Description: "Create a trunk with one subport and tear it down",
		Run: func(ctx context.Context, n *Neutron) error {
			network, subnets, err := n.CreateNetworkAndSubnets(ctx,
				neutron.NetworkCreateOpts{}, neutron.SubnetCreateOpts{}, 1, "")
			if err != nil {
				return err
			}
			parent, err := n.CreatePort(ctx, *network, neutron.PortCreateOpts{})
			if err != nil {
				return err
			}
			child, err := n.CreatePort(ctx, *network, neutron.PortCreateOpts{})
			if err != nil {
				return err
			}
			trunk, err := n.CreateTrunk(ctx, parent.ID, neutron.TrunkCreateOpts{})
			if err != nil {
				return err
			}
			subports := []neutron.Subport{{
				PortID:           child.ID,
				SegmentationID:   100,
				SegmentationType: "vlan",
			}}
			if _, err := n.AddSubportsToTrunk(ctx, trunk.ID, subports); err != nil {
				return err
			}
			if _, err := n.ListSubportsByTrunk(ctx, trunk.ID); err != nil {
				return err
			}
			if err := n.DeleteTrunk(ctx, trunk.ID); err != nil {
				return err
			}
			for _, port := range []string{child.ID, parent.ID} {
				if err := n.DeletePort(ctx, port); err != nil {
					return err
				}
			}
			if err := n.DeleteSubnet(ctx, subnets[0].ID); err != nil {
				return err
			}
			return n.DeleteNetwork(ctx, network.ID)
		},
	}
}

// LoadBalancerLifecycle provisions a load balancer on a fresh subnet and
// deletes it with cascade. The carrier network is left behind: the cascade
// releases the VIP port asynchronously, so an immediate subnet delete would
// race it.
func LoadBalancerLifecycle() Preset {
	return Preset{
		Name:        "loadbalancer-lifecycle",
		Description: "Provision a load balancer, show and list it, then cascade-delete",
		Run: func(ctx context.Context, n *Neutron) error {
			_, subnets, err := n.CreateNetworkAndSubnets(ctx,
				neutron.NetworkCreateOpts{}, neutron.SubnetCreateOpts{}, 1, "")
			if err != nil {
				return err
			}
			lb, err := n.CreateLoadBalancer(ctx, subnets[0], octavia.LoadBalancerCreateOpts{})
			if err != nil {
				return err
			}
			if _, err := n.ShowLoadBalancer(ctx, lb.ID); err != nil {
				return err
			}
			if _, err := n.ListLoadBalancers(ctx, octavia.LoadBalancerListOpts{}); err != nil {
				return err
			}
			return n.DeleteLoadBalancer(ctx, lb.ID, true)
		},
	}
}

// GetPreset returns the preset registered under name.
func GetPreset(name string) (Preset, bool) {
	for _, preset := range Presets() {
		if preset.Name == name {
			return preset, true
		}
	}
	return Preset{}, false
}

// Presets returns every preset in a stable order.
func Presets() []Preset {
	return []Preset{
		NetworkLifecycle(),
		RouterTopology(),
		PortLifecycle(),
		SecurityGroupLifecycle(),
		FloatingIPLifecycle(),
		TrunkLifecycle(),
		LoadBalancerLifecycle(),
	}
}

// ListPresets returns the names of every preset in a stable order.
func ListPresets() []string {
	presets := Presets()
	names := make([]string, 0, len(presets))
	for _, preset := range presets {
		names = append(names, preset.Name)
	}
	return names
}
