// Package fakes provides func-field fakes of the scenario service
// contracts for use in tests.
package fakes

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// NetworkServiceFake fakes scenario.NetworkService. Only the funcs a test
// exercises need to be set.
type NetworkServiceFake struct {
	CreateNetworkF     func(context.Context, neutron.NetworkCreateOpts) (*neutron.Network, error)
	GetNetworkF        func(context.Context, string) (*neutron.Network, error)
	ListNetworksF      func(context.Context, neutron.NetworkListOpts) ([]neutron.Network, error)
	UpdateNetworkF     func(context.Context, string, neutron.NetworkUpdateOpts) (*neutron.Network, error)
	DeleteNetworkF     func(context.Context, string) error
	FindNetworkF       func(context.Context, string) (*neutron.Network, error)
	SupportsExtensionF func(context.Context, string) (bool, error)

	CreateSubnetF func(context.Context, string, string, neutron.SubnetCreateOpts) (*neutron.Subnet, error)
	GetSubnetF    func(context.Context, string) (*neutron.Subnet, error)
	ListSubnetsF  func(context.Context, neutron.SubnetListOpts) ([]neutron.Subnet, error)
	UpdateSubnetF func(context.Context, string, neutron.SubnetUpdateOpts) (*neutron.Subnet, error)
	DeleteSubnetF func(context.Context, string) error

	CreateRouterF          func(context.Context, neutron.RouterCreateOpts, *neutron.GatewaySpec) (*neutron.Router, error)
	GetRouterF             func(context.Context, string) (*neutron.Router, error)
	ListRoutersF           func(context.Context, neutron.RouterListOpts) ([]neutron.Router, error)
	UpdateRouterF          func(context.Context, string, neutron.RouterUpdateOpts) (*neutron.Router, error)
	DeleteRouterF          func(context.Context, string) error
	AddRouterInterfaceF    func(context.Context, string, string) (*neutron.InterfaceInfo, error)
	RemoveRouterInterfaceF func(context.Context, string, string) error
	AddRouterGatewayF      func(context.Context, string, neutron.GatewaySpec) error
	RemoveRouterGatewayF   func(context.Context, string) error
	AddExtraRoutesF        func(context.Context, string, []neutron.Route) (*neutron.Router, error)
	RemoveExtraRoutesF     func(context.Context, string, []neutron.Route) (*neutron.Router, error)

	CreatePortF func(context.Context, string, neutron.PortCreateOpts) (*neutron.Port, error)
	GetPortF    func(context.Context, string) (*neutron.Port, error)
	ListPortsF  func(context.Context, neutron.PortListOpts) ([]neutron.Port, error)
	UpdatePortF func(context.Context, string, neutron.PortUpdateOpts) (*neutron.Port, error)
	DeletePortF func(context.Context, string) error

	CreateFloatingIPF     func(context.Context, string, neutron.FloatingIPCreateOpts) (*neutron.FloatingIP, error)
	ListFloatingIPsF      func(context.Context, neutron.FloatingIPListOpts) ([]neutron.FloatingIP, error)
	DeleteFloatingIPF     func(context.Context, string) error
	AssociateFloatingIPF  func(context.Context, string, string) (*neutron.FloatingIP, error)
	DissociateFloatingIPF func(context.Context, string) (*neutron.FloatingIP, error)

	CreateSecurityGroupF     func(context.Context, neutron.SecurityGroupCreateOpts) (*neutron.SecurityGroup, error)
	GetSecurityGroupF        func(context.Context, string) (*neutron.SecurityGroup, error)
	ListSecurityGroupsF      func(context.Context, neutron.SecurityGroupListOpts) ([]neutron.SecurityGroup, error)
	UpdateSecurityGroupF     func(context.Context, string, neutron.SecurityGroupUpdateOpts) (*neutron.SecurityGroup, error)
	DeleteSecurityGroupF     func(context.Context, string) error
	CreateSecurityGroupRuleF func(context.Context, string, neutron.SecurityGroupRuleCreateOpts) (*neutron.SecurityGroupRule, error)
	GetSecurityGroupRuleF    func(context.Context, string) (*neutron.SecurityGroupRule, error)
	ListSecurityGroupRulesF  func(context.Context, neutron.SecurityGroupRuleListOpts) ([]neutron.SecurityGroupRule, error)
	DeleteSecurityGroupRuleF func(context.Context, string) error

	CreateTrunkF       func(context.Context, string, neutron.TrunkCreateOpts) (*neutron.Trunk, error)
	ListTrunksF        func(context.Context, neutron.TrunkListOpts) ([]neutron.Trunk, error)
	DeleteTrunkF       func(context.Context, string) error
	ListTrunkSubportsF func(context.Context, string) ([]neutron.Subport, error)
	AddTrunkSubportsF  func(context.Context, string, []neutron.Subport) (*neutron.Trunk, error)

	CreateBGPVPNF                   func(context.Context, neutron.BGPVPNCreateOpts) (*neutron.BGPVPN, error)
	ListBGPVPNsF                    func(context.Context, neutron.BGPVPNListOpts) ([]neutron.BGPVPN, error)
	UpdateBGPVPNF                   func(context.Context, string, bool, neutron.BGPVPNUpdateOpts) (*neutron.BGPVPN, error)
	DeleteBGPVPNF                   func(context.Context, string) error
	CreateBGPVPNNetworkAssociationF func(context.Context, string, string) (*neutron.BGPVPNNetworkAssociation, error)
	DeleteBGPVPNNetworkAssociationF func(context.Context, string, string) error
	ListBGPVPNNetworkAssociationsF  func(context.Context, string) ([]neutron.BGPVPNNetworkAssociation, error)
	CreateBGPVPNRouterAssociationF  func(context.Context, string, string) (*neutron.BGPVPNRouterAssociation, error)
	DeleteBGPVPNRouterAssociationF  func(context.Context, string, string) error
	ListBGPVPNRouterAssociationsF   func(context.Context, string) ([]neutron.BGPVPNRouterAssociation, error)

	ListAgentsF            func(context.Context, neutron.AgentListOpts) ([]neutron.Agent, error)
	CreateNetworkTopologyF func(context.Context, neutron.TopologySpec) (*neutron.Topology, error)
}

func (f *NetworkServiceFake) CreateNetwork(ctx context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error) {
	return f.CreateNetworkF(ctx, opts)
}

func (f *NetworkServiceFake) GetNetwork(ctx context.Context, id string) (*neutron.Network, error) {
	return f.GetNetworkF(ctx, id)
}

func (f *NetworkServiceFake) ListNetworks(ctx context.Context, opts neutron.NetworkListOpts) ([]neutron.Network, error) {
	return f.ListNetworksF(ctx, opts)
}

func (f *NetworkServiceFake) UpdateNetwork(ctx context.Context, id string, opts neutron.NetworkUpdateOpts) (*neutron.Network, error) {
	return f.UpdateNetworkF(ctx, id, opts)
}

func (f *NetworkServiceFake) DeleteNetwork(ctx context.Context, id string) error {
	return f.DeleteNetworkF(ctx, id)
}

func (f *NetworkServiceFake) FindNetwork(ctx context.Context, nameOrID string) (*neutron.Network, error) {
	return f.FindNetworkF(ctx, nameOrID)
}

func (f *NetworkServiceFake) SupportsExtension(ctx context.Context, alias string) (bool, error) {
	return f.SupportsExtensionF(ctx, alias)
}

func (f *NetworkServiceFake) CreateSubnet(ctx context.Context, networkID, startCIDR string, opts neutron.SubnetCreateOpts) (*neutron.Subnet, error) {
	return f.CreateSubnetF(ctx, networkID, startCIDR, opts)
}

func (f *NetworkServiceFake) GetSubnet(ctx context.Context, id string) (*neutron.Subnet, error) {
	return f.GetSubnetF(ctx, id)
}

func (f *NetworkServiceFake) ListSubnets(ctx context.Context, opts neutron.SubnetListOpts) ([]neutron.Subnet, error) {
	return f.ListSubnetsF(ctx, opts)
}

func (f *NetworkServiceFake) UpdateSubnet(ctx context.Context, id string, opts neutron.SubnetUpdateOpts) (*neutron.Subnet, error) {
	return f.UpdateSubnetF(ctx, id, opts)
}

func (f *NetworkServiceFake) DeleteSubnet(ctx context.Context, id string) error {
	return f.DeleteSubnetF(ctx, id)
}

func (f *NetworkServiceFake) CreateRouter(ctx context.Context, opts neutron.RouterCreateOpts, gw *neutron.GatewaySpec) (*neutron.Router, error) {
	return f.CreateRouterF(ctx, opts, gw)
}

func (f *NetworkServiceFake) GetRouter(ctx context.Context, id string) (*neutron.Router, error) {
	return f.GetRouterF(ctx, id)
}

func (f *NetworkServiceFake) ListRouters(ctx context.Context, opts neutron.RouterListOpts) ([]neutron.Router, error) {
	return f.ListRoutersF(ctx, opts)
}

func (f *NetworkServiceFake) UpdateRouter(ctx context.Context, id string, opts neutron.RouterUpdateOpts) (*neutron.Router, error) {
	return f.UpdateRouterF(ctx, id, opts)
}

func (f *NetworkServiceFake) DeleteRouter(ctx context.Context, id string) error {
	return f.DeleteRouterF(ctx, id)
}

func (f *NetworkServiceFake) AddRouterInterface(ctx context.Context, routerID, subnetID string) (*neutron.InterfaceInfo, error) {
	return f.AddRouterInterfaceF(ctx, routerID, subnetID)
}

func (f *NetworkServiceFake) RemoveRouterInterface(ctx context.Context, routerID, subnetID string) error {
	return f.RemoveRouterInterfaceF(ctx, routerID, subnetID)
}

func (f *NetworkServiceFake) AddRouterGateway(ctx context.Context, routerID string, gw neutron.GatewaySpec) error {
	return f.AddRouterGatewayF(ctx, routerID, gw)
}

func (f *NetworkServiceFake) RemoveRouterGateway(ctx context.Context, routerID string) error {
	return f.RemoveRouterGatewayF(ctx, routerID)
}

func (f *NetworkServiceFake) AddExtraRoutes(ctx context.Context, routerID string, routes []neutron.Route) (*neutron.Router, error) {
	return f.AddExtraRoutesF(ctx, routerID, routes)
}

func (f *NetworkServiceFake) RemoveExtraRoutes(ctx context.Context, routerID string, routes []neutron.Route) (*neutron.Router, error) {
	return f.RemoveExtraRoutesF(ctx, routerID, routes)
}

func (f *NetworkServiceFake) CreatePort(ctx context.Context, networkID string, opts neutron.PortCreateOpts) (*neutron.Port, error) {
	return f.CreatePortF(ctx, networkID, opts)
}

func (f *NetworkServiceFake) GetPort(ctx context.Context, id string) (*neutron.Port, error) {
	return f.GetPortF(ctx, id)
}

func (f *NetworkServiceFake) ListPorts(ctx context.Context, opts neutron.PortListOpts) ([]neutron.Port, error) {
	return f.ListPortsF(ctx, opts)
}

func (f *NetworkServiceFake) UpdatePort(ctx context.Context, id string, opts neutron.PortUpdateOpts) (*neutron.Port, error) {
	return f.UpdatePortF(ctx, id, opts)
}

func (f *NetworkServiceFake) DeletePort(ctx context.Context, id string) error {
	return f.DeletePortF(ctx, id)
}

func (f *NetworkServiceFake) CreateFloatingIP(ctx context.Context, floatingNetwork string, opts neutron.FloatingIPCreateOpts) (*neutron.FloatingIP, error) {
	return f.CreateFloatingIPF(ctx, floatingNetwork, opts)
}

func (f *NetworkServiceFake) ListFloatingIPs(ctx context.Context, opts neutron.FloatingIPListOpts) ([]neutron.FloatingIP, error) {
	return f.ListFloatingIPsF(ctx, opts)
}

func (f *NetworkServiceFake) DeleteFloatingIP(ctx context.Context, id string) error {
	return f.DeleteFloatingIPF(ctx, id)
}

func (f *NetworkServiceFake) AssociateFloatingIP(ctx context.Context, id, portID string) (*neutron.FloatingIP, error) {
	return f.AssociateFloatingIPF(ctx, id, portID)
}

func (f *NetworkServiceFake) DissociateFloatingIP(ctx context.Context, id string) (*neutron.FloatingIP, error) {
	return f.DissociateFloatingIPF(ctx, id)
}

func (f *NetworkServiceFake) CreateSecurityGroup(ctx context.Context, opts neutron.SecurityGroupCreateOpts) (*neutron.SecurityGroup, error) {
	return f.CreateSecurityGroupF(ctx, opts)
}

func (f *NetworkServiceFake) GetSecurityGroup(ctx context.Context, id string) (*neutron.SecurityGroup, error) {
	return f.GetSecurityGroupF(ctx, id)
}

func (f *NetworkServiceFake) ListSecurityGroups(ctx context.Context, opts neutron.SecurityGroupListOpts) ([]neutron.SecurityGroup, error) {
	return f.ListSecurityGroupsF(ctx, opts)
}

func (f *NetworkServiceFake) UpdateSecurityGroup(ctx context.Context, id string, opts neutron.SecurityGroupUpdateOpts) (*neutron.SecurityGroup, error) {
	return f.UpdateSecurityGroupF(ctx, id, opts)
}

func (f *NetworkServiceFake) DeleteSecurityGroup(ctx context.Context, id string) error {
	return f.DeleteSecurityGroupF(ctx, id)
}

func (f *NetworkServiceFake) CreateSecurityGroupRule(ctx context.Context, groupID string, opts neutron.SecurityGroupRuleCreateOpts) (*neutron.SecurityGroupRule, error) {
	return f.CreateSecurityGroupRuleF(ctx, groupID, opts)
}

func (f *NetworkServiceFake) GetSecurityGroupRule(ctx context.Context, id string) (*neutron.SecurityGroupRule, error) {
	return f.GetSecurityGroupRuleF(ctx, id)
}

func (f *NetworkServiceFake) ListSecurityGroupRules(ctx context.Context, opts neutron.SecurityGroupRuleListOpts) ([]neutron.SecurityGroupRule, error) {
	return f.ListSecurityGroupRulesF(ctx, opts)
}

func (f *NetworkServiceFake) DeleteSecurityGroupRule(ctx context.Context, id string) error {
	return f.DeleteSecurityGroupRuleF(ctx, id)
}

func (f *NetworkServiceFake) CreateTrunk(ctx context.Context, portID string, opts neutron.TrunkCreateOpts) (*neutron.Trunk, error) {
	return f.CreateTrunkF(ctx, portID, opts)
}

func (f *NetworkServiceFake) ListTrunks(ctx context.Context, opts neutron.TrunkListOpts) ([]neutron.Trunk, error) {
	return f.ListTrunksF(ctx, opts)
}

func (f *NetworkServiceFake) DeleteTrunk(ctx context.Context, id string) error {
	return f.DeleteTrunkF(ctx, id)
}

func (f *NetworkServiceFake) ListTrunkSubports(ctx context.Context, trunkID string) ([]neutron.Subport, error) {
	return f.ListTrunkSubportsF(ctx, trunkID)
}

func (f *NetworkServiceFake) AddTrunkSubports(ctx context.Context, trunkID string, subports []neutron.Subport) (*neutron.Trunk, error) {
	return f.AddTrunkSubportsF(ctx, trunkID, subports)
}

func (f *NetworkServiceFake) CreateBGPVPN(ctx context.Context, opts neutron.BGPVPNCreateOpts) (*neutron.BGPVPN, error) {
	return f.CreateBGPVPNF(ctx, opts)
}

func (f *NetworkServiceFake) ListBGPVPNs(ctx context.Context, opts neutron.BGPVPNListOpts) ([]neutron.BGPVPN, error) {
	return f.ListBGPVPNsF(ctx, opts)
}

func (f *NetworkServiceFake) UpdateBGPVPN(ctx context.Context, id string, regenerateName bool, opts neutron.BGPVPNUpdateOpts) (*neutron.BGPVPN, error) {
	return f.UpdateBGPVPNF(ctx, id, regenerateName, opts)
}

func (f *NetworkServiceFake) DeleteBGPVPN(ctx context.Context, id string) error {
	return f.DeleteBGPVPNF(ctx, id)
}

func (f *NetworkServiceFake) CreateBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, networkID string) (*neutron.BGPVPNNetworkAssociation, error) {
	return f.CreateBGPVPNNetworkAssociationF(ctx, bgpvpnID, networkID)
}

func (f *NetworkServiceFake) DeleteBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, associationID string) error {
	return f.DeleteBGPVPNNetworkAssociationF(ctx, bgpvpnID, associationID)
}

func (f *NetworkServiceFake) ListBGPVPNNetworkAssociations(ctx context.Context, bgpvpnID string) ([]neutron.BGPVPNNetworkAssociation, error) {
	return f.ListBGPVPNNetworkAssociationsF(ctx, bgpvpnID)
}

func (f *NetworkServiceFake) CreateBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, routerID string) (*neutron.BGPVPNRouterAssociation, error) {
	return f.CreateBGPVPNRouterAssociationF(ctx, bgpvpnID, routerID)
}

func (f *NetworkServiceFake) DeleteBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, associationID string) error {
	return f.DeleteBGPVPNRouterAssociationF(ctx, bgpvpnID, associationID)
}

func (f *NetworkServiceFake) ListBGPVPNRouterAssociations(ctx context.Context, bgpvpnID string) ([]neutron.BGPVPNRouterAssociation, error) {
	return f.ListBGPVPNRouterAssociationsF(ctx, bgpvpnID)
}

func (f *NetworkServiceFake) ListAgents(ctx context.Context, opts neutron.AgentListOpts) ([]neutron.Agent, error) {
	return f.ListAgentsF(ctx, opts)
}

func (f *NetworkServiceFake) CreateNetworkTopology(ctx context.Context, spec neutron.TopologySpec) (*neutron.Topology, error) {
	return f.CreateNetworkTopologyF(ctx, spec)
}
