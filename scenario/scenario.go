// Package scenario implements the benchmark scenario helpers. A Neutron
// value composes the service layers into the operations scenarios are
// written in: resource creation under the run's naming convention, tenant
// context reuse, and the composite flows the CLI runs as presets.
package scenario

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perfstack/neutronbench/bench"
	"github.com/perfstack/neutronbench/neutron"
	"github.com/perfstack/neutronbench/octavia"
)

// Sentinel errors for operations whose backing service was not configured.
const (
	ErrNoAdminService        = bench.Error("no admin network service configured")
	ErrNoLoadBalancerService = bench.Error("no load-balancer service configured")
)

// NetworkService is the consumer contract scenarios place on the networking
// layer. *neutron.Service satisfies it.
type NetworkService interface {
	// Networks.
	CreateNetwork(ctx context.Context, opts neutron.NetworkCreateOpts) (*neutron.Network, error)
	GetNetwork(ctx context.Context, id string) (*neutron.Network, error)
	ListNetworks(ctx context.Context, opts neutron.NetworkListOpts) ([]neutron.Network, error)
	UpdateNetwork(ctx context.Context, id string, opts neutron.NetworkUpdateOpts) (*neutron.Network, error)
	DeleteNetwork(ctx context.Context, id string) error
	FindNetwork(ctx context.Context, nameOrID string) (*neutron.Network, error)
	SupportsExtension(ctx context.Context, alias string) (bool, error)

	// Subnets.
	CreateSubnet(ctx context.Context, networkID, startCIDR string, opts neutron.SubnetCreateOpts) (*neutron.Subnet, error)
	GetSubnet(ctx context.Context, id string) (*neutron.Subnet, error)
	ListSubnets(ctx context.Context, opts neutron.SubnetListOpts) ([]neutron.Subnet, error)
	UpdateSubnet(ctx context.Context, id string, opts neutron.SubnetUpdateOpts) (*neutron.Subnet, error)
	DeleteSubnet(ctx context.Context, id string) error

	// Routers.
	CreateRouter(ctx context.Context, opts neutron.RouterCreateOpts, gw *neutron.GatewaySpec) (*neutron.Router, error)
	GetRouter(ctx context.Context, id string) (*neutron.Router, error)
	ListRouters(ctx context.Context, opts neutron.RouterListOpts) ([]neutron.Router, error)
	UpdateRouter(ctx context.Context, id string, opts neutron.RouterUpdateOpts) (*neutron.Router, error)
	DeleteRouter(ctx context.Context, id string) error
	AddRouterInterface(ctx context.Context, routerID, subnetID string) (*neutron.InterfaceInfo, error)
	RemoveRouterInterface(ctx context.Context, routerID, subnetID string) error
	AddRouterGateway(ctx context.Context, routerID string, gw neutron.GatewaySpec) error
	RemoveRouterGateway(ctx context.Context, routerID string) error
	AddExtraRoutes(ctx context.Context, routerID string, routes []neutron.Route) (*neutron.Router, error)
	RemoveExtraRoutes(ctx context.Context, routerID string, routes []neutron.Route) (*neutron.Router, error)

	// Ports.
	CreatePort(ctx context.Context, networkID string, opts neutron.PortCreateOpts) (*neutron.Port, error)
	GetPort(ctx context.Context, id string) (*neutron.Port, error)
	ListPorts(ctx context.Context, opts neutron.PortListOpts) ([]neutron.Port, error)
	UpdatePort(ctx context.Context, id string, opts neutron.PortUpdateOpts) (*neutron.Port, error)
	DeletePort(ctx context.Context, id string) error

	// Floating IPs.
	CreateFloatingIP(ctx context.Context, floatingNetwork string, opts neutron.FloatingIPCreateOpts) (*neutron.FloatingIP, error)
	ListFloatingIPs(ctx context.Context, opts neutron.FloatingIPListOpts) ([]neutron.FloatingIP, error)
	DeleteFloatingIP(ctx context.Context, id string) error
	AssociateFloatingIP(ctx context.Context, id, portID string) (*neutron.FloatingIP, error)
	DissociateFloatingIP(ctx context.Context, id string) (*neutron.FloatingIP, error)

	// Security groups.
	CreateSecurityGroup(ctx context.Context, opts neutron.SecurityGroupCreateOpts) (*neutron.SecurityGroup, error)
	GetSecurityGroup(ctx context.Context, id string) (*neutron.SecurityGroup, error)
	ListSecurityGroups(ctx context.Context, opts neutron.SecurityGroupListOpts) ([]neutron.SecurityGroup, error)
	UpdateSecurityGroup(ctx context.Context, id string, opts neutron.SecurityGroupUpdateOpts) (*neutron.SecurityGroup, error)
	DeleteSecurityGroup(ctx context.Context, id string) error
	CreateSecurityGroupRule(ctx context.Context, groupID string, opts neutron.SecurityGroupRuleCreateOpts) (*neutron.SecurityGroupRule, error)
	GetSecurityGroupRule(ctx context.Context, id string) (*neutron.SecurityGroupRule, error)
	ListSecurityGroupRules(ctx context.Context, opts neutron.SecurityGroupRuleListOpts) ([]neutron.SecurityGroupRule, error)
	DeleteSecurityGroupRule(ctx context.Context, id string) error

	// Trunks.
	CreateTrunk(ctx context.Context, portID string, opts neutron.TrunkCreateOpts) (*neutron.Trunk, error)
	ListTrunks(ctx context.Context, opts neutron.TrunkListOpts) ([]neutron.Trunk, error)
	DeleteTrunk(ctx context.Context, id string) error
	ListTrunkSubports(ctx context.Context, trunkID string) ([]neutron.Subport, error)
	AddTrunkSubports(ctx context.Context, trunkID string, subports []neutron.Subport) (*neutron.Trunk, error)

	// BGP VPNs. The CRUD operations need an admin-scoped service, the
	// associations run against the tenant service.
	CreateBGPVPN(ctx context.Context, opts neutron.BGPVPNCreateOpts) (*neutron.BGPVPN, error)
	ListBGPVPNs(ctx context.Context, opts neutron.BGPVPNListOpts) ([]neutron.BGPVPN, error)
	UpdateBGPVPN(ctx context.Context, id string, regenerateName bool, opts neutron.BGPVPNUpdateOpts) (*neutron.BGPVPN, error)
	DeleteBGPVPN(ctx context.Context, id string) error
	CreateBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, networkID string) (*neutron.BGPVPNNetworkAssociation, error)
	DeleteBGPVPNNetworkAssociation(ctx context.Context, bgpvpnID, associationID string) error
	ListBGPVPNNetworkAssociations(ctx context.Context, bgpvpnID string) ([]neutron.BGPVPNNetworkAssociation, error)
	CreateBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, routerID string) (*neutron.BGPVPNRouterAssociation, error)
	DeleteBGPVPNRouterAssociation(ctx context.Context, bgpvpnID, associationID string) error
	ListBGPVPNRouterAssociations(ctx context.Context, bgpvpnID string) ([]neutron.BGPVPNRouterAssociation, error)

	// Agents and composites.
	ListAgents(ctx context.Context, opts neutron.AgentListOpts) ([]neutron.Agent, error)
	CreateNetworkTopology(ctx context.Context, spec neutron.TopologySpec) (*neutron.Topology, error)
}

// LoadBalancerService is the consumer contract scenarios place on the
// load-balancer layer. *octavia.Service satisfies it.
type LoadBalancerService interface {
	CreateLoadBalancer(ctx context.Context, vipSubnetID string, opts octavia.LoadBalancerCreateOpts) (*octavia.LoadBalancer, error)
	GetLoadBalancer(ctx context.Context, id string) (*octavia.LoadBalancer, error)
	ListLoadBalancers(ctx context.Context, opts octavia.LoadBalancerListOpts) ([]octavia.LoadBalancer, error)
	DeleteLoadBalancer(ctx context.Context, id string, cascade bool) error

	CreatePool(ctx context.Context, loadbalancerID string, opts octavia.PoolCreateOpts) (*octavia.Pool, error)
	ListPools(ctx context.Context, opts octavia.PoolListOpts) ([]octavia.Pool, error)
	UpdatePool(ctx context.Context, id string, opts octavia.PoolUpdateOpts) (*octavia.Pool, error)
	DeletePool(ctx context.Context, id string) error

	CreateListener(ctx context.Context, loadbalancerID string, opts octavia.ListenerCreateOpts) (*octavia.Listener, error)
	ListListeners(ctx context.Context, opts octavia.ListenerListOpts) ([]octavia.Listener, error)
	UpdateListener(ctx context.Context, id string, opts octavia.ListenerUpdateOpts) (*octavia.Listener, error)
	DeleteListener(ctx context.Context, id string) error

	CreateHealthMonitor(ctx context.Context, poolID string, opts octavia.MonitorCreateOpts) (*octavia.Monitor, error)
	ListHealthMonitors(ctx context.Context, opts octavia.MonitorListOpts) ([]octavia.Monitor, error)
	UpdateHealthMonitor(ctx context.Context, id string, opts octavia.MonitorUpdateOpts) (*octavia.Monitor, error)
	DeleteHealthMonitor(ctx context.Context, id string) error
}

// Tenant holds the resources a run context pre-provisioned for the tenant.
type Tenant struct {
	Networks []neutron.Network
	Subnets  []neutron.Subnet
	Routers  []neutron.Router
}

// Context carries the per-iteration state handed to a scenario by its
// runner.
type Context struct {
	Iteration int
	Tenant    Tenant
}

// Neutron is the scenario helper facade. All methods are safe for
// concurrent use as long as the underlying services are.
type Neutron struct {
	net    NetworkService
	admin  NetworkService
	lbs    LoadBalancerService
	runCtx *Context
	names  *bench.NameGenerator
	log    *zap.Logger
}

// Option is a functional option for configuring a Neutron scenario.
type Option func(*Neutron)

// WithAdmin provides the admin-scoped network service BGP VPN CRUD needs.
func WithAdmin(admin NetworkService) Option {
	return func(n *Neutron) {
		n.admin = admin
	}
}

// WithLoadBalancers provides the load-balancer service.
func WithLoadBalancers(lbs LoadBalancerService) Option {
	return func(n *Neutron) {
		n.lbs = lbs
	}
}

// WithRunContext provides the tenant context for this run.
func WithRunContext(runCtx *Context) Option {
	return func(n *Neutron) {
		n.runCtx = runCtx
	}
}

// WithNameGenerator sets the generator behind scenario-issued names. Wire
// the same generator into the services so every resource of a run shares
// its convention.
func WithNameGenerator(gen *bench.NameGenerator) Option {
	return func(n *Neutron) {
		n.names = gen
	}
}

// WithLogger sets the scenario logger.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Neutron) {
		n.log = logger
	}
}

// NewNeutron creates the scenario facade over net.
func NewNeutron(net NetworkService, opts ...Option) (*Neutron, error) {
	if net == nil {
		return nil, errors.New("nil network service")
	}

	n := &Neutron{net: net}
	for _, opt := range opts {
		opt(n)
	}

	if n.names == nil {
		n.names = bench.NewRunNameGenerator(uuid.New())
	}
	if n.log == nil {
		n.log = zap.NewNop()
	}
	return n, nil
}
