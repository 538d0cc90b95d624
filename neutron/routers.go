package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/extraroutes"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	"github.com/pkg/errors"

	"github.com/perfstack/neutronbench/bench"
)

type (
	Router           = routers.Router
	RouterCreateOpts = routers.CreateOpts
	RouterUpdateOpts = routers.UpdateOpts
	RouterListOpts   = routers.ListOpts
	GatewayInfo      = routers.GatewayInfo
	Route            = routers.Route
	InterfaceInfo    = routers.InterfaceInfo
)

// ExtGatewayModeAlias is the extension gating SNAT control on router
// gateways.
const ExtGatewayModeAlias = "ext-gw-mode"

// GatewaySpec describes how a router acquires its external gateway.
type GatewaySpec struct {
	// NetworkID pins the external network. Empty means discover the
	// first network flagged router:external.
	NetworkID string

	// EnableSNAT is forwarded only when the service supports the
	// ext-gw-mode extension.
	EnableSNAT *bool
}

// CreateRouter creates a router, injecting a generated name when opts
// carries none. A non-nil gw resolves an external gateway before creation;
// when discovery finds no external network the router is created without
// one.
func (s *Service) CreateRouter(ctx context.Context, opts RouterCreateOpts, gw *GatewaySpec) (*Router, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.create_router")
	defer stop()

	if gw != nil && opts.GatewayInfo == nil {
		info, err := s.gatewayInfo(ctx, *gw)
		if err != nil {
			return nil, err
		}
		if info == nil {
			s.log.Warn("no external network found, creating router without gateway")
		} else {
			opts.GatewayInfo = info
		}
	}

	router, err := routers.Create(ctx, s.client, opts).Extract()
	return router, errors.Wrap(err, "creating router")
}

// GetRouter fetches one router by ID.
func (s *Service) GetRouter(ctx context.Context, id string) (*Router, error) {
	stop := s.actions.Start("neutron.show_router")
	defer stop()

	router, err := routers.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "router", id)
	}
	return router, nil
}

// ListRouters returns the routers matching opts.
func (s *Service) ListRouters(ctx context.Context, opts RouterListOpts) ([]Router, error) {
	stop := s.actions.Start("neutron.list_routers")
	defer stop()

	pages, err := routers.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing routers")
	}
	all, err := routers.ExtractRouters(pages)
	return all, errors.Wrap(err, "extracting routers")
}

// UpdateRouter updates a router, injecting a fresh generated name when opts
// carries none.
func (s *Service) UpdateRouter(ctx context.Context, id string, opts RouterUpdateOpts) (*Router, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.update_router")
	defer stop()

	router, err := routers.Update(ctx, s.client, id, opts).Extract()
	return router, errors.Wrap(err, "updating router")
}

// DeleteRouter deletes a router by ID.
func (s *Service) DeleteRouter(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_router")
	defer stop()

	return errors.Wrap(routers.Delete(ctx, s.client, id).ExtractErr(), "deleting router")
}

// AddRouterInterface attaches the given subnet to a router.
func (s *Service) AddRouterInterface(ctx context.Context, routerID, subnetID string) (*InterfaceInfo, error) {
	stop := s.actions.Start("neutron.add_interface_router")
	defer stop()

	info, err := routers.AddInterface(ctx, s.client, routerID, routers.AddInterfaceOpts{SubnetID: subnetID}).Extract()
	return info, errors.Wrap(err, "adding router interface")
}

// RemoveRouterInterface detaches the given subnet from a router.
func (s *Service) RemoveRouterInterface(ctx context.Context, routerID, subnetID string) error {
	stop := s.actions.Start("neutron.remove_interface_router")
	defer stop()

	_, err := routers.RemoveInterface(ctx, s.client, routerID, routers.RemoveInterfaceOpts{SubnetID: subnetID}).Extract()
	return errors.Wrap(err, "removing router interface")
}

// AddRouterGateway sets a router's external gateway per gw. A discovery miss
// is a NotFoundError since the gateway cannot be created.
func (s *Service) AddRouterGateway(ctx context.Context, routerID string, gw GatewaySpec) error {
	stop := s.actions.Start("neutron.add_gateway_router")
	defer stop()

	info, err := s.gatewayInfo(ctx, gw)
	if err != nil {
		return err
	}
	if info == nil {
		return &bench.NotFoundError{Resource: "external network", ID: "router:external"}
	}

	_, err = routers.Update(ctx, s.client, routerID, RouterUpdateOpts{GatewayInfo: info}).Extract()
	return errors.Wrap(err, "adding router gateway")
}

// RemoveRouterGateway clears a router's external gateway.
func (s *Service) RemoveRouterGateway(ctx context.Context, routerID string) error {
	stop := s.actions.Start("neutron.remove_gateway_router")
	defer stop()

	_, err := routers.Update(ctx, s.client, routerID, RouterUpdateOpts{GatewayInfo: &GatewayInfo{}}).Extract()
	return errors.Wrap(err, "removing router gateway")
}

// AddExtraRoutes appends static routes to a router's routing table.
func (s *Service) AddExtraRoutes(ctx context.Context, routerID string, routes []Route) (*Router, error) {
	stop := s.actions.Start("neutron.add_extra_routes")
	defer stop()

	router, err := extraroutes.Add(ctx, s.client, routerID, extraroutes.Opts{Routes: &routes}).Extract()
	return router, errors.Wrap(err, "adding extra routes")
}

// RemoveExtraRoutes removes the given static routes from a router.
func (s *Service) RemoveExtraRoutes(ctx context.Context, routerID string, routes []Route) (*Router, error) {
	stop := s.actions.Start("neutron.remove_extra_routes")
	defer stop()

	router, err := extraroutes.Remove(ctx, s.client, routerID, extraroutes.Opts{Routes: &routes}).Extract()
	return router, errors.Wrap(err, "removing extra routes")
}

func (s *Service) gatewayInfo(ctx context.Context, gw GatewaySpec) (*GatewayInfo, error) {
	networkID := gw.NetworkID
	if networkID == "" {
		external, err := s.ListExternalNetworks(ctx)
		if err != nil {
			return nil, err
		}
		if len(external) == 0 {
			return nil, nil
		}
		networkID = external[0].ID
	}

	info := &GatewayInfo{NetworkID: networkID}
	if gw.EnableSNAT != nil {
		supported, err := s.SupportsExtension(ctx, ExtGatewayModeAlias)
		if err != nil {
			return nil, err
		}
		if supported {
			info.EnableSNAT = gw.EnableSNAT
		}
	}
	return info, nil
}
