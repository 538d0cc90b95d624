package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// CreateRouter creates a router named by the run's convention; a name in
// opts is discarded. A legacy TenantID is migrated to ProjectID when only
// the former is set. A non-nil gw resolves an external gateway.
func (n *Neutron) CreateRouter(ctx context.Context, opts neutron.RouterCreateOpts, gw *neutron.GatewaySpec) (*neutron.Router, error) {
	opts.Name = n.names.Generate()
	if opts.ProjectID == "" && opts.TenantID != "" {
		opts.ProjectID = opts.TenantID
		opts.TenantID = ""
	}
	return n.net.CreateRouter(ctx, opts, gw)
}

// ListRouters returns the routers matching opts.
func (n *Neutron) ListRouters(ctx context.Context, opts neutron.RouterListOpts) ([]neutron.Router, error) {
	return n.net.ListRouters(ctx, opts)
}

// ShowRouter fetches one router by ID.
func (n *Neutron) ShowRouter(ctx context.Context, id string) (*neutron.Router, error) {
	return n.net.GetRouter(ctx, id)
}

// UpdateRouter updates a router under a fresh generated name.
func (n *Neutron) UpdateRouter(ctx context.Context, id string, opts neutron.RouterUpdateOpts) (*neutron.Router, error) {
	opts.Name = n.names.Generate()
	return n.net.UpdateRouter(ctx, id, opts)
}

// DeleteRouter deletes a router by ID.
func (n *Neutron) DeleteRouter(ctx context.Context, id string) error {
	return n.net.DeleteRouter(ctx, id)
}

// AddInterfaceRouter attaches a subnet to a router.
func (n *Neutron) AddInterfaceRouter(ctx context.Context, routerID, subnetID string) (*neutron.InterfaceInfo, error) {
	return n.net.AddRouterInterface(ctx, routerID, subnetID)
}

// RemoveInterfaceRouter detaches a subnet from a router.
func (n *Neutron) RemoveInterfaceRouter(ctx context.Context, routerID, subnetID string) error {
	return n.net.RemoveRouterInterface(ctx, routerID, subnetID)
}

// AddGatewayRouter sets a router's external gateway per gw.
func (n *Neutron) AddGatewayRouter(ctx context.Context, routerID string, gw neutron.GatewaySpec) error {
	return n.net.AddRouterGateway(ctx, routerID, gw)
}

// RemoveGatewayRouter clears a router's external gateway.
func (n *Neutron) RemoveGatewayRouter(ctx context.Context, routerID string) error {
	return n.net.RemoveRouterGateway(ctx, routerID)
}

// AddExtraRoutes appends static routes to a router.
func (n *Neutron) AddExtraRoutes(ctx context.Context, routerID string, routes []neutron.Route) (*neutron.Router, error) {
	return n.net.AddExtraRoutes(ctx, routerID, routes)
}

// RemoveExtraRoutes removes static routes from a router.
func (n *Neutron) RemoveExtraRoutes(ctx context.Context, routerID string, routes []neutron.Route) (*neutron.Router, error) {
	return n.net.RemoveExtraRoutes(ctx, routerID, routes)
}
