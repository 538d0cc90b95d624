package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// CreatePort creates a port on the given network named by the run's
// convention. A name in opts is discarded.
func (n *Neutron) CreatePort(ctx context.Context, network neutron.Network, opts neutron.PortCreateOpts) (*neutron.Port, error) {
	opts.Name = n.names.Generate()
	return n.net.CreatePort(ctx, network.ID, opts)
}

// ListPorts returns the ports matching opts.
func (n *Neutron) ListPorts(ctx context.Context, opts neutron.PortListOpts) ([]neutron.Port, error) {
	return n.net.ListPorts(ctx, opts)
}

// ListPortsByDeviceID returns the ports bound to the given device.
func (n *Neutron) ListPortsByDeviceID(ctx context.Context, deviceID string) ([]neutron.Port, error) {
	return n.net.ListPorts(ctx, neutron.PortListOpts{DeviceID: deviceID})
}

// ShowPort fetches one port by ID.
func (n *Neutron) ShowPort(ctx context.Context, id string) (*neutron.Port, error) {
	return n.net.GetPort(ctx, id)
}

// UpdatePort updates a port under a fresh generated name.
func (n *Neutron) UpdatePort(ctx context.Context, id string, opts neutron.PortUpdateOpts) (*neutron.Port, error) {
	name := n.names.Generate()
	opts.Name = &name
	return n.net.UpdatePort(ctx, id, opts)
}

// DeletePort deletes a port by ID.
func (n *Neutron) DeletePort(ctx context.Context, id string) error {
	return n.net.DeletePort(ctx, id)
}
