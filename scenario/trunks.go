package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// CreateTrunk creates a trunk over the given parent port named by the run's
// convention. A name in opts is discarded.
func (n *Neutron) CreateTrunk(ctx context.Context, portID string, opts neutron.TrunkCreateOpts) (*neutron.Trunk, error) {
	opts.Name = n.names.Generate()
	return n.net.CreateTrunk(ctx, portID, opts)
}

// ListTrunks returns the trunks matching opts.
func (n *Neutron) ListTrunks(ctx context.Context, opts neutron.TrunkListOpts) ([]neutron.Trunk, error) {
	return n.net.ListTrunks(ctx, opts)
}

// DeleteTrunk deletes a trunk by ID.
func (n *Neutron) DeleteTrunk(ctx context.Context, id string) error {
	return n.net.DeleteTrunk(ctx, id)
}

// ListSubportsByTrunk returns the subports attached to a trunk.
func (n *Neutron) ListSubportsByTrunk(ctx context.Context, trunkID string) ([]neutron.Subport, error) {
	return n.net.ListTrunkSubports(ctx, trunkID)
}

// AddSubportsToTrunk attaches the given subports to a trunk.
func (n *Neutron) AddSubportsToTrunk(ctx context.Context, trunkID string, subports []neutron.Subport) (*neutron.Trunk, error) {
	return n.net.AddTrunkSubports(ctx, trunkID, subports)
}
