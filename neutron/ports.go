package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/pkg/errors"
)

type (
	Port           = ports.Port
	PortCreateOpts = ports.CreateOpts
	PortUpdateOpts = ports.UpdateOpts
	PortListOpts   = ports.ListOpts
)

// CreatePort creates a port on the given network, injecting a generated name
// when opts carries none.
func (s *Service) CreatePort(ctx context.Context, networkID string, opts PortCreateOpts) (*Port, error) {
	opts.NetworkID = networkID
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.create_port")
	defer stop()

	port, err := ports.Create(ctx, s.client, opts).Extract()
	return port, errors.Wrap(err, "creating port")
}

// GetPort fetches one port by ID.
func (s *Service) GetPort(ctx context.Context, id string) (*Port, error) {
	stop := s.actions.Start("neutron.show_port")
	defer stop()

	port, err := ports.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "port", id)
	}
	return port, nil
}

// ListPorts returns the ports matching opts. Filtering by DeviceID serves
// the list-by-device lookups scenarios do after attaching interfaces.
func (s *Service) ListPorts(ctx context.Context, opts PortListOpts) ([]Port, error) {
	stop := s.actions.Start("neutron.list_ports")
	defer stop()

	pages, err := ports.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing ports")
	}
	all, err := ports.ExtractPorts(pages)
	return all, errors.Wrap(err, "extracting ports")
}

// UpdatePort updates a port, injecting a fresh generated name when opts
// carries none.
func (s *Service) UpdatePort(ctx context.Context, id string, opts PortUpdateOpts) (*Port, error) {
	if opts.Name == nil {
		name := s.names.Generate()
		opts.Name = &name
	}

	stop := s.actions.Start("neutron.update_port")
	defer stop()

	port, err := ports.Update(ctx, s.client, id, opts).Extract()
	return port, errors.Wrap(err, "updating port")
}

// DeletePort deletes a port by ID.
func (s *Service) DeletePort(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_port")
	defer stop()

	return errors.Wrap(ports.Delete(ctx, s.client, id).ExtractErr(), "deleting port")
}
