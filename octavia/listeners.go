package octavia

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/loadbalancer/v2/listeners"
	"github.com/pkg/errors"
)

type (
	Listener           = listeners.Listener
	ListenerCreateOpts = listeners.CreateOpts
	ListenerUpdateOpts = listeners.UpdateOpts
	ListenerListOpts   = listeners.ListOpts
)

// Listener creation defaults.
const (
	DefaultListenerProtocol = listeners.ProtocolHTTP
	DefaultProtocolPort     = 80
)

// CreateListener creates a listener on the given load balancer. Empty opts
// fields default to HTTP on port 80 with a generated name.
func (s *Service) CreateListener(ctx context.Context, loadbalancerID string, opts ListenerCreateOpts) (*Listener, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}
	if opts.Protocol == "" {
		opts.Protocol = DefaultListenerProtocol
	}
	if opts.ProtocolPort == 0 {
		opts.ProtocolPort = DefaultProtocolPort
	}
	if opts.LoadbalancerID == "" {
		opts.LoadbalancerID = loadbalancerID
	}

	stop := s.actions.Start("octavia.create_listener")
	defer stop()

	listener, err := listeners.Create(ctx, s.client, opts).Extract()
	return listener, errors.Wrap(err, "creating listener")
}

// GetListener fetches one listener by ID.
func (s *Service) GetListener(ctx context.Context, id string) (*Listener, error) {
	stop := s.actions.Start("octavia.show_listener")
	defer stop()

	listener, err := listeners.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "listener", id)
	}
	return listener, nil
}

// ListListeners returns the listeners matching opts.
func (s *Service) ListListeners(ctx context.Context, opts ListenerListOpts) ([]Listener, error) {
	stop := s.actions.Start("octavia.list_listeners")
	defer stop()

	pages, err := listeners.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing listeners")
	}
	all, err := listeners.ExtractListeners(pages)
	return all, errors.Wrap(err, "extracting listeners")
}

// UpdateListener updates a listener, injecting a fresh generated name when
// opts carries none.
func (s *Service) UpdateListener(ctx context.Context, id string, opts ListenerUpdateOpts) (*Listener, error) {
	if opts.Name == nil {
		name := s.names.Generate()
		opts.Name = &name
	}

	stop := s.actions.Start("octavia.update_listener")
	defer stop()

	listener, err := listeners.Update(ctx, s.client, id, opts).Extract()
	return listener, errors.Wrap(err, "updating listener")
}

// DeleteListener deletes a listener by ID.
func (s *Service) DeleteListener(ctx context.Context, id string) error {
	stop := s.actions.Start("octavia.delete_listener")
	defer stop()

	return errors.Wrap(listeners.Delete(ctx, s.client, id).ExtractErr(), "deleting listener")
}
