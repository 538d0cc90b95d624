package octavia

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/loadbalancer/v2/monitors"
	"github.com/pkg/errors"
)

type (
	Monitor           = monitors.Monitor
	MonitorCreateOpts = monitors.CreateOpts
	MonitorUpdateOpts = monitors.UpdateOpts
	MonitorListOpts   = monitors.ListOpts
)

// Health monitor creation defaults.
const (
	DefaultMonitorType       = monitors.TypePING
	DefaultMonitorDelay      = 20
	DefaultMonitorTimeout    = 10
	DefaultMonitorMaxRetries = 3
)

// CreateHealthMonitor creates a health monitor on the given pool. Empty opts
// fields default to a PING probe every 20s with a 10s timeout and 3 retries.
func (s *Service) CreateHealthMonitor(ctx context.Context, poolID string, opts MonitorCreateOpts) (*Monitor, error) {
	if opts.PoolID == "" {
		opts.PoolID = poolID
	}
	if opts.Type == "" {
		opts.Type = DefaultMonitorType
	}
	if opts.Delay == 0 {
		opts.Delay = DefaultMonitorDelay
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultMonitorTimeout
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = DefaultMonitorMaxRetries
	}

	stop := s.actions.Start("octavia.create_healthmonitor")
	defer stop()

	monitor, err := monitors.Create(ctx, s.client, opts).Extract()
	return monitor, errors.Wrap(err, "creating healthmonitor")
}

// GetHealthMonitor fetches one health monitor by ID.
func (s *Service) GetHealthMonitor(ctx context.Context, id string) (*Monitor, error) {
	stop := s.actions.Start("octavia.show_healthmonitor")
	defer stop()

	monitor, err := monitors.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "healthmonitor", id)
	}
	return monitor, nil
}

// ListHealthMonitors returns the health monitors matching opts.
func (s *Service) ListHealthMonitors(ctx context.Context, opts MonitorListOpts) ([]Monitor, error) {
	stop := s.actions.Start("octavia.list_healthmonitors")
	defer stop()

	pages, err := monitors.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing healthmonitors")
	}
	all, err := monitors.ExtractMonitors(pages)
	return all, errors.Wrap(err, "extracting healthmonitors")
}

// UpdateHealthMonitor updates a health monitor by ID.
func (s *Service) UpdateHealthMonitor(ctx context.Context, id string, opts MonitorUpdateOpts) (*Monitor, error) {
	stop := s.actions.Start("octavia.update_healthmonitor")
	defer stop()

	monitor, err := monitors.Update(ctx, s.client, id, opts).Extract()
	return monitor, errors.Wrap(err, "updating healthmonitor")
}

// DeleteHealthMonitor deletes a health monitor by ID.
func (s *Service) DeleteHealthMonitor(ctx context.Context, id string) error {
	stop := s.actions.Start("octavia.delete_healthmonitor")
	defer stop()

	return errors.Wrap(monitors.Delete(ctx, s.client, id).ExtractErr(), "deleting healthmonitor")
}
