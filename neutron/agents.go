package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/agents"
	"github.com/pkg/errors"
)

type (
	Agent         = agents.Agent
	AgentListOpts = agents.ListOpts
)

// ListAgents returns the networking agents matching opts.
func (s *Service) ListAgents(ctx context.Context, opts AgentListOpts) ([]Agent, error) {
	stop := s.actions.Start("neutron.list_agents")
	defer stop()

	pages, err := agents.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing agents")
	}
	all, err := agents.ExtractAgents(pages)
	return all, errors.Wrap(err, "extracting agents")
}
