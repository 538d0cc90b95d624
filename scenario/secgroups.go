package scenario

import (
	"context"

	"github.com/perfstack/neutronbench/neutron"
)

// CreateSecurityGroup creates a security group named by the run's
// convention. A name in opts is discarded.
func (n *Neutron) CreateSecurityGroup(ctx context.Context, opts neutron.SecurityGroupCreateOpts) (*neutron.SecurityGroup, error) {
	opts.Name = n.names.Generate()
	return n.net.CreateSecurityGroup(ctx, opts)
}

// ListSecurityGroups returns the security groups matching opts.
func (n *Neutron) ListSecurityGroups(ctx context.Context, opts neutron.SecurityGroupListOpts) ([]neutron.SecurityGroup, error) {
	return n.net.ListSecurityGroups(ctx, opts)
}

// ShowSecurityGroup fetches one security group by ID.
func (n *Neutron) ShowSecurityGroup(ctx context.Context, id string) (*neutron.SecurityGroup, error) {
	return n.net.GetSecurityGroup(ctx, id)
}

// UpdateSecurityGroup updates a security group under a fresh generated
// name.
func (n *Neutron) UpdateSecurityGroup(ctx context.Context, id string, opts neutron.SecurityGroupUpdateOpts) (*neutron.SecurityGroup, error) {
	opts.Name = n.names.Generate()
	return n.net.UpdateSecurityGroup(ctx, id, opts)
}

// DeleteSecurityGroup deletes a security group by ID.
func (n *Neutron) DeleteSecurityGroup(ctx context.Context, id string) error {
	return n.net.DeleteSecurityGroup(ctx, id)
}

// CreateSecurityGroupRule adds a rule to the given security group.
func (n *Neutron) CreateSecurityGroupRule(ctx context.Context, groupID string, opts neutron.SecurityGroupRuleCreateOpts) (*neutron.SecurityGroupRule, error) {
	return n.net.CreateSecurityGroupRule(ctx, groupID, opts)
}

// ListSecurityGroupRules returns the rules matching opts.
func (n *Neutron) ListSecurityGroupRules(ctx context.Context, opts neutron.SecurityGroupRuleListOpts) ([]neutron.SecurityGroupRule, error) {
	return n.net.ListSecurityGroupRules(ctx, opts)
}

// ShowSecurityGroupRule fetches one rule by ID.
func (n *Neutron) ShowSecurityGroupRule(ctx context.Context, id string) (*neutron.SecurityGroupRule, error) {
	return n.net.GetSecurityGroupRule(ctx, id)
}

// DeleteSecurityGroupRule deletes a rule by ID.
func (n *Neutron) DeleteSecurityGroupRule(ctx context.Context, id string) error {
	return n.net.DeleteSecurityGroupRule(ctx, id)
}
