package neutron

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/rules"
	"github.com/pkg/errors"
)

type (
	SecurityGroup           = groups.SecGroup
	SecurityGroupCreateOpts = groups.CreateOpts
	SecurityGroupUpdateOpts = groups.UpdateOpts
	SecurityGroupListOpts   = groups.ListOpts

	SecurityGroupRule           = rules.SecGroupRule
	SecurityGroupRuleCreateOpts = rules.CreateOpts
	SecurityGroupRuleListOpts   = rules.ListOpts
)

// CreateSecurityGroup creates a security group, injecting a generated name
// when opts carries none.
func (s *Service) CreateSecurityGroup(ctx context.Context, opts SecurityGroupCreateOpts) (*SecurityGroup, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.create_security_group")
	defer stop()

	group, err := groups.Create(ctx, s.client, opts).Extract()
	return group, errors.Wrap(err, "creating security group")
}

// GetSecurityGroup fetches one security group by ID.
func (s *Service) GetSecurityGroup(ctx context.Context, id string) (*SecurityGroup, error) {
	stop := s.actions.Start("neutron.show_security_group")
	defer stop()

	group, err := groups.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "security group", id)
	}
	return group, nil
}

// ListSecurityGroups returns the security groups matching opts.
func (s *Service) ListSecurityGroups(ctx context.Context, opts SecurityGroupListOpts) ([]SecurityGroup, error) {
	stop := s.actions.Start("neutron.list_security_groups")
	defer stop()

	pages, err := groups.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing security groups")
	}
	all, err := groups.ExtractGroups(pages)
	return all, errors.Wrap(err, "extracting security groups")
}

// UpdateSecurityGroup updates a security group, injecting a fresh generated
// name when opts carries none.
func (s *Service) UpdateSecurityGroup(ctx context.Context, id string, opts SecurityGroupUpdateOpts) (*SecurityGroup, error) {
	if opts.Name == "" {
		opts.Name = s.names.Generate()
	}

	stop := s.actions.Start("neutron.update_security_group")
	defer stop()

	group, err := groups.Update(ctx, s.client, id, opts).Extract()
	return group, errors.Wrap(err, "updating security group")
}

// DeleteSecurityGroup deletes a security group by ID.
func (s *Service) DeleteSecurityGroup(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_security_group")
	defer stop()

	return errors.Wrap(groups.Delete(ctx, s.client, id).ExtractErr(), "deleting security group")
}

// CreateSecurityGroupRule adds a rule to the given security group. Direction
// defaults to ingress and ether type to IPv4.
func (s *Service) CreateSecurityGroupRule(ctx context.Context, groupID string, opts SecurityGroupRuleCreateOpts) (*SecurityGroupRule, error) {
	opts.SecGroupID = groupID
	if opts.Direction == "" {
		opts.Direction = rules.DirIngress
	}
	if opts.EtherType == "" {
		opts.EtherType = rules.EtherType4
	}

	stop := s.actions.Start("neutron.create_security_group_rule")
	defer stop()

	rule, err := rules.Create(ctx, s.client, opts).Extract()
	return rule, errors.Wrap(err, "creating security group rule")
}

// GetSecurityGroupRule fetches one security group rule by ID.
func (s *Service) GetSecurityGroupRule(ctx context.Context, id string) (*SecurityGroupRule, error) {
	stop := s.actions.Start("neutron.show_security_group_rule")
	defer stop()

	rule, err := rules.Get(ctx, s.client, id).Extract()
	if err != nil {
		return nil, translateGetError(err, "security group rule", id)
	}
	return rule, nil
}

// ListSecurityGroupRules returns the rules matching opts.
func (s *Service) ListSecurityGroupRules(ctx context.Context, opts SecurityGroupRuleListOpts) ([]SecurityGroupRule, error) {
	stop := s.actions.Start("neutron.list_security_group_rules")
	defer stop()

	pages, err := rules.List(s.client, opts).AllPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing security group rules")
	}
	all, err := rules.ExtractRules(pages)
	return all, errors.Wrap(err, "extracting security group rules")
}

// DeleteSecurityGroupRule deletes a rule by ID. Rules are immutable, so the
// update cycle scenarios run elsewhere has no counterpart here.
func (s *Service) DeleteSecurityGroupRule(ctx context.Context, id string) error {
	stop := s.actions.Start("neutron.delete_security_group_rule")
	defer stop()

	return errors.Wrap(rules.Delete(ctx, s.client, id).ExtractErr(), "deleting security group rule")
}
