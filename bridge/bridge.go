// Package bridge is the permission-provider surface exposed to hosts:
// a flat read/write API over the registry, plus typed metadata getters
// and the prefix/suffix presentation helpers.
package bridge

import (
	"context"

	"code.cloudfoundry.org/lager"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
)

type Provider struct {
	registry *registry.Registry
}

func New(r *registry.Registry) *Provider {
	return &Provider{registry: r}
}

// HasPermission resolves the permission for the user in the named
// world: direct grants, negation, then group inheritance.
func (p *Provider) HasPermission(worldName, userName, permission string) bool {
	return p.registry.World(worldName).HasPermission(userName, permission)
}

func (p *Provider) PlayerAddPermission(ctx context.Context, logger lager.Logger, worldName, userName, permission string) {
	p.registry.World(worldName).User(userName).AddPermission(permission)
	p.registry.UserEdited(ctx, logger, worldName, userName)
}

func (p *Provider) PlayerRemovePermission(ctx context.Context, logger lager.Logger, worldName, userName, permission string) {
	p.registry.World(worldName).User(userName).RemovePermission(permission)
	p.registry.UserEdited(ctx, logger, worldName, userName)
}

func (p *Provider) PlayerInGroup(worldName, userName, groupName string) bool {
	return p.registry.World(worldName).User(userName).InGroup(groupName)
}

func (p *Provider) PlayerAddGroup(ctx context.Context, logger lager.Logger, worldName, userName, groupName string) {
	p.registry.World(worldName).User(userName).AddGroup(groupName)
	p.registry.UserEdited(ctx, logger, worldName, userName)
}

func (p *Provider) PlayerRemoveGroup(ctx context.Context, logger lager.Logger, worldName, userName, groupName string) {
	p.registry.World(worldName).User(userName).RemoveGroup(groupName)
	p.registry.UserEdited(ctx, logger, worldName, userName)
}

// PlayerGroups returns the user's effective groups in membership
// order.
func (p *Provider) PlayerGroups(worldName, userName string) []string {
	return p.registry.World(worldName).User(userName).Groups()
}

// PrimaryGroup returns the user's highest-priority effective group,
// ties broken by membership order. "" when the user is unranked.
func (p *Provider) PrimaryGroup(worldName, userName string) string {
	world := p.registry.World(worldName)
	group := primaryGroup(world, world.User(userName))
	if group == nil {
		return ""
	}
	return group.Name()
}

func (p *Provider) GroupHasPermission(worldName, groupName, permission string) bool {
	return p.registry.World(worldName).GroupHasPermission(groupName, permission)
}

func (p *Provider) GroupAddPermission(ctx context.Context, logger lager.Logger, worldName, groupName, permission string) {
	p.registry.World(worldName).Group(groupName).AddPermission(permission)
	p.registry.GroupEdited(ctx, logger, worldName)
}

func (p *Provider) GroupRemovePermission(ctx context.Context, logger lager.Logger, worldName, groupName, permission string) {
	p.registry.World(worldName).Group(groupName).RemovePermission(permission)
	p.registry.GroupEdited(ctx, logger, worldName)
}

// Groups lists the names of all groups in the world.
func (p *Provider) Groups(worldName string) []string {
	groups := p.registry.World(worldName).Groups()
	names := make([]string, 0, len(groups))
	for _, group := range groups {
		names = append(names, group.Name())
	}
	return names
}

// primaryGroup picks the user's effective group with the highest
// priority; membership order breaks ties.
func primaryGroup(world *ranks.World, user *ranks.User) *ranks.Group {
	var best *ranks.Group
	for _, name := range user.Groups() {
		if !world.HasGroup(name) {
			continue
		}
		group := world.Group(name)
		if best == nil || group.Priority() > best.Priority() {
			best = group
		}
	}
	return best
}
