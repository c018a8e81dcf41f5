package bridge

import (
	"context"
	"strconv"

	"code.cloudfoundry.org/lager"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
)

// InfoString returns the metadata value for key, looking at the user
// first and falling back to their groups in descending priority.
// Missing keys yield the default.
func (p *Provider) InfoString(worldName, userName, key, def string) string {
	if value, ok := p.lookupInfo(worldName, userName, key); ok {
		return value
	}
	return def
}

// InfoInt is InfoString with integer coercion; unparseable values
// yield the default.
func (p *Provider) InfoInt(worldName, userName, key string, def int) int {
	value, ok := p.lookupInfo(worldName, userName, key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func (p *Provider) InfoFloat(worldName, userName, key string, def float64) float64 {
	value, ok := p.lookupInfo(worldName, userName, key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

func (p *Provider) InfoBool(worldName, userName, key string, def bool) bool {
	value, ok := p.lookupInfo(worldName, userName, key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}

// SetInfo writes a user metadata value. An empty value deletes the
// key.
func (p *Provider) SetInfo(ctx context.Context, logger lager.Logger, worldName, userName, key, value string) {
	p.registry.World(worldName).User(userName).SetMeta(key, value)
	p.registry.UserEdited(ctx, logger, worldName, userName)
}

// SetGroupInfo writes a group metadata value. An empty value deletes
// the key.
func (p *Provider) SetGroupInfo(ctx context.Context, logger lager.Logger, worldName, groupName, key, value string) {
	p.registry.World(worldName).Group(groupName).SetMeta(key, value)
	p.registry.GroupEdited(ctx, logger, worldName)
}

// GroupInfoString reads a group's own metadata, default on a missing
// key.
func (p *Provider) GroupInfoString(worldName, groupName, key, def string) string {
	world := p.registry.World(worldName)
	if !world.HasGroup(groupName) {
		return def
	}
	if value := world.Group(groupName).Meta(key); value != "" {
		return value
	}
	return def
}

// Prefix returns the user's display prefix: their own meta entry if
// set, otherwise the primary group's.
func (p *Provider) Prefix(worldName, userName string) string {
	return p.InfoString(worldName, userName, "prefix", "")
}

// Suffix mirrors Prefix for the suffix meta key.
func (p *Provider) Suffix(worldName, userName string) string {
	return p.InfoString(worldName, userName, "suffix", "")
}

func (p *Provider) GroupPrefix(worldName, groupName string) string {
	return p.GroupInfoString(worldName, groupName, "prefix", "")
}

func (p *Provider) GroupSuffix(worldName, groupName string) string {
	return p.GroupInfoString(worldName, groupName, "suffix", "")
}

// lookupInfo finds the first metadata value for key: the user's own
// meta wins, then the user's effective groups ordered by descending
// priority (membership order breaks ties).
func (p *Provider) lookupInfo(worldName, userName, key string) (string, bool) {
	world := p.registry.World(worldName)
	user := world.User(userName)

	if value := user.Meta(key); value != "" {
		return value, true
	}

	for _, group := range groupsByPriority(world, user) {
		if value := group.Meta(key); value != "" {
			return value, true
		}
	}
	return "", false
}

// groupsByPriority returns the user's effective groups sorted highest
// priority first, keeping membership order among equals.
func groupsByPriority(world *ranks.World, user *ranks.User) []*ranks.Group {
	var groups []*ranks.Group
	for _, name := range user.Groups() {
		if !world.HasGroup(name) {
			continue
		}
		groups = append(groups, world.Group(name))
	}

	// Insertion sort keeps the walk stable for equal priorities.
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groups[j].Priority() > groups[j-1].Priority(); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
	return groups
}
