// Package store moves serializable snapshots of authorization state in
// and out of the core. Temporary grants are deliberately absent from
// the snapshots: they are memory-only and do not survive a restart.
package store

import (
	"context"

	"code.cloudfoundry.org/lager"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
)

type Store interface {
	// LoadWorld returns the stored state of the named world, or
	// ranks.ErrWorldNotFound if nothing has been stored for it.
	LoadWorld(ctx context.Context, logger lager.Logger, name string) (WorldData, error)

	// SaveWorld replaces the stored state of the named world.
	SaveWorld(ctx context.Context, logger lager.Logger, name string, data WorldData) error

	// WorldNames lists every world with stored state.
	WorldNames(ctx context.Context, logger lager.Logger) ([]string, error)

	LoadTracks(ctx context.Context, logger lager.Logger) (map[string][]string, error)
	SaveTracks(ctx context.Context, logger lager.Logger, tracks map[string][]string) error
}

type WorldData struct {
	Groups map[string]GroupData `yaml:"groups"`
	Users  map[string]UserData  `yaml:"users"`
}

type GroupData struct {
	Permissions []string          `yaml:"permissions"`
	Inheritance []string          `yaml:"inheritance"`
	Priority    int               `yaml:"priority"`
	Meta        map[string]string `yaml:"meta,omitempty"`
}

type UserData struct {
	Permissions []string          `yaml:"permissions"`
	Groups      []string          `yaml:"groups"`
	Meta        map[string]string `yaml:"meta,omitempty"`
}

// Snapshot captures a world's permanent state. Live temporary grants
// are skipped, not baked in.
func Snapshot(world *ranks.World) WorldData {
	data := WorldData{
		Groups: make(map[string]GroupData),
		Users:  make(map[string]UserData),
	}

	for _, group := range world.Groups() {
		data.Groups[group.Name()] = GroupData{
			Permissions: group.Permissions(),
			Inheritance: group.Inheritance(),
			Priority:    group.Priority(),
			Meta:        group.MetaMap(),
		}
	}

	for _, user := range world.Users() {
		data.Users[user.Name()] = UserData{
			Permissions: user.PermanentPermissions(),
			Groups:      user.PermanentGroups(),
			Meta:        user.MetaMap(),
		}
	}

	return data
}

// Hydrate applies stored state onto a world through its get-or-create
// accessors. Existing in-memory state is added to, not replaced;
// callers reloading from scratch clear the world first.
func Hydrate(world *ranks.World, data WorldData) {
	for name, groupData := range data.Groups {
		group := world.Group(name)
		for _, permission := range groupData.Permissions {
			group.AddPermission(permission)
		}
		for _, parent := range groupData.Inheritance {
			group.AddInheritance(parent)
		}
		group.SetPriority(groupData.Priority)
		for key, value := range groupData.Meta {
			group.SetMeta(key, value)
		}
	}

	for name, userData := range data.Users {
		user := world.User(name)
		for _, permission := range userData.Permissions {
			user.AddPermission(permission)
		}
		for _, groupName := range userData.Groups {
			user.AddGroup(groupName)
		}
		for key, value := range userData.Meta {
			user.SetMeta(key, value)
		}
	}
}
