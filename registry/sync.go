package registry

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/frizzlenpop/FrizzlenRanks/store"
)

// SyncUser pushes the user's state from the source world to every
// other loaded world. It is a full one-way replacement: the target's
// groups, permissions and metadata become copies of the source's
// effective state, so temporary grants arrive as permanent ones.
//
// Worlds whose save fails keep their new in-memory state; the failure
// is logged and the remaining worlds are still synced. The first save
// error is returned once all worlds have been attempted.
//
// With the global-users policy off this is a no-op.
func (r *Registry) SyncUser(ctx context.Context, logger lager.Logger, sourceWorldName, userName string) error {
	if !r.conf.UseGlobalUsers {
		return nil
	}

	logger = logger.Session("sync-user", lager.Data{
		"world": sourceWorldName,
		"user":  userName,
	})
	logger.Debug(starting)
	defer logger.Debug(finished)

	source := r.World(sourceWorldName)

	// Snapshot before touching any target, so a target sharing a name
	// with the source user never feeds back into the copy.
	sourceUser := source.User(userName)
	groups := sourceUser.Groups()
	permissions := sourceUser.Permissions()
	meta := sourceUser.MetaMap()

	var firstErr error
	for _, world := range r.Worlds() {
		if world.Name() == source.Name() {
			continue
		}

		target := world.User(userName)
		target.SetGroups(groups)
		target.ClearPermissions()
		for _, permission := range permissions {
			target.AddPermission(permission)
		}
		target.ClearMeta()
		for key, value := range meta {
			target.SetMeta(key, value)
		}

		if r.conf.AutoSave {
			if err := r.store.SaveWorld(ctx, logger, world.Name(), store.Snapshot(world)); err != nil {
				logger.Error(failedToSaveWorld, err, lager.Data{"world": world.Name()})
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		r.reset(world.Name(), userName)
	}
	return firstErr
}
