// Package registry owns the live set of worlds and tracks, moves them
// through a store, and applies the cross-world and track policies that
// sit above the core model.
package registry

import (
	"context"
	"strings"
	"sync"

	"code.cloudfoundry.org/lager"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/config"
	"github.com/frizzlenpop/FrizzlenRanks/store"
)

// GlobalWorldName is the world every scope collapses onto when the
// global-files policy is enabled.
const GlobalWorldName = "global"

// Resetter is signalled whenever a user's resolved authorization state
// may have changed, so the host can drop any cached answers for them.
type Resetter interface {
	Reset(worldName, userName string)
}

type Registry struct {
	store    store.Store
	conf     config.Config
	resetter Resetter

	mu     sync.RWMutex
	worlds map[string]*ranks.World
	tracks map[string]*ranks.Track
}

type Option func(*Registry)

func WithResetter(resetter Resetter) Option {
	return func(r *Registry) {
		r.resetter = resetter
	}
}

func New(s store.Store, conf config.Config, opts ...Option) *Registry {
	r := &Registry{
		store:  s,
		conf:   conf,
		worlds: make(map[string]*ranks.World),
		tracks: make(map[string]*ranks.Track),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Config() config.Config {
	return r.conf
}

// World returns the named world, creating it if it does not exist.
// With global files enabled every name resolves to the global world.
func (r *Registry) World(name string) *ranks.World {
	lowered := r.worldName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	world, ok := r.worlds[lowered]
	if !ok {
		world = ranks.NewWorld(lowered)
		r.worlds[lowered] = world
	}
	return world
}

func (r *Registry) HasWorld(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.worlds[r.worldName(name)]
	return ok
}

// RemoveWorld drops a world from the registry. Stored state is not
// touched; used for scratch worlds that were never saved.
func (r *Registry) RemoveWorld(name string) bool {
	lowered := r.worldName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.worlds[lowered]; !ok {
		return false
	}
	delete(r.worlds, lowered)
	return true
}

// Worlds returns all loaded worlds in unspecified order.
func (r *Registry) Worlds() []*ranks.World {
	r.mu.RLock()
	defer r.mu.RUnlock()

	worlds := make([]*ranks.World, 0, len(r.worlds))
	for _, world := range r.worlds {
		worlds = append(worlds, world)
	}
	return worlds
}

// EnsureUser returns the user in the named world, seeding the
// configured default group if the user holds no group at all.
func (r *Registry) EnsureUser(worldName, userName string) *ranks.User {
	user := r.World(worldName).User(userName)
	if user.Unranked() && r.conf.DefaultGroup != "" {
		user.AddGroup(r.conf.DefaultGroup)
	}
	return user
}

// LoadAll replaces all in-memory worlds and tracks with the stored
// state. Worlds are rebuilt from scratch, so edits made since the last
// save are discarded.
func (r *Registry) LoadAll(ctx context.Context, logger lager.Logger) error {
	logger = logger.Session("load-all")
	logger.Debug(starting)
	defer logger.Debug(finished)

	names, err := r.store.WorldNames(ctx, logger)
	if err != nil {
		return err
	}
	if r.conf.UseGlobalFiles {
		names = []string{GlobalWorldName}
	}

	worlds := make(map[string]*ranks.World, len(names))
	for _, name := range names {
		data, err := r.store.LoadWorld(ctx, logger, name)
		if err != nil {
			if err == ranks.ErrWorldNotFound {
				continue
			}
			logger.Error(failedToLoadWorld, err, lager.Data{"world": name})
			return err
		}

		world := ranks.NewWorld(name)
		store.Hydrate(world, data)
		worlds[world.Name()] = world
	}

	stored, err := r.store.LoadTracks(ctx, logger)
	if err != nil {
		return err
	}
	tracks := make(map[string]*ranks.Track, len(stored))
	for name, groups := range stored {
		track := ranks.NewTrack(name)
		for _, group := range groups {
			track.AddGroup(group)
		}
		tracks[track.Name()] = track
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.worlds = worlds
	r.tracks = tracks
	return nil
}

// SaveAll persists every loaded world and all tracks. A world that
// fails to save is logged and skipped; the first failure is returned
// after the rest have been attempted.
func (r *Registry) SaveAll(ctx context.Context, logger lager.Logger) error {
	logger = logger.Session("save-all")
	logger.Debug(starting)
	defer logger.Debug(finished)

	var firstErr error
	for _, world := range r.Worlds() {
		if err := r.store.SaveWorld(ctx, logger, world.Name(), store.Snapshot(world)); err != nil {
			logger.Error(failedToSaveWorld, err, lager.Data{"world": world.Name()})
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := r.store.SaveTracks(ctx, logger, r.trackSnapshot()); err != nil {
		logger.Error(failedToSaveTracks, err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SaveWorld persists one world.
func (r *Registry) SaveWorld(ctx context.Context, logger lager.Logger, name string) error {
	world := r.World(name)
	if err := r.store.SaveWorld(ctx, logger, world.Name(), store.Snapshot(world)); err != nil {
		logger.Error(failedToSaveWorld, err, lager.Data{"world": world.Name()})
		return err
	}
	return nil
}

// AutoSave persists the world only when the auto-save policy is on.
func (r *Registry) AutoSave(ctx context.Context, logger lager.Logger, worldName string) error {
	if !r.conf.AutoSave {
		return nil
	}
	return r.SaveWorld(ctx, logger, worldName)
}

// UserEdited runs the shared post-mutation sequence for a user edit:
// cross-world sync when enabled, auto-save, and a cache refresh
// signal. Failures are logged, not returned; the in-memory edit has
// already happened.
func (r *Registry) UserEdited(ctx context.Context, logger lager.Logger, worldName, userName string) {
	if err := r.SyncUser(ctx, logger, worldName, userName); err != nil {
		logger.Error(failedToSyncUser, err, lager.Data{"user": userName})
	}
	if err := r.AutoSave(ctx, logger, worldName); err != nil {
		logger.Error(failedToSaveWorld, err, lager.Data{"world": worldName})
	}
	r.reset(worldName, userName)
}

// GroupEdited persists a group edit under the auto-save policy.
func (r *Registry) GroupEdited(ctx context.Context, logger lager.Logger, worldName string) {
	if err := r.AutoSave(ctx, logger, worldName); err != nil {
		logger.Error(failedToSaveWorld, err, lager.Data{"world": worldName})
	}
}

func (r *Registry) reset(worldName, userName string) {
	if r.resetter != nil {
		r.resetter.Reset(worldName, userName)
	}
}

func (r *Registry) worldName(name string) string {
	if r.conf.UseGlobalFiles {
		return GlobalWorldName
	}
	return strings.ToLower(name)
}
