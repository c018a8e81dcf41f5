// Package inmemstore keeps world snapshots in process memory. It backs
// tests and the probe; nothing persists beyond the process.
package inmemstore

import (
	"context"
	"sync"

	"code.cloudfoundry.org/lager"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/store"
)

type Store struct {
	mu     sync.Mutex
	worlds map[string]store.WorldData
	tracks map[string][]string
}

func NewStore() *Store {
	return &Store{
		worlds: make(map[string]store.WorldData),
		tracks: make(map[string][]string),
	}
}

func (s *Store) LoadWorld(ctx context.Context, logger lager.Logger, name string) (store.WorldData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.worlds[name]
	if !ok {
		return store.WorldData{}, ranks.ErrWorldNotFound
	}
	return copyWorldData(data), nil
}

func (s *Store) SaveWorld(ctx context.Context, logger lager.Logger, name string, data store.WorldData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.worlds[name] = copyWorldData(data)
	return nil
}

func (s *Store) WorldNames(ctx context.Context, logger lager.Logger) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.worlds))
	for name := range s.worlds {
		names = append(names, name)
	}
	return names, nil
}

func (s *Store) LoadTracks(ctx context.Context, logger lager.Logger) (map[string][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracks := make(map[string][]string, len(s.tracks))
	for name, groups := range s.tracks {
		tracks[name] = append([]string(nil), groups...)
	}
	return tracks, nil
}

func (s *Store) SaveTracks(ctx context.Context, logger lager.Logger, tracks map[string][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracks = make(map[string][]string, len(tracks))
	for name, groups := range tracks {
		s.tracks[name] = append([]string(nil), groups...)
	}
	return nil
}

func copyWorldData(data store.WorldData) store.WorldData {
	out := store.WorldData{
		Groups: make(map[string]store.GroupData, len(data.Groups)),
		Users:  make(map[string]store.UserData, len(data.Users)),
	}
	for name, group := range data.Groups {
		out.Groups[name] = store.GroupData{
			Permissions: append([]string(nil), group.Permissions...),
			Inheritance: append([]string(nil), group.Inheritance...),
			Priority:    group.Priority,
			Meta:        copyMeta(group.Meta),
		}
	}
	for name, user := range data.Users {
		out.Users[name] = store.UserData{
			Permissions: append([]string(nil), user.Permissions...),
			Groups:      append([]string(nil), user.Groups...),
			Meta:        copyMeta(user.Meta),
		}
	}
	return out
}

func copyMeta(meta map[string]string) map[string]string {
	if meta == nil {
		return nil
	}
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
