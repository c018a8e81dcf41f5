// Package yamlstore persists world snapshots as YAML files:
//
//	<root>/global/groups.yml
//	<root>/global/users.yml
//	<root>/worlds/<name>/groups.yml
//	<root>/worlds/<name>/users.yml
//	<root>/tracks.yml
//
// The "global" world lives outside the worlds directory; every other
// world gets its own subdirectory.
package yamlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
	"gopkg.in/yaml.v3"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/store"
)

const GlobalWorldName = "global"

type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

type groupsFile struct {
	Groups map[string]store.GroupData `yaml:"groups"`
}

type usersFile struct {
	Users map[string]store.UserData `yaml:"users"`
}

type tracksFile struct {
	Tracks map[string][]string `yaml:"tracks"`
}

func (s *Store) LoadWorld(ctx context.Context, logger lager.Logger, name string) (store.WorldData, error) {
	logger = logger.Session("load-world", lager.Data{"world": name})

	dir := s.worldDir(name)

	var groups groupsFile
	groupsFound, err := readYAML(filepath.Join(dir, "groups.yml"), &groups)
	if err != nil {
		logger.Error(failedToReadFile, err)
		return store.WorldData{}, err
	}

	var users usersFile
	usersFound, err := readYAML(filepath.Join(dir, "users.yml"), &users)
	if err != nil {
		logger.Error(failedToReadFile, err)
		return store.WorldData{}, err
	}

	if !groupsFound && !usersFound {
		return store.WorldData{}, ranks.ErrWorldNotFound
	}

	data := store.WorldData{
		Groups: groups.Groups,
		Users:  users.Users,
	}
	if data.Groups == nil {
		data.Groups = make(map[string]store.GroupData)
	}
	if data.Users == nil {
		data.Users = make(map[string]store.UserData)
	}

	logger.Debug(success, lager.Data{
		"groups": len(data.Groups),
		"users":  len(data.Users),
	})

	return data, nil
}

func (s *Store) SaveWorld(ctx context.Context, logger lager.Logger, name string, data store.WorldData) error {
	logger = logger.Session("save-world", lager.Data{"world": name})

	dir := s.worldDir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error(failedToWriteFile, err)
		return err
	}

	if err := writeYAML(filepath.Join(dir, "groups.yml"), groupsFile{Groups: data.Groups}); err != nil {
		logger.Error(failedToWriteFile, err)
		return err
	}

	if err := writeYAML(filepath.Join(dir, "users.yml"), usersFile{Users: data.Users}); err != nil {
		logger.Error(failedToWriteFile, err)
		return err
	}

	logger.Debug(success)
	return nil
}

func (s *Store) WorldNames(ctx context.Context, logger lager.Logger) ([]string, error) {
	var names []string

	if _, err := os.Stat(filepath.Join(s.root, GlobalWorldName)); err == nil {
		names = append(names, GlobalWorldName)
	}

	entries, err := os.ReadDir(filepath.Join(s.root, "worlds"))
	if os.IsNotExist(err) {
		return names, nil
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (s *Store) LoadTracks(ctx context.Context, logger lager.Logger) (map[string][]string, error) {
	var tracks tracksFile
	found, err := readYAML(filepath.Join(s.root, "tracks.yml"), &tracks)
	if err != nil {
		logger.Session("load-tracks").Error(failedToReadFile, err)
		return nil, err
	}
	if !found || tracks.Tracks == nil {
		return map[string][]string{}, nil
	}
	return tracks.Tracks, nil
}

func (s *Store) SaveTracks(ctx context.Context, logger lager.Logger, tracks map[string][]string) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return err
	}

	if err := writeYAML(filepath.Join(s.root, "tracks.yml"), tracksFile{Tracks: tracks}); err != nil {
		logger.Session("save-tracks").Error(failedToWriteFile, err)
		return err
	}
	return nil
}

// Backup copies all stored data into backups/<stamp>/ under the store
// root and returns the backup directory.
func (s *Store) Backup(ctx context.Context, logger lager.Logger, stamp string) (string, error) {
	logger = logger.Session("backup", lager.Data{"stamp": stamp})

	backupDir := filepath.Join(s.root, "backups", stamp)
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", err
	}

	names, err := s.WorldNames(ctx, logger)
	if err != nil {
		return "", err
	}

	backup := NewStore(backupDir)
	for _, name := range names {
		data, err := s.LoadWorld(ctx, logger, name)
		if err != nil {
			return "", err
		}
		if err := backup.SaveWorld(ctx, logger, name, data); err != nil {
			return "", err
		}
	}

	tracks, err := s.LoadTracks(ctx, logger)
	if err != nil {
		return "", err
	}
	if err := backup.SaveTracks(ctx, logger, tracks); err != nil {
		return "", err
	}

	logger.Info(success, lager.Data{"worlds": len(names)})
	return backupDir, nil
}

func (s *Store) worldDir(name string) string {
	if name == GlobalWorldName {
		return filepath.Join(s.root, GlobalWorldName)
	}
	return filepath.Join(s.root, "worlds", name)
}

func readYAML(path string, out interface{}) (bool, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := yaml.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return true, nil
}

func writeYAML(path string, in interface{}) error {
	b, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
