// Package config holds the engine's policy knobs: global-file and
// global-user behavior, auto-save, the track promotion policy, the
// default group for unranked users and the expiry sweep interval.
package config

import (
	"errors"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
)

type Config struct {
	// UseGlobalFiles collapses every world onto the global world, so
	// all scopes share one set of users and groups.
	UseGlobalFiles bool `yaml:"use-global-files"`

	// UseGlobalUsers enables cross-world user synchronization: edits
	// to a user in one world are pushed to every other world.
	UseGlobalUsers bool `yaml:"use-global-users"`

	// AutoSave persists a world immediately after each mutation.
	AutoSave bool `yaml:"auto-save"`

	// TrackType is the promotion policy: single, multi or replace.
	TrackType string `yaml:"track-type"`

	// DefaultGroup is assigned to users that hold no group at all.
	// Empty disables seeding.
	DefaultGroup string `yaml:"default-group"`

	// SweepInterval is the expiry sweeper's period, in the same
	// duration syntax as temporary grants (30s, 10m, 5h, 7d).
	SweepInterval string `yaml:"sweep-interval"`
}

func Default() Config {
	return Config{
		AutoSave:      true,
		TrackType:     "single",
		DefaultGroup:  "default",
		SweepInterval: "5m",
	}
}

// Load reads a config file, layering it over the defaults. A missing
// file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	conf := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return conf, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Write persists the config, used to materialize a default config file
// on first run.
func (c Config) Write(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// SweepPeriod parses SweepInterval. An unset interval falls back to
// the default period.
func (c Config) SweepPeriod() (time.Duration, error) {
	if c.SweepInterval == "" {
		return ranks.ParseDuration(Default().SweepInterval)
	}
	return ranks.ParseDuration(c.SweepInterval)
}

// PromotionPolicy maps TrackType to its enum value, defaulting to
// single for unknown strings.
func (c Config) PromotionPolicy() ranks.TrackType {
	return ranks.ParseTrackType(c.TrackType)
}
