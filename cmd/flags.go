// Package cmd holds the administrative command surface: every
// subcommand of the ranks binary, plus the shared flag types they are
// assembled from.
package cmd

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/frizzlenpop/FrizzlenRanks/config"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
	"github.com/frizzlenpop/FrizzlenRanks/store/yamlstore"
)

// EngineFlag carries the flags every data-touching command needs: a
// logger, the policy config and the data directory.
type EngineFlag struct {
	Logger LagerFlag

	ConfigPath string `long:"config" description:"Path to the engine policy file" default:"config.yml"`
	DataDir    string `long:"data-dir" description:"Directory holding the world data files" default:"data"`
}

// Open loads the config and the stored worlds into a fresh registry.
func (f EngineFlag) Open(ctx context.Context, component string) (lager.Logger, *registry.Registry, error) {
	logger, _ := f.Logger.Logger(component)

	conf, err := config.Load(f.ConfigPath)
	if err != nil {
		logger.Error(failedToLoadConfig, err, lager.Data{"path": f.ConfigPath})
		return nil, nil, err
	}

	reg := registry.New(yamlstore.NewStore(f.DataDir), conf)
	if err := reg.LoadAll(ctx, logger); err != nil {
		return nil, nil, err
	}
	return logger, reg, nil
}
