package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/frizzlenpop/FrizzlenRanks/store/yamlstore"
)

type BackupCommand struct {
	Logger LagerFlag

	DataDir string `long:"data-dir" description:"Directory holding the world data files" default:"data"`

	Args struct {
		Stamp string `positional-arg-name:"STAMP"`
	} `positional-args:"yes"`
}

// Execute snapshots every stored world and the track ladders into
// backups/<stamp>/ under the data directory. The stamp defaults to the
// current UTC time.
func (cmd BackupCommand) Execute([]string) error {
	logger, _ := cmd.Logger.Logger(component)

	stamp := cmd.Args.Stamp
	if stamp == "" {
		stamp = time.Now().UTC().Format("2006-01-02T15-04-05")
	}

	dir, err := yamlstore.NewStore(cmd.DataDir).Backup(context.Background(), logger, stamp)
	if err != nil {
		return err
	}

	fmt.Printf("backed up to %s\n", dir)
	return nil
}
