package cmd

import (
	"context"

	"github.com/frizzlenpop/FrizzlenRanks/internal/migrations"
	"github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"
)

type MigrateCommand struct {
	Logger LagerFlag

	MigrationsTableName string `long:"migrations-table-name" description:"Name of the table which holds migration information" default:"ranks_db_migrations"`

	SQL SQLFlag `group:"SQL" namespace:"sql"`
}

// Execute brings the SQL schema up to date. Safe to re-run; applied
// migrations are skipped.
func (cmd MigrateCommand) Execute([]string) error {
	logger, _ := cmd.Logger.Logger(component)
	logger = logger.Session("migrate")
	logger.Info(starting)
	defer logger.Info(finished)

	conn, err := cmd.SQL.Connect(logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := context.Background()
	return sqlx.ApplyMigrations(ctx, logger, conn, cmd.MigrationsTableName, migrations.Migrations)
}
