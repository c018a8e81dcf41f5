// Package migrations holds the schema migrations for the MySQL-backed
// store, applied in order through sqlx.ApplyMigrations.
package migrations

import "github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"

const TableName = "ranks_db_migrations"

var Migrations = []sqlx.Migration{
	{
		Name: "create_groups_tables",
		Up:   createGroupsTablesUp,
		Down: createGroupsTablesDown,
	},
	{
		Name: "create_users_tables",
		Up:   createUsersTablesUp,
		Down: createUsersTablesDown,
	},
	{
		Name: "create_tracks_table",
		Up:   createTracksTableUp,
		Down: createTracksTableDown,
	},
}

const (
	starting = "starting"
	finished = "finished"
)
