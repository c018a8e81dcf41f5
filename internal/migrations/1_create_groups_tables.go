package migrations

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"
)

var createGroupTable = `
CREATE TABLE IF NOT EXISTS ranks_group
(
  world VARCHAR(255) NOT NULL,
  name VARCHAR(255) NOT NULL,
  priority INT NOT NULL DEFAULT 0,
  PRIMARY KEY (world, name)
)
`

var createGroupPermissionTable = `
CREATE TABLE IF NOT EXISTS ranks_group_permission
(
  world VARCHAR(255) NOT NULL,
  group_name VARCHAR(255) NOT NULL,
  permission VARCHAR(255) NOT NULL,
  position INT NOT NULL,
  PRIMARY KEY (world, group_name, permission)
)
`

var createGroupInheritanceTable = `
CREATE TABLE IF NOT EXISTS ranks_group_inheritance
(
  world VARCHAR(255) NOT NULL,
  group_name VARCHAR(255) NOT NULL,
  parent VARCHAR(255) NOT NULL,
  position INT NOT NULL,
  PRIMARY KEY (world, group_name, parent)
)
`

var createGroupMetaTable = `
CREATE TABLE IF NOT EXISTS ranks_group_meta
(
  world VARCHAR(255) NOT NULL,
  group_name VARCHAR(255) NOT NULL,
  meta_key VARCHAR(255) NOT NULL,
  meta_value TEXT NOT NULL,
  PRIMARY KEY (world, group_name, meta_key)
)
`

var dropGroupsTables = []string{
	`DROP TABLE ranks_group_meta`,
	`DROP TABLE ranks_group_inheritance`,
	`DROP TABLE ranks_group_permission`,
	`DROP TABLE ranks_group`,
}

func createGroupsTablesUp(ctx context.Context, logger lager.Logger, tx *sqlx.Tx) error {
	logger = logger.Session("create-groups-tables")
	logger.Debug(starting)
	defer logger.Debug(finished)

	for _, stmt := range []string{
		createGroupTable,
		createGroupPermissionTable,
		createGroupInheritanceTable,
		createGroupMetaTable,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func createGroupsTablesDown(ctx context.Context, logger lager.Logger, tx *sqlx.Tx) error {
	logger = logger.Session("create-groups-tables")
	logger.Debug(starting)
	defer logger.Debug(finished)

	for _, stmt := range dropGroupsTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
