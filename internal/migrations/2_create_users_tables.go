package migrations

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"
)

var createUserTable = `
CREATE TABLE IF NOT EXISTS ranks_user
(
  world VARCHAR(255) NOT NULL,
  name VARCHAR(255) NOT NULL,
  PRIMARY KEY (world, name)
)
`

var createUserPermissionTable = `
CREATE TABLE IF NOT EXISTS ranks_user_permission
(
  world VARCHAR(255) NOT NULL,
  user_name VARCHAR(255) NOT NULL,
  permission VARCHAR(255) NOT NULL,
  position INT NOT NULL,
  PRIMARY KEY (world, user_name, permission)
)
`

var createUserGroupTable = `
CREATE TABLE IF NOT EXISTS ranks_user_group
(
  world VARCHAR(255) NOT NULL,
  user_name VARCHAR(255) NOT NULL,
  group_name VARCHAR(255) NOT NULL,
  position INT NOT NULL,
  PRIMARY KEY (world, user_name, group_name)
)
`

var createUserMetaTable = `
CREATE TABLE IF NOT EXISTS ranks_user_meta
(
  world VARCHAR(255) NOT NULL,
  user_name VARCHAR(255) NOT NULL,
  meta_key VARCHAR(255) NOT NULL,
  meta_value TEXT NOT NULL,
  PRIMARY KEY (world, user_name, meta_key)
)
`

var dropUsersTables = []string{
	`DROP TABLE ranks_user_meta`,
	`DROP TABLE ranks_user_group`,
	`DROP TABLE ranks_user_permission`,
	`DROP TABLE ranks_user`,
}

func createUsersTablesUp(ctx context.Context, logger lager.Logger, tx *sqlx.Tx) error {
	logger = logger.Session("create-users-tables")
	logger.Debug(starting)
	defer logger.Debug(finished)

	for _, stmt := range []string{
		createUserTable,
		createUserPermissionTable,
		createUserGroupTable,
		createUserMetaTable,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func createUsersTablesDown(ctx context.Context, logger lager.Logger, tx *sqlx.Tx) error {
	logger = logger.Session("create-users-tables")
	logger.Debug(starting)
	defer logger.Debug(finished)

	for _, stmt := range dropUsersTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
