package migrations

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"
)

var createTrackTable = `
CREATE TABLE IF NOT EXISTS ranks_track
(
  name VARCHAR(255) NOT NULL,
  position INT NOT NULL,
  group_name VARCHAR(255) NOT NULL,
  PRIMARY KEY (name, position)
)
`

var dropTrackTable = `DROP TABLE ranks_track`

func createTracksTableUp(ctx context.Context, logger lager.Logger, tx *sqlx.Tx) error {
	logger = logger.Session("create-tracks-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, createTrackTable)
	return err
}

func createTracksTableDown(ctx context.Context, logger lager.Logger, tx *sqlx.Tx) error {
	logger = logger.Session("create-tracks-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, dropTrackTable)
	return err
}
