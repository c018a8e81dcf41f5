// Package dbstore persists world snapshots to MySQL. Schema lives in
// internal/migrations; every save fully replaces the world's rows
// inside one transaction, mirroring the file store's
// whole-file-rewrite semantics.
package dbstore

import (
	"context"

	"code.cloudfoundry.org/lager"
	"github.com/Masterminds/squirrel"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"
	"github.com/frizzlenpop/FrizzlenRanks/store"
)

type Store struct {
	conn *sqlx.DB
}

func NewStore(conn *sqlx.DB) *Store {
	return &Store{conn: conn}
}

func (s *Store) LoadWorld(ctx context.Context, logger lager.Logger, name string) (store.WorldData, error) {
	logger = logger.Session("load-world", lager.Data{"world": name})

	data := store.WorldData{
		Groups: make(map[string]store.GroupData),
		Users:  make(map[string]store.UserData),
	}

	if err := s.loadGroups(ctx, name, &data); err != nil {
		logger.Error(failedToQuery, err)
		return store.WorldData{}, err
	}
	if err := s.loadUsers(ctx, name, &data); err != nil {
		logger.Error(failedToQuery, err)
		return store.WorldData{}, err
	}

	if len(data.Groups) == 0 && len(data.Users) == 0 {
		return store.WorldData{}, ranks.ErrWorldNotFound
	}

	logger.Debug(success, lager.Data{
		"groups": len(data.Groups),
		"users":  len(data.Users),
	})
	return data, nil
}

func (s *Store) SaveWorld(ctx context.Context, logger lager.Logger, name string, data store.WorldData) (err error) {
	logger = logger.Session("save-world", lager.Data{"world": name})

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			err = commitErr
		}
	}()

	if err = deleteWorld(ctx, tx, name); err != nil {
		return
	}
	if err = insertGroups(ctx, tx, name, data.Groups); err != nil {
		return
	}
	err = insertUsers(ctx, tx, name, data.Users)

	return
}

func (s *Store) WorldNames(ctx context.Context, logger lager.Logger) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT world FROM ranks_group UNION SELECT world FROM ranks_user`)
	if err != nil {
		logger.Error(failedToQuery, err)
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) LoadTracks(ctx context.Context, logger lager.Logger) (map[string][]string, error) {
	rows, err := squirrel.Select("name", "group_name").
		From("ranks_track").
		OrderBy("name", "position").
		RunWith(s.conn.Conn).
		QueryContext(ctx)
	if err != nil {
		logger.Error(failedToQuery, err)
		return nil, err
	}
	defer rows.Close()

	tracks := make(map[string][]string)
	for rows.Next() {
		var name, group string
		if err := rows.Scan(&name, &group); err != nil {
			return nil, err
		}
		tracks[name] = append(tracks[name], group)
	}
	return tracks, rows.Err()
}

func (s *Store) SaveTracks(ctx context.Context, logger lager.Logger, tracks map[string][]string) (err error) {
	logger = logger.Session("save-tracks")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			err = commitErr
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM ranks_track`); err != nil {
		return
	}

	for name, groups := range tracks {
		for position, group := range groups {
			_, err = squirrel.Insert("ranks_track").
				Columns("name", "position", "group_name").
				Values(name, position, group).
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return
			}
		}
	}

	return
}
