package dbstore

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/frizzlenpop/FrizzlenRanks/internal/sqlx"
	"github.com/frizzlenpop/FrizzlenRanks/store"
)

var worldTables = []string{
	"ranks_group_meta",
	"ranks_group_inheritance",
	"ranks_group_permission",
	"ranks_group",
	"ranks_user_meta",
	"ranks_user_group",
	"ranks_user_permission",
	"ranks_user",
}

func deleteWorld(ctx context.Context, tx *sqlx.Tx, world string) error {
	for _, table := range worldTables {
		_, err := squirrel.Delete(table).
			Where(squirrel.Eq{"world": world}).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertGroups(ctx context.Context, tx *sqlx.Tx, world string, groups map[string]store.GroupData) error {
	for name, group := range groups {
		_, err := squirrel.Insert("ranks_group").
			Columns("world", "name", "priority").
			Values(world, name, group.Priority).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return err
		}

		for position, permission := range group.Permissions {
			_, err := squirrel.Insert("ranks_group_permission").
				Columns("world", "group_name", "permission", "position").
				Values(world, name, permission, position).
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return err
			}
		}

		for position, parent := range group.Inheritance {
			_, err := squirrel.Insert("ranks_group_inheritance").
				Columns("world", "group_name", "parent", "position").
				Values(world, name, parent, position).
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return err
			}
		}

		for key, value := range group.Meta {
			_, err := squirrel.Insert("ranks_group_meta").
				Columns("world", "group_name", "meta_key", "meta_value").
				Values(world, name, key, value).
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func insertUsers(ctx context.Context, tx *sqlx.Tx, world string, users map[string]store.UserData) error {
	for name, user := range users {
		_, err := squirrel.Insert("ranks_user").
			Columns("world", "name").
			Values(world, name).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return err
		}

		for position, permission := range user.Permissions {
			_, err := squirrel.Insert("ranks_user_permission").
				Columns("world", "user_name", "permission", "position").
				Values(world, name, permission, position).
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return err
			}
		}

		for position, group := range user.Groups {
			_, err := squirrel.Insert("ranks_user_group").
				Columns("world", "user_name", "group_name", "position").
				Values(world, name, group, position).
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return err
			}
		}

		for key, value := range user.Meta {
			_, err := squirrel.Insert("ranks_user_meta").
				Columns("world", "user_name", "meta_key", "meta_value").
				Values(world, name, key, value).
				RunWith(tx).
				ExecContext(ctx)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) loadGroups(ctx context.Context, world string, data *store.WorldData) error {
	rows, err := squirrel.Select("name", "priority").
		From("ranks_group").
		Where(squirrel.Eq{"world": world}).
		RunWith(s.conn.Conn).
		QueryContext(ctx)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name     string
			priority int
		)
		if err := rows.Scan(&name, &priority); err != nil {
			return err
		}
		data.Groups[name] = store.GroupData{Priority: priority}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	err = s.eachOrdered(ctx, "ranks_group_permission", "group_name", "permission", world, func(name, permission string) {
		group := data.Groups[name]
		group.Permissions = append(group.Permissions, permission)
		data.Groups[name] = group
	})
	if err != nil {
		return err
	}

	err = s.eachOrdered(ctx, "ranks_group_inheritance", "group_name", "parent", world, func(name, parent string) {
		group := data.Groups[name]
		group.Inheritance = append(group.Inheritance, parent)
		data.Groups[name] = group
	})
	if err != nil {
		return err
	}

	return s.eachMeta(ctx, "ranks_group_meta", "group_name", world, func(name, key, value string) {
		group := data.Groups[name]
		if group.Meta == nil {
			group.Meta = make(map[string]string)
		}
		group.Meta[key] = value
		data.Groups[name] = group
	})
}

func (s *Store) loadUsers(ctx context.Context, world string, data *store.WorldData) error {
	rows, err := squirrel.Select("name").
		From("ranks_user").
		Where(squirrel.Eq{"world": world}).
		RunWith(s.conn.Conn).
		QueryContext(ctx)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		data.Users[name] = store.UserData{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	err = s.eachOrdered(ctx, "ranks_user_permission", "user_name", "permission", world, func(name, permission string) {
		user := data.Users[name]
		user.Permissions = append(user.Permissions, permission)
		data.Users[name] = user
	})
	if err != nil {
		return err
	}

	err = s.eachOrdered(ctx, "ranks_user_group", "user_name", "group_name", world, func(name, group string) {
		user := data.Users[name]
		user.Groups = append(user.Groups, group)
		data.Users[name] = user
	})
	if err != nil {
		return err
	}

	return s.eachMeta(ctx, "ranks_user_meta", "user_name", world, func(name, key, value string) {
		user := data.Users[name]
		if user.Meta == nil {
			user.Meta = make(map[string]string)
		}
		user.Meta[key] = value
		data.Users[name] = user
	})
}

// eachOrdered walks (owner, value) pairs of a position-ordered relation
// table, preserving the insertion order the core depends on.
func (s *Store) eachOrdered(ctx context.Context, table, ownerColumn, valueColumn, world string, fn func(owner, value string)) error {
	rows, err := squirrel.Select(ownerColumn, valueColumn).
		From(table).
		Where(squirrel.Eq{"world": world}).
		OrderBy(ownerColumn, "position").
		RunWith(s.conn.Conn).
		QueryContext(ctx)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var owner, value string
		if err := rows.Scan(&owner, &value); err != nil {
			return err
		}
		fn(owner, value)
	}
	return rows.Err()
}

func (s *Store) eachMeta(ctx context.Context, table, ownerColumn, world string, fn func(owner, key, value string)) error {
	rows, err := squirrel.Select(ownerColumn, "meta_key", "meta_value").
		From(table).
		Where(squirrel.Eq{"world": world}).
		RunWith(s.conn.Conn).
		QueryContext(ctx)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var owner, key, value string
		if err := rows.Scan(&owner, &key, &value); err != nil {
			return err
		}
		fn(owner, key, value)
	}
	return rows.Err()
}
