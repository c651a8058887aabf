package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// KV is a string key/value table. Values are overwritten wholesale.
type KV struct {
	db *sql.DB
}

// Get returns the value stored under key. ok is false when the key has
// never been set.
func (k *KV) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	b := builder()
	query, args := b.Select("value").
		From(b.Table(kvTableName)).
		Where(entsql.EQ("key", key)).
		Query()

	err = k.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (k *KV) Set(ctx context.Context, key, value string) error {
	query, args := builder().Insert(kvTableName).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := k.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (k *KV) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete(kvTableName).
		Where(entsql.EQ("key", key)).
		Query()

	if _, err := k.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
