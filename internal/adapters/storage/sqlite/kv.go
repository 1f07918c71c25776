package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// KV es el equivalente durable del local storage: una fila por key.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

func (r *KV) Load(ctx context.Context, key string) ([]byte, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "sqlite: load %q", key)
	}
	return []byte(raw), nil
}

func (r *KV) Save(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value))
	if err != nil {
		return errors.Wrapf(err, "sqlite: save %q", key)
	}
	return nil
}
