package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// KV persiste cada key como una fila JSONB en kv_entries.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

func (r *KV) Load(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, nil
	}

	var raw []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT value
		FROM kv_entries
		WHERE key = $1
	`, key).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "postgres: load %q", key)
	}
	return raw, nil
}

func (r *KV) Save(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, string(value))
	if err != nil {
		return errors.Wrapf(err, "postgres: save %q", key)
	}
	return nil
}
