package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"marketplace-bff/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schema = `
	CREATE TABLE IF NOT EXISTS client_state (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		expires_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// KVRepo implements storage.KVStore on a PostgreSQL table.
type KVRepo struct {
	db Querier
}

// NewKVRepo creates a new KVRepo over a pool or a transaction.
func NewKVRepo(db Querier) *KVRepo {
	return &KVRepo{db: db}
}

// Compile-time check to ensure KVRepo implements KVStore
var _ storage.KVStore = (*KVRepo)(nil)

// EnsureSchema creates the backing table if it does not exist.
func (r *KVRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create client_state table: %w", err)
	}
	return nil
}

func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM client_state
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`
	var value []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error reading client state %s: %v\n", key, err)
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (r *KVRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	query := `
		INSERT INTO client_state (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, value, expiresAt); err != nil {
		log.Printf("Error writing client state %s: %v\n", key, err)
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM client_state WHERE key = ANY($1)`, keys); err != nil {
		log.Printf("Error deleting client state %v: %v\n", keys, err)
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}
