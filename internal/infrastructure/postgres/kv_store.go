package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/diedev/firex-web/internal/infrastructure/storage"
)

var _ storage.Store = (*KVStore)(nil)

const kvSchema = `
CREATE TABLE IF NOT EXISTS firex_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at TIMESTAMPTZ,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// DB subconjunto de *pgxpool.Pool que usa el store.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KVStore store de sesiones sobre la tabla firex_kv.
type KVStore struct {
	db  DB
	ttl time.Duration
}

// NewKVStore construye el store; ttl 0 = sin expiración.
func NewKVStore(db DB, ttl time.Duration) *KVStore {
	return &KVStore{db: db, ttl: ttl}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, kvSchema); err != nil {
		return fmt.Errorf("crear tabla firex_kv: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx,
		`SELECT value FROM firex_kv WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get: %w", err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	err := s.upsert(ctx, key, value)
	if isUndefinedTable(err) {
		if err := s.EnsureSchema(ctx); err != nil {
			return err
		}
		err = s.upsert(ctx, key, value)
	}
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (s *KVStore) upsert(ctx context.Context, key, value string) error {
	var expiresAt *time.Time
	if s.ttl > 0 {
		t := time.Now().Add(s.ttl)
		expiresAt = &t
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO firex_kv (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = now()`,
		key, value, expiresAt,
	)
	return err
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM firex_kv WHERE key = $1`, key)
	if err != nil && !isUndefinedTable(err) {
		return fmt.Errorf("kv remove: %w", err)
	}
	return nil
}

// PurgeExpired borra las filas expiradas; devuelve cuántas.
func (s *KVStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM firex_kv WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	if err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("kv purge: %w", err)
	}
	return tag.RowsAffected(), nil
}
