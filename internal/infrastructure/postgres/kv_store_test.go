package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diedev/firex-web/pkg/config"
)

// fakeDB simula una base sin la tabla firex_kv hasta que se ejecuta el CREATE TABLE.
type fakeDB struct {
	tableExists bool
	execs       []string
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if sql == kvSchema {
		f.tableExists = true
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	}
	if !f.tableExists {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "42P01"}
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return errRow{err: &pgconn.PgError{Code: "42P01"}}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestKVStore_SetCreaTablaSiNoExiste(t *testing.T) {
	db := &fakeDB{}
	s := NewKVStore(db, time.Hour)

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	require.Len(t, db.execs, 3, "upsert fallido, CREATE TABLE, upsert")
	assert.Equal(t, kvSchema, db.execs[1])
}

func TestKVStore_TablaInexistenteEsClaveAusente(t *testing.T) {
	s := NewKVStore(&fakeDB{}, 0)

	_, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, s.Remove(context.Background(), "k"))
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("42P01")))
	assert.False(t, isUndefinedTable(nil))
}

// Integración: sólo corre con FIREX_TEST_DATABASE_URL definido.
func TestKVStore_Postgres(t *testing.T) {
	url := os.Getenv("FIREX_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("FIREX_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := NewKVStore(pool, time.Minute)
	require.NoError(t, s.EnsureSchema(ctx))

	key := "test:" + time.Now().Format(time.RFC3339Nano)
	require.NoError(t, s.Set(ctx, key, "uno"))
	require.NoError(t, s.Set(ctx, key, "dos"))
	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dos", v)

	require.NoError(t, s.Remove(ctx, key))
	_, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
