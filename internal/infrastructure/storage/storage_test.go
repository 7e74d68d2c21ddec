package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertStoreContract comportamiento común a todos los backends.
func assertStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, ok, "clave inexistente")

	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"u1"}`))
	require.NoError(t, s.Set(ctx, KeyToken, "tok"))

	v, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"u1"}`, v)

	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"u2"}`))
	v, _, _ = s.Get(ctx, KeyUser)
	assert.Equal(t, `{"id":"u2"}`, v)

	require.NoError(t, s.Remove(ctx, KeyUser))
	_, ok, err = s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, _ = s.Get(ctx, KeyToken)
	assert.True(t, ok, "Remove sólo afecta su clave")
	assert.Equal(t, "tok", v)

	require.NoError(t, s.Remove(ctx, "no-existe"), "Remove de clave inexistente no falla")
}

func TestMemoryStore_Contrato(t *testing.T) {
	assertStoreContract(t, NewMemoryStore(0))
}

func TestMemoryStore_Expira(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", "v"))
	_, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = m.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryStore_ExpiradoNoBorraSetPosterior(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, KeyToken, "viejo"))
	now = now.Add(2 * time.Minute)

	// Get leyó la entrada vencida; antes de borrar llega un login que la reescribe.
	m.mu.RLock()
	stale := m.data[KeyToken]
	m.mu.RUnlock()
	require.True(t, m.expired(stale))
	require.NoError(t, m.Set(ctx, KeyToken, "nuevo"))
	m.evictExpired(KeyToken)

	v, ok, err := m.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nuevo", v)
}

func TestFileStore_Contrato(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))
	require.NoError(t, err)
	assertStoreContract(t, s)
}

func TestFileStore_PersisteEntreInstancias(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	a, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, a.Set(ctx, KeyToken, "abc"))

	b, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := b.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, _, err = s.Get(ctx, KeyUser)
	assert.Error(t, err, "el archivo corrupto se reporta en la lectura")

	require.NoError(t, s.Set(ctx, KeyUser, "nuevo"), "la escritura lo reemplaza")
	v, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nuevo", v)
}

func TestRedisStore_Contrato(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	assertStoreContract(t, NewRedisStore(client, time.Hour))
}

func TestRedisStore_TTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedisStore(client, 30*time.Minute)
	require.NoError(t, s.Set(ctx, "session:abc:firex_token", "tok"))
	assert.Equal(t, 30*time.Minute, mr.TTL("session:abc:firex_token"))

	mr.FastForward(31 * time.Minute)
	_, ok, err := s.Get(ctx, "session:abc:firex_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrefixed(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore(0)
	a := Prefixed(inner, "session:a:")
	b := Prefixed(inner, "session:b:")

	assertStoreContract(t, a)

	require.NoError(t, a.Set(ctx, KeyToken, "tok-a"))
	_, ok, _ := b.Get(ctx, KeyToken)
	assert.False(t, ok, "los prefijos aíslan sesiones")

	v, ok, _ := inner.Get(ctx, "session:a:"+KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "tok-a", v)
}

func testKey(b byte) [32]byte {
	var k [32]byte
	for i := range k {
		k[i] = b
	}
	return k
}

func TestSealedStore_Contrato(t *testing.T) {
	assertStoreContract(t, NewSealedStore(NewMemoryStore(0), testKey(7)))
}

func TestSealedStore_NoGuardaTextoPlano(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore(0)
	s := NewSealedStore(inner, testKey(1))

	require.NoError(t, s.Set(ctx, KeyToken, "token-secreto"))
	raw, ok, _ := inner.Get(ctx, KeyToken)
	require.True(t, ok)
	assert.NotContains(t, raw, "token-secreto")

	other := NewSealedStore(inner, testKey(2))
	_, _, err := other.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrSealedValue)

	require.NoError(t, inner.Set(ctx, KeyToken, "manipulado"))
	_, _, err = s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrSealedValue)
}

func TestParseKey(t *testing.T) {
	hexKey := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	k, err := ParseKey(hexKey)
	require.NoError(t, err)
	assert.Equal(t, byte(0x1f), k[31])

	b64 := "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="
	k2, err := ParseKey(b64)
	require.NoError(t, err)
	assert.Equal(t, k, k2)

	_, err = ParseKey("corta")
	assert.Error(t, err)
}
