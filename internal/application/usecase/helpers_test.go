package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/domain"
	"github.com/diedev/firex-web/internal/domain/entity"
	"github.com/diedev/firex-web/internal/infrastructure/storage"
)

var errNotFound = domain.ErrNotFound

var (
	cliente = entity.User{ID: "u-1", Name: "Ana Gómez", Email: "ana@firex.co", Role: entity.RoleUser}
	admin   = entity.User{ID: "u-admin", Name: "Admin Firex", Email: "admin@firex.co", Role: entity.RoleAdmin}
)

func containsLower(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// anonymous sesión restaurada sin usuario.
func anonymous(t *testing.T) *session.Holder {
	t.Helper()
	h := session.NewHolder(storage.NewMemoryStore(0), nil)
	h.Restore(context.Background())
	return h
}

// loggedIn sesión autenticada con el usuario indicado.
func loggedIn(t *testing.T, u entity.User) *session.Holder {
	t.Helper()
	h := anonymous(t)
	require.NoError(t, h.Login(context.Background(), u, "token-"+u.ID))
	return h
}
