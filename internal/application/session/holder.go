// Package session mantiene el usuario autenticado y su token, persistidos en un storage.Store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diedev/firex-web/internal/domain/entity"
	"github.com/diedev/firex-web/internal/infrastructure/storage"
	"github.com/diedev/firex-web/pkg/jwt"
	"github.com/diedev/firex-web/pkg/logger"
)

// State ciclo de vida: uninitialized -> restoring -> anonymous | authenticated.
type State int

const (
	StateUninitialized State = iota
	StateRestoring
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Holder sesión de un navegador. Seguro para uso concurrente.
type Holder struct {
	mu    sync.RWMutex
	store storage.Store
	log   *logger.Logger
	state State
	user  *entity.User
	token string
}

// NewHolder crea un holder sin restaurar; llamar Restore antes de consultarlo.
func NewHolder(store storage.Store, log *logger.Logger) *Holder {
	if log == nil {
		log = logger.Nop()
	}
	return &Holder{store: store, log: log}
}

// Restore carga usuario y token del store. Un valor corrupto o un error del store
// limpia ambas claves y deja la sesión anónima; nunca falla.
func (h *Holder) Restore(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = StateRestoring

	user, token, err := h.read(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("sesión corrupta, se limpia")
		h.clearLocked(ctx)
		h.user, h.token = nil, ""
		h.state = StateAnonymous
		return
	}
	if user == nil || token == "" {
		h.user, h.token = nil, ""
		h.state = StateAnonymous
		return
	}
	h.user, h.token = user, token
	h.state = StateAuthenticated
}

func (h *Holder) read(ctx context.Context) (*entity.User, string, error) {
	rawUser, okUser, err := h.store.Get(ctx, storage.KeyUser)
	if err != nil {
		return nil, "", fmt.Errorf("leer %s: %w", storage.KeyUser, err)
	}
	token, okToken, err := h.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return nil, "", fmt.Errorf("leer %s: %w", storage.KeyToken, err)
	}
	if !okUser || !okToken {
		return nil, "", nil
	}
	var user *entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, "", fmt.Errorf("decodificar %s: %w", storage.KeyUser, err)
	}
	if user == nil || user.ID == "" {
		return nil, "", fmt.Errorf("decodificar %s: usuario vacío", storage.KeyUser)
	}
	return user, token, nil
}

// Login marca la sesión como autenticada y persiste usuario y token.
func (h *Holder) Login(ctx context.Context, user entity.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("codificar usuario: %w", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.user, h.token = &user, token
	h.state = StateAuthenticated

	if err := h.store.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	if err := h.store.Set(ctx, storage.KeyToken, token); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Logout deja la sesión anónima y borra ambas claves.
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.user, h.token = nil, ""
	h.state = StateAnonymous
	return h.clearLocked(ctx)
}

// SetUser reemplaza el usuario (p. ej. tras editar el perfil) sin tocar el token.
func (h *Holder) SetUser(ctx context.Context, user entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("codificar usuario: %w", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.user = &user
	if err := h.store.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("guardar usuario: %w", err)
	}
	return nil
}

func (h *Holder) clearLocked(ctx context.Context) error {
	return errors.Join(
		h.store.Remove(ctx, storage.KeyUser),
		h.store.Remove(ctx, storage.KeyToken),
	)
}

// ── Consultas ──

// State estado actual.
func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Loading true mientras no terminó Restore.
func (h *Holder) Loading() bool {
	s := h.State()
	return s == StateUninitialized || s == StateRestoring
}

// User copia del usuario actual, nil si es anónima.
func (h *Holder) User() *entity.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	u := *h.user
	return &u
}

// Token token del backend, "" si es anónima.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// IsAuthenticated hay usuario y token.
func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user != nil && h.token != ""
}

// IsAdmin el usuario tiene rol ADMIN.
func (h *Holder) IsAdmin() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user.IsAdmin()
}

// TokenExpiry vencimiento del token del backend si es un JWT con exp; sólo informativo.
func (h *Holder) TokenExpiry() (time.Time, bool) {
	token := h.Token()
	if token == "" {
		return time.Time{}, false
	}
	exp, err := jwt.ExpiresAt(token)
	if err != nil || exp.IsZero() {
		return time.Time{}, false
	}
	return exp, true
}
