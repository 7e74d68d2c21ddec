package session

import (
	"context"

	"github.com/diedev/firex-web/internal/infrastructure/storage"
	"github.com/diedev/firex-web/pkg/logger"
)

// LocalSessionID id fijo para procesos de un solo usuario (kiosco, CLI).
const LocalSessionID = "local"

// Manager entrega a cada sesión de navegador su propio Holder sobre un store compartido.
type Manager struct {
	store storage.Store
	log   *logger.Logger
}

// NewManager construye el manager.
func NewManager(store storage.Store, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{store: store, log: log.Component("session")}
}

// KeyPrefix prefijo de las claves de una sesión en el store compartido.
func KeyPrefix(sid string) string {
	return "session:" + sid + ":"
}

// Open crea el holder de la sesión sid y lo restaura desde el store.
func (m *Manager) Open(ctx context.Context, sid string) *Holder {
	h := NewHolder(storage.Prefixed(m.store, KeyPrefix(sid)), m.log)
	h.Restore(ctx)
	return h
}
