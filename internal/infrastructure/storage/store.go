// Package storage guarda pares clave/valor de texto para la sesión del navegador.
package storage

import "context"

// Claves persistidas por la sesión.
const (
	KeyUser  = "firex_user"
	KeyToken = "firex_token"
)

// Store almacenamiento clave/valor. Get devuelve ok=false cuando la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// prefixed vista de un Store con todas las claves bajo un prefijo.
type prefixed struct {
	inner  Store
	prefix string
}

// Prefixed namespacing: Get("k") lee "<prefix>k" del store subyacente.
func Prefixed(inner Store, prefix string) Store {
	return &prefixed{inner: inner, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.inner.Remove(ctx, p.prefix+key)
}
