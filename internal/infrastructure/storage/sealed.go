package storage

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// ErrSealedValue el valor guardado no se pudo descifrar con la llave configurada.
var ErrSealedValue = errors.New("storage: valor cifrado inválido")

// SealedStore cifra los valores (NaCl secretbox) antes de delegar en otro Store.
// Las claves quedan en claro.
type SealedStore struct {
	inner Store
	key   [32]byte
}

// ParseKey acepta 32 bytes en hexadecimal (64 caracteres) o base64.
func ParseKey(s string) ([32]byte, error) {
	var key [32]byte
	s = strings.TrimSpace(s)
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		raw, err = base64.StdEncoding.DecodeString(s)
	}
	if err != nil || len(raw) != 32 {
		return key, fmt.Errorf("storage: la llave de cifrado debe tener 32 bytes (hex o base64)")
	}
	copy(key[:], raw)
	return key, nil
}

// NewSealedStore envuelve inner con la llave dada.
func NewSealedStore(inner Store, key [32]byte) *SealedStore {
	return &SealedStore{inner: inner, key: key}
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", false, ErrSealedValue
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", false, ErrSealedValue
	}
	return string(plain), true, nil
}

func (s *SealedStore) Set(ctx context.Context, key, value string) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("storage: generar nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return s.inner.Set(ctx, key, base64.RawURLEncoding.EncodeToString(sealed))
}

func (s *SealedStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}
