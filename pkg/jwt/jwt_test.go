package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/diedev/firex-web/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testSID    = "6f1c0a52-2f43-4c7e-9a0e-7b8f3e1d2c4b"
	testIssuer = "firex-web-test"
)

func TestGenerateAndParse_DevuelveSessionID(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSID, testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSID, sid)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSID, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSID, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testSID, testIssuer, time.Hour)
	assert.Error(t, err)
}

func TestExpiresAt_TokenDelBackend(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(exp),
	}).SignedString([]byte("secreto-del-backend"))
	require.NoError(t, err)

	got, err := pkgjwt.ExpiresAt(tok)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestExpiresAt_TokenNoJWT(t *testing.T) {
	_, err := pkgjwt.ExpiresAt("dummy-token")
	assert.ErrorIs(t, err, pkgjwt.ErrNotJWT)
}
