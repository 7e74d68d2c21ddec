package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/usecase"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain"
	"github.com/diedev/firex-web/internal/domain/entity"
)

func TestAuthUseCase_Login_GuardaSesion(t *testing.T) {
	user := cliente
	fb := &fakeBackend{loginResp: &dto.LoginResponse{Success: true, User: &user, Token: "jwt-del-backend"}}
	uc := usecase.NewAuthUseCase(fakeAuth{fb}, nil)
	h := anonymous(t)

	got, err := uc.Login(context.Background(), h, dto.LoginRequest{Email: " ana@firex.co ", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, cliente.ID, got.ID)
	assert.True(t, h.IsAuthenticated())
	assert.False(t, h.IsAdmin())
	assert.Equal(t, "jwt-del-backend", h.Token())
}

func TestAuthUseCase_Login_TokenAnidadoEnData(t *testing.T) {
	user := admin
	resp := &dto.LoginResponse{Success: true, User: &user}
	resp.Data = &struct {
		Token string `json:"token"`
	}{Token: "anidado"}
	uc := usecase.NewAuthUseCase(fakeAuth{&fakeBackend{loginResp: resp}}, nil)
	h := anonymous(t)

	_, err := uc.Login(context.Background(), h, dto.LoginRequest{Email: "admin@firex.co", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "anidado", h.Token())
	assert.True(t, h.IsAdmin())
}

func TestAuthUseCase_Login_SinTokenUsaRespaldo(t *testing.T) {
	user := cliente
	fb := &fakeBackend{loginResp: &dto.LoginResponse{Success: true, User: &user}}
	uc := usecase.NewAuthUseCase(fakeAuth{fb}, nil)
	h := anonymous(t)

	_, err := uc.Login(context.Background(), h, dto.LoginRequest{Email: "ana@firex.co", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, usecase.FallbackToken, h.Token())
	assert.True(t, h.IsAuthenticated())
}

func TestAuthUseCase_Login_SinUsuario(t *testing.T) {
	fb := &fakeBackend{loginResp: &dto.LoginResponse{Success: true, Token: "t"}}
	uc := usecase.NewAuthUseCase(fakeAuth{fb}, nil)
	h := anonymous(t)

	_, err := uc.Login(context.Background(), h, dto.LoginRequest{Email: "ana@firex.co", Password: "x"})
	assert.ErrorIs(t, err, usecase.ErrNoUserInLogin)
	assert.Equal(t, "No se recibió información del usuario", err.Error())
	assert.False(t, h.IsAuthenticated())
}

func TestAuthUseCase_Login_FormularioInvalidoNoLlamaAlBackend(t *testing.T) {
	fb := &fakeBackend{}
	uc := usecase.NewAuthUseCase(fakeAuth{fb}, nil)

	_, err := uc.Login(context.Background(), anonymous(t), dto.LoginRequest{Email: "no-es-email", Password: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.MsgEmail, verr.Result.Errors.Get("email"))
	assert.Equal(t, validation.MsgPasswordReq, verr.Result.Errors.Get("password"))
	assert.Empty(t, fb.calls)
}

func TestAuthUseCase_Register_LimpiaTelefono(t *testing.T) {
	fb := &fakeBackend{}
	uc := usecase.NewAuthUseCase(fakeAuth{fb}, nil)

	u, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     " María Pérez ",
		Email:    "maria@firex.co",
		Password: "123456",
		Phone:    "300 123 4567",
		Address:  "Calle 10 # 20-30, Bogotá",
	})
	require.NoError(t, err)
	assert.Equal(t, "3001234567", fb.lastRegister.Phone)
	assert.Equal(t, "María Pérez", fb.lastRegister.Name)
	assert.Equal(t, entity.RoleUser, u.Role)
}

func TestAuthUseCase_Register_Invalido(t *testing.T) {
	fb := &fakeBackend{}
	uc := usecase.NewAuthUseCase(fakeAuth{fb}, nil)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Al", Email: "x", Password: "1", Phone: "123", Address: "corta"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Result.Errors, 5)
	assert.Equal(t, validation.MsgName, err.Error())
	assert.False(t, fb.called("auth.register"))
}

func TestAuthUseCase_LogoutYMe(t *testing.T) {
	uc := usecase.NewAuthUseCase(fakeAuth{&fakeBackend{}}, nil)
	h := loggedIn(t, cliente)

	me := uc.Me(h)
	assert.Equal(t, "authenticated", me.State)
	assert.True(t, me.IsAuthenticated)
	require.NotNil(t, me.User)
	assert.Equal(t, cliente.Email, me.User.Email)
	assert.Nil(t, me.TokenExpiresAt, "el token de prueba no es JWT")

	require.NoError(t, uc.Logout(context.Background(), h))
	me = uc.Me(h)
	assert.Equal(t, "anonymous", me.State)
	assert.False(t, me.IsAuthenticated)
	assert.Nil(t, me.User)
}
