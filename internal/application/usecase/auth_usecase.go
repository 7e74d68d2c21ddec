package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain"
	"github.com/diedev/firex-web/internal/domain/entity"
	"github.com/diedev/firex-web/pkg/logger"
)

// FallbackToken se guarda cuando el backend responde el login sin token,
// para que la sesión siga contando como autenticada.
const FallbackToken = "dummy-token"

// ErrNoUserInLogin el backend respondió el login sin usuario.
var ErrNoUserInLogin = errors.New("No se recibió información del usuario")

// AuthUseCase login, registro y cierre de sesión.
type AuthUseCase struct {
	auth ports.AuthAPI
	log  *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(auth ports.AuthAPI, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{auth: auth, log: log.Component("auth")}
}

// Login valida el formulario, autentica contra el backend y guarda la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, h *session.Holder, in dto.LoginRequest) (*entity.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.ValidateLoginForm(in.Email, in.Password).Err(); err != nil {
		return nil, err
	}

	res, err := uc.auth.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, ErrNoUserInLogin
	}

	token := res.Token
	if token == "" && res.Data != nil {
		token = res.Data.Token
	}
	if token == "" {
		uc.log.Warn().Str("email", res.User.Email).Msg("login sin token, se usa token de respaldo")
		token = FallbackToken
	}

	if err := h.Login(ctx, *res.User, token); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", res.User.ID).Str("role", string(res.User.Role)).Msg("sesión iniciada")
	return h.User(), nil
}

// Register valida y crea la cuenta. No inicia sesión: el usuario debe hacer login después.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	if err := validation.ValidateRegisterForm(in).Err(); err != nil {
		return nil, err
	}
	in.Phone = validation.CleanPhone(in.Phone)

	res, err := uc.auth.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	user := res.Data
	return &user, nil
}

// Logout cierra la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, h *session.Holder) error {
	return h.Logout(ctx)
}

// Me estado de la sesión para el navegador.
func (uc *AuthUseCase) Me(h *session.Holder) dto.SessionView {
	v := dto.SessionView{
		State:           h.State().String(),
		IsAuthenticated: h.IsAuthenticated(),
		IsAdmin:         h.IsAdmin(),
		User:            h.User(),
	}
	if exp, ok := h.TokenExpiry(); ok {
		v.TokenExpiresAt = &exp
	}
	return v
}

// requireUser usuario de la sesión o domain.ErrUnauthenticated.
func requireUser(h *session.Holder) (*entity.User, error) {
	if h == nil || !h.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return h.User(), nil
}

// requireAdmin usuario ADMIN o el error correspondiente.
func requireAdmin(h *session.Holder) (*entity.User, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return u, nil
}
