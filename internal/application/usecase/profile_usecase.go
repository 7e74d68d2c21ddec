package usecase

import (
	"context"
	"strings"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// ProfileUseCase edición del perfil. El email no se puede cambiar.
type ProfileUseCase struct {
	users ports.UsersAPI
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(users ports.UsersAPI) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Update actualiza nombre, teléfono y dirección y refresca el usuario de la sesión (el token no cambia).
func (uc *ProfileUseCase) Update(ctx context.Context, h *session.Holder, in dto.ProfileUpdateRequest) (*entity.User, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	if err := validation.ValidateProfileForm(in).Err(); err != nil {
		return nil, err
	}
	in.Phone = validation.CleanPhone(in.Phone)

	res, err := uc.users.UpdateProfile(ctx, u.ID, in)
	if err != nil {
		return nil, err
	}
	if err := h.SetUser(ctx, res.Data); err != nil {
		return nil, err
	}
	return h.User(), nil
}
