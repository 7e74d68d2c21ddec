package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// AuthAPI registro y login.
type AuthAPI struct {
	c *Client
}

func (a *AuthAPI) Register(ctx context.Context, in dto.RegisterRequest) (*dto.Envelope[entity.User], error) {
	return envelope[entity.User](ctx, a.c, request{method: http.MethodPost, path: "/api/users/register", body: in})
}

// Login la respuesta de login no viene envuelta en data.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	out, err := call[dto.LoginResponse](ctx, a.c, request{
		method: http.MethodPost,
		path:   "/api/users/login",
		body:   dto.LoginRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UsersAPI /api/users.
type UsersAPI struct {
	c *Client
}

func (a *UsersAPI) GetAll(ctx context.Context) (*dto.Envelope[[]entity.User], error) {
	return envelope[[]entity.User](ctx, a.c, request{method: http.MethodGet, path: "/api/users/all"})
}

func (a *UsersAPI) GetByID(ctx context.Context, id string) (*dto.Envelope[entity.User], error) {
	return envelope[entity.User](ctx, a.c, request{method: http.MethodGet, path: "/api/users/" + url.PathEscape(id)})
}

func (a *UsersAPI) UpdateProfile(ctx context.Context, id string, in dto.ProfileUpdateRequest) (*dto.Envelope[entity.User], error) {
	return envelope[entity.User](ctx, a.c, request{method: http.MethodPut, path: "/api/users/profile/" + url.PathEscape(id), body: in})
}

// Delete el backend expone el borrado en /api/users/delete/{id}.
func (a *UsersAPI) Delete(ctx context.Context, id string) (*dto.Envelope[any], error) {
	return envelope[any](ctx, a.c, request{method: http.MethodDelete, path: "/api/users/delete/" + url.PathEscape(id)})
}
