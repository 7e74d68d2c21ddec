package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain"
	"github.com/diedev/firex-web/internal/domain/entity"
	"github.com/diedev/firex-web/pkg/logger"
)

// StatusAll valor del filtro de estado que muestra todas las solicitudes.
const StatusAll = "ALL"

// dashboardLowStock en el panel cuenta como stock bajo 0 < stock < 10.
const dashboardLowStock = 10

// AdminUseCase panel de administración. Todas las operaciones exigen rol ADMIN.
type AdminUseCase struct {
	products   ports.ProductsAPI
	categories ports.CategoriesAPI
	users      ports.UsersAPI
	requests   ports.ServiceRequestsAPI
	log        *logger.Logger
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(
	products ports.ProductsAPI,
	categories ports.CategoriesAPI,
	users ports.UsersAPI,
	requests ports.ServiceRequestsAPI,
	log *logger.Logger,
) *AdminUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminUseCase{
		products:   products,
		categories: categories,
		users:      users,
		requests:   requests,
		log:        log.Component("admin"),
	}
}

// Dashboard tarjetas del panel.
//
// Tres llamadas en paralelo:
//  1. productos  → TotalProducts + LowStock
//  2. usuarios   → TotalUsers
//  3. PENDIENTE  → PendingRequests
func (uc *AdminUseCase) Dashboard(ctx context.Context, h *session.Holder) (*dto.DashboardStats, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	var stats dto.DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := uc.products.GetAll(gctx)
		if err != nil {
			return err
		}
		stats.TotalProducts = len(res.Data)
		for _, p := range res.Data {
			if p.Stock > 0 && p.Stock < dashboardLowStock {
				stats.LowStock++
			}
		}
		return nil
	})
	g.Go(func() error {
		res, err := uc.users.GetAll(gctx)
		if err != nil {
			return err
		}
		stats.TotalUsers = len(res.Data)
		return nil
	})
	g.Go(func() error {
		res, err := uc.requests.GetByStatus(gctx, string(entity.StatusPendiente))
		if err != nil {
			return err
		}
		stats.PendingRequests = len(res.Data)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ── Solicitudes ──

// Requests panel de solicitudes: más recientes primero, filtro por estado (o ALL)
// y búsqueda por código, email o dirección. Los conteos por estado ignoran los filtros.
func (uc *AdminUseCase) Requests(ctx context.Context, h *session.Holder, q dto.RequestsQuery) (*dto.RequestsView, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	if q.Status == "" {
		q.Status = StatusAll
	}
	var filter entity.ServiceRequestStatus
	if q.Status != StatusAll {
		st, ok := entity.ParseStatus(q.Status)
		if !ok {
			return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, q.Status)
		}
		filter = st
	}

	res, err := uc.requests.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	all := res.Data
	SortNewestFirst(all)

	counts := make([]dto.StatusCount, 0, len(entity.StatusFlow))
	for _, st := range entity.StatusFlow {
		counts = append(counts, dto.StatusCount{Status: st, Label: st.Label()})
	}
	filtered := make([]entity.ServiceRequest, 0, len(all))
	search := strings.TrimSpace(q.Search)
	for _, sr := range all {
		if i := sr.Status.Index(); i >= 0 {
			counts[i].Count++
		}
		if filter != "" && sr.Status != filter {
			continue
		}
		if search != "" && !matchesRequest(sr, search) {
			continue
		}
		filtered = append(filtered, sr)
	}

	return &dto.RequestsView{
		Requests: requestViews(filtered),
		Counts:   counts,
		Total:    len(all),
		Query:    q,
	}, nil
}

func matchesRequest(sr entity.ServiceRequest, search string) bool {
	return containsFold(sr.RequestID, search) ||
		containsFold(sr.UserEmail, search) ||
		containsFold(sr.Direccion, search)
}

// RequestStats conteo por estado según el backend.
func (uc *AdminUseCase) RequestStats(ctx context.Context, h *session.Holder) (dto.RequestStats, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	res, err := uc.requests.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// UpdateStatus cambia el estado de una solicitud. Updated-By es el email del admin.
// La transición se valida antes de llamar al backend con su misma regla.
func (uc *AdminUseCase) UpdateStatus(ctx context.Context, h *session.Holder, id, status string) (*dto.ServiceRequestView, error) {
	admin, err := requireAdmin(h)
	if err != nil {
		return nil, err
	}
	next, ok := entity.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
	}

	current, err := uc.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Data.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: de %s a %s", domain.ErrInvalidTransition, current.Data.Status.Label(), next.Label())
	}

	res, err := uc.requests.UpdateStatus(ctx, id, string(next), admin.Email)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", id).Str("status", string(next)).Str("by", admin.Email).Msg("estado actualizado")
	v := requestView(res.Data)
	return &v, nil
}

// DeleteRequest elimina una solicitud.
func (uc *AdminUseCase) DeleteRequest(ctx context.Context, h *session.Holder, id string) error {
	if _, err := requireAdmin(h); err != nil {
		return err
	}
	_, err := uc.requests.Delete(ctx, id)
	return err
}

// ── Usuarios ──

// Users lista de usuarios filtrada por nombre o email.
func (uc *AdminUseCase) Users(ctx context.Context, h *session.Holder, search string) (*dto.UsersView, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	res, err := uc.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)
	users := make([]entity.User, 0, len(res.Data))
	for _, u := range res.Data {
		if search == "" || containsFold(u.Name, search) || containsFold(u.Email, search) {
			users = append(users, u)
		}
	}
	return &dto.UsersView{Users: users, Total: len(res.Data), Search: search}, nil
}

// DeleteUser elimina un usuario. Un admin no puede eliminarse a sí mismo.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, h *session.Holder, id string) error {
	admin, err := requireAdmin(h)
	if err != nil {
		return err
	}
	if id == admin.ID {
		return fmt.Errorf("%w: no puedes eliminar tu propia cuenta", domain.ErrInvalidInput)
	}
	_, err = uc.users.Delete(ctx, id)
	return err
}

// ── Categorías ──

// Categories lista de categorías.
func (uc *AdminUseCase) Categories(ctx context.Context, h *session.Holder) ([]entity.Category, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	res, err := uc.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// SaveCategory crea (id vacío) o actualiza una categoría.
func (uc *AdminUseCase) SaveCategory(ctx context.Context, h *session.Holder, id string, in dto.CategoryRequest) (*entity.Category, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validation.ValidateCategoryForm(in).Err(); err != nil {
		return nil, err
	}
	var (
		res *dto.Envelope[entity.Category]
		err error
	)
	if id == "" {
		res, err = uc.categories.Create(ctx, in)
	} else {
		res, err = uc.categories.Update(ctx, id, in)
	}
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteCategory elimina una categoría.
func (uc *AdminUseCase) DeleteCategory(ctx context.Context, h *session.Holder, id string) error {
	if _, err := requireAdmin(h); err != nil {
		return err
	}
	_, err := uc.categories.Delete(ctx, id)
	return err
}

// ── Productos ──

// SaveProduct crea (id vacío) o actualiza un producto.
func (uc *AdminUseCase) SaveProduct(ctx context.Context, h *session.Holder, id string, in dto.ProductRequest) (*dto.ProductCard, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if err := validation.ValidateProductForm(in).Err(); err != nil {
		return nil, err
	}
	var (
		res *dto.Envelope[entity.Product]
		err error
	)
	if id == "" {
		res, err = uc.products.Create(ctx, in)
	} else {
		res, err = uc.products.Update(ctx, id, in)
	}
	if err != nil {
		return nil, err
	}
	card := productCard(res.Data)
	return &card, nil
}

// DeleteProduct elimina un producto.
func (uc *AdminUseCase) DeleteProduct(ctx context.Context, h *session.Holder, id string) error {
	if _, err := requireAdmin(h); err != nil {
		return err
	}
	_, err := uc.products.Delete(ctx, id)
	return err
}

// LowStock productos bajo el umbral (threshold <= 0 usa el del backend, 10).
func (uc *AdminUseCase) LowStock(ctx context.Context, h *session.Holder, threshold int) ([]dto.ProductCard, error) {
	if _, err := requireAdmin(h); err != nil {
		return nil, err
	}
	res, err := uc.products.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return productCards(res.Data), nil
}
