package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// ServiceRequestUseCase solicitudes de servicio del cliente: crear, listar las propias, detalle y comprobante.
type ServiceRequestUseCase struct {
	requests ports.ServiceRequestsAPI
	receipts ports.ReceiptRenderer
	now      func() time.Time
}

// NewServiceRequestUseCase construye el caso de uso. receipts puede ser nil si no se generan PDF.
func NewServiceRequestUseCase(requests ports.ServiceRequestsAPI, receipts ports.ReceiptRenderer) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{requests: requests, receipts: receipts, now: time.Now}
}

// WithClock fija el reloj usado para validar la fecha (tests).
func (uc *ServiceRequestUseCase) WithClock(now func() time.Time) *ServiceRequestUseCase {
	uc.now = now
	return uc
}

// Submit valida y crea la solicitud a nombre del usuario de la sesión.
// El teléfono se envía sólo con dígitos.
func (uc *ServiceRequestUseCase) Submit(
	ctx context.Context,
	h *session.Holder,
	in dto.ServiceRequestCreate,
) (*dto.ServiceRequestView, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	in.Direccion = strings.TrimSpace(in.Direccion)
	in.Observaciones = strings.TrimSpace(in.Observaciones)
	if err := validation.ValidateServiceRequestAt(in, uc.now()).Err(); err != nil {
		return nil, err
	}
	in.Telefono = validation.CleanPhone(in.Telefono)

	res, err := uc.requests.Create(ctx, u.ID, u.Email, in)
	if err != nil {
		return nil, err
	}
	v := requestView(res.Data)
	return &v, nil
}

// Mine solicitudes del usuario, más recientes primero.
func (uc *ServiceRequestUseCase) Mine(ctx context.Context, h *session.Holder) ([]dto.ServiceRequestView, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	res, err := uc.requests.GetMine(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(res.Data)
	return requestViews(res.Data), nil
}

// Detail solicitud por código (SR-...). Un usuario no admin sólo ve las suyas.
func (uc *ServiceRequestUseCase) Detail(ctx context.Context, h *session.Holder, requestID string) (*dto.ServiceRequestView, error) {
	sr, err := uc.find(ctx, h, requestID)
	if err != nil {
		return nil, err
	}
	v := requestView(*sr)
	return &v, nil
}

// Receipt comprobante PDF de la solicitud y su nombre de archivo.
func (uc *ServiceRequestUseCase) Receipt(ctx context.Context, h *session.Holder, requestID string) ([]byte, string, error) {
	if uc.receipts == nil {
		return nil, "", fmt.Errorf("comprobantes no configurados")
	}
	sr, err := uc.find(ctx, h, requestID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.receipts.ServiceRequestReceipt(sr)
	if err != nil {
		return nil, "", fmt.Errorf("generar comprobante %s: %w", sr.RequestID, err)
	}
	return pdf, "comprobante-" + sr.RequestID + ".pdf", nil
}

func (uc *ServiceRequestUseCase) find(ctx context.Context, h *session.Holder, requestID string) (*entity.ServiceRequest, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	res, err := uc.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	sr := res.Data
	if !u.IsAdmin() && !ownsRequest(u, &sr) {
		return nil, domain.ErrForbidden
	}
	return &sr, nil
}

func ownsRequest(u *entity.User, sr *entity.ServiceRequest) bool {
	if sr.UserID != "" && sr.UserID == u.ID {
		return true
	}
	return strings.EqualFold(sr.UserEmail, u.Email)
}

// SortNewestFirst ordena por fecha de creación descendente (estable).
func SortNewestFirst(srs []entity.ServiceRequest) {
	sort.SliceStable(srs, func(i, j int) bool {
		return srs[i].CreatedAt.After(srs[j].CreatedAt.Time)
	})
}

// Options valores aceptados por el formulario y etiquetas de estado.
func (uc *ServiceRequestUseCase) Options() dto.ServiceRequestOptions {
	statuses := make([]dto.StatusCount, 0, len(entity.StatusFlow))
	for _, st := range entity.StatusFlow {
		statuses = append(statuses, dto.StatusCount{Status: st, Label: st.Label()})
	}
	return dto.ServiceRequestOptions{
		Tipos:           entity.ExtinguisherTypes,
		EstadosExtintor: entity.ExtinguisherStates,
		Franjas:         entity.TimeSlots,
		Statuses:        statuses,
	}
}
