package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/usecase"
)

// ServiceRequestHandler solicitudes de recarga del cliente.
type ServiceRequestHandler struct {
	uc *usecase.ServiceRequestUseCase
}

// NewServiceRequestHandler construye el handler.
func NewServiceRequestHandler(uc *usecase.ServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{uc: uc}
}

// Options godoc
// @Summary      Opciones del formulario de solicitud
// @Tags         service-requests
// @Produce      json
// @Success      200  {object}  dto.ServiceRequestOptions
// @Router       /app/servicios/opciones [get]
func (h *ServiceRequestHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.uc.Options())
}

// Submit godoc
// @Summary      Crear solicitud de servicio
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ServiceRequestCreate  true  "Formulario"
// @Success      201   {object}  dto.ServiceRequestView
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /app/servicios [post]
func (h *ServiceRequestHandler) Submit(c *fiber.Ctx) error {
	var in dto.ServiceRequestCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mine godoc
// @Summary      Mis solicitudes
// @Tags         service-requests
// @Produce      json
// @Success      200  {array}   dto.ServiceRequestView
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /app/servicios [get]
func (h *ServiceRequestHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(c.UserContext(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de una solicitud
// @Tags         service-requests
// @Produce      json
// @Param        requestId  path      string  true  "Código SR-..."
// @Success      200        {object}  dto.ServiceRequestView
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /app/servicios/{requestId} [get]
func (h *ServiceRequestHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), GetSession(c), c.Params("requestId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF
// @Tags         service-requests
// @Produce      application/pdf
// @Param        requestId  path  string  true  "Código SR-..."
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /app/servicios/{requestId}/comprobante [get]
func (h *ServiceRequestHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Receipt(c.UserContext(), GetSession(c), c.Params("requestId"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdf)
}
