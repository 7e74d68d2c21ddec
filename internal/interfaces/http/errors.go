package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain"
	"github.com/diedev/firex-web/internal/infrastructure/api"
)

// Códigos de error del BFF.
const (
	CodeValidation         = "VALIDATION"
	CodeAPIError           = "API_ERROR"
	CodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	CodeBadResponse        = "BAD_BACKEND_RESPONSE"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeOutOfStock         = "OUT_OF_STOCK"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidBody        = "INVALID_BODY"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL"
)

// respondError traduce errores de aplicación a respuestas JSON.
//
//	*validation.Error   → 422 VALIDATION (campos en orden, mensaje = primer error)
//	*api.Error          → status del backend, API_ERROR
//	api.ErrNetwork      → 502 BACKEND_UNAVAILABLE
//	api.ErrInvalidResponse → 502 BAD_BACKEND_RESPONSE
//	ErrUnauthenticated  → 401, ErrForbidden → 403
func respondError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    CodeValidation,
			Message: verr.Error(),
			Fields:  verr.Result.Errors,
		})
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: CodeAPIError, Message: apiErr.Message})
	}

	status, code := fiber.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, api.ErrNetwork):
		status, code = fiber.StatusBadGateway, CodeBackendUnavailable
	case errors.Is(err, api.ErrInvalidResponse):
		status, code = fiber.StatusBadGateway, CodeBadResponse
	case errors.Is(err, domain.ErrUnauthenticated):
		status, code = fiber.StatusUnauthorized, CodeUnauthenticated
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrOutOfStock):
		status, code = fiber.StatusConflict, CodeOutOfStock
	case errors.Is(err, domain.ErrInvalidTransition):
		status, code = fiber.StatusConflict, CodeInvalidTransition
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, CodeInvalidInput
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, CodeNotFound
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}
