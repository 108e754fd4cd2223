package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
)

// Códigos de error del sobre de respuesta.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeAuth             = "AUTH_ERROR"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeSeatLimit        = "SEAT_LIMIT_REACHED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

// reasonData cuerpo data de un 403 con el motivo de la denegación.
type reasonData struct {
	Reason     access.Reason    `json:"reason"`
	Module     string           `json:"module,omitempty"`
	Permission string           `json:"permission,omitempty"`
	Field      string           `json:"field,omitempty"`
	Decision   *access.Decision `json:"decision,omitempty"`
}

func success(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.Envelope{
		StatusCode: status,
		Status:     dto.StatusSuccess,
		Data:       data,
	})
}

func fail(c *fiber.Ctx, status int, code, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{
		StatusCode:   status,
		Status:       dto.StatusFailure,
		Data:         data,
		ErrorCode:    code,
		ErrorMessage: message,
	})
}

func failValidation(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
		StatusCode:   fiber.StatusBadRequest,
		Status:       dto.StatusFailure,
		ErrorCode:    CodeValidation,
		ErrorMessage: message,
		Errors:       fields,
	})
}

func denied(c *fiber.Ctx, reason access.Reason, message string) error {
	return fail(c, fiber.StatusForbidden, CodePermissionDenied, message, reasonData{Reason: reason})
}

// writeError traduce errores de dominio al sobre. Es el único punto donde se decide el
// código HTTP de un error de aplicación.
func writeError(c *fiber.Ctx, err error) error {
	var deniedErr *access.DeniedError
	var fieldErr *domain.FieldAccessError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &deniedErr):
		d := deniedErr.Decision
		return fail(c, fiber.StatusForbidden, CodePermissionDenied, deniedErr.Error(), reasonData{
			Reason:     d.Reason,
			Module:     deniedErr.Module,
			Permission: deniedErr.Permission,
			Decision:   &d,
		})
	case errors.As(err, &fieldErr):
		return fail(c, fiber.StatusForbidden, CodePermissionDenied, fieldErr.Error(), reasonData{
			Reason: access.ReasonPermissionDenied,
			Field:  fieldErr.Field,
		})
	case errors.Is(err, domain.ErrNoCompany):
		return denied(c, access.ReasonNoCompany, err.Error())
	case errors.Is(err, domain.ErrSeatLimitReached):
		return fail(c, fiber.StatusForbidden, CodeSeatLimit, err.Error(), nil)
	case errors.Is(err, domain.ErrForbidden):
		return denied(c, access.ReasonPermissionDenied, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, CodeAuth, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidSeatCount),
		errors.Is(err, domain.ErrPlanUnavailable),
		errors.Is(err, domain.ErrUnknownModule):
		return failValidation(c, err.Error(), nil)
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInviteNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrPlanNotFound),
		errors.Is(err, domain.ErrNoSubscription):
		return fail(c, fiber.StatusNotFound, CodeNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, CodeConflict, err.Error(), nil)
	case errors.As(err, &fiberErr):
		return fail(c, fiberErr.Code, fiberCode(fiberErr.Code), fiberErr.Message, nil)
	}

	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return fail(c, fiber.StatusInternalServerError, CodeInternal, "error interno del servidor", nil)
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
		return CodeValidation
	case fiber.StatusUnauthorized:
		return CodeAuth
	case fiber.StatusForbidden:
		return CodePermissionDenied
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return CodeNotFound
	case fiber.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}

// ErrorHandler manejador de errores de la app Fiber; usa el mismo sobre que los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
