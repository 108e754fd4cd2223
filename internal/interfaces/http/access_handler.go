package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/application/usecase"
)

// AccessHandler diagnóstico del evaluador y catálogo de módulos.
type AccessHandler struct {
	access  *usecase.AccessUseCase
	modules *usecase.ModuleService
}

// NewAccessHandler construye el handler.
func NewAccessHandler(access *usecase.AccessUseCase, modules *usecase.ModuleService) *AccessHandler {
	return &AccessHandler{access: access, modules: modules}
}

// Check godoc
// @Summary      Evaluar acceso
// @Description  Devuelve la decisión con el diagnóstico de cada etapa. Una denegación responde 200 con allowed=false.
// @Tags         access
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AccessCheckRequest  true  "module, permission, record opcional"
// @Success      200   {object}  dto.Envelope{data=access.Decision}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/access/check [post]
func (h *AccessHandler) Check(c *fiber.Ctx) error {
	var in dto.AccessCheckRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.access.Check(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// Modules godoc
// @Summary      Catálogo de módulos
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=[]dto.ModuleResponse}
// @Router       /api/v1/modules [get]
func (h *AccessHandler) Modules(c *fiber.Ctx) error {
	out, err := h.modules.Catalog(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}
