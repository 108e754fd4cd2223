package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workspace-api/internal/application/usecase"
)

// CompanyHandler empresa del usuario autenticado.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Current godoc
// @Summary      Empresa actual
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      403  {object}  dto.Envelope  "NO_COMPANY"
// @Router       /api/v1/companies/current [get]
func (h *CompanyHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}
