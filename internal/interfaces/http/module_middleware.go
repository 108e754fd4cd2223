package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/workspace-api/internal/domain/access"
)

// moduleChecker es el contrato mínimo que necesita el middleware para verificar módulos.
type moduleChecker interface {
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
}

// RequireModule verifica que la empresa del usuario tenga el módulo activo y vigente.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 NO_COMPANY       → el usuario aún no creó ni pertenece a una empresa.
//   - 403 MODULE_DISABLED  → módulo no contratado o vencido.
//   - 503                  → fallo de infraestructura al consultar la DB.
//   - platform_admin pasa sin consulta.
func RequireModule(moduleName string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.PlatformAdmin {
			return c.Next()
		}
		if p.CompanyID == "" {
			return denied(c, access.ReasonNoCompany, "el usuario no pertenece a ninguna empresa")
		}

		active, err := checker.HasActiveModule(c.UserContext(), p.CompanyID, moduleName)
		if err != nil {
			log.Error().Err(err).Str("module", moduleName).Str("company_id", p.CompanyID).Msg("verificación de módulo fallida")
			return fail(c, fiber.StatusServiceUnavailable, CodeInternal, "no se pudo verificar el módulo, intente más tarde", nil)
		}
		if !active {
			return denied(c, access.ReasonModuleDisabled, "el módulo '"+moduleName+"' no está activo para esta empresa")
		}
		return c.Next()
	}
}
