package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/pkg/jwt"
)

// Locals keys del usuario autenticado en Fiber.
const (
	LocalUserID    = "user_id"
	LocalPrincipal = "principal"
)

// PrincipalLoader resuelve el usuario del token contra la base.
type PrincipalLoader interface {
	Principal(ctx context.Context, userID string) (access.Principal, error)
}

// AuthMiddleware valida el Bearer Token JWT y carga el principal en c.Locals.
// La empresa y los roles salen de la base; el company_id del token no se usa para autorizar.
func AuthMiddleware(jwtSecret string, loader PrincipalLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, CodeAuth, "Authorization header requerido", nil)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, CodeAuth, "formato: Bearer <token>", nil)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, CodeAuth, "token vacío", nil)
		}
		claims, err := jwt.ParseClaims(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, CodeAuth, "token inválido o expirado", nil)
		}

		p, err := loader.Principal(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
				return fail(c, fiber.StatusUnauthorized, CodeAuth, "usuario inexistente o inactivo", nil)
			}
			return writeError(c, err)
		}
		c.Locals(LocalUserID, p.UserID)
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetPrincipal devuelve el principal cargado por AuthMiddleware.
func GetPrincipal(c *fiber.Ctx) access.Principal {
	p, _ := c.Locals(LocalPrincipal).(access.Principal)
	return p
}

// GetCompanyID empresa del usuario según la base.
func GetCompanyID(c *fiber.Ctx) string {
	return GetPrincipal(c).CompanyID
}
